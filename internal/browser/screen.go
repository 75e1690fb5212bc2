package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/claes/tabcast/internal/logger"
	"github.com/claes/tabcast/internal/model"
	"github.com/claes/tabcast/internal/notify"
)

// PageURL is the page shown in the embedded browser surface.
const PageURL = "https://houseofedtech.in"

const (
	welcomeTitle  = "Welcome! 🎉"
	welcomeBody   = "Thanks for using our WebView app! Hope you enjoy browsing."
	welcomeDelay  = 3
	reminderTitle = "Friendly Reminder 📱"
	reminderBody  = "Don't forget to check out the Video Player tab for some great content!"
	reminderDelay = 5
	loadedTitle   = "Page Loaded ✅"
	loadedBody    = "The website has finished loading successfully!"
	loadedDelay   = 2
)

// Alerter surfaces an acknowledgement to the user.
type Alerter interface {
	Alert(a model.Alert)
}

// View is what the browser tab renders.
type View struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	PageURL   string `json:"pageUrl"`
	IsLoading bool   `json:"isLoading"`
}

// Screen holds the browser tab state and its notification triggers.
type Screen struct {
	scheduler notify.Scheduler
	alerts    Alerter

	mu        sync.Mutex
	isLoading bool
}

func NewScreen(s notify.Scheduler, a Alerter) *Screen {
	return &Screen{scheduler: s, alerts: a, isLoading: true}
}

func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Title:     "WebView & Notifications",
		Subtitle:  "Browse and get notified",
		PageURL:   PageURL,
		IsLoading: s.isLoading,
	}
}

// ScheduleNotification asks for a notification after delaySeconds and tells
// the user whether that worked. Failures are not retried.
func (s *Screen) ScheduleNotification(ctx context.Context, title, body string, delaySeconds int) {
	_, err := s.scheduler.Schedule(ctx, notify.Content{
		Title: title,
		Body:  body,
		Sound: notify.DefaultSound,
	}, time.Duration(delaySeconds)*time.Second)
	if err != nil {
		logger.FromContext(ctx).Error("error scheduling notification", "title", title, "err", err)
		s.alerts.Alert(model.Alert{Title: "Error", Message: "Failed to schedule notification"})
		return
	}
	s.alerts.Alert(model.Alert{
		Title:   "Notification Scheduled",
		Message: fmt.Sprintf("%q will appear in %d seconds", title, delaySeconds),
	})
}

func (s *Screen) HandleWelcomeNotification(ctx context.Context) {
	s.ScheduleNotification(ctx, welcomeTitle, welcomeBody, welcomeDelay)
}

func (s *Screen) HandleReminderNotification(ctx context.Context) {
	s.ScheduleNotification(ctx, reminderTitle, reminderBody, reminderDelay)
}

func (s *Screen) HandleWebViewLoadStart(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()
}

// HandleWebViewLoadEnd hides the loading overlay and schedules the
// page-loaded notification. It fires on every load, reloads included.
func (s *Screen) HandleWebViewLoadEnd(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	s.ScheduleNotification(ctx, loadedTitle, loadedBody, loadedDelay)
}
