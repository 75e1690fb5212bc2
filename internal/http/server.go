package http

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/claes/tabcast/internal/browser"
	"github.com/claes/tabcast/internal/events"
	"github.com/claes/tabcast/internal/logger"
	"github.com/claes/tabcast/internal/model"
	"github.com/claes/tabcast/internal/video"
)

const eventWriteTimeout = 5 * time.Second

type server struct {
	browser *browser.Screen
	video   *video.Controller
	hub     *events.Hub
	tpl     *template.Template
}

type page struct {
	Browser browser.View
	Video   video.View
	Streams []model.Stream
	Alerts  []model.Alert
}

// NewServer creates the HTTP handler hosting the browser and video tabs.
func NewServer(b *browser.Screen, v *video.Controller, hub *events.Hub, log *slog.Logger) nethttp.Handler {
	tpl := template.Must(template.New("page").Parse(pageTpl))
	s := &server{browser: b, video: v, hub: hub, tpl: tpl}

	r := chi.NewRouter()
	r.Use(
		chiMiddleware.Recoverer,
		func(next nethttp.Handler) nethttp.Handler {
			return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				next.ServeHTTP(w, r.WithContext(logger.AddToContext(r.Context(), log)))
			})
		},
	)

	r.Get("/", s.handleTabs)
	r.Get("/health", HealthHandler(hub).ServeHTTP)
	r.Get("/events", s.handleEvents)

	r.Route("/browser", func(r chi.Router) {
		r.Get("/", s.handleBrowserView)
		r.Post("/load-start", s.browserAction(s.browser.HandleWebViewLoadStart))
		r.Post("/load-end", s.browserAction(s.browser.HandleWebViewLoadEnd))
		r.Post("/notifications/welcome", s.browserAction(s.browser.HandleWelcomeNotification))
		r.Post("/notifications/reminder", s.browserAction(s.browser.HandleReminderNotification))
	})

	r.Route("/video", func(r chi.Router) {
		r.Get("/", s.handleVideoView)
		r.Post("/{action}", s.handleVideoAction)
	})
	return r
}

func (s *server) handleTabs(w nethttp.ResponseWriter, r *nethttp.Request) {
	p := page{
		Browser: s.browser.View(),
		Video:   s.video.View(),
		Streams: video.Streams,
		Alerts:  s.hub.RecentAlerts(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, p); err != nil {
		logger.FromContext(r.Context()).Error("render tabs", "err", err)
	}
}

func (s *server) handleBrowserView(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, s.browser.View())
}

func (s *server) browserAction(fn func(context.Context)) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		fn(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

func (s *server) handleVideoView(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, s.video.View())
}

func (s *server) videoActions() map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"toggle-playback":   s.video.TogglePlayback,
		"seek-backward":     s.video.SeekBackward,
		"seek-forward":      s.video.SeekForward,
		"toggle-mute":       s.video.ToggleMute,
		"toggle-fullscreen": s.video.ToggleFullscreen,
		"restart":           s.video.RestartVideo,
		"switch-stream":     s.video.SwitchStream,
	}
}

// handleVideoAction runs one transport action. Engine failures are logged
// and otherwise invisible to the caller.
func (s *server) handleVideoAction(w nethttp.ResponseWriter, r *nethttp.Request) {
	action := chi.URLParam(r, "action")
	fn, ok := s.videoActions()[action]
	if !ok {
		httpError(w, nethttp.StatusNotFound, "unknown action")
		return
	}
	if err := fn(r.Context()); err != nil {
		logger.FromContext(r.Context()).Warn("video action failed", "action", action, "err", err)
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

// handleEvents streams hub events as JSON messages until the client leaves.
func (s *server) handleEvents(w nethttp.ResponseWriter, r *nethttp.Request) {
	log := logger.FromContext(r.Context())
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionNoContextTakeover,
	})
	if err != nil {
		log.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ch, release := s.hub.Subscribe()
	defer release()

	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			wctx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
			err := wsjson.Write(wctx, conn, e)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Debug("event write failed", "err", err)
				}
				return
			}
		}
	}
}

func writeJSON(w nethttp.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w nethttp.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
