package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claes/tabcast/internal/browser"
	"github.com/claes/tabcast/internal/events"
	"github.com/claes/tabcast/internal/media"
	"github.com/claes/tabcast/internal/model"
	"github.com/claes/tabcast/internal/notify"
	"github.com/claes/tabcast/internal/video"
)

type scheduled struct {
	content notify.Content
	delay   time.Duration
}

type fakeScheduler struct{ calls []scheduled }

func (f *fakeScheduler) Schedule(ctx context.Context, c notify.Content, d time.Duration) (model.Notification, error) {
	f.calls = append(f.calls, scheduled{c, d})
	return model.Notification{ID: "x", Title: c.Title, Delay: d}, nil
}

type testEnv struct {
	mux    nethttp.Handler
	hub    *events.Hub
	engine *media.Virtual
	ctrl   *video.Controller
	sched  *fakeScheduler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hub := events.NewHub()
	sched := &fakeScheduler{}
	engine := media.NewVirtual(media.WithDurations(video.KnownDurations))
	ctrl := video.NewController(engine, hub)
	scr := browser.NewScreen(sched, hub)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testEnv{
		mux:    NewServer(scr, ctrl, hub, log),
		hub:    hub,
		engine: engine,
		ctrl:   ctrl,
		sched:  sched,
	}
}

func (e *testEnv) do(method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestTabs_RendersBothScreens(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do("GET", "/")

	require.Equal(t, 200, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "https://houseofedtech.in")
	assert.Contains(t, body, "Loading website...")
	assert.Contains(t, body, "Big Buck Bunny")
	assert.Contains(t, body, "Switch Stream (1/3)")
}

func TestBrowser_LoadEndSchedulesOnce(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, 204, env.do("POST", "/browser/load-start").Code)
	var v browser.View
	require.NoError(t, json.Unmarshal(env.do("GET", "/browser").Body.Bytes(), &v))
	assert.True(t, v.IsLoading)

	require.Equal(t, 204, env.do("POST", "/browser/load-end").Code)
	require.NoError(t, json.Unmarshal(env.do("GET", "/browser").Body.Bytes(), &v))
	assert.False(t, v.IsLoading)

	require.Len(t, env.sched.calls, 1)
	assert.Equal(t, 2*time.Second, env.sched.calls[0].delay)
}

func TestBrowser_NotificationButtons(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, 204, env.do("POST", "/browser/notifications/welcome").Code)
	require.Equal(t, 204, env.do("POST", "/browser/notifications/reminder").Code)

	require.Len(t, env.sched.calls, 2)
	assert.Equal(t, 3*time.Second, env.sched.calls[0].delay)
	assert.Equal(t, 5*time.Second, env.sched.calls[1].delay)

	alerts := env.hub.RecentAlerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "Notification Scheduled", alerts[0].Title)
}

func TestVideo_UnknownAction(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do("POST", "/video/rewind-a-lot")
	assert.Equal(t, 404, rr.Code)
	assert.NotEmpty(t, strings.TrimSpace(rr.Body.String()))
}

func TestVideo_EngineFailureIsSilent(t *testing.T) {
	env := newTestEnv(t)
	// nothing is loaded, so the engine rejects the command
	rr := env.do("POST", "/video/toggle-playback")
	assert.Equal(t, 204, rr.Code)
	assert.False(t, env.engine.Status().IsPlaying)
}

func TestVideo_ActionsReachEngine(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.ctrl.Mount(context.Background()))
	env.ctrl.HandleStatus(env.engine.Status())

	require.Equal(t, 204, env.do("POST", "/video/toggle-playback").Code)
	assert.True(t, env.engine.Status().IsPlaying)

	require.Equal(t, 204, env.do("POST", "/video/toggle-mute").Code)
	assert.True(t, env.engine.Status().IsMuted)

	require.Equal(t, 204, env.do("POST", "/video/switch-stream").Code)
	var v video.View
	require.NoError(t, json.Unmarshal(env.do("GET", "/video").Body.Bytes(), &v))
	assert.Equal(t, "Sintel Trailer", v.Title)
	assert.Equal(t, "Switch Stream (2/3)", v.StreamLabel)
	assert.Equal(t, "Unmute", v.MuteLabel)
	assert.Equal(t, video.Streams[1].URI, env.engine.Status().URI)
}

func TestEvents_StreamsAlerts(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.mux)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/events", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return env.hub.Subscribers() == 1 }, 2*time.Second, 5*time.Millisecond)
	env.hub.Alert(model.Alert{Title: "Stream Changed", Message: "Now playing: Tears of Steel"})

	var e events.Event
	require.NoError(t, wsjson.Read(ctx, conn, &e))
	assert.Equal(t, events.KindAlert, e.Kind)
	require.NotNil(t, e.Alert)
	assert.Equal(t, "Now playing: Tears of Steel", e.Alert.Message)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return env.hub.Subscribers() == 0 }, 2*time.Second, 5*time.Millisecond)
}
