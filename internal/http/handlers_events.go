package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

const (
	sseHeartbeatInterval = 25 * time.Second
	sseEventName         = "session"
)

// SessionOpener resolves a browser session id without requiring a signed-in operator.
type SessionOpener interface {
	Open(ctx context.Context, sid string) (*session.Store, error)
}

// SessionEventHandlers streams session state changes so open pages can leave for the
// login page the moment the session ends, whichever request ended it.
type SessionEventHandlers struct {
	Sessions  SessionOpener
	Cookie    SessionCookie
	Heartbeat time.Duration
	Logger    *slog.Logger
}

func (h *SessionEventHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// sessionEvent is the data of every "session" event.
type sessionEvent struct {
	Reason        session.Reason `json:"reason"`
	Authenticated bool           `json:"authenticated"`
	Loading       bool           `json:"loading"`
}

// Stream serves GET /session/events as server-sent events. The first event describes the
// current state; later ones follow every change until the client disconnects or the
// session is no longer signed in.
func (h *SessionEventHandlers) Stream(w http.ResponseWriter, r *http.Request) {
	st, err := h.Sessions.Open(r.Context(), h.Cookie.Read(r))
	if err != nil {
		h.logger().WarnContext(r.Context(), "session events unavailable", "error", err)
		http.Error(w, "session storage unavailable", http.StatusServiceUnavailable)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}
	// The stream outlives the server's write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Listeners run on the goroutine that changed the state; never block it.
	events := make(chan session.Event, 8)
	unsubscribe := st.Subscribe(func(ev session.Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	if err := st.Wait(r.Context()); err != nil {
		return
	}
	initial := session.Event{Reason: session.ReasonReady, State: st.State()}
	if !initial.State.Authenticated() {
		initial.Reason = session.ReasonExpired
	}
	if err := sendSSEEvent(w, flusher, sseEventName, toSessionEvent(initial)); err != nil || initial.Reason == session.ReasonExpired {
		return
	}

	interval := h.Heartbeat
	if interval <= 0 {
		interval = sseHeartbeatInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			if err := sendSSEEvent(w, flusher, sseEventName, toSessionEvent(ev)); err != nil {
				h.logger().DebugContext(r.Context(), "sse client disconnected", "error", err)
				return
			}
			if ev.Reason == session.ReasonLogout || ev.Reason == session.ReasonExpired {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func toSessionEvent(ev session.Event) sessionEvent {
	return sessionEvent{
		Reason:        ev.Reason,
		Authenticated: ev.State.Authenticated(),
		Loading:       ev.State.Loading,
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
