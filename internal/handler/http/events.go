package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/staffgate/attendance-gate-go/internal/handler/http/response"
	"github.com/staffgate/attendance-gate-go/internal/pkg/jwt"
	"github.com/staffgate/attendance-gate-go/internal/pkg/sse"
)

type EventsHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
}

func NewEventsHandler(jwtService jwt.Service, hub *sse.Hub) EventsHandler {
	return &eventsHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
	}
}

// Token implements EventsHandler. EventSource cannot set an Authorization
// header, so the stream is opened with a short-lived token passed as a
// query parameter instead.
func (h *eventsHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	staffID, err := staffIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream implements EventsHandler.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "Missing stream token")
		return
	}

	staffID, err := h.jwtService.ValidateSSEToken(token)
	if err != nil {
		response.Unauthorized(w, "Invalid stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(staffID)
	defer cleanup()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case now := <-ticker.C:
			writeEvent(w, sse.EventClockTick, map[string]interface{}{
				"time": now.Format("15:04:05"),
				"date": now.Format("2006-01-02"),
			})
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
}
