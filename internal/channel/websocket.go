package channel

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"covid-triage-bot/internal/triage"
	"covid-triage-bot/internal/webhook"
)

// wsMessage is the envelope for everything sent to the web client.
type wsMessage struct {
	Type            string                `json:"type"`
	Text            string                `json:"text,omitempty"`
	SessionID       string                `json:"session_id,omitempty"`
	FollowUpEvent   string                `json:"followup_event,omitempty"`
	VisualCards     []triage.RenderedCard `json:"visual_cards,omitempty"`
	SpokenUtterance string                `json:"spoken_utterance,omitempty"`
}

// WSHandler is the web chat channel: each connection is one conversation
// session, and every inbound event goes through the same dispatcher as the
// webhook.
type WSHandler struct {
	dispatcher     *webhook.Dispatcher
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

func NewWSHandler(dispatcher *webhook.Dispatcher, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &WSHandler{dispatcher: dispatcher, allowedOrigins: origins}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := conn.WriteJSON(wsMessage{Type: "connected", SessionID: sessionID}); err != nil {
		log.Printf("Failed to send connected message: %v", err)
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket closed unexpectedly: %v", err)
			}
			return
		}

		var req webhook.Request
		if err := json.Unmarshal(message, &req); err != nil {
			conn.WriteJSON(wsMessage{
				Type: "error",
				Text: "Invalid message format. Send JSON with an 'intent' field.",
			})
			continue
		}
		// The connection owns the session; clients cannot hop sessions.
		req.SessionID = sessionID

		resp, err := h.dispatcher.Dispatch(r.Context(), req)
		if err != nil {
			log.Printf("session %s: dispatch failed: %v", sessionID, err)
			text := "Something went wrong, please start over."
			if errors.Is(err, triage.ErrPrecondition) {
				text = "I wasn't expecting that answer right now. Say 'start screening' to begin."
			}
			conn.WriteJSON(wsMessage{Type: "error", Text: text})
			continue
		}

		out := wsMessage{
			Type:            "message",
			SessionID:       sessionID,
			Text:            resp.Text,
			FollowUpEvent:   resp.FollowUpEvent,
			VisualCards:     resp.VisualCards,
			SpokenUtterance: resp.SpokenUtterance,
		}
		if err := conn.WriteJSON(out); err != nil {
			log.Printf("Failed to write to WebSocket: %v", err)
			return
		}
	}
}
