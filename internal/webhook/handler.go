package webhook

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"covid-triage-bot/internal/report"
	"covid-triage-bot/internal/triage"
)

type Handler struct {
	dispatcher *Dispatcher
	reportSvc  *report.Service
}

func NewHandler(dispatcher *Dispatcher, reportSvc *report.Service) *Handler {
	return &Handler{dispatcher: dispatcher, reportSvc: reportSvc}
}

// HandleEvent serves one conversational turn.
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	resp, err := h.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		writeDispatchError(w, req, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

type carePlanRequest struct {
	Cards []triage.RenderedCard `json:"cards"`
}

// HandleCarePlanPDF renders a composed card list to a printable PDF.
func (h *Handler) HandleCarePlanPDF(w http.ResponseWriter, r *http.Request) {
	var req carePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(req.Cards) == 0 {
		http.Error(w, "No cards to render", http.StatusBadRequest)
		return
	}

	pdfData, err := h.reportSvc.BuildCarePlan(req.Cards)
	if err != nil {
		log.Printf("care plan PDF failed: %v", err)
		http.Error(w, "Failed to generate care plan", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdfData)
}

// writeDispatchError maps the error taxonomy to HTTP: caller misuse is a bad
// request, table or state corruption is a generic server failure.
func writeDispatchError(w http.ResponseWriter, req Request, err error) {
	switch {
	case errors.Is(err, triage.ErrPrecondition):
		log.Printf("session %s: rejected %q event: %v", req.SessionID, req.Intent, err)
		http.Error(w, "Request cannot be handled in the current conversation state", http.StatusBadRequest)
	case errors.Is(err, triage.ErrConfig):
		log.Printf("session %s: configuration error on %q event: %v", req.SessionID, req.Intent, err)
		http.Error(w, "Something went wrong, please start over", http.StatusInternalServerError)
	default:
		log.Printf("session %s: %q event failed: %v", req.SessionID, req.Intent, err)
		http.Error(w, "Something went wrong, please start over", http.StatusInternalServerError)
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/webhook", h.HandleEvent)
	r.Post("/care-plan/pdf", h.HandleCarePlanPDF)
}
