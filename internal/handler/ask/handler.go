package ask

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ironcoach/ironcoach/pkg/logger"
	"github.com/ironcoach/ironcoach/pkg/utils"
)

// Answerer produces the coach's reply for one question. Implemented by the
// AI service; faked in tests.
type Answerer interface {
	Answer(ctx context.Context, conversationID, question string) (string, error)
}

// Handler serves the ask endpoint.
type Handler struct {
	coach Answerer
}

// New creates the ask handler.
func New(coach Answerer) *Handler {
	return &Handler{coach: coach}
}

// RegisterRoutes mounts the ask route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ask", h.handleAsk)
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Question       string `json:"question"`
		ConversationID string `json:"conversation_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Question) == "" {
		utils.RespondError(w, http.StatusBadRequest, "no question provided")
		return
	}

	answer, err := h.coach.Answer(r.Context(), payload.ConversationID, payload.Question)
	if err != nil {
		logger.With("component", "ask").WithError(err).Error("answer generation failed")
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
