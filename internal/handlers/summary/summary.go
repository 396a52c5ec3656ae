package summaryhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	serviceerrors "cafepos/internal/service"
	summaryservice "cafepos/internal/service/summary"
	"cafepos/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type SummaryService interface {
	Today(ctx context.Context) (summaryservice.Summary, error)
}

type Handler struct {
	log     *slog.Logger
	service SummaryService
}

func New(log *slog.Logger, service SummaryService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /summary
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.summary.Today"
	log := h.log.With("op", op)

	summary, err := h.service.Today(r.Context())
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(err))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(err))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		}
		log.Error("Failed to build summary", sl.Err(err))
		http.Error(w, "Failed to build summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Error("Failed to respond to user", sl.Err(err))
	}
}
