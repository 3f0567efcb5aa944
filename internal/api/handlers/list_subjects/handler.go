package list_subjects

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

const (
	msgInvalidKind = "неизвестный вид бронирования"
)

type Handler struct {
	catalog CatalogServiceClient
	logger  Logger
}

func NewHandler(catalog CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.logger.Warn("GET /catalog/{kind} - Invalid kind: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	subjects, err := h.catalog.ListSubjects(r.Context(), kind)
	if err != nil {
		h.logger.Error("GET /catalog/{kind} - Failed to list subjects: kind=%s, error=%v", kind, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog/{kind} - Listed %d subjects: kind=%s", len(subjects), kind)
	handlers.RespondJSON(w, http.StatusOK, FromSubjects(subjects))
}
