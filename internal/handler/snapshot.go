package handler

import (
	"io"
	"net/http"

	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/snapshot"
)

// HandleExportSnapshot returns a handler that serves the full planner state
// as a downloadable JSON document.
//
// @Summary Export planner snapshot
// @Tags snapshot
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/snapshot [get]
func HandleExportSnapshot(service snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		data, err := service.Export(r.Context())
		if err != nil {
			log.Error("Snapshot export failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="planner-snapshot.json"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Error("Failed to write snapshot response", "error", err)
		}
	}
}

// HandleImportSnapshot returns a handler that replaces the planner state with
// an uploaded snapshot. The payload is validated as a whole; a malformed
// snapshot is rejected without touching existing state. maxBytes bounds the
// accepted body size.
//
// @Summary Import planner snapshot
// @Tags snapshot
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/snapshot [post]
func HandleImportSnapshot(service snapshot.Service, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
		if err != nil {
			log.Warn("Failed to read snapshot body", "error", err)
			respondError(w, http.StatusRequestEntityTooLarge, "Snapshot too large")
			return
		}

		if err := service.Import(r.Context(), data); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Snapshot imported"})
	}
}
