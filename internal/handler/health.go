package handler

import (
	"net/http"

	"github.com/craftdex/companion/internal/catalog"
)

// HealthResponse reports service liveness and catalog readiness.
type HealthResponse struct {
	Status  string `json:"status"`
	Items   int    `json:"items"`
	Recipes int    `json:"recipes"`
}

// HandleHealthz returns a handler that reports service health. The service is
// ready once the catalog is loaded; an empty catalog is reported as degraded
// since every dashboard view depends on it.
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:  "ok",
			Items:   c.ItemCount(),
			Recipes: c.RecipeCount(),
		}

		status := http.StatusOK
		if resp.Items == 0 {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}

		respondJSON(w, status, resp)
	}
}
