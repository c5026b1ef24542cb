package handler

import (
	"net/http"
	"runtime"
)

// Version is set at build time via -ldflags
var Version = "dev"

// VersionResponse describes the running build.
type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// HandleVersion returns the build version of the running service.
//
// @Summary Build version
// @Tags system
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{
			Version:   Version,
			GoVersion: runtime.Version(),
		})
	}
}
