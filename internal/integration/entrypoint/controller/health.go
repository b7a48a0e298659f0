// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController reports the availability of the service and its backing
// stores. The ledger cannot serve without the database; a dead cache only
// slows reports down.
type HealthController struct {
	databaseCheck HealthChecker
	cacheCheck    HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(databaseCheck, cacheCheck HealthChecker) *HealthController {
	return &HealthController{
		databaseCheck: databaseCheck,
		cacheCheck:    cacheCheck,
	}
}

// Check handles GET /health requests. A degraded cache keeps the service up;
// an unreachable database takes it down.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  statusOf(h.databaseCheck),
		Cache:     statusOf(h.cacheCheck),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	if response.Database != "connected" {
		response.Status = "unavailable"
		code = http.StatusServiceUnavailable
	} else if response.Cache != "connected" {
		response.Status = "degraded"
	}

	c.JSON(code, response)
}

func statusOf(check HealthChecker) string {
	if check != nil && check() {
		return "connected"
	}
	return "disconnected"
}
