package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const healthPingTimeout = 3 * time.Second

// HealthHandler reports process liveness and database connectivity.
type HealthHandler struct {
	db    *mongo.Database
	start time.Time
}

func NewHealthHandler(db *mongo.Database) *HealthHandler {
	return &HealthHandler{db: db, start: time.Now()}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Database  string    `json:"database"`
	Message   string    `json:"message,omitempty"`
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Router /api/health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.start).Seconds(),
		Database:  "connected",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database connection failed"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}
