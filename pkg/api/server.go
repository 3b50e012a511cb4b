// Package api exposes the HTTP and WebSocket surface: the chat turn
// endpoint, the confirmation endpoint, admin catalog CRUD, health, and
// the live trace stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/pkg/agent/orchestrator"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/config"
	"github.com/arogya-labs/aushadhi/pkg/confirm"
	"github.com/arogya-labs/aushadhi/pkg/database"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// Server is the HTTP server and its collaborators.
type Server struct {
	cfg *config.Config

	db            *database.Client
	store         *store.Store
	turner        *orchestrator.Turner
	orch          *orchestrator.Orchestrator
	confirmations *confirm.Store
	traces        *trace.Manager
	fusions       *fusion.Registry
	events        *bus.Bus

	idempotency *idempotencyCache

	echo *echo.Echo
	http *http.Server
}

// Deps carries the server's collaborators.
type Deps struct {
	Config        *config.Config
	DB            *database.Client
	Store         *store.Store
	Turner        *orchestrator.Turner
	Orchestrator  *orchestrator.Orchestrator
	Confirmations *confirm.Store
	Traces        *trace.Manager
	Fusions       *fusion.Registry
	Events        *bus.Bus
}

// NewServer builds the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:           deps.Config,
		db:            deps.DB,
		store:         deps.Store,
		turner:        deps.Turner,
		orch:          deps.Orchestrator,
		confirmations: deps.Confirmations,
		traces:        deps.Traces,
		fusions:       deps.Fusions,
		events:        deps.Events,
		idempotency:   newIdempotencyCache(deps.Config.Pipeline.IdempotencyTTL.Std(60 * time.Second)),
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	e.GET("/health", s.healthHandler)
	e.GET("/version", s.versionHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/chat", s.chatHandler)
	v1.POST("/sessions/:id/confirm", s.confirmHandler)
	v1.GET("/sessions/:id/timeline", s.timelineHandler)
	v1.GET("/events/:kind", s.eventHistoryHandler)

	admin := v1.Group("/admin")
	admin.GET("/medicines", s.listMedicinesHandler)
	admin.POST("/medicines", s.createMedicineHandler)
	admin.PUT("/medicines/:name", s.updateMedicineHandler)
	admin.DELETE("/medicines/:name", s.deleteMedicineHandler)

	e.GET("/ws/trace/:session_id", s.wsHandler)

	s.echo = e
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			status := 0
			if res, resErr := echo.UnwrapResponse(c.Response()); resErr == nil {
				status = res.Status
			}
			slog.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}
