package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudfit/interviewd/internal/metrics"
	"github.com/cloudfit/interviewd/pkg/errors"
	"github.com/cloudfit/interviewd/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

func NewServer(
	cfg Config,
	log logger.Logger,
	core scheduler,
	collector *metrics.Collector,
	promReg *prometheus.Registry,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		StreamRequestBody:       true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		reqID, _ := c.Locals(requestIDHeader).(string)
		serveLog.Warnf("request %s %s failed: %s (request_id=%s)", c.Method(), c.Path(), err, reqID)
		return sendError(c, http.StatusInternalServerError, "internal error")
	}

	s := &server{
		core:           core,
		http:           fiber.New(fiberCfg),
		addr:           cfg.HTTP.Addr,
		log:            serveLog,
		metrics:        collector,
		metricsHandler: metrics.Handler(promReg),
	}

	s.setupRoutes()

	return s
}

type server struct {
	core           scheduler
	http           *fiber.App
	addr           string
	log            logger.Logger
	metrics        *metrics.Collector
	metricsHandler http.Handler
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
	})
	s.http.Get("/metrics", adaptor.HTTPHandler(s.metricsHandler))

	api := s.http.Group("/api/v1", s.observe)

	api.Post("/users", s.handleCreateUser)
	api.Get("/users", s.handleUsersByRole)
	api.Get("/users/:id", s.handleGetUser)
	api.Post("/users/:id/availability", s.handleAddAvailability)
	api.Get("/users/:id/interviews", s.handleUserInterviews)
	api.Get("/users/:id/history", s.handleUserHistory)

	api.Post("/interviews", s.handleBookInterview)
	api.Get("/interviews", s.handleListInterviews)
	api.Get("/interviews/:id", s.handleGetInterview)
	api.Delete("/interviews/:id", s.handleCancelInterview)
	api.Post("/interviews/:id/complete", s.handleCompleteInterview)
	api.Post("/interviews/:id/reschedule", s.handleRescheduleInterview)
	api.Patch("/interviews/:id/notes", s.handleUpdateNotes)

	api.Get("/stats", s.handleStats)
}

// observe tags every request with an id and feeds the http metrics.
func (s *server) observe(c *fiber.Ctx) error {
	reqID := c.Get(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Locals(requestIDHeader, reqID)
	c.Set(requestIDHeader, reqID)

	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = http.StatusInternalServerError
	}

	route := c.Route().Path
	code := strconv.Itoa(status)
	s.metrics.RequestsTotal.WithLabelValues(c.Method(), route, code).Inc()
	s.metrics.RequestDuration.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())

	s.log.Debugf("%s %s -> %d (request_id=%s)", c.Method(), c.Path(), status, reqID)
	return err
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}
