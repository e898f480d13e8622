// Package server provides the structured-data preview server: it renders
// the schema.org graph for any location page or the locations archive over
// HTTP, so the output can be inspected and validated without a full site
// render.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
	"github.com/placewise/localgraph/schema"
)

// MIMEApplicationLDJSON is the JSON-LD content type.
const MIMEApplicationLDJSON = "application/ld+json"

// Config configures the preview server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Logger for request and lifecycle logging.
	Logger *slog.Logger
}

// Server serves assembled graphs over HTTP.
type Server struct {
	e         *echo.Echo
	addr      string
	opts      *config.Options
	store     *location.FileStore
	assembler *schema.Assembler
	hours     *schema.HoursCalculator
	logger    *slog.Logger
}

// New creates the preview server with its own metrics registry.
func New(cfg Config, opts *config.Options, store *location.FileStore) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := schema.NewMetrics(registry)

	s := &Server{
		e:     echo.New(),
		addr:  cfg.Addr,
		opts:  opts,
		store: store,
		assembler: schema.NewAssembler(opts, store,
			schema.WithLogger(logger),
			schema.WithMetrics(metrics)),
		hours:  schema.NewHoursCalculator(opts),
		logger: logger,
	}

	s.e.HideBanner = true
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("Request",
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))

	s.e.GET("/healthz", s.handleHealth)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	s.e.GET("/locations", s.handleLocations)
	s.e.GET("/schema/location/:id", s.handleLocationSchema)
	s.e.GET("/schema/archive", s.handleArchiveSchema)

	return s
}

// Handler exposes the HTTP handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("Preview server started", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.e.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// locationSummary is the /locations response item.
type locationSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Permalink string   `json:"permalink"`
	Hours     []string `json:"hours,omitempty"`
}

func (s *Server) handleLocations(c echo.Context) error {
	recs, err := s.store.Get(c.Request().Context(), location.Filter{Status: location.StatusPublished})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]locationSummary, 0, len(recs))
	for i := range recs {
		rec := recs[i]
		var labels []string
		for _, entry := range s.hours.ForLocation(&rec) {
			labels = append(labels, s.hours.FormatLabel(entry))
		}
		out = append(out, locationSummary{
			ID:        rec.ID,
			Name:      rec.Name,
			Permalink: rec.Permalink,
			Hours:     labels,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleLocationSchema(c echo.Context) error {
	ctx := c.Request().Context()

	rec, err := s.store.ByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rec == nil || !rec.Published() {
		return echo.NewHTTPError(http.StatusNotFound, "no such location")
	}

	rctx := schema.LocationPageContext(s.opts.Site.URL, rec,
		schema.ParseRepresentation(s.opts.Site.Represents))

	g, err := s.assembler.Assemble(ctx, rctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data, err := g.JSON()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, MIMEApplicationLDJSON, data)
}

func (s *Server) handleArchiveSchema(c echo.Context) error {
	ctx := c.Request().Context()

	rctx := schema.ArchivePageContext(s.opts.Site.URL,
		schema.ParseRepresentation(s.opts.Site.Represents))

	g, err := s.assembler.Assemble(ctx, rctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data, err := g.JSON()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, MIMEApplicationLDJSON, data)
}
