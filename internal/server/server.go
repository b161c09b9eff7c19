// Package server exposes parsing and conversion over HTTP.
package server

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

type Server struct {
	catalog  *typemap.Catalog
	defaults engine.Options
	metrics  *Metrics
	gatherer prometheus.Gatherer
	logger   *log.Logger
}

// New builds a server over the catalog. defaults fill the fields a convert
// request leaves empty. A nil registry selects a private one.
func New(cat *typemap.Catalog, defaults engine.Options, reg *prometheus.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		catalog:  cat,
		defaults: defaults,
		metrics:  NewMetrics(reg),
		gatherer: reg,
		logger:   logger,
	}
}

// Router wires the routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.metrics.Middleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	api.POST("/parse", s.Parse)
	api.POST("/convert", s.Convert)
	api.GET("/typemap", s.TypeMap)

	return router
}

// HTTPServer returns an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
