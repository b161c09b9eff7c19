package server

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/IDNLab/ddl-parser/internal/ddl"
	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

type ParseRequest struct {
	DDL string `json:"ddl" binding:"required"`
}

type ConvertRequest struct {
	DDL          string `json:"ddl" binding:"required"`
	SourceSystem string `json:"source_system"`
	Target       string `json:"target"`
	Layer        string `json:"layer"`
}

// Parse returns the column metadata of one statement.
func (s *Server) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body: ddl is required")
		return
	}

	tbl := ddl.Parse(req.DDL)
	if len(tbl.Columns) == 0 {
		s.metrics.RecordStatement("empty")
		fail(c, http.StatusUnprocessableEntity, typemap.ErrEmptyInput, "No column definitions found")
		return
	}
	s.metrics.RecordStatement("ok")

	success(c, http.StatusOK, gin.H{
		"fully_qualified_table": tbl.Name(),
		"identity":              tbl.Identity,
		"columns":               tbl.Columns,
		"primary_key":           tbl.PrimaryKey,
		"foreign_keys":          tbl.ForeignKeys,
		"count":                 len(tbl.Columns),
	}, "Statement parsed successfully")
}

// Convert runs the full pipeline over one statement.
func (s *Server) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body: ddl is required")
		return
	}

	opts := s.defaults
	opts.Render = true
	if req.SourceSystem != "" {
		opts.SourceSystem = req.SourceSystem
	}
	if req.Target != "" {
		opts.Target = req.Target
	}
	if req.Layer != "" {
		opts.Layer = req.Layer
	}

	p, err := engine.New(s.catalog, opts, s.logger)
	if err != nil {
		fail(c, statusFor(err), err, "Invalid conversion options")
		return
	}

	res, err := p.Run("request", req.DDL)
	if err != nil {
		if errors.Is(err, typemap.ErrEmptyInput) {
			s.metrics.RecordStatement("empty")
		} else {
			s.metrics.RecordStatement("error")
		}
		fail(c, statusFor(err), err, "Conversion failed")
		return
	}
	s.metrics.RecordResult(res)

	success(c, http.StatusOK, res, fmt.Sprintf("Converted %d columns", res.Count))
}

// TypeMap returns the catalog, or the reverse map of ?source_system=.
func (s *Server) TypeMap(c *gin.Context) {
	source := c.Query("source_system")
	if source == "" {
		success(c, http.StatusOK, gin.H{
			"types":   s.catalog.Types,
			"targets": s.catalog.Targets,
		}, "")
		return
	}

	known := s.catalog.Types.SourceSystems()
	if !slices.Contains(known, source) {
		err := &typemap.ConfigError{Field: "source_system", Value: source, Allowed: known}
		fail(c, statusFor(err), err, "Unknown source system")
		return
	}
	success(c, http.StatusOK, typemap.BuildReverseMap(s.catalog.Types, source), "")
}
