package server

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/presets"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// maxBodyBytes bounds a generate or preview request document.
const maxBodyBytes = 1 << 20

var errTooManyRows = errors.New("requested row count exceeds the server limit")

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":  "ok",
		"version": s.opts.Version,
	})
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	all := presets.All()
	infos := make([]PresetInfo, 0, len(all))
	for _, p := range all {
		infos = append(infos, PresetInfo{
			Name:        p.Name,
			Title:       p.Title,
			Description: p.Description,
			Table:       p.Table,
			Fields:      len(p.Fields()),
		})
	}
	render.JSON(w, r, Response{Success: true, Data: infos})
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := presets.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, http.StatusNotFound, "unknown_preset", err)
		return
	}

	rows := s.opts.Defaults.Rows
	if q := r.URL.Query().Get("rows"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			s.fail(w, r, http.StatusBadRequest, "invalid_rows", fmt.Errorf("invalid rows %q", q))
			return
		}
		rows = n
	}
	render.JSON(w, r, Response{Success: true, Data: schema.FromConfig(p.Config(rows))})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{Success: true, Data: PatternList{Patterns: generator.PatternTemplates}})
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{Success: true, Data: map[string]any{
		"types":   types.SemanticTypes,
		"formats": types.Formats,
	}})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, false)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, true)
}

// generate streams the serialized table straight into the response. Every
// check that can reject the request runs before the first byte is written.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, preview bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req GenerateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, http.StatusRequestEntityTooLarge, "body_too_large",
				fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.fail(w, r, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body: %w", err))
		return
	}

	cfg, err := req.Document.Config(s.opts.Defaults)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_schema", err)
		return
	}
	if preview {
		cfg.Rows = min(cfg.Rows, generator.PreviewRows)
	}
	if cfg.Rows > s.opts.MaxRows {
		s.fail(w, r, http.StatusRequestEntityTooLarge, "too_many_rows",
			fmt.Errorf("%w: %d > %d", errTooManyRows, cfg.Rows, s.opts.MaxRows))
		return
	}

	dialect, err := export.ParseDialect(req.Dialect)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_dialect", err)
		return
	}

	buf := bufio.NewWriterSize(w, 64*1024)
	rw, err := export.NewWriter(cfg.Format, buf, cfg.Fields, export.Options{
		TableName: cfg.TableName,
		Dialect:   dialect,
		BatchSize: req.BatchSize,
	})
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_format", err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(cfg.Format))
	w.Header().Set("X-Row-Count", strconv.Itoa(cfg.Rows))
	if !preview {
		name := export.FileName(cfg.TableName, cfg.Format)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	gen := generator.ForConfig(cfg, generator.WithLogger(s.log))
	err = rw.Begin()
	if err == nil {
		err = gen.Stream(r.Context(), cfg, func(_ int, row types.Row) error {
			return rw.WriteRow(row)
		})
	}
	if err == nil {
		err = rw.End()
	}
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		// Part of the body may already be on the wire.
		s.metrics.failures.WithLabelValues("stream").Inc()
		s.log.Warn("generation aborted", "table", cfg.TableName, "error", err)
		return
	}

	s.metrics.rows.WithLabelValues(string(cfg.Format)).Add(float64(cfg.Rows))
}
