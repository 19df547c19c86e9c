package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/logging"
	mw "github.com/bgeun31/nettools/internal/web/middleware"
	"github.com/google/uuid"
)

// maxFormMemory is how much of a multipart body is held in memory before
// parts spill to temporary files.
const maxFormMemory = 32 << 20

// parseForm bounds the request body and parses the multipart form.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxRequestSize)
	err := r.ParseMultipartForm(maxFormMemory)
	if err == nil {
		return nil
	}
	// mime/multipart does not always wrap the body error.
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) && strings.Contains(err.Error(), "request body too large") {
		err = &http.MaxBytesError{Limit: s.cfg.Upload.MaxRequestSize}
	}
	return fmt.Errorf("parse form: %w", err)
}

// formFiles reads every file uploaded under field. An empty result is left
// to the service, which reports it as core.ErrNoFiles.
func (s *Server) formFiles(r *http.Request, field string) ([]core.File, error) {
	headers := r.MultipartForm.File[field]
	if len(headers) > s.cfg.Upload.MaxFiles {
		return nil, fmt.Errorf("%d files in %q (max %d): %w",
			len(headers), field, s.cfg.Upload.MaxFiles, core.ErrTooManyFiles)
	}

	files := make([]core.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, core.File{Name: fh.Filename, Data: data})
	}
	return files, nil
}

// formFile reads the single file uploaded under field.
func (s *Server) formFile(r *http.Request, field string) (core.File, error) {
	files, err := s.formFiles(r, field)
	if err != nil {
		return core.File{}, err
	}
	if len(files) == 0 {
		return core.File{}, fmt.Errorf("%s: %w", field, core.ErrNoFiles)
	}
	return files[0], nil
}

// formValue returns the field's value and whether it was sent at all.
func formValue(r *http.Request, field string) (string, bool) {
	vs, ok := r.MultipartForm.Value[field]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// formBool parses a checkbox-style field, falling back to def when it is
// absent or unparseable.
func formBool(r *http.Request, field string, def bool) bool {
	v, ok := formValue(r, field)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true
	case "off", "no":
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// withJob assigns the job id that the service logs under and returns it to
// the client in X-Job-ID.
func withJob(w http.ResponseWriter, r *http.Request) context.Context {
	id := uuid.NewString()
	w.Header().Set(mw.JobIDHeader, id)
	return logging.ContextWithJobID(r.Context(), id)
}

// preview writes items as JSON, or as a table fragment for HTMX.
func preview(w http.ResponseWriter, r *http.Request, items any, table templ.Component) {
	if !isHTMX(r) {
		writeJSON(w, items)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := table.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render preview failed", "error", err)
	}
}

// sendOutput writes a generated file. Downloads are attachments; inline is
// used for the HTML report.
func sendOutput(w http.ResponseWriter, r *http.Request, out *core.Output, disposition string) {
	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": out.Name}))
	if _, err := w.Write(out.Data); err != nil {
		logging.FromContext(r.Context()).Warn("write download failed", "file", out.Name, "error", err)
	}
}
