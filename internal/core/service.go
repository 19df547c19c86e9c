package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/bgeun31/nettools/internal/archive"
	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/lldp"
	"github.com/bgeun31/nettools/internal/logging"
	"github.com/bgeun31/nettools/internal/tracing"
)

// JobTimeout bounds a single conversion job.
var JobTimeout = 2 * time.Minute

// DefaultMaxDocuments caps documents per job after archive expansion.
const DefaultMaxDocuments = 2000

// DefaultOUIStripPrefix is removed from names in OUI mode when the caller
// does not choose a prefix.
const DefaultOUIStripPrefix = "PUSTC_"

// ServiceConfig holds the tunables of a Service. Zero values select defaults.
type ServiceConfig struct {
	// Patterns drives field extraction. Nil uses the built-in set.
	Patterns *extract.PatternSet

	// Noise filters LLDP neighbor names. Nil uses the default blacklist
	// with the calendar filter on.
	Noise *lldp.NoiseFilter

	Workers       int
	NotFound      string
	MaxConcurrent int
	MaxWait       time.Duration
	MaxDocuments  int
}

// Service runs the conversion tools. It holds no per-request state, so one
// Service serves every request.
type Service struct {
	cfg     ServiceConfig
	limiter *JobLimiter
}

// NewService returns a Service with cfg's zero fields defaulted.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Patterns == nil {
		cfg.Patterns = extract.MustDefault()
	}
	if cfg.Noise == nil {
		noise := lldp.DefaultNoiseFilter()
		cfg.Noise = &noise
	}
	if cfg.Workers <= 0 {
		cfg.Workers = lldp.DefaultWorkers
	}
	if cfg.NotFound == "" {
		cfg.NotFound = extract.NotFound
	}
	if cfg.MaxDocuments <= 0 {
		cfg.MaxDocuments = DefaultMaxDocuments
	}

	return &Service{
		cfg:     cfg,
		limiter: NewJobLimiter(cfg.MaxConcurrent, cfg.MaxWait),
	}
}

// Limiter exposes the job limiter for health reporting and shutdown.
func (s *Service) Limiter() *JobLimiter {
	return s.limiter
}

// File is one uploaded blob.
type File struct {
	Name string
	Data []byte
}

// run executes fn as one job: it takes a limiter slot, assigns a job id
// (unless ctx already has one), opens a span and logs the outcome.
func (s *Service) run(ctx context.Context, op string, fn func(ctx context.Context, log *slog.Logger) error) error {
	jobID := logging.JobID(ctx)
	if jobID == "" {
		jobID = uuid.NewString()
		ctx = logging.ContextWithJobID(ctx, jobID)
	}
	log := logging.WithFields(ctx, "op", op)

	if err := s.limiter.Acquire(ctx); err != nil {
		log.Warn("job rejected", "error", err, "active", s.limiter.ActiveCount())
		return fmt.Errorf("%s: %w", op, err)
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, JobTimeout)
	defer cancel()

	ctx, span := tracing.Tracer().Start(ctx, "core."+op,
		trace.WithAttributes(attribute.String("job.id", jobID)))
	defer span.End()

	start := time.Now()
	if err := fn(ctx, log); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("job failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("job completed", "duration", time.Since(start))
	return nil
}

// documents expands archives and decodes every text file. Order follows
// the upload order, with archive entries in place of their archive.
// Unreadable archives and entries are skipped with a warning.
func (s *Service) documents(ctx context.Context, log *slog.Logger, files []File) ([]extract.Document, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	var raw []File
	for _, f := range files {
		if !archive.IsArchive(f.Name) {
			raw = append(raw, f)
			continue
		}
		entries, skipped, err := archive.Expand(f.Data)
		if err != nil {
			log.Warn("skipping unreadable archive", "file", f.Name, "error", err)
			continue
		}
		for _, name := range skipped {
			log.Warn("skipping unreadable archive entry", "file", f.Name, "entry", name)
		}
		for _, e := range entries {
			raw = append(raw, File{Name: e.Name, Data: e.Data})
		}
	}
	if len(raw) > s.cfg.MaxDocuments {
		return nil, fmt.Errorf("%w: %d documents, limit %d", ErrTooManyFiles, len(raw), s.cfg.MaxDocuments)
	}

	docs := make([]extract.Document, len(raw))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, f := range raw {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[i] = extract.Document{Name: f.Name, Text: DecodeText(f.Data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("documents decoded", "uploaded", len(files), "documents", len(docs))
	return docs, nil
}
