package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"keyaudit/core/issue"
	"keyaudit/core/logger"
	"keyaudit/core/reconcile"
	"keyaudit/core/settings"
	"keyaudit/core/storage"
	"keyaudit/feature/source"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorPrefix starts every issue line of the console output.
const ErrorPrefix = "---------- [E] "

// Service runs one audit: documentation scan, source scan, reconciliation.
type Service struct {
	settings  *settings.Settings
	logger    *zap.Logger
	catalogue *source.Catalogue
	runID     string

	client storage.Client
	bucket string
	prefix string

	issues   io.Writer
	errColor *color.Color
}

// Option configures a Service.
type Option func(*Service)

// WithCatalogue replaces the default source pattern catalogue.
func WithCatalogue(cat *source.Catalogue) Option {
	return func(s *Service) {
		s.catalogue = cat
	}
}

// WithBucket adds documentation stored under prefix in bucket.
func WithBucket(client storage.Client, bucket, prefix string) Option {
	return func(s *Service) {
		s.client = client
		s.bucket = bucket
		s.prefix = prefix
	}
}

// WithIssueWriter sets where issue lines are printed. Defaults to stdout.
func WithIssueWriter(w io.Writer) Option {
	return func(s *Service) {
		s.issues = w
	}
}

// NewService creates a new audit service for the given settings.
func NewService(set *settings.Settings, l *zap.Logger, opts ...Option) *Service {
	runID := uuid.NewString()
	s := &Service{
		settings:  set,
		logger:    logger.WithRunID(l, runID),
		catalogue: source.DefaultCatalogue(),
		runID:     runID,
		issues:    os.Stdout,
		errColor:  color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the identifier attached to every log entry of this service.
func (s *Service) RunID() string {
	return s.runID
}

// Run scans both corpora and reconciles them.
// Problems met while scanning are printed and logged; they never abort the run.
func (s *Service) Run(ctx context.Context) (*reconcile.Report, error) {
	start := time.Now()
	s.logger.Info("Starting configuration key audit",
		zap.String("xml_path", s.settings.XMLPath),
		zap.Strings("roots", s.settings.SourceRoots()),
	)

	spec := &reconcile.Spec{
		Docs:   &docsLoader{svc: s, ignore: s.settings.IgnoreSet()},
		Source: &sourceLoader{svc: s, ignore: s.settings.IgnoreSet()},
	}

	report, err := reconcile.ReconcileAll(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("audit failed: %w", err)
	}

	s.logger.Info("Audit completed",
		zap.Int("total_keys", report.Summary.TotalKeys),
		zap.Int("docs_keys", report.Summary.DocsKeys),
		zap.Int("source_keys", report.Summary.SourceKeys),
		zap.Int("docs_only", report.Summary.DocsOnly),
		zap.Int("source_only", report.Summary.SourceOnly),
		zap.Duration("execution_time", time.Since(start)),
	)

	return report, nil
}

// reportIssues prints every issue with the error prefix and logs it.
func (s *Service) reportIssues(problems []issue.Issue) {
	for _, p := range problems {
		s.errColor.Fprintln(s.issues, ErrorPrefix+p.Message())
		s.logger.Warn("Skipped during scan",
			zap.String("kind", string(p.Kind)),
			zap.String("path", p.Path),
			zap.Error(p.Err),
		)
	}
}
