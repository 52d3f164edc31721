package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ukpostcodes/internal/model"
	"ukpostcodes/internal/postcode"
)

// RunStore persists import summaries and lists earlier ones.
type RunStore interface {
	Save(ctx context.Context, run *model.ImportRun) error
	ListBySource(ctx context.Context, source string, limit int) ([]model.ImportRun, error)
}

type ImportService struct {
	checker *postcode.Checker
	runs    RunStore
	log     zerolog.Logger
	now     func() time.Time
}

// NewImportService builds an importer. runs may be nil, in which case
// reports are not persisted.
func NewImportService(checker *postcode.Checker, runs RunStore, log zerolog.Logger) *ImportService {
	return &ImportService{
		checker: checker,
		runs:    runs,
		log:     log,
		now:     time.Now,
	}
}

// Run validates every row of src and tallies the result. On a source error
// the partial report is returned with the error.
func (s *ImportService) Run(ctx context.Context, src Source) (*model.ImportReport, error) {
	if src == nil {
		return nil, ErrInvalidInput
	}

	report := model.NewImportReport(src.Name(), s.now())
	log := s.log.With().Str("run_id", report.RunID.String()).Str("source", report.Source).Logger()
	log.Info().Msg("import started")

	err := src.Each(ctx, func(row Row) error {
		res := s.checker.Check(row.Raw)
		if res.Valid {
			report.AddValid()
			return nil
		}

		report.AddInvalid(model.InvalidEntry{
			Position:   row.Position,
			Raw:        row.Raw,
			Normalized: res.Normalized,
			Reason:     string(res.Reason),
		})
		log.Warn().
			Int("position", row.Position).
			Str("postcode", row.Raw).
			Str("normalized", res.Normalized).
			Str("reason", string(res.Reason)).
			Msg("invalid postcode")
		return nil
	})
	report.FinishedAt = s.now()
	if err != nil {
		log.Error().Err(err).Int("processed", report.Total()).Msg("import aborted")
		return report, err
	}

	if s.runs != nil {
		if err := s.runs.Save(ctx, report.ToRun()); err != nil {
			return report, fmt.Errorf("save import run: %w", err)
		}
	}

	log.Info().
		Int("valid", report.Valid).
		Int("invalid", report.Invalid).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("import finished")
	return report, nil
}

// History returns up to limit earlier runs of source, newest first.
func (s *ImportService) History(ctx context.Context, source string, limit int) ([]model.ImportRun, error) {
	if s.runs == nil || limit <= 0 {
		return nil, ErrInvalidInput
	}
	runs, err := s.runs.ListBySource(ctx, source, limit)
	if err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}
	return runs, nil
}
