// Package app wires the race model domain into application workflows:
// running analyses, profiling samples, and persisting results.
package app

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gorace/domain/core"
	"gorace/domain/racemodel"
	"gorace/internal/dataset"
	"gorace/internal/profiling"
)

// Analysis is one completed race model comparison together with the
// sample profiles of its three input conditions.
type Analysis struct {
	ID        string                    `json:"id"`
	Table     *racemodel.Table          `json:"table"`
	Profiles  []profiling.SampleProfile `json:"profiles"`
	CreatedAt time.Time                 `json:"created_at"`
}

// AnalysisStore persists completed analyses.
type AnalysisStore interface {
	Save(ctx context.Context, a *Analysis) error
	Get(ctx context.Context, id string) (*Analysis, error)
	List(ctx context.Context) ([]*Analysis, error)
}

// AnalysisService runs race model comparisons and records the results.
type AnalysisService struct {
	store AnalysisStore
}

// NewAnalysisService creates an analysis service. store may be nil for
// one-shot use without persistence.
func NewAnalysisService(store AnalysisStore) *AnalysisService {
	return &AnalysisService{store: store}
}

// Run compares the three conditions and profiles each sample. The
// comparison and the three profiles are independent, so they run in an
// errgroup; the core computation itself stays synchronous.
func (s *AnalysisService) Run(ctx context.Context, rtA, rtB, rtAB []float64, opts *racemodel.CompareOptions) (*Analysis, error) {
	analysis := &Analysis{
		ID:        uuid.New().String(),
		Profiles:  make([]profiling.SampleProfile, 3),
		CreatedAt: time.Now().UTC(),
	}

	names := racemodel.DefaultNames
	if opts != nil && opts.Names != nil {
		if len(opts.Names) != len(racemodel.DefaultNames) {
			return nil, core.NewInvalidArgumentError("names", "exactly four column names are required")
		}
		names = opts.Names
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		table, err := racemodel.CompareRaceModel(rtA, rtB, rtAB, opts)
		if err != nil {
			return err
		}
		analysis.Table = table
		return nil
	})
	for i, sample := range [][]float64{rtA, rtB, rtAB} {
		i, sample := i, sample
		g.Go(func() error {
			p, err := profiling.Profile(names[i], sample)
			if err != nil {
				return err
			}
			analysis.Profiles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if analysis.Table.DroppedNegatives > 0 {
		log.Printf("[AnalysisService] warning: %d negative response times dropped before CDF estimation", analysis.Table.DroppedNegatives)
	}

	if s.store != nil {
		if err := s.store.Save(ctx, analysis); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

// RunFromDataset selects the three conditions out of a grouped dataset
// and runs the comparison. modalities names the A, B and AB groups in
// order; nil selects the dataset's modalities in sorted order, which
// must then be exactly three.
func (s *AnalysisService) RunFromDataset(ctx context.Context, table *dataset.Table, modalities []string, opts *racemodel.CompareOptions) (*Analysis, error) {
	samples, names, err := table.Split(modalities)
	if err != nil {
		return nil, err
	}
	if len(samples) != 3 {
		return nil, core.NewInvalidArgumentError("modalities", "exactly three conditions (A, B, AB) are required")
	}

	if opts == nil {
		opts = &racemodel.CompareOptions{}
	}
	if opts.Names == nil {
		opts.Names = append(append([]string(nil), names...), "Sum")
	}

	return s.Run(ctx, samples[0], samples[1], samples[2], opts)
}

// Get fetches a stored analysis by id.
func (s *AnalysisService) Get(ctx context.Context, id string) (*Analysis, error) {
	if s.store == nil {
		return nil, core.NewDataNotFoundError("analysis", id)
	}
	return s.store.Get(ctx, id)
}

// List returns all stored analyses, newest first.
func (s *AnalysisService) List(ctx context.Context) ([]*Analysis, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}
