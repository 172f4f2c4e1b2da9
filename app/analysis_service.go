package app

import (
	"fmt"
	"log"

	"github.com/montanaflynn/stats"

	"sobolkit/domain/core"
	"sobolkit/domain/qoi"
	"sobolkit/internal/resample"
	"sobolkit/ports"
)

// SamplerSpec is the sampler metadata the analysis depends on: how many
// parameters were varied, their order, and the total run count the
// design produced.
type SamplerSpec struct {
	// NParams is the number of uncertain input parameters.
	NParams int
	// ParamNames holds the varied parameter names in sampling order.
	ParamNames []string
	// NSamples is the total number of runs the design produced,
	// n_mc * (n_params + 2). Zero means unknown; the per-QoI sample count
	// is validated against the block size either way.
	NSamples int
}

// Validate checks the sampler specification.
func (s SamplerSpec) Validate() error {
	if s.NParams <= 0 || len(s.ParamNames) == 0 {
		return core.ErrMissingSampler
	}
	if len(s.ParamNames) != s.NParams {
		return core.NewConfigError("param_names",
			fmt.Sprintf("got %d names for %d parameters", len(s.ParamNames), s.NParams))
	}
	return nil
}

// Result is the assembled output of one analysis invocation, keyed by
// QoI name, then parameter name. Immutable once returned.
type Result struct {
	ID         core.AnalysisID `json:"analysis_id"`
	ComputedAt core.Timestamp  `json:"computed_at"`

	StatisticalMoments map[string]qoi.Moments     `json:"statistical_moments"`
	Percentiles        map[string]qoi.Percentiles `json:"percentiles"`

	SobolsFirst map[string]map[string][]float64 `json:"sobols_first"`
	SobolsTotal map[string]map[string][]float64 `json:"sobols_total"`

	ConfSobolsFirst map[string]map[string]qoi.Interval `json:"conf_sobols_first"`
	ConfSobolsTotal map[string]map[string]qoi.Interval `json:"conf_sobols_total"`
}

// AnalysisService drives the Saltelli sensitivity pipeline per QoI and
// assembles the results structure. Its configuration is read-only after
// construction, so a single service may serve concurrent Analyse calls
// on independent sample tables.
type AnalysisService struct {
	sampler SamplerSpec
	qoiCols []string
	cfg     resample.Config
	rngPort ports.RNGPort
}

// NewAnalysisService creates an analysis service for one sampling
// design. qoiCols lists the quantities of interest to analyse; when
// empty it falls back to the varied parameter names, which only makes
// sense in self-referential setups where outputs are named after
// inputs — the fallback is logged because it is usually a
// misconfiguration.
func NewAnalysisService(sampler SamplerSpec, qoiCols []string, cfg resample.Config, rngPort ports.RNGPort) (*AnalysisService, error) {
	if err := sampler.Validate(); err != nil {
		return nil, err
	}
	if rngPort == nil {
		return nil, core.NewConfigError("rng", "port must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(qoiCols) == 0 {
		log.Printf("analysis: no QoI columns configured, defaulting to parameter names %v", sampler.ParamNames)
		qoiCols = append([]string(nil), sampler.ParamNames...)
	} else {
		qoiCols = append([]string(nil), qoiCols...)
	}
	return &AnalysisService{
		sampler: sampler,
		qoiCols: qoiCols,
		cfg:     cfg,
		rngPort: rngPort,
	}, nil
}

// Analyse runs the sensitivity analysis on a normalized sample table
// and assembles the per-QoI, per-parameter results.
func (s *AnalysisService) Analyse(table qoi.SampleTable) (*Result, error) {
	if table.IsEmpty() {
		return nil, core.ErrEmptyInput
	}

	res := &Result{
		ID:                 core.NewAnalysisID(),
		ComputedAt:         core.Now(),
		StatisticalMoments: make(map[string]qoi.Moments, len(s.qoiCols)),
		Percentiles:        make(map[string]qoi.Percentiles, len(s.qoiCols)),
		SobolsFirst:        make(map[string]map[string][]float64, len(s.qoiCols)),
		SobolsTotal:        make(map[string]map[string][]float64, len(s.qoiCols)),
		ConfSobolsFirst:    make(map[string]map[string]qoi.Interval, len(s.qoiCols)),
		ConfSobolsTotal:    make(map[string]map[string]qoi.Interval, len(s.qoiCols)),
	}

	for _, k := range s.qoiCols {
		samples, ok := table[k]
		if !ok || len(samples) == 0 {
			return nil, fmt.Errorf("%w: %q", core.ErrMissingQoIValue, k)
		}

		moments, pcts, err := describe(samples)
		if err != nil {
			return nil, fmt.Errorf("QoI %q: %w", k, err)
		}
		res.StatisticalMoments[k] = moments
		res.Percentiles[k] = pcts

		// A stream per QoI keeps resampling independent of QoI ordering.
		rng, err := s.rngPort.SeededStream("sobol_bootstrap/"+k, s.cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("QoI %q: %w", k, err)
		}
		estimates, err := resample.Bootstrap(samples, s.sampler.NParams, s.cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("QoI %q: %w", k, err)
		}

		res.SobolsFirst[k] = make(map[string][]float64, s.sampler.NParams)
		res.SobolsTotal[k] = make(map[string][]float64, s.sampler.NParams)
		res.ConfSobolsFirst[k] = make(map[string]qoi.Interval, s.sampler.NParams)
		res.ConfSobolsTotal[k] = make(map[string]qoi.Interval, s.sampler.NParams)
		for j, param := range s.sampler.ParamNames {
			res.SobolsFirst[k][param] = estimates[j].First
			res.SobolsTotal[k][param] = estimates[j].Total
			res.ConfSobolsFirst[k][param] = estimates[j].FirstCI
			res.ConfSobolsTotal[k][param] = estimates[j].TotalCI
		}
	}
	return res, nil
}

// AnalyseSource normalizes a raw source through the adapter boundary,
// then analyses the resulting table.
func (s *AnalysisService) AnalyseSource(src ports.SampleSourcePort) (*Result, error) {
	table, err := src.Samples(s.qoiCols)
	if err != nil {
		return nil, err
	}
	return s.Analyse(table)
}

// Merge concatenates the per-QoI evaluation lists of independently
// collected sample tables, in input order, and analyses the combined
// set. This is only statistically valid when every table came from the
// same sampling design; beyond the parameter count and naming fixed at
// construction, that is the caller's responsibility.
func (s *AnalysisService) Merge(tables []qoi.SampleTable) (*Result, error) {
	merged, err := qoi.MergeTables(tables)
	if err != nil {
		return nil, err
	}
	return s.Analyse(merged)
}

// MergeSources normalizes each source, then merges and analyses them.
func (s *AnalysisService) MergeSources(srcs []ports.SampleSourcePort) (*Result, error) {
	tables := make([]qoi.SampleTable, 0, len(srcs))
	for _, src := range srcs {
		table, err := src.Samples(s.qoiCols)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return s.Merge(tables)
}

// describe computes the elementwise population moments and empirical
// percentiles over all evaluations of one QoI.
func describe(samples []qoi.Evaluation) (qoi.Moments, qoi.Percentiles, error) {
	width, err := qoi.Width(samples)
	if err != nil {
		return qoi.Moments{}, qoi.Percentiles{}, err
	}

	m := qoi.Moments{
		Mean: make([]float64, width),
		Var:  make([]float64, width),
		Std:  make([]float64, width),
	}
	p := qoi.Percentiles{
		P10: make([]float64, width),
		P90: make([]float64, width),
	}

	col := make([]float64, len(samples))
	for j := 0; j < width; j++ {
		for i, e := range samples {
			col[i] = e[j]
		}
		mean, err := stats.Mean(col)
		if err != nil {
			return qoi.Moments{}, qoi.Percentiles{}, err
		}
		variance, err := stats.PopulationVariance(col)
		if err != nil {
			return qoi.Moments{}, qoi.Percentiles{}, err
		}
		std, err := stats.StandardDeviationPopulation(col)
		if err != nil {
			return qoi.Moments{}, qoi.Percentiles{}, err
		}
		m.Mean[j], m.Var[j], m.Std[j] = mean, variance, std
		// Linear interpolation stays defined for any run count, unlike a
		// nearest-rank percentile.
		p.P10[j] = resample.Percentile(col, 10)
		p.P90[j] = resample.Percentile(col, 90)
	}
	return m, p, nil
}
