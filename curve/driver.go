package curve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/flamestab/optim"
	"github.com/notargets/flamestab/stability"
	"github.com/notargets/flamestab/thermo"
	"github.com/notargets/flamestab/utils"
)

// Case is one point of the neutral stability curve: an equivalence ratio and
// the effective Lewis number that goes with it.
type Case struct {
	Phi, LeEff float64
}

type Config struct {
	T, P       float64 // Unburned temperature (K) and pressure (Pa)
	Pr         float64
	Cases      []Case
	Sampler    *stability.MixtureSampler
	Method     optim.Method
	Search     optim.Settings
	Workers    int
	NewBackend func() thermo.Backend // Called once per worker
	Logger     *slog.Logger
}

// Point is the outcome for one Case. A failed case carries Err and zero
// valued results.
type Point struct {
	Case
	Mixture  stability.MixtureState
	Critical stability.CriticalPoint
	Err      error
}

// Peninsula holds Pe(n) samples for one Case; undefined samples are NaN.
type Peninsula struct {
	Case
	Mixture stability.MixtureState
	N, Pe   []float64
	Err     error
}

type Driver struct {
	cfg Config
}

func NewDriver(cfg Config) (d *Driver, err error) {
	switch {
	case cfg.Sampler == nil:
		err = errors.New("curve: no mixture sampler")
	case cfg.NewBackend == nil:
		err = errors.New("curve: no property backend factory")
	case !(cfg.T > 0) || !(cfg.P > 0):
		err = fmt.Errorf("curve: unburned state T = %g K, P = %g Pa is not physical", cfg.T, cfg.P)
	case !(cfg.Pr > 0):
		err = fmt.Errorf("curve: Prandtl number %g must be positive", cfg.Pr)
	}
	if err != nil {
		return
	}
	if cfg.Method == nil {
		cfg.Method = optim.Brent{}
	}
	if cfg.Search == (optim.Settings{}) {
		cfg.Search = stability.SearchSettings()
	}
	if err = cfg.Search.Validate(); err != nil {
		return
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers > len(cfg.Cases) {
		cfg.Workers = len(cfg.Cases)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	d = &Driver{cfg: cfg}
	return
}

// NewCases pairs equivalence ratios with Lewis numbers.
func NewCases(phis, leEffs []float64) (cases []Case, err error) {
	if len(phis) != len(leEffs) {
		err = fmt.Errorf("curve: %d equivalence ratios but %d Lewis numbers", len(phis), len(leEffs))
		return
	}
	cases = make([]Case, len(phis))
	for i := range phis {
		cases[i] = Case{Phi: phis[i], LeEff: leEffs[i]}
	}
	return
}

// forEach runs work for every case index. Cases are split into one
// contiguous bucket per worker and each worker gets its own backend, so
// backends are never shared between goroutines.
func (d *Driver) forEach(ctx context.Context, work func(gas thermo.Backend, i int)) error {
	if len(d.cfg.Cases) == 0 {
		return nil
	}
	pm := utils.NewPartitionMap(d.cfg.Workers, len(d.cfg.Cases))
	g, ctx := errgroup.WithContext(ctx)
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		if kMin == kMax {
			continue
		}
		g.Go(func() error {
			gas := d.cfg.NewBackend()
			for i := kMin; i < kMax; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				work(gas, i)
			}
			return nil
		})
	}
	return g.Wait()
}

// dispersion samples the mixture of one case and builds its Pe(n).
func (d *Driver) dispersion(gas thermo.Backend, c Case) (mix stability.MixtureState, disp *stability.Dispersion, err error) {
	if mix, err = d.cfg.Sampler.Sample(gas, c.Phi, d.cfg.T, d.cfg.P); err != nil {
		return
	}
	disp, err = stability.NewDispersion(gas, mix.Sigma, mix.Beta, c.LeEff, d.cfg.Pr)
	return
}

// Run finds the critical point of every case. Results are in input order; a
// failing case is logged and recorded in its Point and the others continue.
// The returned error is only set when the run is cancelled.
func (d *Driver) Run(ctx context.Context) (points []Point, err error) {
	points = make([]Point, len(d.cfg.Cases))
	err = d.forEach(ctx, func(gas thermo.Backend, i int) {
		var (
			c    = d.cfg.Cases[i]
			p    = Point{Case: c}
			disp *stability.Dispersion
		)
		if p.Mixture, disp, p.Err = d.dispersion(gas, c); p.Err == nil {
			p.Critical, p.Err = stability.FindCritical(disp, d.cfg.Method, d.cfg.Search)
		}
		if p.Err != nil {
			p.Err = fmt.Errorf("phi = %g: %w", c.Phi, p.Err)
			d.cfg.Logger.Error("critical point failed", "phi", c.Phi, "le_eff", c.LeEff, "error", p.Err)
		} else {
			d.cfg.Logger.Debug("critical point", "phi", c.Phi, "sigma", p.Mixture.Sigma,
				"beta", p.Mixture.Beta, "n_crit", p.Critical.N, "pe_crit", p.Critical.Pe,
				"evaluations", p.Critical.Evaluations)
		}
		points[i] = p
	})
	return
}

// PeninsulaWavenumbers is the wavenumber grid of the stability peninsula
// plots, n in [7, 120].
func PeninsulaWavenumbers() []float64 {
	return floats.Span(make([]float64, 100), stability.MinWavenumber, 120)
}

// Peninsulas samples Pe(n) over ns for every case.
func (d *Driver) Peninsulas(ctx context.Context, ns []float64) (pens []Peninsula, err error) {
	pens = make([]Peninsula, len(d.cfg.Cases))
	err = d.forEach(ctx, func(gas thermo.Backend, i int) {
		var (
			c    = d.cfg.Cases[i]
			pen  = Peninsula{Case: c, N: ns}
			disp *stability.Dispersion
		)
		if pen.Mixture, disp, pen.Err = d.dispersion(gas, c); pen.Err == nil {
			pen.Pe, pen.Err = disp.Sample(ns)
		} else {
			pen.Pe = make([]float64, len(ns))
			for j := range pen.Pe {
				pen.Pe[j] = math.NaN()
			}
		}
		if pen.Err != nil {
			pen.Err = fmt.Errorf("phi = %g: %w", c.Phi, pen.Err)
			d.cfg.Logger.Warn("peninsula has undefined samples", "phi", c.Phi, "error", pen.Err)
		}
		pens[i] = pen
	})
	return
}

// Failed returns the points that carry an error.
func Failed(points []Point) (failed []Point) {
	for _, p := range points {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return
}
