package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Generator is a named y=f(x) column source.
type Generator interface {
	// Name is a short label for the column, e.g. "cos(4x)".
	Name() string
	// Eval returns the series value at x.
	Eval(x float64) float64
}

// Cosine generates cos(Freq*x).
type Cosine struct{ Freq float64 }

func (c Cosine) Name() string { return fmt.Sprintf("cos(%gx)", c.Freq) }

func (c Cosine) Eval(x float64) float64 { return math.Cos(c.Freq * x) }

// Sine generates sin(Freq*x).
type Sine struct{ Freq float64 }

func (s Sine) Name() string { return fmt.Sprintf("sin(%gx)", s.Freq) }

func (s Sine) Eval(x float64) float64 { return math.Sin(s.Freq * x) }

// Polynomial evaluates a polynomial with ascending-degree coefficients:
// Coeffs[i] multiplies x^i.
type Polynomial struct{ Coeffs []float64 }

func (p Polynomial) Name() string {
	return fmt.Sprintf("poly-deg-%d", max(len(p.Coeffs)-1, 0))
}

// Eval uses Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return y
}

// RandomPolynomial draws degree+1 coefficients uniform in [-scale, scale].
func RandomPolynomial(rng *rand.Rand, degree int, scale float64) Polynomial {
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = scale * (2*rng.Float64() - 1)
	}
	return Polynomial{Coeffs: coeffs}
}

// Noisy wraps a generator with Gaussian noise: the sample point is
// perturbed by XSigma and the value by YSigma, so a noisy series no
// longer lies exactly on its parent curve. Either sigma may be zero.
type Noisy struct {
	Gen    Generator
	XSigma float64
	YSigma float64
	rng    *rand.Rand
}

// NewNoisy wraps gen with noise drawn from rng. A nil rng falls back to
// an unseeded fixed source, so callers wanting reproducibility should
// pass their own.
func NewNoisy(gen Generator, xSigma, ySigma float64, rng *rand.Rand) *Noisy {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 1))
	}
	return &Noisy{Gen: gen, XSigma: xSigma, YSigma: ySigma, rng: rng}
}

func (n *Noisy) Name() string { return "noisy " + n.Gen.Name() }

func (n *Noisy) Eval(x float64) float64 {
	return n.Gen.Eval(x+n.rng.NormFloat64()*n.XSigma) + n.rng.NormFloat64()*n.YSigma
}
