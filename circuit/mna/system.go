package mna

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-circuit/internal/numeric"
)

// Ground is the reference node index. Stamps against Ground only touch
// the non-ground side of the element.
const Ground = -1

// ErrSingular is returned by Discretize when the companion system
// matrix cannot be inverted. Degenerate parameter values (resistance,
// capacitance, or sample rate at or near zero) are the usual cause;
// callers should clamp parameters before stamping rather than retry.
var ErrSingular = errors.New("mna: companion system matrix is singular")

// System is a dense trapezoidal MNA system of fixed dimension.
type System struct {
	dim int

	g *mat.Dense // conductance and source stamps
	c *mat.Dense // reactive stamps

	// Derived on Discretize.
	h    *mat.Dense // 2*C/T
	a    *mat.Dense // G + H
	aInv *mat.Dense // cached inverse of A
	hmg  *mat.Dense // H - G, cached for the per-sample update

	x     *mat.VecDense // state: node voltages and branch currents
	b     *mat.VecDense // present excitation
	bPrev *mat.VecDense // previous sample's excitation
	rhs   *mat.VecDense // scratch
	xNext *mat.VecDense // scratch

	ready bool
}

// NewSystem allocates a system with dim unknowns, all stamps zero.
func NewSystem(dim int) (*System, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("mna: dimension must be > 0: %d", dim)
	}

	return &System{
		dim:   dim,
		g:     mat.NewDense(dim, dim, nil),
		c:     mat.NewDense(dim, dim, nil),
		h:     mat.NewDense(dim, dim, nil),
		a:     mat.NewDense(dim, dim, nil),
		aInv:  mat.NewDense(dim, dim, nil),
		hmg:   mat.NewDense(dim, dim, nil),
		x:     mat.NewVecDense(dim, nil),
		b:     mat.NewVecDense(dim, nil),
		bPrev: mat.NewVecDense(dim, nil),
		rhs:   mat.NewVecDense(dim, nil),
		xNext: mat.NewVecDense(dim, nil),
	}, nil
}

// Dim returns the number of unknowns.
func (s *System) Dim() int { return s.dim }

// ClearStamps zeroes G and C so the topology can be restamped.
// Discretize must be called again before stepping.
func (s *System) ClearStamps() {
	s.g.Zero()
	s.c.Zero()
	s.ready = false
}

// StampConductance stamps a conductance g between nodes i and j.
// Either node may be Ground.
func (s *System) StampConductance(i, j int, g float64) {
	s.stampPair(s.g, i, j, g)
}

// StampCapacitor stamps a capacitance c between nodes i and j.
// Either node may be Ground.
func (s *System) StampCapacitor(i, j int, c float64) {
	s.stampPair(s.c, i, j, c)
}

// StampVoltageSource stamps an ideal voltage source occupying unknown
// branch (its current) and driving node against ground. The source
// value itself is supplied per sample via SetSource.
func (s *System) StampVoltageSource(branch, node int) {
	s.g.Set(node, branch, s.g.At(node, branch)+1)
	s.g.Set(branch, node, s.g.At(branch, node)+1)
}

func (s *System) stampPair(m *mat.Dense, i, j int, v float64) {
	if i != Ground {
		m.Set(i, i, m.At(i, i)+v)
	}

	if j != Ground {
		m.Set(j, j, m.At(j, j)+v)
	}

	if i != Ground && j != Ground {
		m.Set(i, j, m.At(i, j)-v)
		m.Set(j, i, m.At(j, i)-v)
	}
}

// Discretize forms the companion matrices for the given sample rate and
// inverts the system matrix. It must be called after stamping and
// whenever stamps or the rate change. Returns ErrSingular when the
// parameter values produce a non-invertible system.
func (s *System) Discretize(sampleRate float64) error {
	if !numeric.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("mna: sample rate must be > 0 and finite: %f", sampleRate)
	}

	// H = 2*C/T with T = 1/fs.
	s.h.Scale(2*sampleRate, s.c)
	s.a.Add(s.g, s.h)
	s.hmg.Sub(s.h, s.g)

	if err := s.aInv.Inverse(s.a); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}

	s.ready = true

	return nil
}

// Ready reports whether Discretize has run since the last restamp.
func (s *System) Ready() bool { return s.ready }

// SetSource writes the per-sample value of the voltage source stamped
// at the given branch row.
func (s *System) SetSource(branch int, value float64) {
	s.b.SetVec(branch, value)
}

// Step advances the system by one sample:
//
//	x <- A^-1 * ((H-G)*x + b + bPrev)
//
// and rotates the excitation history. All products hit cached
// matrices; nothing is factorized or allocated here.
func (s *System) Step() {
	s.rhs.MulVec(s.hmg, s.x)
	s.rhs.AddVec(s.rhs, s.b)
	s.rhs.AddVec(s.rhs, s.bPrev)

	s.xNext.MulVec(s.aInv, s.rhs)
	s.x.CopyVec(s.xNext)
	s.bPrev.CopyVec(s.b)
}

// At returns entry i of the state vector (a node voltage or branch
// current, depending on how the system was stamped).
func (s *System) At(i int) float64 { return s.x.AtVec(i) }

// Reset zeroes the state vector and excitation history. Stamps and
// cached matrices are preserved.
func (s *System) Reset() {
	s.x.Zero()
	s.b.Zero()
	s.bPrev.Zero()
}
