package cbv

import "errors"

var (
	// ErrEmptyGrid indicates an empty target cadence grid.
	ErrEmptyGrid = errors.New("cbv: empty target grid")
	// ErrUnsortedTable indicates table times that are not strictly
	// increasing in cadence-number order.
	ErrUnsortedTable = errors.New("cbv: table times must be strictly increasing")
	// ErrDuplicateCadence indicates a repeated cadence number.
	ErrDuplicateCadence = errors.New("cbv: duplicate cadence number")
	// ErrInsufficientData indicates too few table rows to interpolate.
	ErrInsufficientData = errors.New("cbv: need at least two rows to interpolate")
	// ErrLengthMismatch indicates input slices of inconsistent lengths.
	ErrLengthMismatch = errors.New("cbv: input length mismatch")
	// ErrNoVectors indicates a table without any basis vector.
	ErrNoVectors = errors.New("cbv: table has no basis vectors")
	// ErrVectorIndex indicates a basis-vector index outside [1, NumVectors].
	ErrVectorIndex = errors.New("cbv: basis vector index out of range")
)

// Table is an immutable set of basis-vector samples, one row per cadence.
//
// Rows are ordered by ascending cadence number with strictly increasing
// times. vectors is indexed [vector][row].
type Table struct {
	cadence []int
	times   []float64
	vectors [][]float64
	gaps    []bool
	cfg     Config
}

// TargetGrid is the cadence grid of the light curve being corrected:
// parallel slices of cadence numbers and times, typically in chronological
// order. The grid is read-only input; Align and Interpolate never modify
// it.
type TargetGrid struct {
	CadenceNumbers []int
	Times          []float64
}

// Len returns the number of grid cadences.
func (g TargetGrid) Len() int {
	return len(g.CadenceNumbers)
}

func (g TargetGrid) validate() error {
	if len(g.CadenceNumbers) == 0 && len(g.Times) == 0 {
		return ErrEmptyGrid
	}

	if len(g.CadenceNumbers) != len(g.Times) {
		return ErrLengthMismatch
	}

	return nil
}

// TableOption configures table construction.
type TableOption func(*Table)

// WithConfig attaches the mission configuration describing where the
// basis vectors came from. Align and Interpolate propagate it to their
// output tables.
func WithConfig(cfg Config) TableOption {
	return func(t *Table) {
		t.cfg = cfg
	}
}

// NewTable builds a validated basis-vector table.
//
// cadenceNumbers must be strictly increasing integers, times strictly
// increasing floats of the same length. vectors holds one slice per basis
// vector, each with one amplitude per cadence. gaps marks rows filled
// across a missing observation; a nil gaps slice means no gaps. All
// slices are copied.
func NewTable(cadenceNumbers []int, times []float64, vectors [][]float64, gaps []bool, opts ...TableOption) (*Table, error) {
	n := len(cadenceNumbers)

	if len(times) != n {
		return nil, ErrLengthMismatch
	}

	if gaps != nil && len(gaps) != n {
		return nil, ErrLengthMismatch
	}

	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	for _, vec := range vectors {
		if len(vec) != n {
			return nil, ErrLengthMismatch
		}
	}

	for i := 1; i < n; i++ {
		if cadenceNumbers[i] == cadenceNumbers[i-1] {
			return nil, ErrDuplicateCadence
		}

		if cadenceNumbers[i] < cadenceNumbers[i-1] {
			return nil, ErrUnsortedTable
		}

		if !(times[i] > times[i-1]) {
			return nil, ErrUnsortedTable
		}
	}

	t := &Table{
		cadence: append([]int(nil), cadenceNumbers...),
		times:   append([]float64(nil), times...),
		vectors: make([][]float64, len(vectors)),
		gaps:    make([]bool, n),
	}

	for k, vec := range vectors {
		t.vectors[k] = append([]float64(nil), vec...)
	}

	if gaps != nil {
		copy(t.gaps, gaps)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	return t, nil
}

// Len returns the number of cadences in the table.
func (t *Table) Len() int {
	return len(t.cadence)
}

// NumVectors returns the number of basis vectors.
func (t *Table) NumVectors() int {
	return len(t.vectors)
}

// Config returns the mission configuration attached at construction.
func (t *Table) Config() Config {
	return t.cfg
}

// CadenceNumbers returns a copy of the table's cadence numbers.
func (t *Table) CadenceNumbers() []int {
	return append([]int(nil), t.cadence...)
}

// Times returns a copy of the table's timestamps.
func (t *Table) Times() []float64 {
	return append([]float64(nil), t.times...)
}

// Gaps returns a copy of the per-row gap flags.
func (t *Table) Gaps() []bool {
	return append([]bool(nil), t.gaps...)
}

// Vector returns a copy of basis vector index, using the mission
// convention of 1-based indexing: Vector(1) is the first basis vector.
func (t *Table) Vector(index int) ([]float64, error) {
	if index < 1 || index > len(t.vectors) {
		return nil, ErrVectorIndex
	}

	return append([]float64(nil), t.vectors[index-1]...), nil
}

// Row returns a copy of the basis-vector amplitudes at row i, ordered by
// basis vector index.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.vectors))
	for k := range t.vectors {
		row[k] = t.vectors[k][i]
	}

	return row
}

// Gap reports whether row i was filled rather than observed.
func (t *Table) Gap(i int) bool {
	return t.gaps[i]
}

// emptyLike allocates an output table shaped for the grid, carrying over
// vector count and mission configuration from t.
func (t *Table) emptyLike(grid TargetGrid) *Table {
	out := &Table{
		cadence: append([]int(nil), grid.CadenceNumbers...),
		times:   append([]float64(nil), grid.Times...),
		vectors: make([][]float64, len(t.vectors)),
		gaps:    make([]bool, grid.Len()),
		cfg:     t.cfg,
	}

	for k := range out.vectors {
		out.vectors[k] = make([]float64, grid.Len())
	}

	return out
}
