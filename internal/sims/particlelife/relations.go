package particlelife

import "fmt"

// Relations is a square table of signed interaction coefficients indexed by
// (source species, target species). Entries are not required to be symmetric:
// the force a particle of species i feels from species j reads [i][j], while
// the reverse reads [j][i].
type Relations struct {
	n     int
	table []float64
}

// NewRelations allocates a zero-filled table for the given species count.
// Unset entries mean no interaction.
func NewRelations(species int) *Relations {
	if species < 0 {
		species = 0
	}
	return &Relations{n: species, table: make([]float64, species*species)}
}

// FromRows builds a table from row-major coefficients where rows[i][j] is the
// coefficient applied to species i by species j. The rows must form a square.
func FromRows(rows [][]float64) (*Relations, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: relation table is empty", ErrInvalidConfig)
	}
	r := NewRelations(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: relation row %d has %d entries, want %d", ErrInvalidConfig, i, len(row), n)
		}
		copy(r.table[i*n:(i+1)*n], row)
	}
	return r, nil
}

// Size returns the species count the table is sized for.
func (r *Relations) Size() int { return r.n }

// Get returns the coefficient species source receives from species target.
// It panics when either index is out of range.
func (r *Relations) Get(source, target int) float64 {
	return r.table[r.index(source, target)]
}

// Set overwrites a single coefficient in place. It panics when either index
// is out of range.
func (r *Relations) Set(source, target int, value float64) {
	r.table[r.index(source, target)] = value
}

// Rows returns a copy of the table as row slices.
func (r *Relations) Rows() [][]float64 {
	rows := make([][]float64, r.n)
	for i := range rows {
		rows[i] = append([]float64(nil), r.table[i*r.n:(i+1)*r.n]...)
	}
	return rows
}

// Clone returns an independent copy of the table.
func (r *Relations) Clone() *Relations {
	return &Relations{n: r.n, table: append([]float64(nil), r.table...)}
}

func (r *Relations) inRange(source, target int) bool {
	return source >= 0 && source < r.n && target >= 0 && target < r.n
}

func (r *Relations) index(source, target int) int {
	if !r.inRange(source, target) {
		panic(fmt.Sprintf("particlelife: relation index (%d, %d) out of range for %d species", source, target, r.n))
	}
	return source*r.n + target
}
