package sparse

// Package sparse implements the row-compressed document-term matrix used by
// the tfidf package. Only stored entries exist in the backing slices, every
// other position is an implicit zero.

// Matrix is a row-compressed sparse matrix. Row i's stored entries live at
// positions RowPtr[i] up to RowPtr[i+1] of ColInd and Data.
type Matrix struct {
	Rows   int
	Cols   int
	RowPtr []int
	ColInd []int
	Data   []float64
}

// NewFromTriplets builds a row-compressed matrix out of coordinate triplets.
// The three slices must have equal length, entries may arrive in any row order
// but the relative order of entries within one row is preserved.
func NewFromTriplets(rows []int, cols []int, vals []float64, numRows int, numCols int) *Matrix {
	m := &Matrix{
		Rows:   numRows,
		Cols:   numCols,
		RowPtr: make([]int, numRows+1),
		ColInd: make([]int, len(cols)),
		Data:   make([]float64, len(vals)),
	}

	//count the entries per row first so we know where each row starts
	for _, r := range rows {
		m.RowPtr[r+1] += 1
	}
	for i := 0; i < numRows; i++ {
		m.RowPtr[i+1] += m.RowPtr[i]
	}

	//stable counting pass so within-row order survives
	next := make([]int, numRows)
	copy(next, m.RowPtr[:numRows])
	for k, r := range rows {
		m.ColInd[next[r]] = cols[k]
		m.Data[next[r]] = vals[k]
		next[r] += 1
	}

	return m
}

// NNZ returns the number of stored entries
func (m *Matrix) NNZ() int {
	return len(m.Data)
}

// RowNonZeros returns the stored column indices and values of row i. Both
// slices alias the matrix's backing arrays, writing to them writes to the
// matrix.
func (m *Matrix) RowNonZeros(i int) ([]int, []float64) {
	return m.ColInd[m.RowPtr[i]:m.RowPtr[i+1]], m.Data[m.RowPtr[i]:m.RowPtr[i+1]]
}

// At returns the value at (i, j), zero when the position is not stored
func (m *Matrix) At(i int, j int) float64 {
	cols, vals := m.RowNonZeros(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
	}
	return 0
}

// This function returns a deep copy of the matrix so callers can transform
// values without touching the original
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{
		Rows:   m.Rows,
		Cols:   m.Cols,
		RowPtr: make([]int, len(m.RowPtr)),
		ColInd: make([]int, len(m.ColInd)),
		Data:   make([]float64, len(m.Data)),
	}
	copy(clone.RowPtr, m.RowPtr)
	copy(clone.ColInd, m.ColInd)
	copy(clone.Data, m.Data)
	return clone
}

// Transpose returns the row-compressed form of the transposed matrix. Row i of
// the result holds column i of the original, which is how per-column passes
// (document frequency counting) get contiguous access.
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{
		Rows:   m.Cols,
		Cols:   m.Rows,
		RowPtr: make([]int, m.Cols+1),
		ColInd: make([]int, len(m.ColInd)),
		Data:   make([]float64, len(m.Data)),
	}

	for _, c := range m.ColInd {
		t.RowPtr[c+1] += 1
	}
	for i := 0; i < t.Rows; i++ {
		t.RowPtr[i+1] += t.RowPtr[i]
	}

	next := make([]int, t.Rows)
	copy(next, t.RowPtr[:t.Rows])
	for i := 0; i < m.Rows; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			c := m.ColInd[k]
			t.ColInd[next[c]] = i
			t.Data[next[c]] = m.Data[k]
			next[c] += 1
		}
	}

	return t
}

// ToDense expands the matrix into a dense row-major slice of slices
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.Rows)
	for i := 0; i < m.Rows; i++ {
		dense[i] = make([]float64, m.Cols)
		cols, vals := m.RowNonZeros(i)
		for k, c := range cols {
			dense[i][c] = vals[k]
		}
	}
	return dense
}
