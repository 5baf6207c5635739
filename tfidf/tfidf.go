package tfidf

import (
	"fmt"
	"math"
	"strings"

	"github.com/deanrtaylor1/govsm/sparse"
)

// Vocabulary is the ordered set of words recognised as matrix columns, the
// position of a word in the slice is its column index
type Vocabulary = []string

// Scheme selects which term frequency variant TfIdf fuses with idf
type Scheme int

const (
	SchemeAugmented Scheme = iota
	SchemeRaw
	SchemeLog
	SchemeBoolean
)

// DefaultAlpha is the smoothing constant for the augmented scheme
const DefaultAlpha = 0.5

// Utility function to map every vocabulary word to its column position
func vocabIndex(vocab Vocabulary) map[string]int {
	index := make(map[string]int, len(vocab))
	for j, word := range vocab {
		index[word] = j
	}
	return index
}

// Shared counting pass for the raw and boolean builders. For each document,
// each distinct word present in both the document and the vocabulary yields
// exactly one entry, duplicate occurrences fold into the count. Words missing
// from the vocabulary are skipped silently.
func countMatrix(docs []string, vocab Vocabulary, boolean bool) *sparse.Matrix {
	index := vocabIndex(vocab)

	var rows []int
	var cols []int
	var vals []float64

	for i, doc := range docs {
		words := strings.Fields(doc)

		counts := make(map[string]int, len(words))
		for _, word := range words {
			counts[word] += 1
		}

		//seen words are tracked per document, never across documents
		seen := make(map[string]bool, len(words))
		for _, word := range words {
			if seen[word] {
				continue
			}
			seen[word] = true
			j, ok := index[word]
			if !ok {
				continue
			}
			rows = append(rows, i)
			cols = append(cols, j)
			if boolean {
				vals = append(vals, 1)
			} else {
				vals = append(vals, float64(counts[word]))
			}
		}
	}

	return sparse.NewFromTriplets(rows, cols, vals, len(docs), len(vocab))
}

// TermFrequency builds the raw term frequency matrix, entry (i, j) is the
// number of times vocabulary word j occurs in document i. A document with no
// vocabulary words yields an empty row, never an error.
func TermFrequency(docs []string, vocab Vocabulary) *sparse.Matrix {
	return countMatrix(docs, vocab, false)
}

// BooleanTermFrequency builds the presence matrix, every stored entry is 1
func BooleanTermFrequency(docs []string, vocab Vocabulary) *sparse.Matrix {
	return countMatrix(docs, vocab, true)
}

// LogTermFrequency replaces every stored raw count v with 1 + ln(v). Absent
// entries stay absent, ln is never evaluated at zero.
func LogTermFrequency(docs []string, vocab Vocabulary) *sparse.Matrix {
	m := TermFrequency(docs, vocab)
	for k := range m.Data {
		m.Data[k] = 1 + math.Log(m.Data[k])
	}
	return m
}

// AugmentedTermFrequency replaces every stored raw count v in a row with
// alpha + (1-alpha)*(v / max count in that row). Rows with no stored entries
// stay entirely empty: the alpha offset only ever lands on stored positions,
// so the row max division is skipped rather than raising.
func AugmentedTermFrequency(docs []string, vocab Vocabulary, alpha float64) *sparse.Matrix {
	m := TermFrequency(docs, vocab)
	for i := 0; i < m.Rows; i++ {
		_, vals := m.RowNonZeros(i)
		if len(vals) == 0 {
			continue
		}
		max := vals[0]
		for _, v := range vals {
			if v > max {
				max = v
			}
		}
		for k := range vals {
			vals[k] = alpha + (1-alpha)*(vals[k]/max)
		}
	}
	return m
}

// InverseDocumentFrequency builds a matrix with the same stored positions as
// BooleanTermFrequency where every entry in column j holds that term's idf:
//
//	idf = ln(N / (1 + df))
//
// with N the document count and df the number of documents containing the
// term. Columns with no stored entries have nowhere to write, their ln(N)
// score is simply never materialized.
func InverseDocumentFrequency(docs []string, vocab Vocabulary) *sparse.Matrix {
	m := BooleanTermFrequency(docs, vocab)
	n := float64(len(docs))

	//transpose so each column's entries are contiguous
	t := m.Transpose()
	for j := 0; j < t.Rows; j++ {
		_, vals := t.RowNonZeros(j)
		df := 0
		for _, v := range vals {
			if v != 0 {
				df += 1
			}
		}
		idf := math.Log(n / (1 + float64(df)))
		for k := range vals {
			vals[k] = idf
		}
	}

	return t.Transpose()
}

// TfIdf builds the fused term weighting matrix for the chosen scheme, alpha is
// only consulted for SchemeAugmented. The idf statistics are derived from the
// tf matrix's own stored structure in the same pass instead of building a
// second full-size matrix and multiplying, so structural zeros stay zero and
// no intermediate is kept around.
func TfIdf(docs []string, vocab Vocabulary, scheme Scheme, alpha float64) *sparse.Matrix {
	var m *sparse.Matrix
	switch scheme {
	case SchemeRaw:
		m = TermFrequency(docs, vocab)
	case SchemeLog:
		m = LogTermFrequency(docs, vocab)
	case SchemeBoolean:
		m = BooleanTermFrequency(docs, vocab)
	default:
		m = AugmentedTermFrequency(docs, vocab, alpha)
	}

	n := float64(len(docs))

	//document frequency per column, counted off the stored entries
	df := make([]int, len(vocab))
	for k, j := range m.ColInd {
		if m.Data[k] != 0 {
			df[j] += 1
		}
	}

	idf := make([]float64, len(vocab))
	for j := range idf {
		idf[j] = math.Log(n / (1 + float64(df[j])))
	}

	for k, j := range m.ColInd {
		m.Data[k] *= idf[j]
	}

	return m
}

// NormalizeRows divides every stored value of each row by that row's Euclidean
// norm so each nonzero row comes out with unit length. The input is never
// mutated, a private copy is scaled in place. Rows whose stored values are all
// zero divide zero by zero and propagate NaN, callers that care must guard,
// rows with no stored entries at all have nothing to write and stay empty.
func NormalizeRows(m *sparse.Matrix) *sparse.Matrix {
	out := m.Clone()
	for i := 0; i < out.Rows; i++ {
		_, vals := out.RowNonZeros(i)
		var sum float64
		for _, v := range vals {
			sum += v * v
		}
		norm := math.Sqrt(sum)
		for k := range vals {
			vals[k] /= norm
		}
	}
	return out
}

// Sim computes the pairwise cosine-derived similarity of two matrices with the
// same column count. Both inputs are row normalized on private copies, then
// result[i][j] = dot(row i of m2, row j of m1) + 1. The +1 shift moves cosine
// similarity from [-1, 1] into [0, 2] so downstream ranking never sees a
// negative score. Note the orientation: rows of the result follow the SECOND
// argument. Inputs with different column counts cannot be multiplied and
// panic rather than miscomputing a score.
func Sim(m1 *sparse.Matrix, m2 *sparse.Matrix) [][]float64 {
	if m1.Cols != m2.Cols {
		panic(fmt.Sprintf("tfidf: column dimension mismatch %d vs %d", m1.Cols, m2.Cols))
	}

	a := NormalizeRows(m1)
	b := NormalizeRows(m2)

	result := make([][]float64, b.Rows)
	for i := 0; i < b.Rows; i++ {
		result[i] = make([]float64, a.Rows)

		bCols, bVals := b.RowNonZeros(i)
		lookup := make(map[int]float64, len(bCols))
		for k, c := range bCols {
			lookup[c] = bVals[k]
		}

		for j := 0; j < a.Rows; j++ {
			aCols, aVals := a.RowNonZeros(j)
			var dot float64
			for k, c := range aCols {
				if bv, ok := lookup[c]; ok {
					dot += bv * aVals[k]
				}
			}
			result[i][j] = dot + 1
		}
	}

	return result
}

// SimScalar is the single pair form of Sim for two one-row matrices
func SimScalar(m1 *sparse.Matrix, m2 *sparse.Matrix) float64 {
	return Sim(m1, m2)[0][0]
}
