// SPDX-License-Identifier: MIT
// Package curve: the Smearer contract.

package curve

// Smearer applies instrumental resolution to a theory curve evaluated on the
// Q points of the curve it was built for.
//
// BinRange returns the inclusive index range [first, last] of unsmeared bins
// whose smeared values are needed to cover [qmin, qmax].
//
// Smear smears iq (one value per curve point) and returns the smeared values
// for bins first..last, i.e. last-first+1 elements.
type Smearer interface {
	BinRange(qmin, qmax float64) (first, last int, err error)
	Smear(iq []float64, first, last int) ([]float64, error)
}

// CheckBinRange validates a bin range reported by a Smearer for a curve of
// n points, and the length of the smeared slice it produced (pass -1 to skip
// the length check).
func CheckBinRange(first, last, n, smeared int) error {
	if first < 0 || last < first || last >= n {
		return ErrBadBinRange
	}
	if smeared >= 0 && smeared != last-first+1 {
		return ErrBadBinRange
	}

	return nil
}
