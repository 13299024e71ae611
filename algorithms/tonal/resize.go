package tonal

import (
	"fmt"

	"github.com/RyanBlaney/sonido-key/algorithms/chroma"
	"github.com/RyanBlaney/sonido-key/algorithms/common"
)

// resizedProfile is a reference template stretched to the working profile
// resolution, with the statistics the correlation formula needs cached
// alongside. Std follows the unnormalized convention of
// common.RootSumOfSquares.
type resizedProfile struct {
	values []float64
	mean   float64
	std    float64
}

// resizeProfile interpolates a 12-entry reference template to pcpSize bins.
//
// Entry i of the template lands on bin i*n (n = pcpSize/12). The n-1 bins in
// between descend linearly toward the next template entry, wrapping from
// entry 11 back to entry 0:
//
//	resized[i*n+j] = ref[i] - j*(ref[i]-ref[next])/n
//
// The interpolation leans backward (it always walks down from ref[i], never
// symmetrically around a midpoint), which keeps every template peak exactly
// on its i*n bin. Resizing is deterministic: the same template and size
// produce bit-identical output.
func resizeProfile(ref []float64, pcpSize int) (resizedProfile, error) {
	if !chroma.ValidSize(pcpSize) {
		return resizedProfile{}, fmt.Errorf("%w: %d", ErrInvalidProfileSize, pcpSize)
	}

	n := pcpSize / 12
	values := make([]float64, pcpSize)

	for i := 0; i < 12; i++ {
		values[i*n] = ref[i]

		next := (i + 1) % 12
		incr := (ref[i] - ref[next]) / float64(n)

		for j := 1; j <= n-1; j++ {
			values[i*n+j] = ref[i] - float64(j)*incr
		}
	}

	mean := common.Mean(values)
	return resizedProfile{
		values: values,
		mean:   mean,
		std:    common.RootSumOfSquares(values, mean),
	}, nil
}

// resizeSet resizes every family template of a profile set. The returned
// slice is indexed by modeFamily; two-class sets produce two entries.
func resizeSet(set profileSet, pcpSize int) ([]resizedProfile, error) {
	refs := [][]float64{set.Major, set.Minor}
	if set.Other != nil {
		refs = append(refs, set.Other)
	}

	resized := make([]resizedProfile, len(refs))
	for f, ref := range refs {
		p, err := resizeProfile(ref, pcpSize)
		if err != nil {
			return nil, err
		}
		resized[f] = p
	}
	return resized, nil
}
