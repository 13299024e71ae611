package chroma

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Utilities for pitch class profiles (PCP): octave-independent energy
// histograms with 12 bins per semitone resolution step. A profile of size
// 12*n carries n bins per semitone; n = 1 is the plain chromagram case.

// ValidSize reports whether size is a positive multiple of 12
func ValidSize(size int) bool {
	return size >= 12 && size%12 == 0
}

// AverageFrames collapses a sequence of per-frame profiles into a single
// time-averaged profile (per-bin arithmetic mean). All frames must share
// one valid size.
func AverageFrames(frames [][]float64) ([]float64, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames provided")
	}

	size := len(frames[0])
	if !ValidSize(size) {
		return nil, fmt.Errorf("frame size %d is not a positive multiple of 12", size)
	}

	avg := make([]float64, size)
	for i, frame := range frames {
		if len(frame) != size {
			return nil, fmt.Errorf("frame %d has size %d, expected %d", i, len(frame), size)
		}
		floats.Add(avg, frame)
	}

	floats.Scale(1.0/float64(len(frames)), avg)
	return avg, nil
}

// Gate zeroes every bin below threshold and returns the result as a new
// slice. Useful for suppressing noise-floor energy before key estimation.
func Gate(pcp []float64, threshold float64) []float64 {
	gated := make([]float64, len(pcp))
	for i, val := range pcp {
		if val >= threshold {
			gated[i] = val
		}
	}
	return gated
}

// ShiftToTemperedBin rotates a fine-grained profile so that its maximum
// lands on the nearest tempered semitone bin. This is the usual detuning
// correction applied to averaged profiles before matching against
// per-semitone templates; with one bin per semitone there is nothing to
// correct and the input is returned as a copy.
func ShiftToTemperedBin(pcp []float64) []float64 {
	shifted := make([]float64, len(pcp))
	copy(shifted, pcp)

	if !ValidSize(len(pcp)) {
		return shifted
	}

	resolution := len(pcp) / 12
	if resolution == 1 {
		return shifted
	}

	maxIndex := floats.MaxIdx(pcp)
	offset := maxIndex % resolution
	if offset == 0 {
		return shifted
	}

	// Rotate toward whichever tempered bin is closer
	distance := offset
	if offset > resolution/2 {
		distance = -(resolution - offset)
	}

	size := len(pcp)
	for i := range pcp {
		shifted[(i+size-distance)%size] = pcp[i]
	}
	return shifted
}
