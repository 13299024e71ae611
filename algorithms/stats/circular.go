package stats

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// CorrelationMethod represents different computational approaches
type CorrelationMethod int

const (
	// Direct time-domain calculation
	TimeDomain CorrelationMethod = iota

	// FFT-based frequency domain (faster for large vectors)
	FrequencyDomain
)

// CircularIndex maps i-shift onto [0, size) regardless of sign. Go's %
// operator keeps the sign of the dividend, so the result has to be folded
// back into range explicitly.
func CircularIndex(i, shift, size int) int {
	index := (i - shift) % size
	if index < 0 {
		index += size
	}
	return index
}

// CircularCorrelation computes normalized (Pearson-like) correlation between
// a vector and a cyclically shifted copy of a template.
//
// The caller supplies the mean of each vector and the root of the summed
// squared deviations (NOT divided by N). Because the same convention is used
// on both sides, the quotient equals the Pearson correlation coefficient of
// the two sequences at that rotation.
//
// References:
// - Krumhansl, C. (1990). "Cognitive Foundations of Musical Pitch"
// - Gómez, E. (2006). "Tonal Description of Polyphonic Audio for Music
//   Content Processing"
type CircularCorrelation struct {
	method       CorrelationMethod
	fftThreshold int
}

// NewCircularCorrelation creates a circular correlation calculator with
// default settings (time domain for short vectors, FFT beyond the threshold)
func NewCircularCorrelation() *CircularCorrelation {
	return &CircularCorrelation{
		method:       TimeDomain,
		fftThreshold: 256,
	}
}

// NewCircularCorrelationWithMethod creates a calculator with an explicit method
func NewCircularCorrelationWithMethod(method CorrelationMethod) *CircularCorrelation {
	return &CircularCorrelation{
		method:       method,
		fftThreshold: 256,
	}
}

// CorrelateShift computes the normalized correlation between v1 and v2
// rotated by shift positions.
//
// If either std is exactly zero the result is an IEEE non-finite value
// (NaN when the numerator is also zero). Callers that must not observe
// non-finite output have to validate variance beforehand; comparisons
// against NaN are always false, so a NaN score never wins an argmax.
func (cc *CircularCorrelation) CorrelateShift(v1 []float64, mean1, std1 float64, v2 []float64, mean2, std2 float64, shift int) float64 {
	size := len(v1)

	r := 0.0
	for i := 0; i < size; i++ {
		r += (v1[i] - mean1) * (v2[CircularIndex(i, shift, size)] - mean2)
	}

	return r / (std1 * std2)
}

// CorrelateAll computes the correlation at every shift in 0..len(v1)-1.
//
// The frequency-domain path evaluates the whole surface with one forward and
// one inverse transform; circular correlation is exact under the DFT, so the
// two methods agree up to floating-point rounding.
func (cc *CircularCorrelation) CorrelateAll(v1 []float64, mean1, std1 float64, v2 []float64, mean2, std2 float64) ([]float64, error) {
	if len(v1) == 0 || len(v2) == 0 {
		return nil, fmt.Errorf("empty vectors provided")
	}
	if len(v1) != len(v2) {
		return nil, fmt.Errorf("vector length mismatch: %d vs %d", len(v1), len(v2))
	}

	method := cc.method
	if method == TimeDomain && len(v1) > cc.fftThreshold {
		method = FrequencyDomain
	}

	switch method {
	case FrequencyDomain:
		return cc.correlateAllFFT(v1, mean1, std1, v2, mean2, std2), nil
	default:
		return cc.correlateAllTimeDomain(v1, mean1, std1, v2, mean2, std2), nil
	}
}

func (cc *CircularCorrelation) correlateAllTimeDomain(v1 []float64, mean1, std1 float64, v2 []float64, mean2, std2 float64) []float64 {
	size := len(v1)
	correlations := make([]float64, size)

	for shift := 0; shift < size; shift++ {
		correlations[shift] = cc.CorrelateShift(v1, mean1, std1, v2, mean2, std2, shift)
	}

	return correlations
}

// correlateAllFFT computes the circular correlation surface using mjibson/go-dsp.
// With a[i] = v1[i]-mean1 and b[i] = v2[i]-mean2:
//
//	sum_i a[i]*b[(i-shift) mod n] = IDFT(DFT(a) * conj(DFT(b)))[shift]
func (cc *CircularCorrelation) correlateAllFFT(v1 []float64, mean1, std1 float64, v2 []float64, mean2, std2 float64) []float64 {
	size := len(v1)

	centered1 := make([]float64, size)
	centered2 := make([]float64, size)
	for i := 0; i < size; i++ {
		centered1[i] = v1[i] - mean1
		centered2[i] = v2[i] - mean2
	}

	spec1 := fft.FFTReal(centered1)
	spec2 := fft.FFTReal(centered2)

	crossPower := make([]complex128, size)
	for i := 0; i < size; i++ {
		crossPower[i] = spec1[i] * cmplx.Conj(spec2[i])
	}

	surface := fft.IFFT(crossPower)

	norm := std1 * std2
	correlations := make([]float64, size)
	for shift := 0; shift < size; shift++ {
		correlations[shift] = real(surface[shift]) / norm
	}

	return correlations
}
