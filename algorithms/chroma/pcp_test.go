package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestValidSize(t *testing.T) {
	valid := []int{12, 24, 36, 48, 120}
	for _, size := range valid {
		assert.True(t, ValidSize(size), "size %d", size)
	}

	invalid := []int{0, 1, 6, 11, 13, 25, -12}
	for _, size := range invalid {
		assert.False(t, ValidSize(size), "size %d", size)
	}
}

func TestAverageFrames(t *testing.T) {
	frames := [][]float64{
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4},
	}

	avg, err := AverageFrames(frames)
	require.NoError(t, err)
	require.Len(t, avg, 12)
	assert.InDelta(t, 2.0, avg[0], 1e-12)
	assert.InDelta(t, 3.0, avg[11], 1e-12)
	assert.InDelta(t, 0.0, avg[5], 1e-12)

	// Input frames must not be mutated
	assert.Equal(t, 1.0, frames[0][0])
}

func TestAverageFramesSingleFrame(t *testing.T) {
	frame := []float64{0.5, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1}

	avg, err := AverageFrames([][]float64{frame})
	require.NoError(t, err)
	assert.Equal(t, frame, avg)
}

func TestAverageFramesValidation(t *testing.T) {
	_, err := AverageFrames(nil)
	assert.Error(t, err)

	_, err = AverageFrames([][]float64{make([]float64, 11)})
	assert.Error(t, err)

	_, err = AverageFrames([][]float64{
		make([]float64, 12),
		make([]float64, 24),
	})
	assert.Error(t, err)
}

func TestGate(t *testing.T) {
	pcp := []float64{0.05, 0.2, 0.1, 0.5, 0.09, 0.11}

	gated := Gate(pcp, 0.1)
	assert.Equal(t, []float64{0, 0.2, 0.1, 0.5, 0, 0.11}, gated)

	// Original must be untouched
	assert.Equal(t, 0.05, pcp[0])
}

func TestShiftToTemperedBinRollsDown(t *testing.T) {
	// Resolution 3, max at bin 4: one step above tempered bin 3
	pcp := make([]float64, 36)
	pcp[4] = 1.0
	pcp[5] = 0.5

	shifted := ShiftToTemperedBin(pcp)
	assert.Equal(t, 3, floats.MaxIdx(shifted))
	assert.InDelta(t, 0.5, shifted[4], 1e-12)
}

func TestShiftToTemperedBinRollsUp(t *testing.T) {
	// Resolution 3, max at bin 5: closer to tempered bin 6
	pcp := make([]float64, 36)
	pcp[5] = 1.0
	pcp[4] = 0.5

	shifted := ShiftToTemperedBin(pcp)
	assert.Equal(t, 6, floats.MaxIdx(shifted))
	assert.InDelta(t, 0.5, shifted[5], 1e-12)
}

func TestShiftToTemperedBinAlreadyAligned(t *testing.T) {
	pcp := make([]float64, 24)
	pcp[6] = 1.0

	shifted := ShiftToTemperedBin(pcp)
	assert.Equal(t, pcp, shifted)
}

func TestShiftToTemperedBinWrapsAroundEnd(t *testing.T) {
	// Resolution 2, max at the last bin rolls down onto tempered bin 11
	pcp := make([]float64, 24)
	pcp[23] = 1.0
	pcp[0] = 0.4

	shifted := ShiftToTemperedBin(pcp)
	assert.Equal(t, 22, floats.MaxIdx(shifted))
	assert.InDelta(t, 0.4, shifted[23], 1e-12)
}

func TestShiftToTemperedBinSemitoneResolution(t *testing.T) {
	pcp := []float64{0.1, 0.9, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.15, 0.25, 0.35}

	shifted := ShiftToTemperedBin(pcp)
	assert.Equal(t, pcp, shifted)

	// Returned slice is a copy
	shifted[0] = 42
	assert.Equal(t, 0.1, pcp[0])
}
