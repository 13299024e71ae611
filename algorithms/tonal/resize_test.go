package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeIdentityAtTwelve(t *testing.T) {
	set, err := profilesFor(TwoClass, ProfileShaath)
	require.NoError(t, err)

	resized, err := resizeProfile(set.Major, 12)
	require.NoError(t, err)

	// n = 1: no interpolated bins, the template passes through unchanged
	assert.Equal(t, set.Major, resized.values)
	assert.InDelta(t, 3.5416666667, resized.mean, 1e-9)
	assert.Greater(t, resized.std, 0.0)
}

func TestResizeInterpolation(t *testing.T) {
	ref := make([]float64, 12)
	for i := range ref {
		ref[i] = float64(i + 1)
	}

	resized, err := resizeProfile(ref, 24)
	require.NoError(t, err)
	require.Len(t, resized.values, 24)

	for i := 0; i < 12; i++ {
		// Template entries anchor on every n-th bin
		assert.Equal(t, ref[i], resized.values[2*i], "anchor %d", i)

		// The single interpolated bin sits halfway to the next entry,
		// wrapping from entry 11 back to entry 0
		next := (i + 1) % 12
		expected := ref[i] - (ref[i]-ref[next])/2
		assert.InDelta(t, expected, resized.values[2*i+1], 1e-12, "midpoint %d", i)
	}

	// The wrap midpoint descends from 12 toward 1
	assert.InDelta(t, 6.5, resized.values[23], 1e-12)
}

func TestResizeBackwardLean(t *testing.T) {
	ref := make([]float64, 12)
	ref[0] = 3.0
	ref[1] = 0.0
	for i := 2; i < 12; i++ {
		ref[i] = 1.0
	}

	resized, err := resizeProfile(ref, 36)
	require.NoError(t, err)

	// Bins between entry 0 and entry 1 walk down from ref[0] in equal steps
	assert.Equal(t, 3.0, resized.values[0])
	assert.InDelta(t, 2.0, resized.values[1], 1e-12)
	assert.InDelta(t, 1.0, resized.values[2], 1e-12)
	assert.Equal(t, 0.0, resized.values[3])
}

func TestResizeIdempotence(t *testing.T) {
	set, err := profilesFor(TwoClass, ProfileEDMA)
	require.NoError(t, err)

	first, err := resizeProfile(set.Minor, 36)
	require.NoError(t, err)
	second, err := resizeProfile(set.Minor, 36)
	require.NoError(t, err)

	assert.Equal(t, first.values, second.values)
	assert.Equal(t, first.mean, second.mean)
	assert.Equal(t, first.std, second.std)
}

func TestResizeStatsConvention(t *testing.T) {
	ref := make([]float64, 12)
	for i := range ref {
		ref[i] = float64(i % 2) // alternating 0,1
	}

	resized, err := resizeProfile(ref, 12)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, resized.mean, 1e-12)
	// Unnormalized std: sqrt(12 * 0.25), not divided by N or N-1
	assert.InDelta(t, 1.7320508076, resized.std, 1e-9)
}

func TestResizeInvalidSizes(t *testing.T) {
	set, err := profilesFor(TwoClass, ProfileEDMA)
	require.NoError(t, err)

	for _, size := range []int{0, -12, 5, 13, 18} {
		_, err := resizeProfile(set.Major, size)
		assert.ErrorIs(t, err, ErrInvalidProfileSize, "size %d", size)
	}
}

func TestResizeSetFamilies(t *testing.T) {
	twoClass, err := profilesFor(TwoClass, ProfileEDMA)
	require.NoError(t, err)
	resized, err := resizeSet(twoClass, 24)
	require.NoError(t, err)
	assert.Len(t, resized, 2)

	threeClass, err := profilesFor(ThreeClass, ProfileBMTG1)
	require.NoError(t, err)
	resized, err = resizeSet(threeClass, 24)
	require.NoError(t, err)
	assert.Len(t, resized, 3)
}
