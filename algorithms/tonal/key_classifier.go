package tonal

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-key/algorithms/chroma"
	"github.com/RyanBlaney/sonido-key/algorithms/common"
	"github.com/RyanBlaney/sonido-key/algorithms/stats"
	"github.com/RyanBlaney/sonido-key/logging"
)

// modeFamily indexes the competing profile families
type modeFamily int

const (
	familyMajor modeFamily = iota
	familyMinor
	familyOther
)

// modeLabel returns the reported mode string. A winning "other" family is
// reported as minor.
func (f modeFamily) modeLabel() string {
	if f == familyMajor {
		return "major"
	}
	return "minor"
}

// KeyEstimate is the result of one key classification
type KeyEstimate struct {
	Key              string      `json:"key"`               // Key name from the fixed A-first table
	Mode             string      `json:"mode"`              // "major" or "minor"
	KeyIndex         int         `json:"key_index"`         // 0..11, index into KeyNames
	Strength         float64     `json:"strength"`          // Winning correlation value
	RelativeStrength float64     `json:"relative_strength"` // (max-max2)/max for the winning family
	Shift            int         `json:"shift"`             // Winning rotation of the resized template
	PCPSize          int         `json:"pcp_size"`          // Input profile size used
	Profile          ProfileType `json:"profile"`           // Profile type used
}

// KeyClassifierParams contains parameters for key classification
type KeyClassifierParams struct {
	Profile ProfileType             `json:"profile"`
	Variant ClassifierVariant       `json:"variant"`
	PCPSize int                     `json:"pcp_size"` // resize pre-warm hint; actual input size wins
	Method  stats.CorrelationMethod `json:"method"`
}

// DefaultKeyClassifierParams returns sensible defaults for EDM key detection
func DefaultKeyClassifierParams() KeyClassifierParams {
	return KeyClassifierParams{
		Profile: ProfileEDMA,
		Variant: TwoClass,
		PCPSize: 12,
		Method:  stats.TimeDomain,
	}
}

// KeyClassifier estimates the musical key (tonic pitch class + mode) of a
// pitch class profile by normalized circular correlation against fixed
// reference templates.
//
// Each Compute call is a pure function of its input and the cached resized
// templates; the only mutable state is the resize cache, re-armed lazily
// when the observed input size changes. A classifier instance is not safe
// for concurrent use; give each worker its own instance.
//
// References:
// - Gómez, E. (2006). "Tonal Description of Polyphonic Audio for Music
//   Content Processing"
// - Faraldo, Á. et al. (2016). "Key Estimation in Electronic Dance Music"
type KeyClassifier struct {
	params KeyClassifierParams
	logger logging.Logger

	// Fixed 12-entry reference templates for the configured profile type
	profiles profileSet

	// Resize cache, indexed by modeFamily
	resized []resizedProfile
	pcpSize int

	corr *stats.CircularCorrelation
}

// NewKeyClassifier creates a key classifier with default parameters
func NewKeyClassifier() (*KeyClassifier, error) {
	return NewKeyClassifierWithParams(DefaultKeyClassifierParams())
}

// NewKeyClassifierWithParams creates a key classifier with custom parameters.
// Fails with ErrUnsupportedProfileType when the profile identifier is not in
// the configured variant's table, and with ErrInvalidProfileSize when a
// non-zero PCPSize hint is not a positive multiple of 12.
func NewKeyClassifierWithParams(params KeyClassifierParams) (*KeyClassifier, error) {
	set, err := profilesFor(params.Variant, params.Profile)
	if err != nil {
		return nil, err
	}

	kc := &KeyClassifier{
		params:   params,
		profiles: set,
		corr:     stats.NewCircularCorrelationWithMethod(params.Method),
		logger: logging.WithFields(logging.Fields{
			"component": "key_classifier",
			"profile":   string(params.Profile),
			"variant":   params.Variant.String(),
		}),
	}

	// The hint only pre-warms the resize cache; the first input of a
	// different size replaces it.
	if params.PCPSize != 0 {
		if err := kc.resize(params.PCPSize); err != nil {
			return nil, err
		}
	}

	kc.logger.Debug("configured key classifier", logging.Fields{
		"pcp_size_hint": params.PCPSize,
	})

	return kc, nil
}

// Compute classifies one pitch class profile. The input is read-only and
// may be of any positive multiple-of-12 length; templates are re-resized
// when the length differs from the previous call.
func (kc *KeyClassifier) Compute(pcp []float64) (KeyEstimate, error) {
	size := len(pcp)
	if !chroma.ValidSize(size) {
		return KeyEstimate{}, fmt.Errorf("%w: got %d", ErrInvalidInputSize, size)
	}

	if size != kc.pcpSize {
		if err := kc.resize(size); err != nil {
			return KeyEstimate{}, err
		}
	}

	meanPCP := common.Mean(pcp)
	stdPCP := common.RootSumOfSquares(pcp, meanPCP)
	if stdPCP == 0 {
		return KeyEstimate{}, fmt.Errorf("%w: size %d", ErrDegenerateInput, size)
	}

	bests := make([]familyScore, len(kc.resized))
	for f := range kc.resized {
		prof := &kc.resized[f]
		surface, err := kc.corr.CorrelateAll(pcp, meanPCP, stdPCP, prof.values, prof.mean, prof.std)
		if err != nil {
			return KeyEstimate{}, err
		}
		bests[f] = scanSurface(surface)
	}

	winner := selectFamily(bests)
	if winner < 0 {
		return KeyEstimate{}, fmt.Errorf("%w: no family dominated", ErrKeyNotFound)
	}
	best := bests[winner]

	keyIndex := roundHalfUp(float64(best.shift*12) / float64(size))
	if keyIndex < 0 {
		return KeyEstimate{}, fmt.Errorf("%w: resolved index %d", ErrKeyNotFound, keyIndex)
	}
	keyIndex %= 12

	relativeStrength := 0.0
	if best.max != 0 {
		relativeStrength = (best.max - best.max2) / best.max
	}

	return KeyEstimate{
		Key:              KeyNames[keyIndex],
		Mode:             winner.modeLabel(),
		KeyIndex:         keyIndex,
		Strength:         best.max,
		RelativeStrength: relativeStrength,
		Shift:            best.shift,
		PCPSize:          size,
		Profile:          kc.params.Profile,
	}, nil
}

// ComputeFrames averages a sequence of per-frame profiles and classifies
// the result. This mirrors the usual pipeline arrangement where an upstream
// collaborator buffers frame-wise profiles over the analysis window.
func (kc *KeyClassifier) ComputeFrames(frames [][]float64) (KeyEstimate, error) {
	avg, err := chroma.AverageFrames(frames)
	if err != nil {
		return KeyEstimate{}, fmt.Errorf("%w: %v", ErrInvalidInputSize, err)
	}
	return kc.Compute(avg)
}

// Reset clears the resize cache. The classifier holds no other per-call
// state; upstream frame buffering belongs to the caller.
func (kc *KeyClassifier) Reset() {
	kc.resized = nil
	kc.pcpSize = 0
}

// GetParameters returns current parameters
func (kc *KeyClassifier) GetParameters() KeyClassifierParams {
	return kc.params
}

// resize stretches the reference templates to pcpSize and caches the result
func (kc *KeyClassifier) resize(pcpSize int) error {
	resized, err := resizeSet(kc.profiles, pcpSize)
	if err != nil {
		return err
	}

	kc.resized = resized
	kc.pcpSize = pcpSize

	kc.logger.Debug("resized reference profiles", logging.Fields{
		"pcp_size": pcpSize,
		"families": len(resized),
	})

	return nil
}

// familyScore tracks the best correlation found for one family
type familyScore struct {
	max   float64
	max2  float64
	shift int
}

// scanSurface finds the running maximum over a correlation surface. max2 is
// the value the maximum superseded, not the overall second-highest; the
// confidence margin is defined against this running second-best. NaN scores
// (zero-variance templates) never compare greater and never win.
func scanSurface(surface []float64) familyScore {
	s := familyScore{max: -1, max2: -1, shift: -1}
	for shift, r := range surface {
		if r > s.max {
			s.max2 = s.max
			s.max = r
			s.shift = shift
		}
	}
	return s
}

// selectFamily applies the fixed tie-break policy and returns the winning
// family, or -1 when no family dominates.
//
// Minor is deliberately favored at ties against both rivals; major and
// "other" require strict dominance. In the three-class variant it is
// possible (major and other exactly tied above minor) that no rule fires;
// that surfaces as ErrKeyNotFound upstream.
func selectFamily(bests []familyScore) modeFamily {
	maxMajor := bests[familyMajor].max
	maxMinor := bests[familyMinor].max

	if len(bests) == 2 {
		if maxMajor > maxMinor {
			return familyMajor
		}
		return familyMinor
	}

	maxOther := bests[familyOther].max
	switch {
	case maxMajor > maxMinor && maxMajor > maxOther:
		return familyMajor
	case maxMinor >= maxMajor && maxMinor >= maxOther:
		return familyMinor
	case maxOther > maxMajor && maxOther > maxMinor:
		return familyOther
	default:
		return -1
	}
}

// roundHalfUp rounds to the nearest integer with halves going up
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
