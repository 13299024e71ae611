package tonal

import "fmt"

// ProfileType selects a reference key-profile template set
type ProfileType string

const (
	// Two-class profile sets (major/minor)

	// ProfileTemperley - revised key profiles by David Temperley, from
	// corpus analysis of euroclassical music
	ProfileTemperley ProfileType = "temperley"
	// ProfileShaath - Krumhansl-derived profiles tuned to popular and
	// electronic music
	ProfileShaath ProfileType = "shaath"
	// ProfileEDMA - automatic profiles extracted from corpus analysis of
	// electronic dance music
	ProfileEDMA ProfileType = "edma"
	// ProfileEDMM - the edma profiles manually tweaked so that major modes
	// (poorly represented in EDM) are reported as minor. The flat major
	// template is deliberate: its correlation is undefined at every shift,
	// so the major family never wins.
	ProfileEDMM ProfileType = "edmm"

	// Three-class profile sets (major/minor/other)

	// ProfileBMTG1 - raw corpus-trained profiles with an "other" family for
	// ambiguous or atonal material
	ProfileBMTG1 ProfileType = "bmtg1"
	// ProfileBMTG2 - bmtg1 with low-weight degrees flattened to 0.10
	ProfileBMTG2 ProfileType = "bmtg2"
	// ProfileBMTG3 - bmtg2 with the flattened degrees zeroed out
	ProfileBMTG3 ProfileType = "bmtg3"

	// ProfileEDMA is also valid for the three-class variant, with
	// independent constants; which table is consulted depends on the
	// configured variant.
)

// ClassifierVariant selects how many profile families compete
type ClassifierVariant int

const (
	// TwoClass compares major vs minor
	TwoClass ClassifierVariant = iota
	// ThreeClass adds an "other" family that catches ambiguous or atonal
	// material; a winning "other" is reported with mode minor
	ThreeClass
)

func (v ClassifierVariant) String() string {
	switch v {
	case TwoClass:
		return "two-class"
	case ThreeClass:
		return "three-class"
	default:
		return "unknown"
	}
}

// KeyNames maps a key index 0..11 to its name. Index 0 is "A" rather than
// "C"; downstream consumers rely on this ordering, do not reorder.
var KeyNames = [12]string{"A", "Bb", "B", "C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab"}

// profileSet holds the 12-entry reference templates for one ProfileType.
// Other is nil for two-class sets. The tables are fixed, hand-curated or
// corpus-averaged constants and are never mutated at runtime.
type profileSet struct {
	Major []float64
	Minor []float64
	Other []float64
}

// Degrees: I, bII, II, bIII, III, IV, #IV, V, bVI, VI, bVII, VII
var twoClassProfiles = map[ProfileType]profileSet{
	ProfileTemperley: {
		Major: []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
		Minor: []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
	},
	ProfileShaath: {
		Major: []float64{6.6, 2.0, 3.5, 2.3, 4.6, 4.0, 2.5, 5.2, 2.4, 3.7, 2.3, 3.4},
		Minor: []float64{6.5, 2.7, 3.5, 5.4, 2.6, 3.5, 2.5, 5.2, 4.0, 2.7, 4.3, 3.2},
	},
	ProfileEDMA: {
		Major: []float64{0.16519551, 0.04749026, 0.08293076, 0.06687112, 0.09994645, 0.09274123, 0.05294487, 0.13159476, 0.05218986, 0.07443653, 0.06940723, 0.0642515},
		Minor: []float64{0.17235348, 0.05336489, 0.0761009, 0.10043649, 0.05621498, 0.08527853, 0.0497915, 0.13451001, 0.07458916, 0.05003023, 0.09187879, 0.05545106},
	},
	ProfileEDMM: {
		Major: []float64{0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083, 0.083},
		Minor: []float64{0.17235348, 0.04, 0.0761009, 0.12, 0.05621498, 0.08527853, 0.0497915, 0.13451001, 0.07458916, 0.05003023, 0.09187879, 0.05545106},
	},
}

var threeClassProfiles = map[ProfileType]profileSet{
	ProfileBMTG1: {
		Major: []float64{1.0000, 0.1573, 0.4200, 0.1570, 0.5296, 0.3669, 0.1632, 0.7711, 0.1676, 0.3827, 0.2113, 0.2965},
		Minor: []float64{1.0000, 0.2330, 0.3615, 0.3905, 0.2925, 0.3777, 0.1961, 0.7425, 0.2701, 0.2161, 0.4228, 0.2272},
		Other: []float64{1.0000, 0.2608, 0.3528, 0.2935, 0.4393, 0.3580, 0.2137, 0.7809, 0.2578, 0.2539, 0.3233, 0.2615},
	},
	ProfileBMTG2: {
		Major: []float64{1.00, 0.10, 0.42, 0.10, 0.53, 0.37, 0.10, 0.77, 0.10, 0.38, 0.21, 0.30},
		Minor: []float64{1.00, 0.10, 0.36, 0.39, 0.29, 0.38, 0.10, 0.74, 0.27, 0.10, 0.42, 0.23},
		Other: []float64{1.00, 0.26, 0.35, 0.29, 0.44, 0.36, 0.21, 0.78, 0.26, 0.25, 0.32, 0.26},
	},
	ProfileBMTG3: {
		Major: []float64{1.00, 0.00, 0.42, 0.00, 0.53, 0.37, 0.00, 0.76, 0.00, 0.38, 0.21, 0.30},
		Minor: []float64{1.00, 0.00, 0.36, 0.39, 0.10, 0.37, 0.00, 0.76, 0.27, 0.00, 0.42, 0.23},
		Other: []float64{1.00, 0.26, 0.35, 0.29, 0.44, 0.37, 0.21, 0.76, 0.26, 0.25, 0.32, 0.26},
	},
	ProfileEDMA: {
		Major: []float64{1.00, 0.29, 0.50, 0.40, 0.60, 0.56, 0.32, 0.80, 0.31, 0.45, 0.42, 0.39},
		Minor: []float64{1.00, 0.31, 0.44, 0.58, 0.33, 0.49, 0.29, 0.78, 0.43, 0.29, 0.53, 0.32},
		Other: []float64{1.00, 0.26, 0.35, 0.29, 0.44, 0.36, 0.21, 0.78, 0.26, 0.25, 0.32, 0.26},
	},
}

// profilesFor resolves the reference templates for a (variant, type) pair
func profilesFor(variant ClassifierVariant, profileType ProfileType) (profileSet, error) {
	var table map[ProfileType]profileSet
	switch variant {
	case TwoClass:
		table = twoClassProfiles
	case ThreeClass:
		table = threeClassProfiles
	default:
		return profileSet{}, fmt.Errorf("%w: unknown classifier variant %d", ErrUnsupportedProfileType, variant)
	}

	set, ok := table[profileType]
	if !ok {
		return profileSet{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedProfileType, profileType, variant)
	}
	return set, nil
}

// SupportedProfiles returns the profile identifiers available for a variant
func SupportedProfiles(variant ClassifierVariant) []ProfileType {
	switch variant {
	case TwoClass:
		return []ProfileType{ProfileTemperley, ProfileShaath, ProfileEDMA, ProfileEDMM}
	case ThreeClass:
		return []ProfileType{ProfileBMTG1, ProfileBMTG2, ProfileBMTG3, ProfileEDMA}
	default:
		return nil
	}
}
