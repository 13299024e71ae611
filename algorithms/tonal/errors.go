package tonal

import "errors"

// Error taxonomy for key classification. All conditions are local to a
// single configure/compute call; nothing is retried and no state needs
// rolling back.
var (
	// ErrUnsupportedProfileType signals an unrecognized profile identifier
	// at configuration time.
	ErrUnsupportedProfileType = errors.New("unsupported profile type")

	// ErrInvalidProfileSize signals a resize target that is not a positive
	// multiple of 12.
	ErrInvalidProfileSize = errors.New("profile size is not a positive multiple of 12")

	// ErrInvalidInputSize signals an input profile whose length is not a
	// positive multiple of 12.
	ErrInvalidInputSize = errors.New("input profile size is not a positive multiple of 12")

	// ErrDegenerateInput signals a flat (zero variance) input profile.
	// Normalized correlation is undefined for it, and a flat profile
	// carries no tonal evidence to classify.
	ErrDegenerateInput = errors.New("input profile has zero variance")

	// ErrKeyNotFound signals that no shift produced a usable correlation
	// maximum.
	ErrKeyNotFound = errors.New("could not resolve a key index")
)
