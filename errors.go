package numeric

import "errors"

// ErrInvalidFormat is returned when a descriptor is requested for a value that is not numeric.
var ErrInvalidFormat = errors.New("numeric: value is not numeric")

// ErrInvalidPattern is returned for layout templates that do not hold exactly one placeholder.
var ErrInvalidPattern = errors.New("numeric: invalid pattern")

// ErrInvalidDescriptor is returned when descriptor fields break its invariants.
var ErrInvalidDescriptor = errors.New("numeric: invalid descriptor")

// ErrInvalidAttribute is returned when a transported attribute cannot be decoded.
var ErrInvalidAttribute = errors.New("numeric: invalid attribute")

// ErrUnknownLocale is returned when no rules exist for a locale or any of its parents.
var ErrUnknownLocale = errors.New("numeric: unknown locale")
