package distmatrix

import "errors"

// Sentinel errors returned by Parse. Each corresponds to exactly one
// violation kind; callers distinguish them with errors.Is. Positional
// detail (line, field, value) is attached via fmt.Errorf("%w: ...", ...)
// wrapping, so errors.Is still matches the sentinel underneath.
var (
	// ErrFieldTooLong is returned when a field exceeds InputMax bytes.
	ErrFieldTooLong = errors.New("distmatrix: field too long")

	// ErrMalformedNumber is returned for an illegal digit, multiple dots,
	// or a disallowed leading zero in a numeric field.
	ErrMalformedNumber = errors.New("distmatrix: malformed number")

	// ErrMissingField is returned for an empty numeric field.
	ErrMissingField = errors.New("distmatrix: missing field")

	// ErrMalformedLabel is returned for an empty label field: a header
	// taxon label (any field after the mandatory-empty first one) or a
	// data row's leading label field.
	ErrMalformedLabel = errors.New("distmatrix: malformed label")

	// ErrRowShapeMismatch is returned when a data row does not have
	// exactly n+1 fields.
	ErrRowShapeMismatch = errors.New("distmatrix: row shape mismatch")

	// ErrLabelMismatch is returned when a row's label does not byte-equal
	// the header label at the same column.
	ErrLabelMismatch = errors.New("distmatrix: label mismatch")

	// ErrNonZeroDiagonal is returned when d[i][i] != 0 (single precision).
	ErrNonZeroDiagonal = errors.New("distmatrix: non-zero diagonal")

	// ErrAsymmetric is returned when d[i][j] != d[j][i].
	ErrAsymmetric = errors.New("distmatrix: asymmetric matrix")

	// ErrTooManyTaxa is returned when n exceeds the configured MaxTaxa.
	ErrTooManyTaxa = errors.New("distmatrix: too many taxa")
)
