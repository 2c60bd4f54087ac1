package distmatrix

// Options configures Parse. Use DefaultOptions to obtain the compile-time
// defaults (InputMax, MaxTaxa); override via With* functions.
type Options struct {
	// InputMax bounds the byte length of any single field.
	InputMax int

	// MaxTaxa bounds the number of taxa (n) a matrix may hold.
	MaxTaxa int
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// DefaultOptions returns Options initialized to the package defaults:
//
//	InputMax = InputMax (const)
//	MaxTaxa  = MaxTaxa (const)
func DefaultOptions() Options {
	return Options{
		InputMax: InputMax,
		MaxTaxa:  MaxTaxa,
	}
}

// WithInputMax overrides the per-field byte limit. Panics if max <= 0:
// this is a programmer error, not a data-dependent condition.
func WithInputMax(max int) Option {
	if max <= 0 {
		panic("distmatrix: WithInputMax requires a positive limit")
	}

	return func(o *Options) {
		o.InputMax = max
	}
}

// WithMaxTaxa overrides the taxon-count limit. Panics if max <= 0.
func WithMaxTaxa(max int) Option {
	if max <= 0 {
		panic("distmatrix: WithMaxTaxa requires a positive limit")
	}

	return func(o *Options) {
		o.MaxTaxa = max
	}
}
