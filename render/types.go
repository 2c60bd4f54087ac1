package render

// Mode names the pipeline's three output modes; each constant below
// describes the calls that produce that mode's output. No function in this
// package takes a Mode: callers make those calls themselves.
type Mode int

const (
	// Default runs Build and emits the edge stream during the run.
	Default Mode = iota
	// Matrix runs Build suppressing edge emission, then emits the
	// expanded distance matrix.
	Matrix
	// Newick runs Build suppressing edge emission, then emits the
	// Newick tree using the configured outlier.
	Newick
)

// config holds WriteNewick's tunable behavior.
type config struct {
	outlier    string
	hasOutlier bool
}

// Option configures a render call. Currently only WriteNewick consumes
// Options.
type Option func(*config)

// WithOutlier selects the leaf to use as the Newick rooting outlier by
// name. Without this option, WriteNewick chooses the leaf with the
// greatest row-sum, breaking ties by lowest index.
func WithOutlier(name string) Option {
	return func(c *config) {
		c.outlier = name
		c.hasOutlier = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
