package render

import "errors"

// ErrUnknownOutlier is returned by WriteNewick when an explicitly
// requested outlier name does not byte-equal any leaf label.
var ErrUnknownOutlier = errors.New("render: unknown outlier")
