package distmatrix

import (
	"bufio"
	"fmt"
	"io"
)

// scanState names a state of the CSV parser's state machine. The machine
// walks the input byte by byte; each state accepts a narrow set of bytes
// and either stays, advances, or reports the first violation it finds.
type scanState int

const (
	// ExpectComment is the state at the start of every line until the
	// header is found: '#' starts a comment (skipped to end of line),
	// anything else starts the header.
	ExpectComment scanState = iota

	// InHeaderField accumulates bytes of the current header field.
	InHeaderField

	// BetweenHeaderFields is entered immediately after a header field's
	// comma; it forwards the next byte into InHeaderField.
	BetweenHeaderFields

	// InRowLabel accumulates bytes of a data row's label field.
	InRowLabel

	// InNumericField accumulates bytes of a data row's numeric field.
	InNumericField

	// BetweenRowFields is entered immediately after a numeric field's
	// comma; it forwards the next byte into InNumericField.
	BetweenRowFields

	// TrailingIgnore discards every remaining byte once all n data rows
	// have been read.
	TrailingIgnore
)

// parser holds the mutable state of a single Parse call.
type parser struct {
	opts  Options
	state scanState

	lineStart bool
	field     []byte
	headerIdx int

	n      int
	labels []string
	d      [][]float64

	rowIdx   int
	rowLabel string
	rowVals  []float64
}

// Parse reads r in the strict CSV distance-matrix grammar documented in the
// package doc comment and returns a validated DistanceMatrix, or the first
// violation encountered as a wrapped sentinel error.
func Parse(r io.Reader, opts ...Option) (*DistanceMatrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{opts: cfg, state: ExpectComment, lineStart: true}

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if doneErr := p.step(0, true); doneErr != nil {
				return nil, doneErr
			}
			break
		}
		if err != nil {
			return nil, err
		}
		if doneErr := p.step(b, false); doneErr != nil {
			return nil, doneErr
		}
	}

	if p.n == 0 {
		return nil, fmt.Errorf("%w: empty or headerless input", ErrRowShapeMismatch)
	}

	m := &DistanceMatrix{Labels: p.labels, D: p.d}
	if err := validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// step advances the state machine by one byte (or, when eof is true,
// signals end of input in place of a trailing newline).
func (p *parser) step(b byte, eof bool) error {
	switch p.state {
	case ExpectComment:
		return p.stepExpectComment(b, eof)
	case BetweenHeaderFields:
		p.state = InHeaderField
		p.field = p.field[:0]
		fallthrough
	case InHeaderField:
		return p.stepHeaderField(b, eof)
	case InRowLabel:
		return p.stepRowLabel(b, eof)
	case BetweenRowFields:
		p.state = InNumericField
		p.field = p.field[:0]
		fallthrough
	case InNumericField:
		return p.stepNumericField(b, eof)
	case TrailingIgnore:
		return nil
	default:
		return fmt.Errorf("distmatrix: unreachable parser state %d", p.state)
	}
}

func (p *parser) stepExpectComment(b byte, eof bool) error {
	if eof {
		return nil
	}
	if p.lineStart {
		switch {
		case b == '\n':
			return nil // blank line, stay at line start
		case b == '#':
			p.lineStart = false
			return nil
		default:
			p.state = InHeaderField
			p.lineStart = false
			p.field = p.field[:0]
			return p.step(b, false)
		}
	}
	if b == '\n' {
		p.lineStart = true
	}
	return nil
}

func (p *parser) appendField(b byte) error {
	if len(p.field) >= p.opts.InputMax {
		return fmt.Errorf("%w: field exceeds %d bytes", ErrFieldTooLong, p.opts.InputMax)
	}
	p.field = append(p.field, b)
	return nil
}

func (p *parser) stepHeaderField(b byte, eof bool) error {
	if !eof && b != ',' && b != '\n' {
		return p.appendField(b)
	}

	if p.headerIdx > 0 {
		if len(p.field) == 0 {
			return fmt.Errorf("%w: header field %d is empty", ErrMalformedLabel, p.headerIdx)
		}
		p.labels = append(p.labels, string(p.field))
	}
	p.headerIdx++

	switch {
	case eof:
		return p.finishHeader()
	case b == '\n':
		return p.finishHeader()
	default: // ','
		p.state = BetweenHeaderFields
		return nil
	}
}

func (p *parser) finishHeader() error {
	n := len(p.labels)
	if n == 0 {
		return fmt.Errorf("%w: header has no taxon labels", ErrMissingField)
	}
	if n > p.opts.MaxTaxa {
		return fmt.Errorf("%w: %d taxa exceeds limit %d", ErrTooManyTaxa, n, p.opts.MaxTaxa)
	}

	p.n = n
	p.d = make([][]float64, n)
	p.state = InRowLabel
	p.rowIdx = 0
	p.field = p.field[:0]
	return nil
}

func (p *parser) stepRowLabel(b byte, eof bool) error {
	if !eof && b != ',' {
		return p.appendField(b)
	}
	if eof || b == '\n' {
		return fmt.Errorf("%w: row %d ended before any numeric field", ErrRowShapeMismatch, p.rowIdx)
	}

	label := string(p.field)
	if label == "" {
		return fmt.Errorf("%w: row %d has empty label", ErrMalformedLabel, p.rowIdx)
	}
	if label != p.labels[p.rowIdx] {
		return fmt.Errorf("%w: row %d label %q does not match header label %q",
			ErrLabelMismatch, p.rowIdx, label, p.labels[p.rowIdx])
	}

	p.rowLabel = label
	p.rowVals = make([]float64, 0, p.n)
	p.field = p.field[:0]
	p.state = InNumericField
	return nil
}

func (p *parser) stepNumericField(b byte, eof bool) error {
	if !eof && b != ',' && b != '\n' {
		return p.appendField(b)
	}

	if len(p.field) == 0 {
		return fmt.Errorf("%w: row %d field %d is empty", ErrMissingField, p.rowIdx, len(p.rowVals))
	}
	v, err := parseNumberField(p.field)
	if err != nil {
		return fmt.Errorf("%w: row %d field %d %q", err, p.rowIdx, len(p.rowVals), string(p.field))
	}
	p.rowVals = append(p.rowVals, v)

	rowComplete := eof || b == '\n'
	if rowComplete {
		if len(p.rowVals) != p.n {
			return fmt.Errorf("%w: row %d has %d numeric fields, want %d",
				ErrRowShapeMismatch, p.rowIdx, len(p.rowVals), p.n)
		}

		p.d[p.rowIdx] = p.rowVals
		p.rowIdx++

		if p.rowIdx == p.n {
			p.state = TrailingIgnore
			return nil
		}

		p.state = InRowLabel
		p.field = p.field[:0]
		return nil
	}

	if len(p.rowVals) == p.n {
		return fmt.Errorf("%w: row %d has more than %d numeric fields",
			ErrRowShapeMismatch, p.rowIdx, p.n)
	}

	p.state = BetweenRowFields
	return nil
}

// parseNumberField validates and converts a numeric field per the grammar
// [0-9]+(\.[0-9]+)?, with no leading zeros other than the bare digit "0".
// Accumulation follows the fixed-point scheme: integer part v = 10v+digit,
// fractional part v += digit * 10^-k.
func parseNumberField(raw []byte) (float64, error) {
	dot := -1
	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			// fine
		case c == '.':
			if dot >= 0 {
				return 0, ErrMalformedNumber
			}
			dot = i
		default:
			return 0, ErrMalformedNumber
		}
	}

	intPart := raw
	fracPart := []byte(nil)
	if dot >= 0 {
		intPart = raw[:dot]
		fracPart = raw[dot+1:]
	}

	if len(intPart) == 0 || (dot >= 0 && len(fracPart) == 0) {
		return 0, ErrMalformedNumber
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return 0, ErrMalformedNumber
	}

	var v float64
	for _, c := range intPart {
		v = 10*v + float64(c-'0')
	}

	scale := 0.1
	for _, c := range fracPart {
		v += float64(c-'0') * scale
		scale /= 10
	}

	return v, nil
}
