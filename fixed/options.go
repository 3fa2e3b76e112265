// SPDX-License-Identifier: MIT

// Package fixed: functional configuration for diagnostic rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Rendering is for diagnostics only; the output is not a parseable format.
package fixed

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision selects the shortest representation that round-trips
	// a float32 (strconv precision -1).
	DefaultPrecision = -1

	// DefaultSeparator is written between consecutive elements.
	DefaultSeparator = ", "

	// DefaultOpen and DefaultClose bracket every rendered vector.
	DefaultOpen  = "["
	DefaultClose = "]"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "fixed: WithPrecision: precision must be >= -1"
	panicBracketsInvalid  = "fixed: WithBrackets: brackets must be non-empty"
)

// Option mutates rendering options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective rendering configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision int    // digits after the point, or -1 for shortest
	separator string // between elements
	open      string // before the first element
	close     string // after the last element
}

// WithPrecision renders every element with a fixed number of digits after
// the decimal point ('f' format). -1 restores the shortest round-trip form.
// Panics when precision < -1.
func WithPrecision(precision int) Option {
	if precision < DefaultPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// WithSeparator sets the text written between consecutive elements.
// An empty separator is allowed.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithBrackets sets the delimiters around each rendered vector.
// Panics when either delimiter is empty.
func WithBrackets(open, close string) Option {
	if open == "" || close == "" {
		panic(panicBracketsInvalid)
	}

	return func(o *Options) {
		o.open = open
		o.close = close
	}
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Precision returns the configured precision.
func (o Options) Precision() int { return o.precision }

// Separator returns the configured element separator.
func (o Options) Separator() string { return o.separator }

// Brackets returns the configured delimiters.
func (o Options) Brackets() (open, close string) { return o.open, o.close }

// gatherOptions applies user setters over defaults in order; later wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		separator: DefaultSeparator,
		open:      DefaultOpen,
		close:     DefaultClose,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
