package encoder

// Option configures an Encoder.
type Option func(*Encoder)

// DefaultPrecision formats doubles with the fewest digits that represent
// them exactly.
const DefaultPrecision = -1

// WithPrecision sets the number of digits after the decimal point used for
// doubles. A negative precision selects DefaultPrecision.
func WithPrecision(precision int) Option {
	return func(e *Encoder) {
		if precision < 0 {
			precision = DefaultPrecision
		}
		e.precision = precision
	}
}
