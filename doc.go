// Package bigmath provides Int, an immutable arbitrary-precision signed integer.
//
// Magnitude arithmetic is delegated to a calculator.Calculator. The calculator is chosen
// when values are created, through a Math factory:
//
//	m := bigmath.New(calculator.Portable{})
//	x, err := m.Of("-3640")
//	y, err := x.ShiftedRight(4) // -228
//
// The package-level constructors (Of, OfInt64, Parse, ...) use the calculator returned by
// calculator.Detect. Results of an operation use the calculator of the receiver.
//
// Values are never modified after construction and can be shared freely between goroutines.
package bigmath
