// Package builder provides reusable “functional‐options”‐style constructors
// for the dense operands fed to the hypercube multiplication engine.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the value distribution.
//   - Value distributions (ValueFn implementations):
//     – DecimalValueFn:    (r mod 100)/10, i.e. one decimal in [0.0, 9.9].
//     – UniformValueFn:    uniform ∼U[min,max).
//     – ConstantValueFn:   fixed user-provided value.
//   - Constructors:
//     – RandomDense:       one n×n matrix drawn row-major from the RNG stream.
//     – RandomPair:        A then B drawn from the same stream.
//     – Identity:          I_n, handy as a neutral operand in tests.
//
// Guarantees:
//
//   - Determinism is explicit: randomness flows only through WithSeed/WithRand,
//     never through process-wide seed state.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors for invalid build parameters (ErrTooSmall,
//     ErrNeedRandSource), wrapped with method context.
package builder
