// Package apkerr defines the fatal error kinds the prover can return.
//
// The core treats all input-validation and algebraic-consistency failures as
// fatal programming errors, not recoverable conditions: there is no retry, no
// partial proof, and no recovery path. Callers distinguish kinds with
// errors.Is against the sentinel values below.
package apkerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration covers a domain size that is not a power of two, or
	// one that exceeds the SRS capacity.
	ErrConfiguration = errors.New("apk: configuration error")

	// ErrInput covers a bitmask size mismatch or an all-zero bitmask.
	ErrInput = errors.New("apk: invalid input")

	// ErrAlgebraicInvariant covers a constraint polynomial that is not
	// divisible by the vanishing polynomial, a non-zero quotient remainder,
	// or a polynomial degree that disagrees with its expected value.
	ErrAlgebraicInvariant = errors.New("apk: algebraic invariant violated")
)

// Configurationf wraps ErrConfiguration with a formatted message.
func Configurationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}

// Inputf wraps ErrInput with a formatted message.
func Inputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInput}, args...)...)
}

// Invariantf wraps ErrAlgebraicInvariant with a formatted message.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrAlgebraicInvariant}, args...)...)
}
