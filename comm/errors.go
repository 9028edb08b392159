// SPDX-License-Identifier: MIT
// Package comm: sentinel error set.
//
// Communication failures are fatal. Detected misuse panics with an error
// wrapping one of these sentinels (errors.Is works on the recovered value);
// only NewWorld returns an error value.

package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when a world is requested with fewer than one rank.
	ErrBadSize = errors.New("comm: world size must be >= 1")

	// ErrPartnerOutOfRange signals an Exchange partner outside [0, Size()).
	ErrPartnerOutOfRange = errors.New("comm: partner rank out of range")

	// ErrTagMismatch signals that the message received from a partner carries
	// a different tag than the one the receiver expects.
	ErrTagMismatch = errors.New("comm: message tag mismatch")

	// ErrCountMismatch signals send/receive buffers of different lengths.
	ErrCountMismatch = errors.New("comm: element count mismatch")

	// ErrReleased signals use of a group handle after Release.
	ErrReleased = errors.New("comm: group already released")

	// ErrWorldRelease signals an attempt to release a world handle.
	ErrWorldRelease = errors.New("comm: world group cannot be released")

	// ErrCollectiveMismatch signals a member entering the same collective
	// round twice before its peers arrived.
	ErrCollectiveMismatch = errors.New("comm: collective call mismatch")
)

// fatalf panics with a wrapped sentinel. Used only for misuse that leaves
// the group in an unrecoverable state.
func fatalf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
