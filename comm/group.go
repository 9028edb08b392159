// SPDX-License-Identifier: MIT

package comm

// Undefined is the color that opts a member out of Split: it takes part in
// the collective call but receives a nil Group.
const Undefined = -1

// Group is an ordered set of ranks supporting paired exchange and
// collective split. A Group value is owned by exactly one goroutine (the
// rank it represents); it is not safe for concurrent use by several.
type Group interface {
	// Size returns the number of ranks in the group.
	Size() int

	// Rank returns the caller's rank, a dense index in [0, Size()).
	Rank() int

	// Exchange sends send to partner and receives the partner's buffer into
	// recv in one step. Both buffers must have the same length, and the
	// partner must call Exchange with the caller's rank and the same tag.
	// Exchanging with oneself copies send into recv.
	Exchange(send, recv []float64, partner, tag int)

	// Split partitions the group. Every member must call it; members with
	// equal color form one sub-group ordered by (key, current rank). A
	// member passing Undefined receives nil. The returned group must be
	// released by the caller.
	Split(color, key int) Group

	// Release frees a group obtained from Split. World handles cannot be
	// released.
	Release()
}
