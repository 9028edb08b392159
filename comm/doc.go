// Package comm is an in-process message-passing substrate for SPMD
// algorithms: every participant is a goroutine that owns a rank in a
// process group and talks to its peers only through the group handle.
//
// The package provides:
//
//   - Group, the explicit communicator handle: Size, Rank, paired Exchange,
//     collective Split and Release. There is no ambient "current
//     communicator"; callers pass handles down their call chain.
//   - World, a fixed set of ranks connected by per-link buffered channels,
//     and Run, which launches one goroutine per rank and joins them.
//
// Semantics follow the familiar communicator model:
//
//   - Exchange is a combined send/receive with one partner. Both peers may
//     call it at the same time without deadlocking, and each receives a
//     whole snapshot of the other's buffer as it was at the call.
//   - Split is collective: it returns only after every member of the group
//     has called it. Members passing the same color end up in the same
//     sub-group, ordered by (key, parent rank).
//   - Sub-groups must be released by their owner. World.OpenGroups reports
//     how many sub-group handles are still live.
//
// There is no cancellation or timeout. A member that skips a collective
// call blocks its peers forever; misuse that can be detected locally
// (partner out of range, tag or length mismatch, use after release) panics
// with an error wrapping one of the package sentinels.
package comm
