// SPDX-License-Identifier: MIT

package comm

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// World is a fixed set of ranks wired together by buffered channels.
// Rank r of the world is driven by the goroutine that holds Group(r).
type World struct {
	size    int
	root    *hub
	handles []*member

	open     atomic.Int64 // live sub-group handles
	messages atomic.Int64 // completed point-to-point deliveries
}

// NewWorld creates a world of size ranks.
//
// Errors:
//   - ErrBadSize when size < 1.
//
// Complexity:
//   - Time O(size²) for the link table, Space O(size²).
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewWorld(%d): %w", size, ErrBadSize)
	}

	w := &World{size: size}
	members := make([]int, size)
	for r := range members {
		members[r] = r
	}
	w.root = newHub(w, members)
	w.handles = make([]*member, size)
	for r := 0; r < size; r++ {
		w.handles[r] = &member{hub: w.root, rank: r, root: true}
	}

	return w, nil
}

// Size returns the number of ranks in the world.
func (w *World) Size() int { return w.size }

// Group returns the world handle for rank. It panics with
// ErrPartnerOutOfRange when rank is outside [0, Size()).
func (w *World) Group(rank int) Group {
	if rank < 0 || rank >= w.size {
		fatalf("World.Group(%d): %w", rank, ErrPartnerOutOfRange)
	}

	return w.handles[rank]
}

// OpenGroups reports how many sub-group handles created by Split have not
// been released yet. It is zero once every participant cleaned up.
func (w *World) OpenGroups() int64 { return w.open.Load() }

// Messages reports the number of completed point-to-point deliveries
// (self exchanges are not counted).
func (w *World) Messages() int64 { return w.messages.Load() }

// Run launches fn once per rank, each on its own goroutine with that rank's
// world handle, and waits for all of them. The first non-nil error is
// returned. fn must not return early on some ranks while others still
// expect it in a collective call; such peers would block forever.
func (w *World) Run(fn func(g Group) error) error {
	var eg errgroup.Group
	for r := 0; r < w.size; r++ {
		g := w.handles[r]
		eg.Go(func() error { return fn(g) })
	}

	return eg.Wait()
}

// Run creates a world of size ranks and runs fn on every rank.
func Run(size int, fn func(g Group) error) error {
	w, err := NewWorld(size)
	if err != nil {
		return err
	}

	return w.Run(fn)
}
