// SPDX-License-Identifier: MIT

package comm

import (
	"slices"
	"sort"
	"sync"

	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

// linkDepth is the buffer of every directed link. One slot lets both peers
// of an Exchange post their send before either receives.
const linkDepth = 1

// message is one whole payload on a link.
type message struct {
	tag  int
	data []float64
}

// hub is the state shared by all members of one group.
type hub struct {
	world   *World
	members []int            // world rank of each group rank
	links   [][]chan message // links[src][dst]

	mu    sync.Mutex
	round *splitRound // pending Split, nil when none is in flight
}

// splitRound collects the arguments of one collective Split.
type splitRound struct {
	reqs    []splitReq
	seen    []bool
	arrived int
	done    chan struct{}
	result  []Group // indexed by parent rank; nil for Undefined
}

type splitReq struct {
	rank, color, key int
}

func newHub(w *World, members []int) *hub {
	n := len(members)
	links := make([][]chan message, n)
	for src := range links {
		links[src] = make([]chan message, n)
		for dst := range links[src] {
			if src != dst {
				links[src][dst] = make(chan message, linkDepth)
			}
		}
	}

	return &hub{world: w, members: members, links: links}
}

// member is the Group handle held by one rank.
type member struct {
	hub      *hub
	rank     int
	root     bool // world handle; never released
	released bool
}

var _ Group = (*member)(nil)

func (m *member) Size() int { m.mustBeLive("Size"); return len(m.hub.members) }

func (m *member) Rank() int { m.mustBeLive("Rank"); return m.rank }

func (m *member) mustBeLive(op string) {
	if m.released {
		fatalf("comm.%s(rank=%d): %w", op, m.rank, ErrReleased)
	}
}

// Exchange implements Group.
//
// Implementation:
//   - Stage 1: validate partner range and buffer lengths.
//   - Stage 2: post a snapshot of send on links[rank][partner]. If the
//     previous message on that link is still queued the post waits; the
//     partner drains it before it can start the matching Exchange.
//   - Stage 3: receive from links[partner][rank], check the tag, copy out.
func (m *member) Exchange(send, recv []float64, partner, tag int) {
	m.mustBeLive("Exchange")
	size := len(m.hub.members)
	if partner < 0 || partner >= size {
		fatalf("comm.Exchange(rank=%d, partner=%d, size=%d): %w", m.rank, partner, size, ErrPartnerOutOfRange)
	}
	if len(send) != len(recv) {
		fatalf("comm.Exchange(rank=%d, partner=%d): send %d vs recv %d: %w", m.rank, partner, len(send), len(recv), ErrCountMismatch)
	}
	if partner == m.rank {
		copy(recv, send)
		return
	}

	m.hub.links[m.rank][partner] <- message{tag: tag, data: slices.Clone(send)}
	msg := <-m.hub.links[partner][m.rank]
	if msg.tag != tag {
		fatalf("comm.Exchange(rank=%d, partner=%d): got tag %d, want %d: %w", m.rank, partner, msg.tag, tag, ErrTagMismatch)
	}
	if len(msg.data) != len(recv) {
		fatalf("comm.Exchange(rank=%d, partner=%d): got %d values, want %d: %w", m.rank, partner, len(msg.data), len(recv), ErrCountMismatch)
	}
	copy(recv, msg.data)
	m.hub.world.messages.Add(1)

	if klog.V(5).Enabled() {
		klog.Infof("comm: world %d <-> world %d tag=%d len=%d",
			m.hub.members[m.rank], m.hub.members[partner], tag, len(recv))
	}
}

// Split implements Group. The last member to arrive computes the partition
// and wakes the others.
func (m *member) Split(color, key int) Group {
	m.mustBeLive("Split")
	h := m.hub

	h.mu.Lock()
	r := h.round
	if r == nil {
		n := len(h.members)
		r = &splitRound{
			reqs: make([]splitReq, n),
			seen: make([]bool, n),
			done: make(chan struct{}),
		}
		h.round = r
	}
	if r.seen[m.rank] {
		h.mu.Unlock()
		fatalf("comm.Split(rank=%d): entered twice: %w", m.rank, ErrCollectiveMismatch)
	}
	r.seen[m.rank] = true
	r.reqs[m.rank] = splitReq{rank: m.rank, color: color, key: key}
	r.arrived++
	if r.arrived == len(h.members) {
		r.result = h.partition(r.reqs)
		h.round = nil
		close(r.done)
	}
	h.mu.Unlock()

	<-r.done

	return r.result[m.rank]
}

// partition builds one sub-hub per defined color. Members are ordered by
// (key, parent rank); colors are processed in ascending order so that hub
// creation is deterministic.
func (h *hub) partition(reqs []splitReq) []Group {
	out := make([]Group, len(reqs))
	byColor := lo.GroupBy(
		lo.Filter(reqs, func(q splitReq, _ int) bool { return q.color != Undefined }),
		func(q splitReq) int { return q.color },
	)
	colors := lo.Keys(byColor)
	sort.Ints(colors)

	for _, color := range colors {
		group := byColor[color]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].key != group[j].key {
				return group[i].key < group[j].key
			}
			return group[i].rank < group[j].rank
		})

		members := lo.Map(group, func(q splitReq, _ int) int { return h.members[q.rank] })
		sub := newHub(h.world, members)
		for newRank, q := range group {
			out[q.rank] = &member{hub: sub, rank: newRank}
		}
		h.world.open.Add(int64(len(group)))

		if klog.V(4).Enabled() {
			klog.Infof("comm: split color=%d -> world ranks %v", color, members)
		}
	}

	return out
}

// Release implements Group.
func (m *member) Release() {
	if m.root {
		fatalf("comm.Release(rank=%d): %w", m.rank, ErrWorldRelease)
	}
	m.mustBeLive("Release")
	m.released = true
	m.hub.world.open.Add(-1)
}
