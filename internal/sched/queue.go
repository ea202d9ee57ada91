// Package sched provides a single-threaded virtual timer queue.
//
// Timers never fire on their own. The owner calls Advance with the current
// time and due callbacks run one at a time, in deadline order, on the
// caller's goroutine. While a callback runs, Now reports that timer's
// deadline, so timers armed from inside a callback keep an exact cadence
// regardless of how coarse the Advance steps are.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a pending timer. The zero Handle is never issued.
type Handle uint64

type timer struct {
	handle   Handle
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue holds pending timers against a virtual clock.
type Queue struct {
	now    time.Time
	timers timerHeap
	live   map[Handle]*timer
	seq    uint64
}

// New returns an empty queue whose clock starts at start.
func New(start time.Time) *Queue {
	return &Queue{
		now:  start,
		live: map[Handle]*timer{},
	}
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Time {
	return q.now
}

// After arms fn to run once d after the current virtual time.
func (q *Queue) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &timer{
		handle:   Handle(q.seq),
		deadline: q.now.Add(d),
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.timers, t)
	q.live[t.handle] = t
	return t.handle
}

// Cancel removes a pending timer. It reports whether the timer was pending.
func (q *Queue) Cancel(h Handle) bool {
	t, ok := q.live[h]
	if !ok {
		return false
	}
	delete(q.live, h)
	heap.Remove(&q.timers, t.index)
	return true
}

// Pending reports whether h is still armed.
func (q *Queue) Pending(h Handle) bool {
	_, ok := q.live[h]
	return ok
}

// Len returns the number of armed timers.
func (q *Queue) Len() int {
	return len(q.live)
}

// CancelAll drops every pending timer.
func (q *Queue) CancelAll() {
	q.timers = nil
	q.live = map[Handle]*timer{}
}

// Advance moves the clock to now, running every timer due on the way.
// It returns the number of callbacks run. Moving backwards is a no-op.
func (q *Queue) Advance(now time.Time) int {
	if now.Before(q.now) {
		return 0
	}
	fired := 0
	for len(q.timers) > 0 {
		next := q.timers[0]
		if next.deadline.After(now) {
			break
		}
		heap.Pop(&q.timers)
		delete(q.live, next.handle)
		if next.deadline.After(q.now) {
			q.now = next.deadline
		}
		next.fn()
		fired++
	}
	q.now = now
	return fired
}
