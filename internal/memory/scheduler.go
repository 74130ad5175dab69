package memory

import (
	"container/heap"
	"time"
)

// task is a continuation due at a point on the session clock.
type task struct {
	at   time.Duration
	seq  uint64 // insertion order, breaks ties between equal due times
	gen  uint64 // session generation the task belongs to
	name string
	run  func()
}

// taskQueue is a min-heap ordered by (at, seq).
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// scheduler is a cooperative event queue driven by an explicit clock.
// Nothing runs until Advance is called, and everything runs on the caller's
// goroutine.
type scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// After schedules fn to run d after the current clock for generation gen.
func (s *scheduler) After(d time.Duration, gen uint64, name string, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.queue, &task{
		at:   s.now + d,
		seq:  s.seq,
		gen:  gen,
		name: name,
		run:  fn,
	})
}

// Advance moves the clock forward by dt and runs every task that falls due,
// in due order. Tasks scheduled while advancing run in the same call if they
// fall due before the new clock. Tasks of another generation are dropped.
func (s *scheduler) Advance(dt time.Duration, gen uint64) {
	target := s.now + dt
	for s.queue.Len() > 0 && s.queue[0].at <= target {
		t := heap.Pop(&s.queue).(*task)
		s.now = t.at
		if t.gen != gen {
			continue
		}
		t.run()
	}
	s.now = target
}

// CancelAll drops every pending task.
func (s *scheduler) CancelAll() {
	s.queue = nil
}

// Pending returns the names of pending tasks in due order.
func (s *scheduler) Pending() []string {
	q := make(taskQueue, len(s.queue))
	copy(q, s.queue)
	names := make([]string, 0, len(q))
	for q.Len() > 0 {
		names = append(names, heap.Pop(&q).(*task).name)
	}
	return names
}

// Now returns the session clock.
func (s *scheduler) Now() time.Duration {
	return s.now
}
