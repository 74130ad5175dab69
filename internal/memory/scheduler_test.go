package memory

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	var got []string
	record := func(name string) func() { return func() { got = append(got, name) } }

	s.After(2*time.Second, 1, "late", record("late"))
	s.After(time.Second, 1, "first", record("first"))
	s.After(time.Second, 1, "second", record("second"))

	s.Advance(3*time.Second, 1)

	want := []string{"first", "second", "late"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, expected %v", got, want)
	}
	if s.Now() != 3*time.Second {
		t.Errorf("Now() = %v, expected 3s", s.Now())
	}
}

func TestSchedulerDropsStaleGeneration(t *testing.T) {
	var s scheduler
	ran := false
	s.After(time.Second, 1, "stale", func() { ran = true })

	s.Advance(2*time.Second, 2)
	if ran {
		t.Error("task of an old generation ran")
	}
	if n := len(s.Pending()); n != 0 {
		t.Errorf("pending = %d, expected stale task to be dropped", n)
	}
}

func TestSchedulerChainedTasks(t *testing.T) {
	var s scheduler
	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(time.Second, 1, "tick", tick)
	}
	s.After(time.Second, 1, "tick", tick)

	s.Advance(3500*time.Millisecond, 1)
	if count != 3 {
		t.Errorf("ticks = %d, expected 3", count)
	}
	if p := s.Pending(); !reflect.DeepEqual(p, []string{"tick"}) {
		t.Errorf("pending = %v, expected [tick]", p)
	}
}

func TestSchedulerNotDueYet(t *testing.T) {
	var s scheduler
	ran := false
	s.After(time.Second, 1, "later", func() { ran = true })

	s.Advance(999*time.Millisecond, 1)
	if ran {
		t.Error("task ran before its due time")
	}
	s.Advance(time.Millisecond, 1)
	if !ran {
		t.Error("task did not run at its due time")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	var s scheduler
	ran := false
	s.After(time.Second, 1, "a", func() { ran = true })
	s.After(2*time.Second, 1, "b", func() { ran = true })

	s.CancelAll()
	s.Advance(5*time.Second, 1)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestOpponentMemory(t *testing.T) {
	m := newOpponentMemory()
	all := func(int) bool { return true }

	m.see("cat", 1)
	m.see("cat", 1)
	if _, _, ok := m.recall(all); ok {
		t.Fatal("recall matched a single card seen twice")
	}

	m.see("dog", 4)
	m.see("dog", 7)
	m.see("cat", 2)
	a, b, ok := m.recall(all)
	if !ok || a != 1 || b != 2 {
		t.Errorf("recall = %d, %d, %v, expected cat pair 1, 2 by first sighting", a, b, ok)
	}

	m.forget("cat")
	a, b, ok = m.recall(all)
	if !ok || a != 4 || b != 7 {
		t.Errorf("recall after forget = %d, %d, %v, expected 4, 7", a, b, ok)
	}

	matched := func(id int) bool { return id != 7 }
	if _, _, ok := m.recall(matched); ok {
		t.Error("recall returned a pair with a matched card")
	}
}
