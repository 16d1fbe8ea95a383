package engine

import "container/heap"

// Delayed side effects (staggered extra shots, buff reverts) are entries
// in this queue keyed by absolute match time and drained at the start of
// each tick. Host timers are never involved, so resolution order is
// identical for identical dt sequences.

type scheduledKind int

const (
	actionFireShot scheduledKind = iota
	actionRevertLucky
	actionRevertReflect
)

type scheduledAction struct {
	at          float64
	seq         int
	kind        scheduledKind
	combatantID string
	amount      float64
}

type actionQueue []*scheduledAction

func (q actionQueue) Len() int { return len(q) }

func (q actionQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		// seq breaks ties so equal-time actions keep insertion order
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q actionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *actionQueue) Push(x interface{}) { *q = append(*q, x.(*scheduledAction)) }

func (q *actionQueue) Pop() interface{} {
	old := *q
	n := len(old)
	a := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return a
}

type actionSchedule struct {
	q       actionQueue
	nextSeq int
}

func newActionSchedule() *actionSchedule {
	s := &actionSchedule{}
	heap.Init(&s.q)
	return s
}

func (s *actionSchedule) push(at float64, kind scheduledKind, combatantID string, amount float64) {
	s.nextSeq++
	heap.Push(&s.q, &scheduledAction{at: at, seq: s.nextSeq, kind: kind, combatantID: combatantID, amount: amount})
}

// popDue removes and returns all actions scheduled at or before now, in
// (time, insertion) order.
func (s *actionSchedule) popDue(now float64) []*scheduledAction {
	var due []*scheduledAction
	for s.q.Len() > 0 && s.q[0].at <= now {
		due = append(due, heap.Pop(&s.q).(*scheduledAction))
	}
	return due
}

func (s *actionSchedule) pending() int { return s.q.Len() }
