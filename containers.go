package aocgrid

import (
	"container/heap"
	"fmt"
	"slices"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int { return len(s.s) }

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// While pops until the stack is empty or f returns false.
func (s *Stack[T]) While(f func(T) bool) {
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		if !f(v) {
			return
		}
	}
}

// NewQueue returns a queue holding a copy of in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: slices.Clone(in)}
}

// Queue is a FIFO.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	var zero T
	q.q[0] = zero
	q.q = q.q[1:]
	return v, true
}

// While pops until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	for v, ok := q.Pop(); ok; v, ok = q.Pop() {
		if !f(v) {
			return
		}
	}
}

// PQI is an item in a PQ. Its priority may be changed in place followed
// by PQ.Update.
type PQI[T any] struct {
	V  T
	P  int64
	ix int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the item's heap position, or -1 once popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// MinQueue returns a PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{pq: pq[T]{min: true}}
}

// MaxQueue returns a PQ that pops the highest priority first. The zero
// PQ behaves the same.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

func (pq *PQ[T]) Update(v *PQI[T]) {
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q   []*PQI[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	i := x.(*PQI[T])
	i.ix = len(pq.q)
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1
	pq.q = old[:n-1]
	return item
}
