package aocgrid

import (
	"testing"
)

func TestStackQueue(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if v, ok := s.Peek(); !ok || v != 3 {
		t.Errorf("Peek = %v, %v; want 3", v, ok)
	}
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Errorf("stack order = %v, want [3 2 1]", got)
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty stack = ok")
	}

	q := NewQueue(1, 2)
	got = got[:0]
	q.While(func(v int) bool {
		got = append(got, v)
		if v < 4 {
			q.Push(v + 2)
		}
		return true
	})
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("queue order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("queue order = %v, want %v", got, want)
			break
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len after While = %d", q.Len())
	}
}

func TestNewQueueCopies(t *testing.T) {
	in := []string{"a", "b", "c"}
	q := NewQueue(in...)
	for q.Len() > 0 {
		q.Pop()
	}
	if in[0] != "a" || in[1] != "b" || in[2] != "c" {
		t.Errorf("caller slice = %q after draining the queue", in)
	}
}

func TestPQ(t *testing.T) {
	for _, tt := range []struct {
		name string
		pq   *PQ[string]
		want string
	}{
		{"min", MinQueue[string](), "abcd"},
		{"max", MaxQueue[string](), "dcba"},
	} {
		items := map[string]*PQI[string]{}
		for i, v := range []string{"c", "a", "d", "b"} {
			it := &PQI[string]{V: v, P: int64(i)}
			items[v] = it
			tt.pq.Push(it)
		}
		// Reprioritise so the letters sort by priority.
		for v, it := range items {
			it.P = int64(v[0] - 'a')
			tt.pq.Update(it)
		}
		if top := tt.pq.Peek(); string(tt.want[0]) != top.V {
			t.Errorf("%s: Peek = %v, want %c", tt.name, top, tt.want[0])
		}
		var got []byte
		for tt.pq.Len() > 0 {
			it := tt.pq.Pop()
			if it.Index() != -1 {
				t.Errorf("%s: popped item index = %d", tt.name, it.Index())
			}
			got = append(got, it.V[0])
		}
		if string(got) != tt.want {
			t.Errorf("%s: pop order = %q, want %q", tt.name, got, tt.want)
		}
	}
}
