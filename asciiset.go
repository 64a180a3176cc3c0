package aocgrid

import (
	"fmt"
	"math/bits"
	"strings"
)

// AsciiSet is a set of byte values 0..=255 stored as four 64-bit words.
// Value c lives in bit c&63 of word c>>6. The zero value is the empty set
// and sets compare with ==, so they work as map keys in search state.
type AsciiSet [4]uint64

// AsciiSetOf returns the set of bytes in s.
func AsciiSetOf(s string) AsciiSet {
	var a AsciiSet
	for i := 0; i < len(s); i++ {
		a.Insert(int(s[i]))
	}
	return a
}

// FullAsciiSet returns the set {0..=255}.
func FullAsciiSet() AsciiSet {
	return AsciiSet{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

func (a AsciiSet) Contains(c int) bool {
	if c < 0 || c > 255 {
		return false
	}
	return a[c>>6]&(1<<(c&63)) != 0
}

// Insert adds c and reports whether it was not already present. Values
// outside 0..=255 are rejected.
func (a *AsciiSet) Insert(c int) bool {
	if c < 0 || c > 255 || a.Contains(c) {
		return false
	}
	a[c>>6] |= 1 << (c & 63)
	return true
}

// Remove deletes c and reports whether it was present.
func (a *AsciiSet) Remove(c int) bool {
	if !a.Contains(c) {
		return false
	}
	a[c>>6] &^= 1 << (c & 63)
	return true
}

func (a AsciiSet) Len() int {
	n := 0
	for _, w := range a {
		n += bits.OnesCount64(w)
	}
	return n
}

func (a AsciiSet) IsEmpty() bool { return a == AsciiSet{} }

func (a AsciiSet) Union(b AsciiSet) AsciiSet {
	a.UnionWith(b)
	return a
}

func (a AsciiSet) Intersection(b AsciiSet) AsciiSet {
	a.IntersectWith(b)
	return a
}

func (a AsciiSet) Difference(b AsciiSet) AsciiSet {
	a.DifferenceWith(b)
	return a
}

func (a AsciiSet) SymmetricDifference(b AsciiSet) AsciiSet {
	a.SymmetricDifferenceWith(b)
	return a
}

func (a AsciiSet) Complement() AsciiSet {
	for i := range a {
		a[i] = ^a[i]
	}
	return a
}

func (a *AsciiSet) UnionWith(b AsciiSet) {
	for i := range a {
		a[i] |= b[i]
	}
}

func (a *AsciiSet) IntersectWith(b AsciiSet) {
	for i := range a {
		a[i] &= b[i]
	}
}

func (a *AsciiSet) DifferenceWith(b AsciiSet) {
	for i := range a {
		a[i] &^= b[i]
	}
}

func (a *AsciiSet) SymmetricDifferenceWith(b AsciiSet) {
	for i := range a {
		a[i] ^= b[i]
	}
}

// IsSubset reports whether every member of a is in b.
func (a AsciiSet) IsSubset(b AsciiSet) bool {
	return a.Difference(b).IsEmpty()
}

func (a AsciiSet) IsSuperset(b AsciiSet) bool {
	return b.IsSubset(a)
}

func (a AsciiSet) IsDisjoint(b AsciiSet) bool {
	return a.Intersection(b).IsEmpty()
}

// ForEach calls f for each member in ascending order until f returns
// false.
func (a AsciiSet) ForEach(f func(c byte) (keepGoing bool)) {
	for i, w := range a {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			if !f(byte(i<<6 | b)) {
				return
			}
			w &= w - 1
		}
	}
}

// Values returns the members in ascending order.
func (a AsciiSet) Values() []byte {
	out := make([]byte, 0, a.Len())
	a.ForEach(func(c byte) bool {
		out = append(out, c)
		return true
	})
	return out
}

func (a AsciiSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	a.ForEach(func(c byte) bool {
		if sb.Len() > 1 {
			sb.WriteByte(',')
		}
		if c > ' ' && c < 0x7f {
			sb.WriteByte(c)
		} else {
			sb.WriteString(quoteByte(c))
		}
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func quoteByte(c byte) string {
	return fmt.Sprintf(`\x%02x`, c)
}
