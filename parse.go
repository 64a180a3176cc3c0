package aocgrid

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Lines reads r and returns its lines without trailing newlines.
func Lines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16<<20)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading lines")
	}
	return lines, nil
}

// ParseGrid returns the exact character matrix of lines. Empty lines
// become empty rows.
func ParseGrid(lines []string) Dense[byte] {
	return ParseGridTo(lines, func(c byte) byte { return c })
}

// ParseGridTo is ParseGrid with every character mapped through f.
func ParseGridTo[T any](lines []string, f func(c byte) T) Dense[T] {
	out := make(Dense[T], len(lines))
	for y, line := range lines {
		out[y] = make([]T, len(line))
		for x := 0; x < len(line); x++ {
			out[y][x] = f(line[x])
		}
	}
	return out
}

// ParseGridToSparse builds a sparse grid from lines, with row index y and
// column index x. Characters for which f returns false are skipped.
func ParseGridToSparse[T any](lines []string, f func(c byte) (T, bool)) Sparse[T] {
	out := NewSparse[T]()
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if v, ok := f(line[x]); ok {
				out[Pt{x, y}] = v
			}
		}
	}
	return out
}

// Split splits s around runs of whitespace.
func Split(s string) []string {
	return strings.Fields(s)
}

// SplitFunc splits s at every rune satisfying sep, trims whitespace from
// each piece and drops empty pieces.
func SplitFunc(s string, sep func(rune) bool) []string {
	var out []string
	for _, f := range strings.FieldsFunc(s, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SplitRune splits s at sep, trimming and dropping empty pieces.
func SplitRune(s string, sep rune) []string {
	return SplitFunc(s, func(r rune) bool { return r == sep })
}

// SplitString splits s at every occurrence of sep, trimming and dropping
// empty pieces.
func SplitString(s, sep string) []string {
	var out []string
	for _, f := range strings.Split(s, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SplitByEmptyLine groups lines separated by runs of blank lines. Groups
// are never empty.
func SplitByEmptyLine(lines []string) [][]string {
	var groups [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// ParseInt parses a base-10 integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "bad integer %q", s)
	}
	return v, nil
}

var intRx = regexp.MustCompile(`-?\d+`)

// ParseInts returns every integer embedded in s, in order. A minus sign
// directly before a digit belongs to the number.
func ParseInts(s string) ([]int, error) {
	fields := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Int returns the int value of the string. It panics on bad input.
func Int(s string) int {
	return MustGet(ParseInt(s))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Digit returns the digit value of the rune. It panics if r is not a
// decimal digit.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(errors.Wrapf(ErrParse, "not a digit: %q", r))
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	out := make([]int, 0, len(line))
	for _, c := range line {
		out = append(out, Digit(c))
	}
	return out
}

// ParseBinary parses a binary string with an optional 0b prefix.
func ParseBinary(in string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(in), "0b"), 2, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "bad binary %q", in)
	}
	return v, nil
}
