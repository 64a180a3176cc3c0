package aocgrid

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrSampleMismatch is returned when a part's answer on its sample input
// differs from the expected one.
var ErrSampleMismatch = errors.New("sample mismatch")

// Sample is a worked example copied from the puzzle text.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample reads a doc comment of the form
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	return Sample{Want: strings.TrimSpace(m[1]), Input: m[2]}, true
}

// ExtractSamples parses Go source and returns the samples found in the doc
// comments of its top-level functions, keyed by function name. A sample
// with only a want= line reuses the input of the previous sample in the
// file.
func ExtractSamples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parsing source for samples")
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.Input = Or(s.Input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}

// SamplesFor maps the samples on the named part functions to part numbers.
// Parts without a sample are left out.
func SamplesFor(src []byte, part1, part2 string) (map[int]Sample, error) {
	all, err := ExtractSamples(src)
	if err != nil {
		return nil, err
	}
	out := make(map[int]Sample)
	for i, name := range []string{part1, part2} {
		if s, ok := all[name]; ok {
			out[i+1] = s
		}
	}
	return out, nil
}
