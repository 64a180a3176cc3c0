package main

import (
	"bytes"
	"testing"

	"github.com/maisem/aocgrid"
)

func TestSamples(t *testing.T) {
	samples, err := aocgrid.SamplesFor(source, "part1", "part2")
	if err != nil {
		t.Fatal(err)
	}
	s := aocgrid.Solver[aocgrid.Dense[byte]]{
		Parse:   parse,
		Part1:   part1,
		Part2:   part2,
		Samples: samples,
	}
	for _, part := range []string{"1", "2"} {
		var out bytes.Buffer
		cmd := s.Command()
		cmd.SetArgs([]string{"--sample", part})
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err != nil {
			t.Errorf("part %s: %v", part, err)
		}
	}
}
