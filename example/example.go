// Command example solves a small key-and-door maze with aocgrid.
//
//	go run ./example --sample 1
//	go run ./example 2 input.txt
package main

import (
	_ "embed"
	"unicode"

	"github.com/maisem/aocgrid"
	"github.com/pkg/errors"
)

//go:embed example.go
var source []byte

func main() {
	aocgrid.Run(aocgrid.Solver[aocgrid.Dense[byte]]{
		Name:    "example",
		Parse:   parse,
		Part1:   part1,
		Part2:   part2,
		Samples: aocgrid.MustGet(aocgrid.SamplesFor(source, "part1", "part2")),
	})
}

func parse(lines []string) (aocgrid.Dense[byte], error) {
	g := aocgrid.ParseGrid(lines)
	if _, ok := aocgrid.Find(g, 'S'); !ok {
		return nil, errors.Wrap(aocgrid.ErrParse, "no start")
	}
	if _, ok := aocgrid.Find(g, 'E'); !ok {
		return nil, errors.Wrap(aocgrid.ErrParse, "no exit")
	}
	return g, nil
}

/*
want=10

#########
#S.a#..E#
#.###.#.#
#...A...#
#########
*/
func part1(p *aocgrid.Puzzle, g aocgrid.Dense[byte]) any {
	start, _ := aocgrid.Find(g, 'S')
	end, _ := aocgrid.Find(g, 'E')
	r, ok := aocgrid.AStarGrid(g, aocgrid.IsNot[byte]('#'), aocgrid.UnitCost[byte], start, end)
	if !ok {
		return "unreachable"
	}
	p.Debugf("path: %v", r.Path)
	return r.Cost
}

type state struct {
	at   aocgrid.Pt
	keys aocgrid.AsciiSet
}

// want=14
func part2(p *aocgrid.Puzzle, g aocgrid.Dense[byte]) any {
	start, _ := aocgrid.Find(g, 'S')
	r, ok := aocgrid.Dijkstra(state{at: start},
		func(s state) bool { return g.At(s.at) == 'E' },
		func(s state, visit func(state, int64)) {
			for _, d := range aocgrid.Dirs4 {
				q := s.at.Add(d)
				c, ok := g.AtOk(q)
				if !ok || c == '#' {
					continue
				}
				if unicode.IsUpper(rune(c)) && c != 'S' && c != 'E' && !s.keys.Contains(int(unicode.ToLower(rune(c)))) {
					continue
				}
				next := state{at: q, keys: s.keys}
				if unicode.IsLower(rune(c)) {
					next.keys.Insert(int(c))
				}
				visit(next, 1)
			}
		})
	if !ok {
		return "unreachable"
	}
	p.Debugf("keys held at exit: %v", r.Path[len(r.Path)-1].keys)
	return r.Cost
}
