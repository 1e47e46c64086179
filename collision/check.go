package collision

import (
	"fmt"
	"sort"

	"github.com/milk9111/speedgame/levels"
)

type ProblemKind int

const (
	ProblemOverlap ProblemKind = iota
	ProblemStartInside
	ProblemDegenerate
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemOverlap:
		return "overlap"
	case ProblemStartInside:
		return "start-inside"
	case ProblemDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Problem is a single lint finding about a level.
type Problem struct {
	Kind      ProblemKind
	Platforms []int
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemOverlap:
		return fmt.Sprintf("platforms %d and %d overlap", p.Platforms[0], p.Platforms[1])
	case ProblemStartInside:
		return fmt.Sprintf("player start is inside platform %d", p.Platforms[0])
	case ProblemDegenerate:
		return fmt.Sprintf("platform %d has no area", p.Platforms[0])
	default:
		return p.Kind.String()
	}
}

// Check lints a level: zero-area platforms, overlapping platforms, and a
// player start buried inside a platform. Findings are ordered by kind and
// then by platform index.
func Check(level *levels.Level) []Problem {
	if level == nil {
		return nil
	}
	w := NewWorld(level)

	var problems []Problem
	for i := 0; i < level.Len(); i++ {
		if !level.Platform(i).HasArea() {
			problems = append(problems, Problem{Kind: ProblemDegenerate, Platforms: []int{i}})
		}
	}

	for i := 0; i < level.Len(); i++ {
		others := w.Overlapping(i)
		sort.Ints(others)
		for _, j := range others {
			if j <= i {
				continue
			}
			problems = append(problems, Problem{Kind: ProblemOverlap, Platforms: []int{i, j}})
		}
	}

	if idx, ok := w.PlatformAt(level.PlayerStart()); ok {
		problems = append(problems, Problem{Kind: ProblemStartInside, Platforms: []int{idx}})
	}

	sort.SliceStable(problems, func(a, b int) bool {
		return problems[a].Kind < problems[b].Kind
	})
	return problems
}
