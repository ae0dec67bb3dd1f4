package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned for an unknown or unset sample pattern
var ErrInvalidPattern = errors.New("invalid sample pattern")

// SamplePattern selects a fixed set of sub-pixel offsets for supersampling.
// The zero value is unset.
type SamplePattern int

const (
	SampleSingle SamplePattern = iota + 1 // One ray through the pixel center
	SampleFour                            // 2x2 grid
	SampleSix                             // 3 columns by 2 rows
	SampleNine                            // 3x3 grid
)

// Offset is a sub-pixel displacement in pixel-fraction units
type Offset struct {
	DX, DY float64
}

const third = 1.0 / 3.0

var patternOffsets = map[SamplePattern][]Offset{
	SampleSingle: {
		{0, 0},
	},
	SampleFour: {
		{-0.25, -0.25}, {0.25, -0.25},
		{-0.25, 0.25}, {0.25, 0.25},
	},
	SampleSix: {
		{-third, -0.25}, {0, -0.25}, {third, -0.25},
		{-third, 0.25}, {0, 0.25}, {third, 0.25},
	},
	SampleNine: {
		{-third, -third}, {0, -third}, {third, -third},
		{-third, 0}, {0, 0}, {third, 0},
		{-third, third}, {0, third}, {third, third},
	},
}

var patternNames = map[SamplePattern]string{
	SampleSingle: "single",
	SampleFour:   "four",
	SampleSix:    "six",
	SampleNine:   "nine",
}

// Offsets returns the pattern's sub-pixel offsets. Callers must not modify
// the returned slice.
func (p SamplePattern) Offsets() []Offset {
	return patternOffsets[p]
}

// Valid reports whether p is one of the defined patterns
func (p SamplePattern) Valid() bool {
	_, ok := patternOffsets[p]
	return ok
}

func (p SamplePattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SamplePattern(%d)", int(p))
}

// ParseSamplePattern accepts a pattern name ("four") or its sample count ("4")
func ParseSamplePattern(s string) (SamplePattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range patternNames {
		if s == name || s == fmt.Sprint(len(patternOffsets[p])) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}
