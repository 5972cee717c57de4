package db

import (
	"fmt"
	"strings"
)

// SwipeType is the closed set of actions one profile can take on another.
type SwipeType string

const (
	SwipeLike      SwipeType = "LIKE"
	SwipePass      SwipeType = "PASS"
	SwipeSuperLike SwipeType = "SUPER_LIKE"
)

// ParseSwipeType accepts the canonical names case-insensitively.
func ParseSwipeType(s string) (SwipeType, error) {
	t := SwipeType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown swipe type %q", s)
	}
	return t, nil
}

func (t SwipeType) Valid() bool {
	switch t {
	case SwipeLike, SwipePass, SwipeSuperLike:
		return true
	}
	return false
}

// Positive reports whether the action expresses interest (LIKE or SUPER_LIKE).
func (t SwipeType) Positive() bool {
	return t == SwipeLike || t == SwipeSuperLike
}

type Gender string

const (
	GenderMale      Gender = "MALE"
	GenderFemale    Gender = "FEMALE"
	GenderNonBinary Gender = "NON_BINARY"
)

// AllGenders is ordered by bit position.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	if g.Bit() == 0 {
		return "", fmt.Errorf("unknown gender %q", s)
	}
	return g, nil
}

// Bit returns the GenderSet bit of g, or 0 for an unknown gender.
func (g Gender) Bit() GenderSet {
	for i, known := range AllGenders {
		if g == known {
			return 1 << i
		}
	}
	return 0
}

// GenderSet is a bitmask of genders, stored as a small integer so that
// "does the set contain X" can be evaluated in SQL with a bitwise AND.
type GenderSet uint8

func NewGenderSet(genders ...Gender) GenderSet {
	var s GenderSet
	for _, g := range genders {
		s |= g.Bit()
	}
	return s
}

func (s GenderSet) Has(g Gender) bool {
	b := g.Bit()
	return b != 0 && s&b != 0
}

func (s GenderSet) Genders() []Gender {
	var out []Gender
	for _, g := range AllGenders {
		if s.Has(g) {
			out = append(out, g)
		}
	}
	return out
}

func (s GenderSet) Empty() bool { return s.Genders() == nil }
