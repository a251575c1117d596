package model

import (
	"math"

	"github.com/pkg/errors"
)

type NoteKind uint8

const (
	CentsKind NoteKind = iota + 1
	RatioKind
)

func (k NoteKind) String() string {
	switch k {
	case CentsKind:
		return "cents"
	case RatioKind:
		return "ratio"
	}
	return "unset"
}

// Note is one interval of a scale: either a cents offset or an exact ratio.
// Only the field matching kind is set, so == compares notes structurally.
type Note struct {
	kind  NoteKind
	cents float64
	ratio Ratio
}

func Cents(cents float64) Note {
	return Note{kind: CentsKind, cents: cents}
}

func FromRatio(r Ratio) Note {
	return Note{kind: RatioKind, ratio: r}
}

func (n Note) Kind() NoteKind { return n.kind }

func (n Note) Cents() (float64, bool) {
	return n.cents, n.kind == CentsKind
}

func (n Note) Ratio() (Ratio, bool) {
	return n.ratio, n.kind == RatioKind
}

// Equal reports whether both notes hold the same variant and value. Cents
// follow IEEE comparison, so a NaN note equals nothing. Cents(1200) and a 2/1
// ratio are different notes.
func (n Note) Equal(other Note) bool {
	return n == other
}

func (n Note) Validate() error {
	switch n.kind {
	case CentsKind:
		if math.IsNaN(n.cents) || math.IsInf(n.cents, 0) {
			return errors.Wrapf(ErrNonFiniteCents, "%v", n.cents)
		}
		return nil
	case RatioKind:
		if !n.ratio.valid() {
			return errors.Wrapf(ErrNonPositiveRatio, "%d/%d", n.ratio.num, n.ratio.den)
		}
		return nil
	}
	return ErrUnsetNote
}
