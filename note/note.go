// Package note reads and writes single interval tokens of a scale file.
//
// A token containing a "." is a cents value ("76.049", "1200.", ".5"). Any
// other token is a ratio, "num/den" or a bare integer meaning num/1. Ratios
// are written back with an explicit denominator and cents always keep a ".",
// so Parse(Format(n)) gives back n for every valid note.
package note

import (
	"strconv"
	"strings"

	"github.com/jsphweid/scl/constants"
	"github.com/jsphweid/scl/model"
	"github.com/pkg/errors"
)

var (
	ErrInvalidCents = errors.New("invalid cents value")
	ErrInvalidRatio = errors.New("invalid ratio value")
)

// Parse reads one note token. The token must already be trimmed.
func Parse(token string) (model.Note, error) {
	if strings.Contains(token, constants.CentsMarker) {
		cents, err := parseCents(token)
		if err != nil {
			return model.Note{}, err
		}
		return model.Cents(cents), nil
	}

	r, err := parseRatio(token)
	if err != nil {
		return model.Note{}, err
	}
	return model.FromRatio(r), nil
}

func parseCents(token string) (float64, error) {
	// ParseFloat also takes hex floats, "Inf" and "NaN"; the format only has
	// plain decimals.
	if !isDecimal(token) {
		return 0, errors.Wrapf(ErrInvalidCents, "%q", token)
	}
	cents, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCents, "%q", token)
	}
	return cents, nil
}

func isDecimal(token string) bool {
	for _, c := range token {
		switch {
		case c >= '0' && c <= '9':
		case c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

func parseRatio(token string) (model.Ratio, error) {
	numStr, denStr, hasDen := strings.Cut(token, constants.RatioSeparator)
	num, err := strconv.ParseUint(numStr, 10, constants.RatioBitSize)
	if err != nil {
		return model.Ratio{}, errors.Wrapf(ErrInvalidRatio, "%q: bad numerator", token)
	}

	den := uint64(1)
	if hasDen {
		den, err = strconv.ParseUint(denStr, 10, constants.RatioBitSize)
		if err != nil {
			return model.Ratio{}, errors.Wrapf(ErrInvalidRatio, "%q: bad denominator", token)
		}
	}

	r, err := model.NewRatio(uint32(num), uint32(den))
	if err != nil {
		return model.Ratio{}, errors.Wrapf(ErrInvalidRatio, "%q: %v", token, err)
	}
	return r, nil
}

// Format writes n in its canonical form: the shortest decimal that reads back
// as the same float for cents, "num/den" for ratios.
func Format(n model.Note) string {
	if cents, ok := n.Cents(); ok {
		s := strconv.FormatFloat(cents, 'f', -1, 64)
		if !strings.Contains(s, constants.CentsMarker) {
			s += ".0"
		}
		return s
	}
	r, _ := n.Ratio()
	return strconv.FormatUint(uint64(r.Num()), 10) + constants.RatioSeparator +
		strconv.FormatUint(uint64(r.Den()), 10)
}
