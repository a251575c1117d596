package model

import (
	"strings"

	"github.com/jsphweid/scl/constants"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Scale is a tuning: a one-line description and its intervals in file order.
// The note count written to and checked against a file is len(Notes).
type Scale struct {
	Description string
	Notes       []Note
}

func (s Scale) Count() int {
	return len(s.Notes)
}

func (s Scale) Equal(other Scale) bool {
	return s.Description == other.Description &&
		slices.EqualFunc(s.Notes, other.Notes, Note.Equal)
}

// Validate checks that s can be written and read back unchanged.
func (s Scale) Validate() error {
	if strings.ContainsAny(s.Description, "\r\n") {
		return ErrMultilineDescription
	}
	if strings.HasPrefix(s.Description, string(constants.CommentMarker)) {
		return ErrCommentDescription
	}
	for i, n := range s.Notes {
		if err := n.Validate(); err != nil {
			return errors.Wrapf(err, "note %d", i+1)
		}
	}
	return nil
}
