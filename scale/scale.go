// Package scale reads and writes Scala scale files (.scl).
//
// A file is a description line, a note count line and one note per line.
// Lines starting with "!" are comments and may appear anywhere. Anything
// after the first field of a note line is ignored:
//
//	! meanquar.scl
//	1/4-comma meantone scale. Pietro Aaron's temperament (1523)
//	 12
//	!
//	 76.04900
//	 5/4 text after the note is ignored
//	 ...
//
// Format writes the canonical form: no comments, no indentation, the count
// taken from the notes themselves and every line newline-terminated.
package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/scl/constants"
	"github.com/jsphweid/scl/model"
	"github.com/jsphweid/scl/note"
	"github.com/jsphweid/scl/util"
	"github.com/pkg/errors"
)

type line struct {
	num  int
	text string
}

func uncommentedLines(text string) []line {
	var res []line
	for i, l := range util.SplitLines(text) {
		if len(l) > 0 && l[0] == constants.CommentMarker {
			continue
		}
		res = append(res, line{num: i + 1, text: l})
	}
	return res
}

func parseCount(l line) (int, error) {
	s := strings.TrimSpace(l.text)
	count, err := strconv.ParseUint(s, 10, 0)
	if err != nil || count > math.MaxInt {
		return 0, errors.Wrapf(ErrInvalidCount, "line %d: %q", l.num, s)
	}
	return int(count), nil
}

// Parse reads a whole scale file. The first error found is returned and no
// partial scale comes with it.
func Parse(text string) (model.Scale, error) {
	lines := uncommentedLines(text)
	if len(lines) == 0 {
		return model.Scale{}, ErrMissingDescription
	}
	description := lines[0].text

	if len(lines) == 1 {
		return model.Scale{}, ErrMissingCount
	}
	count, err := parseCount(lines[1])
	if err != nil {
		return model.Scale{}, err
	}

	noteLines := lines[2:]
	notes := make([]model.Note, 0, util.Min(count, len(noteLines)))
	for i, l := range noteLines {
		token, ok := util.FirstField(l.text)
		if !ok {
			return model.Scale{}, errors.Wrapf(ErrMissingNoteToken, "note %d (line %d)", i+1, l.num)
		}
		n, err := note.Parse(token)
		if err != nil {
			return model.Scale{}, &NoteError{Index: i + 1, Line: l.num, Token: token, Err: err}
		}
		notes = append(notes, n)
	}

	if len(notes) != count {
		return model.Scale{}, &CountError{Declared: count, Found: len(notes)}
	}

	return model.Scale{Description: description, Notes: notes}, nil
}

// Format writes s in canonical form. It does not check s; a scale that passes
// Validate reads back equal.
func Format(s model.Scale) string {
	var b strings.Builder
	b.WriteString(s.Description)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(s.Count()))
	b.WriteByte('\n')
	for _, n := range s.Notes {
		b.WriteString(note.Format(n))
		b.WriteByte('\n')
	}
	return b.String()
}
