package scale

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingDescription = errors.New("missing description line")
	ErrMissingCount       = errors.New("missing note count line")
	ErrInvalidCount       = errors.New("invalid note count")
	ErrMissingNoteToken   = errors.New("no note on line")
	ErrCountMismatch      = errors.New("note count does not match number of notes")
)

// NoteError reports a note line whose token is not a valid note. Err is the
// note package error, so errors.Is(err, note.ErrInvalidRatio) sees through it.
type NoteError struct {
	// Index is the 1-based position of the note in the scale.
	Index int
	// Line is the 1-based line number in the source text.
	Line  int
	Token string
	Err   error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("note %d (line %d): %v", e.Index, e.Line, e.Err)
}

func (e *NoteError) Unwrap() error { return e.Err }

func (e *NoteError) Cause() error { return e.Err }

// CountError reports a note count line that disagrees with the notes that
// follow it. It matches ErrCountMismatch, and ErrMissingNoteToken as well when
// the file ends before the declared notes do.
type CountError struct {
	Declared int
	Found    int
}

func (e *CountError) Error() string {
	if e.Found < e.Declared {
		return fmt.Sprintf("%v: note %d of %d is missing", ErrMissingNoteToken, e.Found+1, e.Declared)
	}
	return fmt.Sprintf("%v: declared %d, found %d", ErrCountMismatch, e.Declared, e.Found)
}

func (e *CountError) Is(target error) bool {
	return target == ErrCountMismatch || (target == ErrMissingNoteToken && e.Found < e.Declared)
}
