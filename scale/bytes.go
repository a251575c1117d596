package scale

import (
	"unicode/utf8"

	"github.com/jsphweid/scl/model"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ParseBytes parses raw file contents. A UTF-8 byte order mark is dropped and
// contents that are not valid UTF-8 are read as ISO-8859-1, which is what most
// older scale files are written in.
func ParseBytes(data []byte) (model.Scale, error) {
	return Parse(decodeText(data))
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		s, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(s)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(s)
}
