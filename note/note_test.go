package note

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/jsphweid/scl/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratioNote(t *testing.T, num, den uint32) model.Note {
	t.Helper()
	r, err := model.NewRatio(num, den)
	require.NoError(t, err)
	return model.FromRatio(r)
}

func TestParseValidInput(t *testing.T) {
	cases := []struct {
		token string
		want  model.Note
	}{
		{"0.0", model.Cents(0)},
		{"0.", model.Cents(0)},
		{".0", model.Cents(0)},
		{"0.5", model.Cents(0.5)},
		{"1200.", model.Cents(1200)},
		{"76.04900", model.Cents(76.049)},
		{"-5.5", model.Cents(-5.5)},
		{"+3.25", model.Cents(3.25)},
		{"1.5e3", model.Cents(1500)},
		{"1", ratioNote(t, 1, 1)},
		{"2", ratioNote(t, 2, 1)},
		{"1/3", ratioNote(t, 1, 3)},
		{"2/3", ratioNote(t, 2, 3)},
		{"10/8", ratioNote(t, 5, 4)},
		{"2147483647/3", ratioNote(t, 2147483647, 3)},
		{"4294967295/1", ratioNote(t, 4294967295, 1)},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %q", c.token), func(t *testing.T) {
			got, err := Parse(c.token)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "want %v, got %v", c.want, got)
		})
	}
}

func TestParseInvalidCents(t *testing.T) {
	for _, token := range []string{".", "a1.32", "1.2.3", "1.0x", "0x1.8p1", "inf.", "nan.", "1_0.5", "1.e400", " 1.0", "1.0 "} {
		t.Run(fmt.Sprintf("parse %q", token), func(t *testing.T) {
			_, err := Parse(token)
			assert.True(t, errors.Is(err, ErrInvalidCents), "got %v", err)
		})
	}
}

func TestParseInvalidRatio(t *testing.T) {
	for _, token := range []string{
		"", "a", "gourd", "-1/2", "1/0", "0/0", "0", "0/5", "1/", "/2", "+1/2", "1/2/3",
		"4294967296", "1/4294967296", "Inf", "NaN", " 5/4",
	} {
		t.Run(fmt.Sprintf("parse %q", token), func(t *testing.T) {
			_, err := Parse(token)
			assert.True(t, errors.Is(err, ErrInvalidRatio), "got %v", err)
		})
	}
}

func TestParseErrorNamesToken(t *testing.T) {
	_, err := Parse("1/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"1/0"`)
	assert.Equal(t, ErrInvalidRatio, errors.Cause(err))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		note model.Note
		want string
	}{
		{model.Cents(76.049), "76.049"},
		{model.Cents(193.15686), "193.15686"},
		{model.Cents(1200), "1200.0"},
		{model.Cents(0), "0.0"},
		{model.Cents(math.Copysign(0, -1)), "-0.0"},
		{model.Cents(-25.5), "-25.5"},
		{model.Cents(1e21), "1000000000000000000000.0"},
		{ratioNote(t, 5, 4), "5/4"},
		{ratioNote(t, 2, 1), "2/1"},
		{ratioNote(t, 50, 32), "25/16"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("format %v", c.want), func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.note))
		})
	}
}

// arbitraryNote covers the whole float64 range for cents, not just small
// values.
type arbitraryNote struct {
	model.Note
}

func (arbitraryNote) Generate(r *rand.Rand, size int) reflect.Value {
	if r.Intn(2) == 0 {
		for {
			var v float64
			switch r.Intn(3) {
			case 0:
				v = math.Float64frombits(r.Uint64())
			case 1:
				v = (r.Float64() - 0.5) * 4800
			default:
				v = float64(r.Intn(2400) - 1200)
			}
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return reflect.ValueOf(arbitraryNote{model.Cents(v)})
			}
		}
	}
	num := r.Uint32()%(math.MaxUint32) + 1
	den := r.Uint32()%(math.MaxUint32) + 1
	ratio, _ := model.NewRatio(num, den)
	return reflect.ValueOf(arbitraryNote{model.FromRatio(ratio)})
}

func TestFormatThenParseRoundTrips(t *testing.T) {
	roundTrips := func(n arbitraryNote) bool {
		parsed, err := Parse(Format(n.Note))
		if err != nil {
			return false
		}
		if !parsed.Equal(n.Note) {
			return false
		}
		want, ok := n.Cents()
		if !ok {
			return true
		}
		got, _ := parsed.Cents()
		return math.Float64bits(got) == math.Float64bits(want)
	}

	err := quick.Check(roundTrips, &quick.Config{MaxCount: 2000})
	assert.NoError(t, err)
}
