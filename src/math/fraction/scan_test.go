package fraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want Frac
	}{
		{"1/2", Frac{num: 1, den: 2}},
		{"5/10", Frac{num: 5, den: 10}},
		{"0/7", Frac{num: 0, den: 7}},

		// Mixed input collapses to improper at parse time.
		{"3 1/2", Frac{num: 7, den: 2}},
		{"2 1/4", Frac{num: 9, den: 4}},

		// A lone integer stores N as both fields. Inherited contract.
		{"25", Frac{num: 25, den: 25}},
		{"0", Frac{num: 0, den: 0}},

		// Space and tab padding is tolerated around the tokens.
		{"  1/2  ", Frac{num: 1, den: 2}},
		{"\t3   1/2", Frac{num: 7, den: 2}},
		{"1/ 2", Frac{num: 1, den: 2}},
		{"3 1/ \t2", Frac{num: 7, den: 2}},

		// The scanner stops after the denominator; trailing junk is
		// ignored. Inherited contract.
		{"1/2xyz", Frac{num: 1, den: 2}},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want error
	}{
		{"", ErrInvalidFormat},
		{"abc", ErrInvalidFormat},
		{"-1/2", ErrInvalidFormat},
		{"1.5", ErrInvalidFormat},
		{"1 / 2", ErrInvalidFormat},
		{"1 2", ErrInvalidFormat},
		{"1 2/", ErrInvalidFormat},
		{"/2", ErrInvalidFormat},
		{"1//2", ErrInvalidFormat},

		{"1/0", ErrZeroDivisor},
		{"3 1/0", ErrZeroDivisor},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			_, err := Parse(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseMixedOverflow(t *testing.T) {
	// The whole-times-denominator collapse is overflow-checked.
	_, err := Parse(fmt.Sprintf("%d 1/3", maxInt/2+1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Parse(fmt.Sprintf("%d %d/%d", 2, maxInt-1, maxInt/2))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestParseSimplified(t *testing.T) {
	got, err := ParseSimplified("5/10")
	require.NoError(t, err)
	require.Equal(t, Frac{num: 1, den: 2}, got)

	got, err = ParseSimplified("3 1/2")
	require.NoError(t, err)
	require.Equal(t, Frac{whole: 3, num: 1, den: 2}, got)

	// The lone-integer shape returns before simplification applies.
	got, err = ParseSimplified("25")
	require.NoError(t, err)
	require.Equal(t, Frac{num: 25, den: 25}, got)
}

func TestScanLine(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want Frac
	}{
		// Decimal literals take the float path and come back simplified.
		{"0.5", Frac{num: 1, den: 2}},
		{"1.2", Frac{whole: 1, num: 1, den: 5}},
		{"-0.5", Frac{num: -1, den: 2}},
		{"  0.75\t", Frac{num: 3, den: 4}},
		// A bare integer parses fully as a decimal, so it bypasses the
		// lone-integer scanner quirk.
		{"25", Frac{whole: 25, num: 0, den: 1}},

		// Fraction literals fall through to the scanner, unsimplified.
		{"1/2", Frac{num: 1, den: 2}},
		{"5/10", Frac{num: 5, den: 10}},
		{"2 1/2", Frac{num: 5, den: 2}},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			got, err := ScanLine(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestScanLineErrors(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want error
	}{
		{"", ErrStreamFormat},
		{"   ", ErrStreamFormat},
		{"abc", ErrStreamFormat},
		{"x1/2", ErrStreamFormat},

		// Negative fractions pass the stream gate but the scanner only
		// processes digit runs.
		{"-1/2", ErrInvalidFormat},

		{"1/0", ErrZeroDivisor},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			_, err := ScanLine(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner(strings.NewReader("0.5\n1/2\ngarbage\n3 1/2\n"))

	require.True(t, s.Scan())
	require.Equal(t, Frac{num: 1, den: 2}, s.Frac())

	require.True(t, s.Scan())
	require.Equal(t, Frac{num: 1, den: 2}, s.Frac())

	// The bad line latches the scanner.
	require.False(t, s.Scan())
	require.True(t, s.Failed())
	require.ErrorIs(t, s.Err(), ErrStreamFormat)
	require.False(t, s.Scan())

	// Reset clears the failure and scanning resumes.
	s.Reset()
	require.True(t, s.Scan())
	require.Equal(t, Frac{num: 7, den: 2}, s.Frac())

	require.False(t, s.Scan())
	require.False(t, s.Failed())
	require.NoError(t, s.Err())
}
