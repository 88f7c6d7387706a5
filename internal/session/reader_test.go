package session

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newReaderController(input string) *Controller {
	return New(Config{}, strings.NewReader(input), io.Discard, io.Discard)
}

func TestReadOperand_ValidTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain", "42\n", 42},
		{"negative", "-13\n", -13},
		{"explicit plus", "+8\n", 8},
		{"leading spaces", "   7\n", 7},
		{"leading tab", "\t7\n", 7},
		{"crlf line ending", "9\r\n", 9},
		{"int64 max", "9223372036854775807\n", 9223372036854775807},
		{"int64 min", "-9223372036854775808\n", -9223372036854775808},
		{"no trailing newline", "11", 11},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newReaderController(tc.input)
			got, err := c.readOperand()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadOperand_InvalidTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"letters", "abc\n"},
		{"punctuation", "!!\n"},
		{"empty line", "\n"},
		{"end of input", ""},
		{"number out of range", "9223372036854775808\n"},
		{"excessively long digits", strings.Repeat("9", 100) + "\n"},
		{"embedded letters", "12x4\n"},
		{"float", "3.5\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newReaderController(tc.input)
			_, err := c.readOperand()
			require.Error(t, err)
		})
	}
}

func TestReadOperand_ConsumesOneLinePerRead(t *testing.T) {
	t.Parallel()

	// The first token of a line wins; everything after it on the same
	// line is discarded, so the next read starts on the next line.
	c := newReaderController("5 10 junk\n6\n")

	first, err := c.readOperand()
	require.NoError(t, err)
	require.Equal(t, int64(5), first)

	second, err := c.readOperand()
	require.NoError(t, err)
	require.Equal(t, int64(6), second)
}

func TestReadOperand_FailureDiscardsRestOfLine(t *testing.T) {
	t.Parallel()

	c := newReaderController("garbage 99\n4\n")

	_, err := c.readOperand()
	require.Error(t, err)

	// The 99 on the rejected line must not be picked up by the retry.
	got, err := c.readOperand()
	require.NoError(t, err)
	require.Equal(t, int64(4), got)
}

func TestReadOperand_SequentialReads(t *testing.T) {
	t.Parallel()

	c := newReaderController("1\n2\n3\n")
	for want := int64(1); want <= 3; want++ {
		got, err := c.readOperand()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := c.readOperand()
	require.Error(t, err, "reads past end-of-input must fail, not block")
}
