package decoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMessage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"hello\nworld", "hello world"},
		{"hello\r\nworld", "hello world"},
		{"hello\rworld", "hello world"},
		{"  hello   world  ", "hello world"},
		{"\r\n\r\n", ""},
		{"a\t b\n\nc", "a b c"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeMessage(c.in), "input: %q", c.in)
	}
}

func TestNormalizeMessage_Idempotent(t *testing.T) {
	inputs := []string{
		"line one\r\nline two\nline three",
		"   spaced    out   ",
		"already normalized",
		"",
		"\t\n\r mixed \r\n whitespace \t",
	}
	for _, s := range inputs {
		once := NormalizeMessage(s)
		assert.Equal(t, once, NormalizeMessage(once), "input: %q", s)
		assert.NotContains(t, once, "  ")
		assert.Equal(t, strings.TrimSpace(once), once)
	}
}
