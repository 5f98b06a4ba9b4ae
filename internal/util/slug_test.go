package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ofek", "Ofek"},
		{"  Ofek Cohen  ", "Ofek_Cohen"},
		{"a/b\\c:d", "abcd"},
		{"name-with_ok.chars!", "name-with_okchars"},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "input %q", c.in)
	}
}
