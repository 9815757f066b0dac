package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "lowercases", in: "Asha Rao", expected: "asha rao"},
		{name: "strips diacritics", in: "José Núñez", expected: "jose nunez"},
		{name: "collapses whitespace", in: "  Asha   Rao ", expected: "asha rao"},
		{name: "vietnamese", in: "Nguyễn Văn Đương", expected: "nguyen van đuong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

func TestNameSet(t *testing.T) {
	set := NewNameSet("Asha Rao")

	assert.True(t, set.Has("asha rao"))
	assert.True(t, set.Has("ASHA  RAO"))
	assert.False(t, set.Has("Ravi"))

	set.Add("José")
	assert.True(t, set.Has("jose"))
}
