package plate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garageline/garage-mock-backend/internal/plate"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"already canonical", "ZH12345", "ZH12345", true},
		{"lowercase", "zh12345", "ZH12345", true},
		{"embedded space", "ZH 12345", "ZH12345", true},
		{"space and hyphen", "zh 123-45", "ZH12345", true},
		{"tabs and newlines", "\tZH\n123 45\r", "ZH12345", true},
		{"multiple hyphens", "Z-H-1-2-3-4-5", "ZH12345", true},
		{"empty", "", "", false},
		{"only separators", " --- ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := plate.Normalize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeVariantsAgree(t *testing.T) {
	variants := []string{"zh 123-45", "ZH12345", "Zh-12345", " zh12345 "}
	first, ok := plate.Normalize(variants[0])
	assert.True(t, ok)
	for _, v := range variants[1:] {
		got, ok := plate.Normalize(v)
		assert.True(t, ok)
		assert.Equal(t, first, got, "variant %q", v)
	}
}
