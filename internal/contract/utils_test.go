package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{name: "dominant at boundary", percent: 50, want: DominantValue},
		{name: "dominant above", percent: 92.4, want: DominantValue},
		{name: "major at boundary", percent: 20, want: MajorValue},
		{name: "regular at boundary", percent: 5, want: RegularValue},
		{name: "minor below boundary", percent: 4.9, want: MinorValue},
		{name: "minor at zero", percent: 0, want: MinorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.percent))
		})
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 20))
	assert.Equal(t, "a-very-lo...", TruncateName("a-very-long-repo-name", 12))
	// Width too small to truncate meaningfully leaves the name alone
	assert.Equal(t, "abcdef", TruncateName("abcdef", 3))
}
