package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountAge(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		wantYears uint64
		wantDays  uint64
	}{
		{
			name:      "several years",
			createdAt: time.Date(2014, 3, 3, 12, 0, 0, 0, time.UTC),
			wantYears: 10, // flat 365-day years
			wantDays:  3651,
		},
		{
			name:      "under a year",
			createdAt: time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC),
			wantYears: 0,
			wantDays:  182,
		},
		{
			name:      "same day",
			createdAt: now,
			wantYears: 0,
			wantDays:  0,
		},
		{
			name:      "future creation clamps to zero",
			createdAt: now.Add(24 * time.Hour),
			wantYears: 0,
			wantDays:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, days := accountAge(tt.createdAt, now)
			assert.Equal(t, tt.wantYears, years)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}
