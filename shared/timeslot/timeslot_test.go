package timeslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared/timeslot"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name        string
		openTime    string
		closeTime   string
		granularity int
		expected    []string
		wantErr     bool
	}{
		{
			name:        "special lunch window",
			openTime:    "10:00",
			closeTime:   "14:00",
			granularity: 30,
			expected:    []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"},
		},
		{
			name:        "close time is never a slot",
			openTime:    "09:00",
			closeTime:   "10:00",
			granularity: 30,
			expected:    []string{"09:00", "09:30"},
		},
		{
			name:        "window not a multiple of granularity truncates",
			openTime:    "09:00",
			closeTime:   "10:15",
			granularity: 30,
			expected:    []string{"09:00", "09:30", "10:00"},
		},
		{
			name:        "zero width window",
			openTime:    "09:00",
			closeTime:   "09:00",
			granularity: 30,
			expected:    []string{},
		},
		{
			name:        "inverted window",
			openTime:    "18:00",
			closeTime:   "09:00",
			granularity: 30,
			expected:    []string{},
		},
		{
			name:        "sixty minute granularity",
			openTime:    "10:00",
			closeTime:   "13:00",
			granularity: 60,
			expected:    []string{"10:00", "11:00", "12:00"},
		},
		{
			name:        "non positive granularity falls back to default",
			openTime:    "09:00",
			closeTime:   "10:00",
			granularity: 0,
			expected:    []string{"09:00", "09:30"},
		},
		{
			name:        "invalid open time",
			openTime:    "morning",
			closeTime:   "10:00",
			granularity: 30,
			wantErr:     true,
		},
		{
			name:        "invalid close time",
			openTime:    "09:00",
			closeTime:   "25:61",
			granularity: 30,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := timeslot.Generate(tt.openTime, tt.closeTime, tt.granularity)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestGenerate_FullDefaultDay(t *testing.T) {
	slots, err := timeslot.Generate("09:00", "23:00", 30)

	assert.NoError(t, err)
	assert.Len(t, slots, 28)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "22:30", slots[len(slots)-1])

	// Strictly increasing sequence.
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := timeslot.Generate("09:00", "23:00", 30)
	assert.NoError(t, err)

	second, err := timeslot.Generate("09:00", "23:00", 30)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:30", expected: 570},
		{name: "last minute", input: "23:59", expected: 1439},
		{name: "missing separator", input: "0930", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "not a number", input: "aa:bb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := timeslot.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestAligned(t *testing.T) {
	assert.True(t, timeslot.Aligned("12:00", 30))
	assert.True(t, timeslot.Aligned("12:30", 30))
	assert.False(t, timeslot.Aligned("12:15", 30))
	assert.False(t, timeslot.Aligned("noon", 30))
	assert.True(t, timeslot.Aligned("13:00", 0))
}
