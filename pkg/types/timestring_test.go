package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"canonical", "14:00", "14:00", false},
		{"single digit hour", "9:30", "09:30", false},
		{"empty", "", "", true},
		{"garbage", "noon", "", true},
		{"out of range", "25:00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 10, 7, 5, 0, 0, time.Local))
	assert.Equal(t, TimeString("07:05"), ts)
}

func TestTimeString_String(t *testing.T) {
	assert.Equal(t, "12:00", TimeString("12:00").String())
}
