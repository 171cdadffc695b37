package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayMinutesRoundTrip(t *testing.T) {
	cases := []struct {
		tod     TimeOfDay
		minutes int
	}{
		{TimeOfDay{Hour: 0, Minute: 0}, 0},
		{TimeOfDay{Hour: 9, Minute: 0}, 540},
		{TimeOfDay{Hour: 12, Minute: 30}, 750},
		{TimeOfDay{Hour: 23, Minute: 59}, 1439},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.minutes, tc.tod.Minutes())
		assert.Equal(t, tc.tod, TimeOfDayFromMinutes(tc.minutes))
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatMinutes(0))
	assert.Equal(t, "9:00 AM", FormatMinutes(540))
	assert.Equal(t, "12:00 PM", FormatMinutes(720))
	assert.Equal(t, "1:05 PM", FormatMinutes(785))
	assert.Equal(t, "11:59 PM", FormatMinutes(1439))
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:30 AM", FormatWindow(540, 630))
}
