package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: Date(2024, time.March, 10),
			to:   Date(2024, time.March, 10),
			want: 0,
		},
		{
			name: "across leap day",
			from: Date(2024, time.February, 28),
			to:   Date(2024, time.March, 1),
			want: 2,
		},
		{
			name: "across year end",
			from: Date(2023, time.December, 31),
			to:   Date(2024, time.January, 30),
			want: 30,
		},
		{
			name: "target in the past",
			from: Date(2024, time.March, 10),
			to:   Date(2024, time.March, 3),
			want: -7,
		},
		{
			name: "time of day is ignored",
			from: time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2024, time.March, 11, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestTodayUsesInjectedClock(t *testing.T) {
	clock := FixedClock{At: time.Date(2024, time.June, 1, 12, 30, 0, 0, time.UTC)}

	today := Today(clock)

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, time.UTC, today.Location())
	assert.Equal(t, DateOf(clock.At), today)
}
