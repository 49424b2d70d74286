package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)

	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2024/02/29")
	assert.Error(t, err)
}

func TestDateOfUsesLocation(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, MustParseDate("2024-01-01"), DateOf(ts, time.UTC))
	assert.Equal(t, MustParseDate("2024-01-02"), DateOf(ts, tokyo))
}

func TestDateCompare(t *testing.T) {
	t.Parallel()

	a := MustParseDate("2023-12-31")
	b := MustParseDate("2024-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, b, a.AddDays(1))
}

func TestDatesBetweenIncludesBothEnds(t *testing.T) {
	t.Parallel()

	dates := DatesBetween(MustParseDate("2024-02-27"), MustParseDate("2024-03-01"))

	assert.Equal(t, []Date{
		MustParseDate("2024-02-27"),
		MustParseDate("2024-02-28"),
		MustParseDate("2024-02-29"),
		MustParseDate("2024-03-01"),
	}, dates)

	assert.Equal(t, []Date{MustParseDate("2024-01-01")},
		DatesBetween(MustParseDate("2024-01-01"), MustParseDate("2024-01-01")))
	assert.Empty(t, DatesBetween(MustParseDate("2024-01-02"), MustParseDate("2024-01-01")))
}

func TestDateUnmarshalText(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-01-02")))
	assert.Equal(t, MustParseDate("2024-01-02"), d)

	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.UnmarshalText([]byte("yesterday")))
}

func TestProjectReportDates(t *testing.T) {
	t.Parallel()

	from := MustParseDate("2024-01-01")
	to := MustParseDate("2024-01-03")

	assert.Len(t, NewProjectReport("p", &from, &to, nil).Dates(), 3)
	assert.Empty(t, NewProjectReport("p", nil, nil, nil).Dates())
}
