package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	require.NoError(t, timezone.Init("UTC"))
	assert.Equal(t, time.UTC, timezone.GetLocation())

	require.NoError(t, timezone.Init(""))
	assert.Equal(t, time.Local, timezone.GetLocation())

	assert.Error(t, timezone.Init("Not/AZone"))
	assert.Equal(t, time.Local, timezone.GetLocation())
}

func TestToday(t *testing.T) {
	require.NoError(t, timezone.Init("UTC"))

	today := timezone.Today()

	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
	assert.Equal(t, timezone.Now().Day(), today.Day())
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", -7*60*60)
	in := time.Date(2024, 5, 1, 23, 59, 59, 10, loc)

	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), got)
}

func TestParseAndFormat(t *testing.T) {
	require.NoError(t, timezone.Init("UTC"))

	parsed, err := timezone.Parse("1/2/2006", "5/1/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), parsed)

	assert.Equal(t, "05/01/2024", timezone.Format(parsed, "01/02/2006"))

	_, err = timezone.Parse("1/2/2006", "2024-05-01")
	assert.Error(t, err)
}
