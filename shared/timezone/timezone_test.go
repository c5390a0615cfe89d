package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/shared/timezone"
)

func TestDefaultsToUTCBeforeInit(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.GetLocation())
	assert.False(t, timezone.Now().IsZero())
}

func TestToAppTime(t *testing.T) {
	instant := time.Date(2025, 3, 10, 12, 0, 0, 0, time.FixedZone("X", 7*3600))

	converted := timezone.ToAppTime(instant)

	assert.True(t, instant.Equal(converted))
	assert.Equal(t, timezone.GetLocation(), converted.Location())
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-12")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", timezone.Format(parsed, "2006-01-02"))
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := timezone.Parse("2006-01-02", "12-03-2025")

	assert.Error(t, err)
}
