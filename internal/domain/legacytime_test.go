package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyTime(t *testing.T) {
	got, ok := ParseLegacyTime("20250114093015")
	require.True(t, ok)
	assert.Equal(t, "2025-01-14 09:30:15", got.Format(DisplayTimeLayout))

	got, ok = ParseLegacyTime("2025-01-14 09:30:15")
	require.True(t, ok)
	assert.Equal(t, 9, got.Hour())

	_, ok = ParseLegacyTime("")
	assert.False(t, ok)
	_, ok = ParseLegacyTime("14/01/2025")
	assert.False(t, ok)
	_, ok = ParseLegacyTime("not a time")
	assert.False(t, ok)
}

func TestFormatLegacyTime_FallsBackToRaw(t *testing.T) {
	assert.Equal(t, "2025-01-14 09:30:15", FormatLegacyTime("20250114093015"))
	// Malformed historical rows come back verbatim instead of erroring.
	assert.Equal(t, "14/01/2025", FormatLegacyTime("14/01/2025"))
	assert.Equal(t, "", FormatLegacyTime(""))
}

func TestElapsedSeconds(t *testing.T) {
	secs := ElapsedSeconds("20250114093000", "20250114093045")
	require.NotNil(t, secs)
	assert.Equal(t, int64(45), *secs)

	assert.Nil(t, ElapsedSeconds("", "20250114093045"))
	assert.Nil(t, ElapsedSeconds("20250114093000", ""))
	assert.Nil(t, ElapsedSeconds("garbage", "20250114093045"))
}
