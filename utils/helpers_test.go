package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialNumber(t *testing.T) {
	assert.Equal(t, "PRJ-2026-0042", SequentialNumber("PRJ", 2026, 42))
	assert.Equal(t, "QTN-2026-0001", SequentialNumber("QTN", 2026, 1))
	// Sequence wider than the pad keeps all digits
	assert.Equal(t, "PRJ-2026-12345", SequentialNumber("PRJ", 2026, 12345))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestGenerateShortID(t *testing.T) {
	id := GenerateShortID()
	assert.Len(t, id, 8)
	for _, r := range id {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'),
			"unexpected character %q", r)
	}

	assert.NotEqual(t, GenerateShortID(), GenerateShortID())
}
