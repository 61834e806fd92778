package main

import (
	"testing"
	"time"

	"attempt-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, 4, 2, 13, 7, 0, 0, time.UTC)

	window, err := resolveWindow("", "", 24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC), window.End)

	window, err = resolveWindow("2023-04-01 12:46:47.860798", "2023-04-02 12:46:47.860798", 24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, "2023-04-01 12:46:47.860798", window.StartParam())

	_, err = resolveWindow("2023-04-01 12:46:47", "", time.Hour, now)
	assert.ErrorIs(t, err, models.ErrInvalidTimeWindow)

	_, err = resolveWindow("", "", 0, now)
	assert.ErrorIs(t, err, models.ErrInvalidTimeWindow)
}
