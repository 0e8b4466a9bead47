package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/facturo/facturo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", d.String())

	_, err = domain.ParseDate("14/03/2025")
	assert.Error(t, err)

	empty, err := domain.ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, "", empty.String())
}

func TestDate_AddDays(t *testing.T) {
	d := domain.NewDate(2025, time.January, 15)
	assert.Equal(t, "2025-02-14", d.AddDays(30).String())
	assert.Equal(t, "2025-01-15", d.AddDays(0).String())
	assert.True(t, domain.Date{}.AddDays(30).IsZero())
}

func TestDate_JSON(t *testing.T) {
	d := domain.NewDate(2025, time.June, 1)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(raw))

	var back domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &back))
	assert.True(t, back.Equal(d))

	// Some endpoints attach a midnight timestamp to date fields.
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T00:00:00"`), &back))
	assert.Equal(t, "2025-06-01", back.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &back))
	assert.True(t, back.IsZero())
}

func TestDate_Before(t *testing.T) {
	a := domain.NewDate(2025, time.May, 1)
	b := domain.NewDate(2025, time.May, 2)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
