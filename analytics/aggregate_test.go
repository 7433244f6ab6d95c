package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/dashboard-backend/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCountByDayGroupsSameDay(t *testing.T) {
	result := CountByDay([]time.Time{
		ts("2024-01-01T10:00:00Z"),
		ts("2024-01-01T23:00:00Z"),
	})

	require.Len(t, result, 1)
	assert.Equal(t, DayCount{Day: "2024-01-01", Count: 2}, result[0])
}

func TestCountByDayAscendingBuckets(t *testing.T) {
	result := CountByDay([]time.Time{
		ts("2024-01-03T08:00:00Z"),
		ts("2024-01-01T10:00:00Z"),
		ts("2024-01-02T12:00:00Z"),
		ts("2024-01-01T23:00:00Z"),
	})

	require.Len(t, result, 3)
	assert.Equal(t, DayCount{Day: "2024-01-01", Count: 2}, result[0])
	assert.Equal(t, DayCount{Day: "2024-01-02", Count: 1}, result[1])
	assert.Equal(t, DayCount{Day: "2024-01-03", Count: 1}, result[2])
}

func TestCountByDayNormalizesToUTC(t *testing.T) {
	offset := time.FixedZone("UTC-3", -3*60*60)
	// 23:00 UTC-3 is already the next day in UTC
	late := time.Date(2024, 5, 10, 23, 0, 0, 0, offset)

	result := CountByDay([]time.Time{late})

	require.Len(t, result, 1)
	assert.Equal(t, "2024-05-11", result[0].Day)
}

func TestCountByDayEmpty(t *testing.T) {
	assert.Empty(t, CountByDay(nil))
}

func TestCountByMonth(t *testing.T) {
	result := CountByMonth([]time.Time{
		ts("2024-02-28T00:00:00Z"),
		ts("2024-01-15T00:00:00Z"),
		ts("2024-01-01T00:00:00Z"),
	})

	require.Len(t, result, 2)
	assert.Equal(t, MonthCount{Month: "2024-01", Count: 2}, result[0])
	assert.Equal(t, MonthCount{Month: "2024-02", Count: 1}, result[1])
}

func TestMostUsedTechsDescending(t *testing.T) {
	joins := []*models.ProjectTech{
		{Tech: models.Tech{Name: "Go"}},
		{Tech: models.Tech{Name: "React"}},
		{Tech: models.Tech{Name: "Go"}},
		{Tech: models.Tech{Name: "Postgres"}},
		{Tech: models.Tech{Name: "Go"}},
		{Tech: models.Tech{Name: "React"}},
	}

	result := MostUsedTechs(joins)

	require.Len(t, result, 3)
	assert.Equal(t, TechCount{Name: "Go", Count: 3}, result[0])
	assert.Equal(t, TechCount{Name: "React", Count: 2}, result[1])
	assert.Equal(t, TechCount{Name: "Postgres", Count: 1}, result[2])
}

func TestMostUsedTechsTieBreaksAlphabetically(t *testing.T) {
	joins := []*models.ProjectTech{
		{Tech: models.Tech{Name: "Vue"}},
		{Tech: models.Tech{Name: "Angular"}},
	}

	result := MostUsedTechs(joins)

	require.Len(t, result, 2)
	assert.Equal(t, "Angular", result[0].Name)
	assert.Equal(t, "Vue", result[1].Name)
}

func TestTechDistributionsIncludesZero(t *testing.T) {
	techs := []*models.Tech{
		{Name: "Go", ProjectTechs: []models.ProjectTech{{}, {}}},
		{Name: "Rust"},
	}

	result := TechDistributions(techs)

	require.Len(t, result, 2)
	assert.Equal(t, TechDistribution{Tech: "Go", Count: 2}, result[0])
	assert.Equal(t, TechDistribution{Tech: "Rust", Count: 0}, result[1])
}

func TestLatestUpdatePicksMax(t *testing.T) {
	t1 := ts("2024-01-01T00:00:00Z")
	t2 := ts("2024-06-01T00:00:00Z")
	t3 := ts("2024-12-01T00:00:00Z")

	result := LatestUpdate(&t1, &t3, &t2)

	require.NotNil(t, result)
	assert.True(t, result.Equal(t3))
}

func TestLatestUpdateSkipsEmptyCollections(t *testing.T) {
	t1 := ts("2024-01-01T00:00:00Z")

	result := LatestUpdate(nil, &t1, nil)

	require.NotNil(t, result)
	assert.True(t, result.Equal(t1))
}

func TestLatestUpdateAllEmpty(t *testing.T) {
	assert.Nil(t, LatestUpdate(nil, nil, nil))
}
