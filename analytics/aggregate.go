// Package analytics computes the read-only summaries behind the dashboard
// charts. Every function is a pure function of the snapshot it is handed;
// nothing here caches or writes back.
package analytics

import (
	"sort"
	"time"

	"github.com/devfolio/dashboard-backend/models"
)

// DayCount is one calendar-day bucket, keyed YYYY-MM-DD.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// MonthCount is one calendar-month bucket, keyed YYYY-MM.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// TechCount pairs a tech name with how many projects reference it.
type TechCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TechDistribution pairs a tech name with its join-row count, including techs
// no project references.
type TechDistribution struct {
	Tech  string `json:"tech"`
	Count int    `json:"count"`
}

// CountByDay buckets timestamps by UTC calendar day, ascending by key.
func CountByDay(times []time.Time) []DayCount {
	buckets := make(map[string]int)
	for _, t := range times {
		buckets[t.UTC().Format("2006-01-02")]++
	}

	result := make([]DayCount, 0, len(buckets))
	for day, count := range buckets {
		result = append(result, DayCount{Day: day, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day < result[j].Day })
	return result
}

// CountByMonth buckets timestamps by UTC calendar month, ascending by key.
func CountByMonth(times []time.Time) []MonthCount {
	buckets := make(map[string]int)
	for _, t := range times {
		buckets[t.UTC().Format("2006-01")]++
	}

	result := make([]MonthCount, 0, len(buckets))
	for month, count := range buckets {
		result = append(result, MonthCount{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result
}

// MostUsedTechs counts how many projects reference each tech, descending by
// count. Ties break alphabetically so the output is deterministic.
func MostUsedTechs(joins []*models.ProjectTech) []TechCount {
	counts := make(map[string]int)
	for _, row := range joins {
		counts[row.Tech.Name]++
	}

	result := make([]TechCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, TechCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TechDistributions maps every tech to its project count, zero included.
func TechDistributions(techs []*models.Tech) []TechDistribution {
	result := make([]TechDistribution, 0, len(techs))
	for _, tech := range techs {
		result = append(result, TechDistribution{Tech: tech.Name, Count: len(tech.ProjectTechs)})
	}
	return result
}

// LatestUpdate returns the maximum of the supplied per-collection timestamps,
// or nil when every collection was empty.
func LatestUpdate(candidates ...*time.Time) *time.Time {
	var latest *time.Time
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if latest == nil || c.After(*latest) {
			latest = c
		}
	}
	return latest
}
