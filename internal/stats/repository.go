package stats

import (
	"context"
	"database/sql"
	"fmt"
)

// Metric names match the tables of the upstream JHU dataset the warehouse is
// loaded from.
const (
	MetricConfirmedCases = "confirmed_cases"
	MetricDeaths         = "deaths"
	MetricRecoveredCases = "recovered_cases"
)

var validMetrics = map[string]bool{
	MetricConfirmedCases: true,
	MetricDeaths:         true,
	MetricRecoveredCases: true,
}

// Repository reads aggregated COVID-19 metrics. Total returns the latest
// total for a metric, worldwide when country is empty; found is false when
// the warehouse has no rows for the request.
type Repository interface {
	Total(ctx context.Context, metric, country string) (total int64, found bool, err error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Total(ctx context.Context, metric, country string) (int64, bool, error) {
	if !validMetrics[metric] {
		return 0, false, fmt.Errorf("invalid metric name %q", metric)
	}
	if r.db == nil {
		return 0, false, fmt.Errorf("statistics database is not configured")
	}

	// The warehouse is refreshed once a day; only the newest snapshot counts.
	query := `
		SELECT COALESCE(SUM(value), 0), COUNT(*)
		FROM covid_metrics
		WHERE metric = $1
		  AND as_of = (SELECT MAX(as_of) FROM covid_metrics WHERE metric = $1)`
	args := []any{metric}
	if country != "" {
		query += ` AND country_region = $2`
		args = append(args, country)
	}

	var total int64
	var rows int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &rows); err != nil {
		return 0, false, fmt.Errorf("query %s: %w", metric, err)
	}
	return total, rows > 0, nil
}
