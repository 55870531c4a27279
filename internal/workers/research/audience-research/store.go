// internal/workers/research/audience-research/store.go
package audienceresearch

import (
	"context"
	"database/sql"
	"fmt"
)

// ProfileStore returns demographic segment profiles in match priority order.
type ProfileStore interface {
	Profiles(ctx context.Context) ([]SegmentProfile, error)
}

type StaticStore struct{}

func (StaticStore) Profiles(ctx context.Context) ([]SegmentProfile, error) {
	out := make([]SegmentProfile, len(staticProfiles))
	copy(out, staticProfiles)
	return out, nil
}

var staticProfiles = []SegmentProfile{
	{
		Key:          "healthcare_professionals",
		AgeRange:     "28-55",
		Income:       "$75K-$250K",
		Education:    "Graduate degree",
		TechAdoption: "Moderate to high",
		WorkSchedule: "Long hours, high stress",
	},
	{
		Key:          "small_business_owners",
		AgeRange:     "25-50",
		Income:       "$50K-$150K",
		Education:    "Bachelor's degree",
		TechAdoption: "Moderate",
		WorkSchedule: "Flexible but demanding",
	},
	{
		Key:          "professional_women",
		AgeRange:     "25-45",
		Income:       "$60K-$120K",
		Education:    "Bachelor's or higher",
		TechAdoption: "High",
		WorkSchedule: "Work-life balance focused",
	},
}

const profilesQuery = `
	SELECT segment_key, age_range, income_range, education_level,
	       tech_adoption, work_schedule
	FROM audience_profiles
	ORDER BY priority, segment_key`

// PostgresStore reads profiles from the audience_profiles table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Profiles(ctx context.Context) ([]SegmentProfile, error) {
	rows, err := s.db.QueryContext(ctx, profilesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileStoreFailed, err)
	}
	defer rows.Close()

	var out []SegmentProfile
	for rows.Next() {
		var p SegmentProfile
		var workSchedule sql.NullString
		if err := rows.Scan(&p.Key, &p.AgeRange, &p.Income, &p.Education, &p.TechAdoption, &workSchedule); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProfileStoreFailed, err)
		}
		p.WorkSchedule = workSchedule.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileStoreFailed, err)
	}
	return out, nil
}
