// internal/workers/research/audience-research/models.go
package audienceresearch

type Input struct {
	Audience string `json:"audience"`
	Industry string `json:"industry"`
}

// SegmentProfile is one row of the demographic table. Key is an underscore
// separated segment name whose words are matched against the audience.
type SegmentProfile struct {
	Key          string
	AgeRange     string
	Income       string
	Education    string
	TechAdoption string
	WorkSchedule string
}
