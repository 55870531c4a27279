// internal/workers/research/trends-research/models.go
package trendsresearch

type Input struct {
	Industry string `json:"industry"`
	Audience string `json:"audience"`
}
