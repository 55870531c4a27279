// internal/workers/research/competitor-research/search.go
package competitorresearch

import (
	"context"
	"fmt"
	"strings"

	"creative-brief/internal/models"
)

const (
	serperSource     = "serper_search"
	searchResultsNum = 5
	searchKeep       = 3
)

func searchQuery(industry, companyType string) string {
	return fmt.Sprintf("top %s companies %s 2024", companyType, industry)
}

// searchCompetitors runs one Serper query and keeps the first organic results.
func (h *Handler) searchCompetitors(ctx context.Context, input *Input) ([]models.Competitor, error) {
	var resp serperResponse
	err := h.client.PostJSON(ctx,
		strings.TrimRight(h.config.SerperBaseURL, "/")+"/search",
		map[string]string{"X-API-KEY": h.config.SerperAPIKey},
		serperRequest{Query: searchQuery(input.Industry, input.CompanyType), Num: searchResultsNum},
		&resp,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompetitorSearchFailed, err)
	}

	var out []models.Competitor
	for _, r := range resp.Organic {
		if len(out) == searchKeep {
			break
		}
		out = append(out, models.Competitor{
			Name:        firstWord(r.Title),
			Description: r.Snippet,
			Website:     r.Link,
			Source:      serperSource,
		})
	}
	return out, nil
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
