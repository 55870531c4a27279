// internal/workers/research/competitor-research/catalog.go
package competitorresearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"creative-brief/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const catalogSource = "catalog"

// Catalog looks up known competitors for an industry and company type.
type Catalog interface {
	Lookup(ctx context.Context, industry, companyType string) ([]models.Competitor, error)
}

// ElasticsearchCatalog reads competitors from an index of catalogEntry
// documents.
type ElasticsearchCatalog struct {
	client *elasticsearch.Client
	index  string
	size   int
}

func NewElasticsearchCatalog(client *elasticsearch.Client, index string) *ElasticsearchCatalog {
	return &ElasticsearchCatalog{client: client, index: index, size: 10}
}

func (c *ElasticsearchCatalog) Lookup(ctx context.Context, industry, companyType string) ([]models.Competitor, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"industry": industry}},
					map[string]interface{}{"term": map[string]interface{}{"company_type": companyType}},
				},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	size := c.size
	req := esapi.SearchRequest{
		Index: []string{c.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}
	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("catalog search failed: %s", res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source catalogEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	out := make([]models.Competitor, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		e := hit.Source
		out = append(out, models.Competitor{
			Name:        e.Name,
			Pricing:     e.Pricing,
			Focus:       e.Focus,
			Description: e.Description,
			Website:     e.Website,
			Source:      catalogSource,
		})
	}
	return out, nil
}
