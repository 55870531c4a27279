// internal/common/database/elasticsearch.go
package database

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"creative-brief/internal/common/config"

	"github.com/elastic/go-elasticsearch/v8"
)

// ErrIndexMissing is returned by the catalog readiness check when the
// competitor index has not been created.
var ErrIndexMissing = errors.New("index not found")

// ElasticsearchClient holds the client behind the competitor catalog.
type ElasticsearchClient struct {
	Client *elasticsearch.Client
}

func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	if !cfg.Enabled() {
		return nil, errors.New("elasticsearch addresses are required")
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  cfg.Addresses,
		Username:   cfg.Username,
		Password:   cfg.Password,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &ElasticsearchClient{Client: es}, nil
}

// IndexCheck returns a readiness probe that passes only when index exists.
func (c *ElasticsearchClient) IndexCheck(index string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		res, err := c.Client.Indices.Exists([]string{index}, c.Client.Indices.Exists.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("elasticsearch unreachable: %w", err)
		}
		defer res.Body.Close()

		switch {
		case res.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrIndexMissing, index)
		case res.IsError():
			return fmt.Errorf("elasticsearch index check: %s", res.Status())
		}
		return nil
	}
}
