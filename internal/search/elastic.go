// Package search maintains the optional Elasticsearch index over the
// roster. The index is an auxiliary lookup view; storage stays the source
// of truth and index failures never fail a write.
package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic/v7"

	"github.com/pesocar/gip-registry/internal/domain"
)

const recordIndex = "gip-records"

// recordDoc is the indexed projection of a roster record.
type recordDoc struct {
	ID        string `json:"id"`
	GipID     string `json:"gip_id"`
	Name      string `json:"name"`
	LGU       string `json:"lgu"`
	StartDate string `json:"start_date"`
}

// ElasticIndex wraps an olivere/elastic client as a domain.RecordIndex.
type ElasticIndex struct {
	client *elastic.Client
}

// NewElasticIndex connects to Elasticsearch 7.x at the given URL.
func NewElasticIndex(url string) (*ElasticIndex, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // required behind Docker / managed clusters
	)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &ElasticIndex{client: client}, nil
}

// Index upserts the record's search projection, keyed by storage ID.
func (e *ElasticIndex) Index(ctx context.Context, rec *domain.EmploymentRecord) error {
	doc := recordDoc{
		ID:        rec.ID,
		GipID:     rec.GipID,
		Name:      rec.Name,
		LGU:       rec.LGU,
		StartDate: rec.StartDate,
	}
	_, err := e.client.Index().
		Index(recordIndex).
		Id(rec.ID).
		BodyJson(doc).
		Refresh("true").
		Do(ctx)
	if err != nil {
		return fmt.Errorf("index record %s: %w", rec.ID, err)
	}
	return nil
}

// Remove deletes the record's projection from the index.
func (e *ElasticIndex) Remove(ctx context.Context, id string) error {
	_, err := e.client.Delete().
		Index(recordIndex).
		Id(id).
		Refresh("true").
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

// SearchByName runs a fuzzy match on participant names.
func (e *ElasticIndex) SearchByName(ctx context.Context, query string) ([]domain.RecordHit, error) {
	result, err := e.client.Search().
		Index(recordIndex).
		Query(elastic.NewMatchQuery("name", query).Fuzziness("AUTO")).
		Size(50).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("search records by name: %w", err)
	}

	hits := make([]domain.RecordHit, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		var doc recordDoc
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal search hit %s: %w", h.Id, err)
		}
		hits = append(hits, domain.RecordHit{
			ID:        doc.ID,
			GipID:     doc.GipID,
			Name:      doc.Name,
			LGU:       doc.LGU,
			StartDate: doc.StartDate,
		})
	}
	return hits, nil
}
