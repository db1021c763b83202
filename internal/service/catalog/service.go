// Package catalog caches the exam catalog for the process lifetime.
// The cache is owned by whoever constructs the Service; there is no
// ambient global state.
package catalog

import (
	"context"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/aleviannaf/laboratory-app/internal/backend"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/pkg/metrics"
)

const cacheKey = "exam_catalog"

// itemWithCategory keeps the category title alongside the item so
// sections can be rebuilt from the flat cache.
type itemWithCategory struct {
	model.CatalogItem
	CategoryTitle string
}

// Service memoizes the backend exam catalog. A successful load is
// kept until process restart; a failed load leaves the cache empty
// and the next call retries. Concurrent loads share one fetch.
type Service struct {
	bridge  backend.Bridge
	cache   *gocache.Cache
	group   singleflight.Group
	metrics *metrics.Metrics
}

func NewService(bridge backend.Bridge, m *metrics.Metrics) *Service {
	return &Service{
		bridge:  bridge,
		cache:   gocache.New(gocache.NoExpiration, 0),
		metrics: m,
	}
}

// List returns the catalog grouped into sections, filtered by a
// case-insensitive substring match on item name. An empty query
// returns all sections.
func (s *Service) List(ctx context.Context, query string) ([]model.CatalogSection, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized != "" {
		filtered := make([]itemWithCategory, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), normalized) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return groupByCategory(items), nil
}

// FindByID looks an item up within the cache. It never triggers a
// fetch; an unloaded cache simply reports no match.
func (s *Service) FindByID(id string) (*model.CatalogItem, bool) {
	items, ok := s.cached()
	if !ok {
		return nil, false
	}
	for _, item := range items {
		if item.ID == id {
			found := item.CatalogItem
			return &found, true
		}
	}
	return nil, false
}

func (s *Service) cached() ([]itemWithCategory, bool) {
	raw, ok := s.cache.Get(cacheKey)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]itemWithCategory)
	return items, ok
}

// load returns the cached catalog or fetches it. singleflight
// guarantees at most one in-flight backend fetch; concurrent callers
// await the same result, and a failure propagates to all of them.
func (s *Service) load(ctx context.Context) ([]itemWithCategory, error) {
	if items, ok := s.cached(); ok {
		if s.metrics != nil {
			s.metrics.CatalogHits.Inc()
		}
		return items, nil
	}

	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		if items, ok := s.cached(); ok {
			return items, nil
		}

		if s.metrics != nil {
			s.metrics.CatalogLoads.Inc()
		}

		dtos, err := s.bridge.ListExamCatalog(ctx)
		if err != nil {
			if s.metrics != nil {
				s.metrics.CatalogLoadFails.Inc()
			}
			return nil, fmt.Errorf("failed to fetch exam catalog: %w", err)
		}

		items := make([]itemWithCategory, 0, len(dtos))
		for _, dto := range dtos {
			items = append(items, itemWithCategory{
				CatalogItem: model.CatalogItem{
					ID:         dto.ID,
					Name:       dto.Name,
					Price:      float64(dto.PriceCents) / 100,
					CategoryID: dto.CategoryID,
				},
				CategoryTitle: dto.CategoryTitle,
			})
		}

		s.cache.Set(cacheKey, items, gocache.NoExpiration)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]itemWithCategory), nil
}

// groupByCategory builds sections keyed by category id, preserving
// first-seen order. The section title comes from the first item seen
// for that category.
func groupByCategory(items []itemWithCategory) []model.CatalogSection {
	indexByID := make(map[string]int)
	sections := make([]model.CatalogSection, 0)

	for _, item := range items {
		idx, ok := indexByID[item.CategoryID]
		if !ok {
			idx = len(sections)
			indexByID[item.CategoryID] = idx
			sections = append(sections, model.CatalogSection{
				ID:    item.CategoryID,
				Title: item.CategoryTitle,
			})
		}
		sections[idx].Items = append(sections[idx].Items, item.CatalogItem)
	}

	return sections
}
