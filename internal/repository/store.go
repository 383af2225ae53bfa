package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/news-portal-api/internal/models"
)

// memStore holds every in-memory table behind a single lock. Contention is
// negligible at this scale and one lock makes the article-create plus
// category-counter pair atomic without coordination between tables.
type memStore struct {
	mu      sync.RWMutex
	weights PopularityWeights

	categories   map[int]*models.Category
	articles     map[int]*models.Article
	tags         map[int]*models.Tag
	workshops    map[int]*models.Workshop
	events       map[int]*models.Event
	subscribers  map[int]*models.Subscriber
	breakingNews map[int]*models.BreakingNews

	// Unique-key indexes for O(1) lookups and conflict checks
	categorySlugs    map[string]int
	categoryNames    map[string]int
	articleSlugs     map[string]int
	tagSlugs         map[string]int
	tagNames         map[string]int
	workshopSlugs    map[string]int
	subscriberEmails map[string]int

	// Per-entity id allocators, starting at 1, never reused
	nextCategoryID   int
	nextArticleID    int
	nextTagID        int
	nextWorkshopID   int
	nextEventID      int
	nextSubscriberID int
	nextBreakingID   int
}

// NewMemory creates the in-memory repository set. All repositories share
// one store, so cross-table invariants hold under a single lock.
func NewMemory(weights PopularityWeights) *Repositories {
	s := &memStore{
		weights:          weights,
		categories:       make(map[int]*models.Category),
		articles:         make(map[int]*models.Article),
		tags:             make(map[int]*models.Tag),
		workshops:        make(map[int]*models.Workshop),
		events:           make(map[int]*models.Event),
		subscribers:      make(map[int]*models.Subscriber),
		breakingNews:     make(map[int]*models.BreakingNews),
		categorySlugs:    make(map[string]int),
		categoryNames:    make(map[string]int),
		articleSlugs:     make(map[string]int),
		tagSlugs:         make(map[string]int),
		tagNames:         make(map[string]int),
		workshopSlugs:    make(map[string]int),
		subscriberEmails: make(map[string]int),
		nextCategoryID:   1,
		nextArticleID:    1,
		nextTagID:        1,
		nextWorkshopID:   1,
		nextEventID:      1,
		nextSubscriberID: 1,
		nextBreakingID:   1,
	}

	return &Repositories{
		Article:      &articleRepo{store: s},
		Category:     &categoryRepo{store: s},
		Tag:          &tagRepo{store: s},
		Workshop:     &workshopRepo{store: s},
		Event:        &eventRepo{store: s},
		Subscriber:   &subscriberRepo{store: s},
		BreakingNews: &breakingNewsRepo{store: s},
	}
}

// checkPage rejects negative paging values at the store boundary
func checkPage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return ErrInvalidArgument
	}
	return nil
}

// page applies offset and limit to an already-sorted slice.
// limit 0 means no cap.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// sortByPublishedAt orders articles newest first, ties broken by id so the
// order is deterministic.
func sortByPublishedAt(articles []*models.Article) {
	sort.Slice(articles, func(i, j int) bool {
		if !articles[i].PublishedAt.Equal(articles[j].PublishedAt) {
			return articles[i].PublishedAt.After(articles[j].PublishedAt)
		}
		return articles[i].ID > articles[j].ID
	})
}

func (s *memStore) sortByPopularity(articles []*models.Article) {
	sort.Slice(articles, func(i, j int) bool {
		si, sj := s.weights.Score(articles[i]), s.weights.Score(articles[j])
		if si != sj {
			return si > sj
		}
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// cloneArticle copies a record so callers never observe counter updates
// happening after their read.
func cloneArticle(a *models.Article) *models.Article {
	c := *a
	if a.Tags != nil {
		c.Tags = append([]string(nil), a.Tags...)
	}
	return &c
}

func cloneCategory(c *models.Category) *models.Category {
	cp := *c
	return &cp
}

// matchesQuery reports whether any lowercase term is a substring of the
// article's title, excerpt, content or tags.
func matchesQuery(a *models.Article, terms []string) bool {
	title := strings.ToLower(a.Title)
	excerpt := strings.ToLower(a.Excerpt)
	content := strings.ToLower(a.Content)
	for _, term := range terms {
		if strings.Contains(title, term) || strings.Contains(excerpt, term) || strings.Contains(content, term) {
			return true
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
	}
	return false
}
