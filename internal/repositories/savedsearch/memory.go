package savedsearch

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectolinq"
	"github.com/Ramsey-B/fern/pkg/search"
)

// Memory is an in-process Store used by tests and local development. Entries
// are copied on the way in and out so callers can't mutate stored state.
type Memory struct {
	mu       sync.RWMutex
	searches map[string]search.SavedSearch
}

func NewMemory() *Memory {
	return &Memory{
		searches: make(map[string]search.SavedSearch),
	}
}

func (m *Memory) Create(_ context.Context, saved search.SavedSearch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved.CreatedTS = time.Now().UTC()
	saved.UpdatedTS = saved.CreatedTS
	m.searches[saved.ID] = saved
	return nil
}

func (m *Memory) Get(_ context.Context, userID, id string) (search.SavedSearch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	saved, ok := m.searches[id]
	if !ok || saved.UserID != userID {
		return search.SavedSearch{}, httperror.NewHTTPError(http.StatusNotFound, "saved search not found")
	}
	return saved, nil
}

func (m *Memory) ListByUser(_ context.Context, userID string) ([]search.SavedSearch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]search.SavedSearch, 0, len(m.searches))
	for _, saved := range m.searches {
		all = append(all, saved)
	}

	searches := ectolinq.Filter(all, func(saved search.SavedSearch) bool {
		return saved.UserID == userID
	})
	if searches == nil {
		searches = []search.SavedSearch{}
	}
	sort.Slice(searches, func(i, j int) bool {
		return searches[i].CreatedTS.After(searches[j].CreatedTS)
	})
	return searches, nil
}

func (m *Memory) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved, ok := m.searches[id]
	if !ok || saved.UserID != userID {
		return httperror.NewHTTPError(http.StatusNotFound, "saved search not found")
	}
	delete(m.searches, id)
	return nil
}
