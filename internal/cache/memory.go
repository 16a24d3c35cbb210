package cache

import (
	"context"
	"sync"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

// MemoryCache implements RecordCache in process memory. Used for local
// development and tests; entries do not survive a restart.
type MemoryCache struct {
	mu      sync.RWMutex
	records map[string]models.PortfolioRecord
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		records: make(map[string]models.PortfolioRecord),
	}
}

func (c *MemoryCache) Put(ctx context.Context, record *models.PortfolioRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[record.StudentID] = *record
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, studentID string) (*models.PortfolioRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[studentID]
	if !ok {
		return nil, ErrCacheMiss
	}
	return &record, nil
}

func (c *MemoryCache) Delete(ctx context.Context, studentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, studentID)
	return nil
}
