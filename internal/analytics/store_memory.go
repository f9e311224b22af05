package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillsync-backend/internal/users"
)

type memoryStore struct {
	mu    sync.RWMutex
	logs  []UsageLog
	users *users.MemoryRepo
}

func newMemoryStore(userRepo *users.MemoryRepo) *memoryStore {
	return &memoryStore{users: userRepo}
}

func (s *memoryStore) Insert(ctx context.Context, log UsageLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.logs = append(s.logs, log)
	s.mu.Unlock()
	if s.users != nil {
		if err := s.users.AddUsage(ctx, log.UserEmail, log.ResumesProcessed); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore) List(ctx context.Context) ([]UsageLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]UsageLog, len(s.logs))
	copy(out, s.logs)
	return out, nil
}
