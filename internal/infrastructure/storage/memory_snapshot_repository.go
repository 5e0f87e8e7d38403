package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// ErrSnapshotNotFound снимок с такой меткой не сохранялся
var ErrSnapshotNotFound = errors.New("snapshot not found")

// MemorySnapshotRepository in-memory хранилище снимков
type MemorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*entity.Snapshot
	labels    []string
}

// NewMemorySnapshotRepository создаёт новое in-memory хранилище
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		snapshots: make(map[string]*entity.Snapshot),
	}
}

// Save сохраняет снимок, перезаписывая снимок с той же меткой
func (r *MemorySnapshotRepository) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	if snapshot == nil || snapshot.Label == "" {
		return fmt.Errorf("%w: snapshot label is empty", entity.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.snapshots[snapshot.Label]; !exists {
		r.labels = append(r.labels, snapshot.Label)
	}
	r.snapshots[snapshot.Label] = cloneSnapshot(snapshot)
	return nil
}

// Get возвращает копию снимка по метке
func (r *MemorySnapshotRepository) Get(ctx context.Context, label string) (*entity.Snapshot, error) {
	r.mu.RLock()
	snapshot, exists := r.snapshots[label]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, label)
	}
	return cloneSnapshot(snapshot), nil
}

// List возвращает метки в порядке первого сохранения
func (r *MemorySnapshotRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.labels...), nil
}

func cloneSnapshot(s *entity.Snapshot) *entity.Snapshot {
	values := make(map[string]int, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return &entity.Snapshot{Label: s.Label, Values: values, SavedAt: s.SavedAt}
}

// Проверка реализации интерфейса
var _ port.SnapshotRepository = (*MemorySnapshotRepository)(nil)
