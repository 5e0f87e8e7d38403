package port

import (
	"context"

	"cvtune/internal/domain/entity"
)

// SnapshotRepository интерфейс хранилища снимков значений
type SnapshotRepository interface {
	// Save сохраняет снимок под меткой
	Save(ctx context.Context, snapshot *entity.Snapshot) error

	// Get возвращает снимок по метке
	Get(ctx context.Context, label string) (*entity.Snapshot, error)

	// List возвращает метки в порядке сохранения
	List(ctx context.Context) ([]string, error)
}
