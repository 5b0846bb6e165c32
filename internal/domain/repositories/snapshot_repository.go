package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
)

// ErrSnapshotNotFound é retornado quando o snapshot não existe ou expirou
var ErrSnapshotNotFound = errors.New("snapshot não encontrado")

// SnapshotRepository armazena snapshots por um tempo limitado para que
// requisições seguintes leiam os mesmos dados
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entities.Snapshot, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*entities.Snapshot, error)
	// DeleteExpired remove snapshots expirados e retorna quantos foram removidos
	DeleteExpired(ctx context.Context) (int, error)
}
