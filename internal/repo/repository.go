package repo

import (
	"context"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// NodeStore is the read/write port behind the fixture service.
type NodeStore interface {
	Add(ctx context.Context, n *domain.Node) error
	List(ctx context.Context) ([]domain.Node, error)
}
