package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	nodes map[domain.NodeID]*domain.Node
	order []domain.NodeID
}

func New() *Store {
	return &Store{
		nodes: make(map[domain.NodeID]*domain.Node),
		order: make([]domain.NodeID, 0, 16),
	}
}

// NewSeeded returns a store preloaded with a small supply-chain network.
func NewSeeded() *Store {
	s := New()
	for i := range sampleNodes {
		n := sampleNodes[i]
		_ = s.Add(context.Background(), &n)
	}
	return s
}

func (m *Store) Add(ctx context.Context, n *domain.Node) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == "" {
		n.ID = domain.NodeID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if _, ok := m.nodes[n.ID]; ok {
		return fmt.Errorf("node %s already exists", n.ID)
	}
	cp := *n
	m.nodes[n.ID] = &cp
	m.order = append(m.order, n.ID)
	return nil
}

// List returns nodes in insertion order.
func (m *Store) List(ctx context.Context) ([]domain.Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Node, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.nodes[id])
	}
	return out, nil
}

var sampleNodes = []domain.Node{
	{ID: "dc-atl", Type: domain.DistributionCenter, Name: "Atlanta DC", Lat: 33.749, Lng: -84.388},
	{ID: "dc-dal", Type: domain.DistributionCenter, Name: "Dallas DC", Lat: 32.7767, Lng: -96.797},
	{ID: "store-101", Type: domain.Store, Name: "Store 101", Lat: 33.52, Lng: -86.8025},
	{ID: "store-102", Type: domain.Store, Name: "Store 102", Lat: 30.2672, Lng: -97.7431},
	{ID: "store-103", Type: domain.Store, Name: "Store 103", Lat: 35.1495, Lng: -90.049},
	{ID: "truck-7", Type: domain.Truck, Name: "Truck 7"},
	{ID: "po-5001", Type: domain.PurchaseOrder, Name: "PO 5001"},
	{ID: "ship-9001", Type: domain.Shipment, Name: "Shipment 9001"},
}
