package domain

type NodeID string

type NodeType string

const (
	DistributionCenter NodeType = "DistributionCenter"
	Store              NodeType = "Store"
	Truck              NodeType = "Truck"
	PurchaseOrder      NodeType = "PurchaseOrder"
	Shipment           NodeType = "Shipment"
)

// NodeTypes lists every known node type in display order.
var NodeTypes = []NodeType{DistributionCenter, Store, Truck, PurchaseOrder, Shipment}

type Node struct {
	ID   NodeID   `json:"id"`
	Type NodeType `json:"type"`
	Name string   `json:"name"`
	Lat  float64  `json:"lat,omitempty"`
	Lng  float64  `json:"lng,omitempty"`
}

type Stats struct {
	Total  int              `json:"total"`
	ByType map[NodeType]int `json:"by_type"`
}

// CountNodes builds Stats for a node list. Every known type is present in
// ByType, with zero when absent.
func CountNodes(nodes []Node) Stats {
	s := Stats{Total: len(nodes), ByType: make(map[NodeType]int, len(NodeTypes))}
	for _, t := range NodeTypes {
		s.ByType[t] = 0
	}
	for _, n := range nodes {
		s.ByType[n.Type]++
	}
	return s
}
