package httpapi

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/domain"
	"github.com/hamed0406/endpointprobe/internal/repo"
)

// Server is a small stand-in for the supply-chain service the probes target.
type Server struct {
	Logger *zap.Logger
	Nodes  repo.NodeStore
}

func NewServer(l *zap.Logger, ns repo.NodeStore) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l, Nodes: ns}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/debug/static", s.handleDebugStatic)
	r.Get("/api/nodes", s.handleListNodes)
	r.Get("/api/stats", s.handleStats)

	return r
}

func (s *Server) handleDebugStatic(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.Nodes.List(r.Context())
	if err != nil {
		s.Logger.Warn("debug_static_list_error", zap.Error(err))
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	counts := domain.CountNodes(nodes).ByType
	types := make([]domain.NodeType, 0, len(domain.NodeTypes))
	for _, t := range domain.NodeTypes {
		if counts[t] > 0 {
			types = append(types, t)
		}
	}
	writeJSON(w, map[string]any{
		"nodes_loaded": len(nodes) > 0,
		"node_count":   len(nodes),
		"node_types":   types,
	})
}

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.Nodes.List(r.Context())
	if err != nil {
		s.Logger.Warn("list_nodes_error", zap.Error(err))
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	if nodes == nil {
		nodes = []domain.Node{}
	}
	writeJSON(w, nodes)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.Nodes.List(r.Context())
	if err != nil {
		s.Logger.Warn("stats_list_error", zap.Error(err))
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, domain.CountNodes(nodes))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = sonic.ConfigStd.NewEncoder(w).Encode(v)
}

