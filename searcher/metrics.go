package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Minimax positions visited
	Episodes  int64 // MCTS simulations
	Draws     int64 // MCTS rollouts ending in a full board
	TreeSize  int64 // MCTS nodes allocated
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddEpisode()
	AddDraw()
	AddTreeNodes(n int)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	episodes  atomic.Int64
	draws     atomic.Int64
	treeSize  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddDraw() {
	m.draws.Add(1)
}

func (m *metricsCollector) AddTreeNodes(n int) {
	m.treeSize.Add(int64(n))
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Episodes:  m.episodes.Load(),
		Draws:     m.draws.Load(),
		TreeSize:  m.treeSize.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddEpisode()           {}
func (m *noMetricsCollector) AddDraw()              {}
func (m *noMetricsCollector) AddTreeNodes(n int)    {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
