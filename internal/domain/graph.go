package domain

import (
	"fmt"
	"strings"
)

const (
	NodeInput           = "input"
	NodeMetricsAlerts   = "metrics_alerts"
	NodeRecommendations = "recommendations"
)

// GraphEdge liga dois nós do pipeline
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PipelineGraph descreve a topologia do pipeline apenas para visualização.
// A execução não depende desta estrutura.
type PipelineGraph struct {
	Nodes []string    `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// PipelineTopology retorna a topologia fixa input → metrics_alerts → recommendations
func PipelineTopology() PipelineGraph {
	return PipelineGraph{
		Nodes: []string{NodeInput, NodeMetricsAlerts, NodeRecommendations},
		Edges: []GraphEdge{
			{From: NodeInput, To: NodeMetricsAlerts},
			{From: NodeMetricsAlerts, To: NodeRecommendations},
		},
	}
}

// DOT renderiza o grafo no formato do Graphviz
func (g PipelineGraph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	for _, node := range g.Nodes {
		fmt.Fprintf(&b, "    %q;\n", node)
	}
	for _, edge := range g.Edges {
		fmt.Fprintf(&b, "    %q -> %q;\n", edge.From, edge.To)
	}
	b.WriteString("}")
	return b.String()
}

// ASCII renderiza o grafo como caixas empilhadas, na ordem dos nós
func (g PipelineGraph) ASCII() string {
	var b strings.Builder
	for i, node := range g.Nodes {
		border := "+" + strings.Repeat("-", len(node)+2) + "+"
		b.WriteString(border + "\n")
		b.WriteString("| " + node + " |\n")
		b.WriteString(border + "\n")

		if i < len(g.Nodes)-1 && g.hasEdge(node, g.Nodes[i+1]) {
			b.WriteString("    |\n")
			b.WriteString("    v\n")
		}
	}
	return b.String()
}

func (g PipelineGraph) hasEdge(from, to string) bool {
	for _, edge := range g.Edges {
		if edge.From == from && edge.To == to {
			return true
		}
	}
	return false
}
