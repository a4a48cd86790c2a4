package process

import "github.com/fwojciec/arcdoc"

// GraphNode is a captured page in the link graph.
type GraphNode struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// GraphEdge is a link between two captured pages. Text is the anchor
// text of the link.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Text   string `json:"text"`
}

// LinkGraph is the site's internal link structure restricted to pages
// that were actually captured.
type LinkGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type edgeKey struct {
	source string
	target string
}

// BuildLinkGraph builds the link graph for a set of captured pages.
// Every page becomes a node. Links pointing outside the captured set
// are dropped. Parallel edges collapse into one: the edge keeps its
// first-seen position and the anchor text of the last occurrence.
func BuildLinkGraph(pages []*arcdoc.Page) *LinkGraph {
	graph := &LinkGraph{
		Nodes: make([]GraphNode, 0, len(pages)),
		Edges: []GraphEdge{},
	}

	captured := make(map[string]bool, len(pages))
	for _, page := range pages {
		captured[page.URL] = true
	}

	seen := make(map[edgeKey]int)
	for _, page := range pages {
		graph.Nodes = append(graph.Nodes, GraphNode{ID: page.URL, Title: page.Title})
		for _, link := range page.Links {
			if !captured[link.URL] {
				continue
			}
			key := edgeKey{source: page.URL, target: link.URL}
			if i, ok := seen[key]; ok {
				graph.Edges[i].Text = link.Text
				continue
			}
			seen[key] = len(graph.Edges)
			graph.Edges = append(graph.Edges, GraphEdge{
				Source: page.URL,
				Target: link.URL,
				Text:   link.Text,
			})
		}
	}

	return graph
}
