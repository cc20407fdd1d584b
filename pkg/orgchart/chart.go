package orgchart

import "errors"

var (
	// ErrInvalidNodeID is returned by [Chart.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Chart.AddNode] when a node with the
	// same ID is already registered.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Chart.AddEdge] when the supervisor
	// end of the edge is not a registered node.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Chart.AddEdge] when the subordinate
	// end of the edge is not a registered node.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is one filled position in the chart.
type Node struct {
	ID        string // Record ID, also the Graphviz node name
	Title     string
	Name      string
	Category  string
	FillColor string // Hex color from the category table
	Label     string // Graphviz HTML-like label body, without the outer <...>
}

// Edge is a "supervises" relation: From is the supervisor, To the subordinate.
type Edge struct {
	From string
	To   string
}

// Chart is an ordered set of nodes and edges ready to be handed to Graphviz.
// Insertion order is preserved so the DOT description is deterministic.
//
// The zero value is not usable; create charts with [New] or [Build].
type Chart struct {
	Caption   string     // Graph-level label drawn at the top of the chart
	Omissions []Omission // Records or relations left out while building

	nodes []Node
	index map[string]int
	edges []Edge
}

// New creates an empty chart with the given caption.
func New(caption string) *Chart {
	return &Chart{
		Caption: caption,
		index:   make(map[string]int),
	}
}

// AddNode registers a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is already taken.
func (c *Chart) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := c.index[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	c.index[n.ID] = len(c.nodes)
	c.nodes = append(c.nodes, n)
	return nil
}

// AddEdge registers a directed edge between two existing nodes.
func (c *Chart) AddEdge(e Edge) error {
	if _, ok := c.index[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := c.index[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	c.edges = append(c.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (c *Chart) Node(id string) (Node, bool) {
	i, ok := c.index[id]
	if !ok {
		return Node{}, false
	}
	return c.nodes[i], true
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (c *Chart) Nodes() []Node {
	return append([]Node(nil), c.nodes...)
}

// Edges returns the edges in insertion order. The slice is a copy.
func (c *Chart) Edges() []Edge {
	return append([]Edge(nil), c.edges...)
}

// HasEdge reports whether the edge from→to exists.
func (c *Chart) HasEdge(from, to string) bool {
	for _, e := range c.edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

func (c *Chart) NodeCount() int { return len(c.nodes) }
func (c *Chart) EdgeCount() int { return len(c.edges) }
