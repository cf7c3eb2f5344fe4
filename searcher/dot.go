package searcher

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

const graphName = "mcts"

// ToDot renders the tree down to maxDepth levels below the root as a
// Graphviz digraph. A negative maxDepth renders everything.
func (t *Tree) ToDot(maxDepth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", fmt.Errorf("failed to name graph: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("failed to set graph direction: %w", err)
	}
	if err := t.addDot(g, rootID, 0, maxDepth); err != nil {
		return "", err
	}
	return g.String(), nil
}

func (t *Tree) addDot(g *gographviz.Graph, id NodeID, depth, maxDepth int) error {
	n := &t.nodes[id]
	label := "root"
	if n.parent != nilNode {
		label = fmt.Sprintf("%v %v", n.color, n.move)
	}
	rate := 0.0
	if n.visits > 0 {
		rate = n.wins / float64(n.visits)
	}
	attrs := map[string]string{
		"label": fmt.Sprintf(`"%s\n%d visits\n%.3f"`, label, n.visits, rate),
	}
	if n.parent == nilNode {
		attrs["shape"] = "box"
	}
	if err := g.AddNode(graphName, dotName(id), attrs); err != nil {
		return fmt.Errorf("failed to add node %d: %w", id, err)
	}
	if n.parent != nilNode {
		if err := g.AddEdge(dotName(n.parent), dotName(id), true, nil); err != nil {
			return fmt.Errorf("failed to add edge to node %d: %w", id, err)
		}
	}

	if maxDepth >= 0 && depth >= maxDepth {
		return nil
	}
	for _, c := range n.children {
		if err := t.addDot(g, c, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

func dotName(id NodeID) string {
	return fmt.Sprintf("n%d", id)
}
