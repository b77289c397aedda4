package sprig

import (
	"fmt"
	"os"
	"strings"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers skip this entirely outside debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sprig debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugLogEmission prints one line per node emitted through the UI sink.
func (s *Scene) debugLogEmission(n *Node) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sprig] ui node %d %q styled: %s x %s, %d components\n",
		n.ID, n.Name, n.Style.Width, n.Style.Height, n.NumComponents())
}

// DumpTree writes an indented outline of n's subtree, one node per line.
func DumpTree(n *Node) string {
	var b strings.Builder
	dumpTree(&b, n, 0)
	return b.String()
}

func dumpTree(b *strings.Builder, n *Node, depth int) {
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", depth), n.Name)
	if n.Type == NodeTypeUI && (n.Layout.Width > 0 || n.Layout.Height > 0) {
		r := n.Layout
		fmt.Fprintf(b, " [%.0f,%.0f %.0fx%.0f]", r.X, r.Y, r.Width, r.Height)
	}
	b.WriteByte('\n')
	for _, c := range n.children {
		dumpTree(b, c, depth+1)
	}
}
