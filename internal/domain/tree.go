package domain

// TreeNode represents an entry in the display tree built from a flat entry list
type TreeNode struct {
	Entry    Entry
	Children []*TreeNode
}

// BuildTree groups entries by parent path and returns the root-level nodes.
// Directories come before files under the same parent; otherwise insertion order is kept.
func BuildTree(entries []Entry) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(entries))
	var roots []*TreeNode

	for _, e := range entries {
		if _, exists := nodes[e.Path]; exists {
			continue
		}
		node := &TreeNode{Entry: e}
		nodes[e.Path] = node

		parent, ok := nodes[ParentPath(e.Path)]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortDirsFirst(roots)
	for _, n := range nodes {
		sortDirsFirst(n.Children)
	}
	return roots
}

// sortDirsFirst is a stable partition: directories keep their order, then files keep theirs
func sortDirsFirst(nodes []*TreeNode) {
	if len(nodes) < 2 {
		return
	}
	ordered := make([]*TreeNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Entry.IsDir() {
			ordered = append(ordered, n)
		}
	}
	for _, n := range nodes {
		if !n.Entry.IsDir() {
			ordered = append(ordered, n)
		}
	}
	copy(nodes, ordered)
}
