package entity

// Tree edits never mutate nodes in place: every split on the path from the
// root to the edited node is copied, so a tree observed before an edit stays
// consistent.

// DefaultSplitRatio is the ratio used by relative insertion.
const DefaultSplitRatio = 0.5

// Walk visits nodes in pre-order (first child before second) with their depth.
// Returning false from fn skips the node's children.
func Walk(root DockNode, fn func(node DockNode, depth int) bool) {
	walk(root, 0, fn)
}

func walk(node DockNode, depth int, fn func(DockNode, int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	if split, ok := node.(*SplitNode); ok {
		walk(split.First, depth+1, fn)
		walk(split.Second, depth+1, fn)
	}
}

// Contains reports whether target is referenced anywhere in the tree.
func Contains(root, target DockNode) bool {
	if root == nil || target == nil {
		return false
	}
	found := false
	Walk(root, func(node DockNode, _ int) bool {
		if node == target {
			found = true
		}
		return !found
	})
	return found
}

// FindPanelNode returns the leaf holding the panel group, or nil.
func FindPanelNode(root DockNode, id PanelID) *BlockNode {
	var found *BlockNode
	Walk(root, func(node DockNode, _ int) bool {
		if found != nil {
			return false
		}
		if leaf, ok := node.(*BlockNode); ok && leaf.Panel == id {
			found = leaf
		}
		return true
	})
	return found
}

// PanelOrder returns the panel ids of every leaf in pre-order.
func PanelOrder(root DockNode) []PanelID {
	var ids []PanelID
	Walk(root, func(node DockNode, _ int) bool {
		if leaf, ok := node.(*BlockNode); ok {
			ids = append(ids, leaf.Panel)
		}
		return true
	})
	return ids
}

// ParentOf returns the split directly holding target, or nil.
func ParentOf(root, target DockNode) *SplitNode {
	var parent *SplitNode
	Walk(root, func(node DockNode, _ int) bool {
		if parent != nil {
			return false
		}
		if split, ok := node.(*SplitNode); ok && (split.First == target || split.Second == target) {
			parent = split
		}
		return true
	})
	return parent
}

// Detach removes target from the tree and returns the new root.
// The parent split is replaced by the remaining sibling. A nil root or target,
// or a target absent from the tree, returns root unchanged.
func Detach(root, target DockNode) DockNode {
	if root == nil || target == nil {
		return root
	}
	if root == target {
		return nil
	}
	next, found := detach(root, target)
	if !found {
		return root
	}
	return next
}

func detach(node, target DockNode) (DockNode, bool) {
	split, ok := node.(*SplitNode)
	if !ok {
		return node, false
	}
	if split.First == target {
		return split.Second, true
	}
	if split.Second == target {
		return split.First, true
	}
	if first, found := detach(split.First, target); found {
		return split.withChildren(first, split.Second), true
	}
	if second, found := detach(split.Second, target); found {
		return split.withChildren(split.First, second), true
	}
	return node, false
}

// Replace substitutes old with replacement and returns the new root.
func Replace(root, old, replacement DockNode) DockNode {
	if root == nil || old == nil {
		return root
	}
	if root == old {
		return replacement
	}
	next, found := replace(root, old, replacement)
	if !found {
		return root
	}
	return next
}

func replace(node, old, replacement DockNode) (DockNode, bool) {
	split, ok := node.(*SplitNode)
	if !ok {
		return node, false
	}
	if split.First == old {
		return split.withChildren(replacement, split.Second), true
	}
	if split.Second == old {
		return split.withChildren(split.First, replacement), true
	}
	if first, found := replace(split.First, old, replacement); found {
		return split.withChildren(first, split.Second), true
	}
	if second, found := replace(split.Second, old, replacement); found {
		return split.withChildren(split.First, second), true
	}
	return node, false
}

// withChildren returns a copy of the split carrying new children.
func (n *SplitNode) withChildren(first, second DockNode) *SplitNode {
	clone := *n
	clone.First = first
	clone.Second = second
	return &clone
}

// InsertRelative wraps reference in a new split holding insert on the given
// edge of it, at DefaultSplitRatio. Insert must not already be in the tree
// and reference must be; otherwise root is returned unchanged.
func InsertRelative(root, insert, reference DockNode, edge DockEdge) DockNode {
	if root == nil || insert == nil || reference == nil || insert == reference {
		return root
	}
	if Contains(root, insert) || !Contains(root, reference) {
		return root
	}
	return Replace(root, reference, splitAt(edge, insert, reference, DefaultSplitRatio))
}

// InsertAtViewportEdge docks node against the whole layout on one side of the
// viewport. fraction is the share of the viewport the inserted node receives.
// An empty tree is replaced by node.
func InsertAtViewportEdge(root, node DockNode, edge DockEdge, fraction float64) DockNode {
	if node == nil || Contains(root, node) {
		return root
	}
	if root == nil {
		return node
	}
	return splitAt(edge, node, root, fraction)
}

// splitAt builds a split placing insert on edge of other. share is insert's ratio.
func splitAt(edge DockEdge, insert, other DockNode, share float64) *SplitNode {
	if edge.Leading() {
		return NewSplitNode(edge.Orientation(), insert, other, share)
	}
	return NewSplitNode(edge.Orientation(), other, insert, 1-share)
}

// CountAlongOrientation counts the visible slots laid out along o at the top
// of the tree: chains of same-orientation splits are flattened, anything else
// counts as one slot when it has visible content.
func CountAlongOrientation(root DockNode, o Orientation, src BlockSource) int {
	if root == nil || !root.HasVisibleContent(src) {
		return 0
	}
	split, ok := root.(*SplitNode)
	if !ok || split.Orientation != o {
		return 1
	}
	return CountAlongOrientation(split.First, o, src) + CountAlongOrientation(split.Second, o, src)
}

// ViewportFraction returns the share a node docked at edge should receive:
// 1/(slots along the edge's orientation + 1).
func ViewportFraction(root DockNode, edge DockEdge, src BlockSource) float64 {
	return 1 / float64(CountAlongOrientation(root, edge.Orientation(), src)+1)
}

// Splits returns every split node in pre-order.
func Splits(root DockNode) []*SplitNode {
	var splits []*SplitNode
	Walk(root, func(node DockNode, _ int) bool {
		if split, ok := node.(*SplitNode); ok {
			splits = append(splits, split)
		}
		return true
	})
	return splits
}
