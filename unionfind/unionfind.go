package unionfind

import "cmp"

// Store provides parent links for union-find items of type T.
//
// Parent returns the stored parent of item and true, or the zero value and
// false when item has no parent (it is its own root). SetParent records a
// link. Implementations typically back this with a flat array indexed by T.
type Store[T cmp.Ordered] interface {
	Parent(item T) (T, bool)
	SetParent(item, parent T)
}

// FindRoot returns the canonical representative of item's set.
//
// After the root is located, every item visited on the way is re-linked
// directly to it, so repeated queries on the same chain stay cheap.
func FindRoot[T cmp.Ordered](s Store[T], item T) T {
	root := item
	for {
		parent, ok := s.Parent(root)
		if !ok {
			break
		}
		root = parent
	}

	// Path compression: point everything we walked over straight at the root.
	for item != root {
		next, _ := s.Parent(item)
		s.SetParent(item, root)
		item = next
	}

	return root
}

// Merge joins the sets containing a and b. When the roots differ, the larger
// root under T's total order becomes the parent of the smaller one, so items
// stored at the top of the index space keep winning root. Merging items
// already in the same set is a no-op.
func Merge[T cmp.Ordered](s Store[T], a, b T) {
	rootA := FindRoot(s, a)
	rootB := FindRoot(s, b)

	switch {
	case rootA == rootB:
		// Already joined.
	case rootA > rootB:
		s.SetParent(rootB, rootA)
	default:
		s.SetParent(rootA, rootB)
	}
}

// InSameSet reports whether a and b share a root.
func InSameSet[T cmp.Ordered](s Store[T], a, b T) bool {
	return FindRoot(s, a) == FindRoot(s, b)
}
