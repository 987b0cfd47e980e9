// Package unionfind implements a disjoint-set (union-find) structure whose
// parent links live in caller-owned storage.
//
// What:
//
//   - Store[T] is the storage contract: Parent reads a link, SetParent writes
//     one. Items with no stored link are their own root.
//   - FindRoot follows links to the root, then re-links every visited item
//     directly to it (path compression).
//   - Merge joins two sets; the larger root under T's total order becomes the
//     parent of the smaller one.
//   - InSameSet reports whether two items share a root.
//
// Why:
//
//   - The merge rule replaces union-by-rank: callers that place a handful of
//     distinguished sentinel items at the top of the index space (hexgame's
//     board edges) get stable roots for free, with no rank or size arrays.
//
// Contract:
//
//   - FindRoot and InSameSet are logically read-only but rewrite parent links
//     through SetParent. Callers must treat every connectivity query as a
//     mutation of the Store's internal representation; observable set
//     membership never changes.
//   - Every item passed in must be valid within the Store's allocated range.
//     There is no recoverable error at this layer; a bad item is a defect in
//     the caller.
//
// Complexity: each operation is near-constant amortized — O(α(n)) with
// union-by-rank, slightly weaker with the order-biased rule, and in practice
// indistinguishable on boards capped at 19×19.
package unionfind
