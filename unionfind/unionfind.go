// Package unionfind implements a disjoint-set forest over comparable
// elements, used by Kruskal to detect cycles.
package unionfind

// UnionFind partitions elements into disjoint sets. Elements are added
// lazily on first use. The zero value is not usable; call New.
type UnionFind[T comparable] struct {
	parent map[T]T
	order  []T // elements by first use, for deterministic Components
}

// New returns a UnionFind seeded with elems, each its own singleton.
func New[T comparable](elems ...T) *UnionFind[T] {
	uf := &UnionFind[T]{parent: make(map[T]T, len(elems))}
	for _, e := range elems {
		uf.Add(e)
	}
	return uf
}

// Add inserts x as a singleton. Adding an existing element is a no-op.
func (uf *UnionFind[T]) Add(x T) {
	if _, ok := uf.parent[x]; ok {
		return
	}
	uf.parent[x] = x
	uf.order = append(uf.order, x)
}

// Find returns the representative of x's set, compressing the path so
// every node visited points straight at the root afterwards.
func (uf *UnionFind[T]) Find(x T) T {
	p, ok := uf.parent[x]
	if !ok {
		uf.Add(x)
		return x
	}
	if p != x {
		uf.parent[x] = uf.Find(p)
	}
	return uf.parent[x]
}

// Union merges the sets of a and b by attaching root(b) under root(a).
// It returns false when a and b were already connected, i.e. when the edge
// a-b would close a cycle.
func (uf *UnionFind[T]) Union(a, b T) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	uf.parent[rb] = ra
	return true
}

// Connected reports whether a and b share a set.
func (uf *UnionFind[T]) Connected(a, b T) bool {
	return uf.Find(a) == uf.Find(b)
}

// Len is the number of elements known.
func (uf *UnionFind[T]) Len() int { return len(uf.order) }

// Components returns the sets, each listed in first-use order, and the sets
// ordered by their earliest member.
func (uf *UnionFind[T]) Components() [][]T {
	var (
		idx = make(map[T]int)
		res [][]T
	)
	for _, x := range uf.order {
		r := uf.Find(x)
		i, ok := idx[r]
		if !ok {
			i = len(res)
			idx[r] = i
			res = append(res, nil)
		}
		res[i] = append(res[i], x)
	}
	return res
}
