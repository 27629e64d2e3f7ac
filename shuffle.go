package bvh

// Index is the constraint for permutation index types. Builders working in
// single precision typically carry uint32 indices (see IndexBits); plain int
// is accepted for callers feeding output of the sort package.
type Index interface {
	~int | ~uint32 | ~uint64
}

// Shuffle reorders prims in place so that position i receives the element
// that was originally at indices[i]. A full staging copy is taken first: an
// arbitrary permutation cannot be realized by naive in-place swaps without
// cycle detection, and the copy-then-move form keeps every element moved
// exactly once.
//
// indices must be a bijection over [0, len(prims)) and at least as long as
// prims. This is an unchecked precondition: a duplicate or out-of-range index
// loses or duplicates elements rather than returning an error.
func Shuffle[P any, I Index](prims []P, indices []I) {
	if len(prims) == 0 {
		return
	}
	staging := make([]P, len(prims))
	copy(staging, prims)
	for i := range prims {
		prims[i] = staging[indices[i]]
	}
}
