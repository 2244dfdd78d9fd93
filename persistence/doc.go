// Package persistence computes barcode diagrams of a filtration over 𝔽₂
// with the incremental column-reduction algorithm.
//
// How it works, dimension by dimension:
//
//   - Every k-simplex, visited in filtration order, forms its boundary chain
//     from the faces still marked at dimension k−1 (unmarked faces were
//     already cancelled) and reduces it against the stored chains: while the
//     chain is non-empty and the slot of its pivot is occupied, XOR the
//     stored chain in.
//   - An empty result marks the simplex: it created a k-dimensional cycle.
//   - A non-empty result is stored in the slot of its pivot p, and a finite
//     bar (entry of p, entry of the simplex) is emitted in dimension k−1.
//   - After the sweep, every simplex marked at its dimension whose slot was
//     never filled owns an infinite bar.
//
// Chains are compressed bitmaps of simplex positions (roaring), so XOR,
// pivot (the minimum set index), and the nullity test are all word-level
// container operations.
//
// Ordering within one dimension is load-bearing: each reduction depends on
// slots filled by earlier simplices, so the sweep is inherently sequential
// and is never parallelized.
//
// Bars with equal birth and death are dropped — a feature that dies the
// instant it is born is no feature. IndexBarcodes reports filtration steps;
// ScaleBarcodes maps step i back to scales[m−1−i] of the descending scale
// list the filtration was built from.
package persistence
