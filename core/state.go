package core

import "github.com/google/btree"

// sweepState is the ordered set of obstacle segments currently intersected
// by the sweep ray, keyed by distLess. It is the concrete realization of the
// distilled spec's "ordered set" external collaborator (§6), backed by a
// real balanced-tree library (google/btree) rather than a hand-rolled tree,
// since none of this module's lineage reaches for one when it needs ordered
// insert/erase/min.
//
// The comparator closure is captured once, at the start of a single Polygon
// call, and never recomputed or cached per element: two segments' relative
// distance order can flip as the sweep rotates, so nothing about "distance"
// is ever stored on an element itself.
type sweepState struct {
	tree *btree.BTree
	less func(x, y Segment) bool
}

// degree 2 keeps nodes small; sweep states are tiny (bounded by the number
// of obstacles simultaneously crossed by one ray) so tree shape barely
// matters here, but a low degree keeps rebalancing cheap for the common
// single-digit-element case.
const stateDegree = 2

func newSweepState(less func(x, y Segment) bool) *sweepState {
	return &sweepState{tree: btree.New(stateDegree), less: less}
}

type stateItem struct {
	seg  Segment
	less func(x, y Segment) bool
}

func (i stateItem) Less(than btree.Item) bool {
	return i.less(i.seg, than.(stateItem).seg)
}

func (s *sweepState) item(seg Segment) stateItem {
	return stateItem{seg: seg, less: s.less}
}

func (s *sweepState) Insert(seg Segment) {
	s.tree.ReplaceOrInsert(s.item(seg))
}

func (s *sweepState) Erase(seg Segment) {
	s.tree.Delete(s.item(seg))
}

func (s *sweepState) Empty() bool {
	return s.tree.Len() == 0
}

// Min returns the segment nearest to the observer, i.e. the minimum element
// under distLess. It panics if the state is empty; callers must check Empty
// first, matching the sweep's own invariant that it only calls Min when it
// knows the state is non-empty.
func (s *sweepState) Min() Segment {
	return s.tree.Min().(stateItem).seg
}
