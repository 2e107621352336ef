package search

// Statistics are counters kept alongside a search run for diagnostics;
// none of them feed back into the search decision itself.
type Statistics struct {
	NodesVisited    uint64
	LeafEvaluations uint64
	BetaCuts        uint64
	KillerCuts      uint64
}
