package constant

// Search Defaults
const (
	// UnboundedSearchDepth disables the BFS depth cutoff: every reachable
	// state is expanded regardless of how many moves it took to reach.
	UnboundedSearchDepth = 0

	// ReachableStateEstimate is the expected order of magnitude of the
	// visited set: a 10x20 SRS board has on the order of a few thousand
	// reachable states per piece type. The search's visited-set maps are
	// created without a preset capacity and do not read this value.
	ReachableStateEstimate = 4096
)
