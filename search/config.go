// Package search implements the breadth-first placement search: given a
// GameState and a piece, enumerate every reachable landing position,
// reconstruct the move path to it, and classify T-spin outcomes.
package search

// Config controls which moves the BFS explores and how it records
// landings. The zero value is not a ready-to-use configuration; start
// from DefaultConfig and override individual fields.
type Config struct {
	AllowHardDrop    bool
	AllowSoftDrop    bool
	AllowRotate180   bool
	Is20G            bool
	LastRotationOnly bool

	// AllowKickedRotations widens each rotation move into one successor
	// per wall-kick table entry for the piece's (type, fromRotation),
	// annotated with the kick index used. Off by default: the BFS then
	// explores only the pure, kick-free rotation spec.md §4.6 defines.
	AllowKickedRotations bool
}

// DefaultConfig matches the spec's default move alphabet: hard drop and
// soft drop included, 180-degree rotation excluded, every landing
// recorded regardless of its last move.
func DefaultConfig() Config {
	return Config{AllowHardDrop: true, AllowSoftDrop: true}
}

// TSpinConfig extends Config with the extra knobs a T-spin-aware search
// needs on top of the plain placement search.
type TSpinConfig struct {
	Config
	RequireLastRotation bool
	AllowMiniTSpins     bool
	PrioritizeTSpins    bool
}

// DefaultTSpinConfig returns DefaultConfig plus mini T-spins enabled and
// no T-spin-only filtering or reordering.
func DefaultTSpinConfig() TSpinConfig {
	return TSpinConfig{Config: DefaultConfig(), AllowMiniTSpins: true}
}
