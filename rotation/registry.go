package rotation

import "github.com/lixenwraith/tetris-engine/registry"

// Registry maps rotation-system names to factories that produce a fresh
// instance (the "SRS" factory calls NewSRS). Lookup is exact-match,
// case-sensitive.
// "SRS" is registered at package init, the only built-in entry spec.md
// requires.
var Registry = registry.New[System]()

func init() {
	Registry.Register("SRS", func() System { return NewSRS() })
}

// Lookup is a convenience wrapper around Registry.Get.
func Lookup(name string) (System, bool) {
	return Registry.Get(name)
}
