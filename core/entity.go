package core

import "fmt"

// Entity is a generation-tagged handle into the entity store
// Index selects the slot, Generation must match the slot's current generation
// for the handle to resolve. The zero value is the nil handle and never resolves
type Entity struct {
	Index      uint32
	Generation uint32
}

// NilEntity is the sentinel handle with no backing entity
var NilEntity = Entity{}

// IsNil reports whether e is the sentinel handle
func (e Entity) IsNil() bool {
	return e.Generation == 0
}

func (e Entity) String() string {
	if e.IsNil() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d/%d)", e.Index, e.Generation)
}
