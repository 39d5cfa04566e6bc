package spirv

import (
	"fmt"

	"github.com/streamkit/spirvval/api"
)

// CapabilitySet is the set of capabilities a module declares. Validation only
// ever reads it; mutation stops once the module is decoded.
type CapabilitySet struct {
	set map[api.Capability]struct{}
}

// NewCapabilitySet returns a set containing the given capabilities.
func NewCapabilitySet(caps ...api.Capability) *CapabilitySet {
	s := &CapabilitySet{set: make(map[api.Capability]struct{}, len(caps))}
	for _, c := range caps {
		s.Add(c)
	}
	return s
}

// Add declares a capability. Used by the decoder; idempotent.
func (s *CapabilitySet) Add(c api.Capability) {
	s.set[c] = struct{}{}
}

// Has returns true if the capability is declared.
func (s *CapabilitySet) Has(c api.Capability) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[c]
	return ok
}

// Require returns an error if the capability is not declared. The error
// message names the capability so it can be surfaced verbatim.
func (s *CapabilitySet) Require(c api.Capability) error {
	if !s.Has(c) {
		return fmt.Errorf("capability %s is not declared by the module", api.CapabilityName(c))
	}
	return nil
}
