package status

import (
	"sync/atomic"
)

// MaxStringLen bounds stored strings so status lines stay short
const MaxStringLen = 20

// AtomicString provides atomic string access with fixed max length
// Zero value is ready to use
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the string value, truncating to MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current string value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
