package slot

import (
	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/ibpi"
)

// Backend is the hardware-facing surface a slot dispatches to. Backends
// hold no mutable state; every call re-derives current state from the
// hardware.
type Backend interface {
	// GetState reads the indicator state currently presented by the
	// hardware. Falls back to ibpi.PatternUnknown when nothing decodes.
	GetState() ibpi.Pattern

	// SetState commands the hardware to present the given pattern.
	SetState(p ibpi.Pattern) error

	// Path returns the filesystem root path identifying the endpoint.
	Path() string
}

// Slot is one manageable enclosure or drive-bay endpoint.
type Slot struct {
	ID          string     // identifier shown to callers
	Type        cntrl.Type // backend type tag
	BlockDevice string     // kernel name of the attached block device, empty when none
	backend     Backend
}

// New binds a backend into a Slot. Returns nil when no backend is given.
func New(id string, typ cntrl.Type, blockDevice string, backend Backend) *Slot {
	if backend == nil {
		return nil
	}
	return &Slot{
		ID:          id,
		Type:        typ,
		BlockDevice: blockDevice,
		backend:     backend,
	}
}

// GetState reads the slot's current indicator pattern from hardware.
func (s *Slot) GetState() ibpi.Pattern {
	return s.backend.GetState()
}

// SetState commands the slot's indicator to the given pattern.
func (s *Slot) SetState(p ibpi.Pattern) error {
	return s.backend.SetState(p)
}

// Path returns the slot's enclosure root path.
func (s *Slot) Path() string {
	return s.backend.Path()
}
