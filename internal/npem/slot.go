package npem

import (
	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/ibpi"
	"github.com/sigreer/ledgod/internal/slot"
	"github.com/sigreer/ledgod/internal/sysfs"
)

// slotBackend adapts a Backend plus one enclosure root to the slot.Backend
// shape.
type slotBackend struct {
	backend *Backend
	root    string
}

func (s *slotBackend) GetState() ibpi.Pattern {
	return s.backend.GetState(s.root)
}

func (s *slotBackend) SetState(p ibpi.Pattern) error {
	return s.backend.SetState(s.root, p)
}

func (s *slotBackend) Path() string {
	return s.root
}

// NewSlot binds the enclosure at dev.Path to the generic slot abstraction.
// The enclosure root path becomes the slot identifier; the associated block
// device is resolved best-effort and may be absent.
func (b *Backend) NewSlot(dev *cntrl.Device) *slot.Slot {
	if dev == nil {
		return nil
	}
	return slot.New(dev.Path, dev.Type, sysfs.BlockDevice(dev.Path),
		&slotBackend{backend: b, root: dev.Path})
}
