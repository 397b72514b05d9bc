// Package npem drives per-slot enclosure indicators through the Native
// PCIe Enclosure Management registers the kernel exposes as LED class
// devices under an enclosure port's sysfs tree.
package npem

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/sigreer/ledgod/internal/ibpi"
	"github.com/sigreer/ledgod/internal/sysfs"
)

// Common errors
var (
	// ErrInvalidState is returned when a requested pattern has no NPEM
	// mapping or the controller does not advertise its capability.
	ErrInvalidState = errors.New("pattern not supported by controller")
)

// Capability is one NPEM Capable/Control register bit. Bits combine into
// a capability mask.
type Capability uint32

const (
	CapOK            Capability = 0x004
	CapLocate        Capability = 0x008
	CapFail          Capability = 0x010
	CapRebuild       Capability = 0x020
	CapPFA           Capability = 0x040
	CapHotSpare      Capability = 0x080
	CapCriticalArray Capability = 0x100
	CapFailedArray   Capability = 0x200
)

type patternCapability struct {
	pattern ibpi.Pattern
	cap     Capability
}

// ibpiToCapability maps abstract patterns onto NPEM capability bits.
// Lookups scan linearly and take the first match, so order matters:
// normal must precede locate_off for a reverse lookup on CapOK to resolve
// to normal. The terminal unknown entry is the sentinel returned when
// nothing matches. Do not replace with a map.
var ibpiToCapability = []patternCapability{
	{ibpi.PatternNormal, CapOK},
	{ibpi.PatternOneshotNormal, CapOK},
	{ibpi.PatternDegraded, CapCriticalArray},
	{ibpi.PatternHotSpare, CapHotSpare},
	{ibpi.PatternRebuild, CapRebuild},
	{ibpi.PatternFailedArray, CapFailedArray},
	{ibpi.PatternPFA, CapPFA},
	{ibpi.PatternFailedDrive, CapFail},
	{ibpi.PatternLocate, CapLocate},
	{ibpi.PatternLocateOff, CapOK},
	{ibpi.PatternUnknown, 0},
}

// lookupByPattern returns the first entry for p, or the unknown sentinel.
func lookupByPattern(p ibpi.Pattern) patternCapability {
	for _, e := range ibpiToCapability {
		if e.pattern == p {
			return e
		}
	}
	return ibpiToCapability[len(ibpiToCapability)-1]
}

// lookupByMask returns the first entry whose bit is present in mask, or
// the unknown sentinel. A mask with several bits set resolves to whichever
// capability appears first in table order.
func lookupByMask(mask Capability) patternCapability {
	for _, e := range ibpiToCapability {
		if e.cap != 0 && mask&e.cap != 0 {
			return e
		}
	}
	return ibpiToCapability[len(ibpiToCapability)-1]
}

type ledNode struct {
	cap  Capability
	name string
}

// ledNodes maps each capability bit onto the LED class device leaf the
// kernel creates for it.
var ledNodes = []ledNode{
	{CapOK, "enclosure:ok"},
	{CapLocate, "enclosure:locate"},
	{CapFail, "enclosure:fail"},
	{CapRebuild, "enclosure:rebuild"},
	{CapPFA, "enclosure:pfa"},
	{CapHotSpare, "enclosure:hotspare"},
	{CapCriticalArray, "enclosure:ica"},
	{CapFailedArray, "enclosure:ifa"},
}

// ledPath builds <root>/leds/<basename(root)>:<leaf>/brightness.
func ledPath(root, leaf string) string {
	return filepath.Join(root, "leds", filepath.Base(root)+":"+leaf, "brightness")
}

// Backend reads and writes NPEM capability registers for enclosure ports.
// It holds no per-enclosure state; every call re-derives everything from
// the filesystem.
type Backend struct {
	fs  sysfs.Filesystem
	log *slog.Logger
}

// New creates a Backend over the given filesystem. A nil logger falls
// back to slog.Default().
func New(fs sysfs.Filesystem, log *slog.Logger) *Backend {
	if log == nil {
		log = slog.Default()
	}
	return &Backend{fs: fs, log: log}
}

// Default returns a Backend over the real sysfs.
func Default() *Backend {
	return New(sysfs.OS{}, nil)
}

// SupportedMask probes which capability bits have a backing LED node under
// root. Computed fresh on every call; a node that cannot be statted counts
// as unsupported. Never fails.
func (b *Backend) SupportedMask(root string) Capability {
	var supported Capability
	for _, n := range ledNodes {
		if b.fs.Exists(ledPath(root, n.name)) {
			supported |= n.cap
		}
	}
	return supported
}

// IsPresent reports whether root is an NPEM-capable enclosure port, i.e.
// at least one capability bit has a backing LED node.
func (b *Backend) IsPresent(root string) bool {
	return b.SupportedMask(root) != 0
}

// readRegister folds the brightness values of all backing nodes into a
// live capability mask. Unreadable nodes read as inactive.
func (b *Backend) readRegister(root string) Capability {
	var reg Capability
	for _, n := range ledNodes {
		if b.fs.ReadInt(ledPath(root, n.name)) != 0 {
			reg |= n.cap
		}
	}
	return reg
}

// writeRegister applies val to every LED node that exists under root.
// Existence is re-checked per node at write time rather than trusting an
// earlier supported mask. Writes are best-effort: a node that fails to
// write is skipped and the remaining nodes are still written.
func (b *Backend) writeRegister(root string, val Capability) {
	for _, n := range ledNodes {
		path := ledPath(root, n.name)
		if !b.fs.Exists(path) {
			continue
		}
		value := "0"
		if val&n.cap != 0 {
			value = "1"
		}
		_ = b.fs.WriteText(path, value)
	}
}

// GetState reads the indicator state currently presented by the enclosure
// at root. When no bits are set, or none decode to a known pattern, it
// returns ibpi.PatternUnknown.
func (b *Backend) GetState(root string) ibpi.Pattern {
	return lookupByMask(b.readRegister(root)).pattern
}

// SetState commands the enclosure at root to present the given pattern.
// The pattern's capability bit must be advertised by the enclosure, with
// one exception: OK (normal and locate_off) may clear other states even
// when the controller does not advertise it, since many enclosures signal
// "ok" only by the absence of any other lit indicator.
func (b *Backend) SetState(root string, state ibpi.Pattern) error {
	entry := lookupByPattern(state)
	if entry.pattern == ibpi.PatternUnknown {
		b.log.Info("controller does not support pattern",
			"backend", "kernel_npem",
			"path", root,
			"pattern", state.String())
		return ErrInvalidState
	}

	requested := entry.cap
	supported := b.SupportedMask(root)

	if requested&supported == 0 && requested != CapOK {
		b.log.Info("controller does not support pattern",
			"backend", "kernel_npem",
			"path", root,
			"pattern", state.String())
		return ErrInvalidState
	}

	b.writeRegister(root, requested)
	return nil
}

// Write is the raw entry point for block-device callers. The pattern is
// range-checked before any filesystem access.
func (b *Backend) Write(root string, state ibpi.Pattern) error {
	if !state.Valid() {
		return ErrInvalidState
	}
	return b.SetState(root, state)
}
