package cntrl

import (
	"os"
	"path/filepath"

	"github.com/sigreer/ledgod/internal/cache"
)

// Type identifies which backend drives a controller's indicators.
type Type string

const (
	TypeKernelNPEM Type = "kernel_npem"
)

// Device is one discovered enclosure management endpoint.
type Device struct {
	Path string `json:"path"`
	Type Type   `json:"type"`
}

// PresenceFunc reports whether a sysfs path is an enclosure management
// endpoint the backend can drive.
type PresenceFunc func(path string) bool

// Discover finds enclosure management endpoints for one backend type.
// Every child of each scan root is a candidate; explicitly configured
// enclosure paths are checked directly. A root that cannot be listed is
// skipped. Results are cached with a slow TTL (hardware topology rarely
// changes); the presence check itself is re-run on every cache miss.
func Discover(scanRoots, enclosures []string, typ Type, present PresenceFunc) []Device {
	c := cache.Global()
	cacheKey := "cntrl:" + string(typ)

	if cached := c.Get(cacheKey); cached != nil {
		return cached.([]Device)
	}

	var devices []Device
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] || !present(path) {
			return
		}
		seen[path] = true
		devices = append(devices, Device{Path: path, Type: typ})
	}

	for _, path := range enclosures {
		add(filepath.Clean(path))
	}

	for _, root := range scanRoots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			add(filepath.Join(root, entry.Name()))
		}
	}

	if len(devices) > 0 {
		c.SetSlow(cacheKey, devices)
	}

	return devices
}

// InvalidateCache drops cached discovery results for a backend type,
// forcing the next Discover call to rescan.
func InvalidateCache(typ Type) {
	cache.Global().Delete("cntrl:" + string(typ))
}
