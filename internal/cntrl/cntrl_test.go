package cntrl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	InvalidateCache(TypeKernelNPEM)
	t.Cleanup(func() { InvalidateCache(TypeKernelNPEM) })

	scanRoot := t.TempDir()
	for _, name := range []string{"0000:05:00.0", "0000:06:00.0", "0000:07:00.0"} {
		if err := os.MkdirAll(filepath.Join(scanRoot, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	capable := map[string]bool{
		filepath.Join(scanRoot, "0000:05:00.0"): true,
		filepath.Join(scanRoot, "0000:07:00.0"): true,
	}

	devices := Discover([]string{scanRoot}, nil, TypeKernelNPEM, func(path string) bool {
		return capable[path]
	})

	if len(devices) != 2 {
		t.Fatalf("Discover() found %d devices, want 2", len(devices))
	}
	for _, d := range devices {
		if !capable[d.Path] {
			t.Errorf("Discover() returned non-capable path %s", d.Path)
		}
		if d.Type != TypeKernelNPEM {
			t.Errorf("device type = %q, want kernel_npem", d.Type)
		}
	}
}

func TestDiscoverExplicitEnclosures(t *testing.T) {
	InvalidateCache(TypeKernelNPEM)
	t.Cleanup(func() { InvalidateCache(TypeKernelNPEM) })

	enc := filepath.Join(t.TempDir(), "0000:05:00.0")

	devices := Discover(nil, []string{enc}, TypeKernelNPEM, func(path string) bool {
		return path == enc
	})

	if len(devices) != 1 || devices[0].Path != enc {
		t.Errorf("Discover() = %v, want single device at %s", devices, enc)
	}
}

func TestDiscoverDeduplicates(t *testing.T) {
	InvalidateCache(TypeKernelNPEM)
	t.Cleanup(func() { InvalidateCache(TypeKernelNPEM) })

	scanRoot := t.TempDir()
	enc := filepath.Join(scanRoot, "0000:05:00.0")
	if err := os.MkdirAll(enc, 0755); err != nil {
		t.Fatal(err)
	}

	// Explicit path also reachable via the scan root
	devices := Discover([]string{scanRoot}, []string{enc}, TypeKernelNPEM, func(string) bool {
		return true
	})

	if len(devices) != 1 {
		t.Errorf("Discover() found %d devices, want 1", len(devices))
	}
}

func TestDiscoverUnreadableRoot(t *testing.T) {
	InvalidateCache(TypeKernelNPEM)
	t.Cleanup(func() { InvalidateCache(TypeKernelNPEM) })

	devices := Discover([]string{"/nonexistent/scan/root"}, nil, TypeKernelNPEM, func(string) bool {
		return true
	})
	if len(devices) != 0 {
		t.Errorf("Discover() on unreadable root = %v, want none", devices)
	}
}

func TestDiscoverCaches(t *testing.T) {
	InvalidateCache(TypeKernelNPEM)
	t.Cleanup(func() { InvalidateCache(TypeKernelNPEM) })

	enc := filepath.Join(t.TempDir(), "0000:05:00.0")
	calls := 0
	present := func(path string) bool {
		calls++
		return true
	}

	Discover(nil, []string{enc}, TypeKernelNPEM, present)
	Discover(nil, []string{enc}, TypeKernelNPEM, present)

	if calls != 1 {
		t.Errorf("presence check ran %d times across cached calls, want 1", calls)
	}
}
