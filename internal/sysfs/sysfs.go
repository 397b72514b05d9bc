package sysfs

import (
	"os"
	"strconv"
	"strings"
)

// Filesystem is the small surface the LED backends need from sysfs. It is
// an interface so tests can point a backend at a fabricated tree instead of
// real device nodes.
type Filesystem interface {
	// Exists reports whether path can be statted. Any stat failure
	// (missing, permission denied) counts as absent.
	Exists(path string) bool

	// ReadInt reads path as a decimal integer. Any failure, or content
	// that does not parse, yields 0.
	ReadInt(path string) int

	// WriteText writes value to path.
	WriteText(path, value string) error
}

// OS implements Filesystem against the real filesystem.
type OS struct{}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) ReadInt(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

func (OS) WriteText(path, value string) error {
	return os.WriteFile(path, []byte(value), 0644)
}
