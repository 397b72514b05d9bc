package ibpi

import "fmt"

// Pattern is the abstract indicator vocabulary shared by all LED backends.
// Backends translate a Pattern into whatever their hardware understands;
// not every backend supports every pattern.
type Pattern int

const (
	PatternUnknown Pattern = iota
	PatternNormal
	PatternOneshotNormal
	PatternDegraded
	PatternHotSpare
	PatternRebuild
	PatternFailedArray
	PatternPFA
	PatternFailedDrive
	PatternLocate
	PatternLocateOff
)

// patternNames is indexed by Pattern.
var patternNames = []string{
	"unknown",
	"normal",
	"oneshot_normal",
	"degraded",
	"hotspare",
	"rebuild",
	"failed_array",
	"pfa",
	"failed_drive",
	"locate",
	"locate_off",
}

// Valid reports whether p is in the valid command range. PatternUnknown is
// a sentinel for lookups and is never a valid command target.
func (p Pattern) Valid() bool {
	return p >= PatternNormal && p <= PatternLocateOff
}

func (p Pattern) String() string {
	if p < PatternUnknown || int(p) >= len(patternNames) {
		return "unknown"
	}
	return patternNames[p]
}

// Parse converts a pattern name (as accepted on the command line) to a
// Pattern. Unrecognized names return PatternUnknown with an error.
func Parse(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return PatternUnknown, fmt.Errorf("unknown pattern %q", name)
}

// Names returns the names of all patterns in the valid command range, in
// declaration order.
func Names() []string {
	names := make([]string, 0, len(patternNames)-1)
	for p := PatternNormal; p <= PatternLocateOff; p++ {
		names = append(names, p.String())
	}
	return names
}
