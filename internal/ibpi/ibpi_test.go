package ibpi

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for p := PatternNormal; p <= PatternLocateOff; p++ {
		got, err := Parse(p.String())
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParseUnrecognized(t *testing.T) {
	got, err := Parse("flash-twice")
	if err == nil {
		t.Error("Parse() with bogus name should return error")
	}
	if got != PatternUnknown {
		t.Errorf("Parse() with bogus name = %v, want PatternUnknown", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		pattern Pattern
		want    bool
	}{
		{PatternUnknown, false},
		{PatternNormal, true},
		{PatternRebuild, true},
		{PatternLocateOff, true},
		{PatternLocateOff + 1, false},
		{Pattern(-1), false},
	}

	for _, tt := range tests {
		if got := tt.pattern.Valid(); got != tt.want {
			t.Errorf("Pattern(%d).Valid() = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestNamesCoversCommandRange(t *testing.T) {
	names := Names()
	if len(names) != int(PatternLocateOff-PatternNormal)+1 {
		t.Fatalf("Names() len = %d, want %d", len(names), PatternLocateOff-PatternNormal+1)
	}
	if names[0] != "normal" || names[len(names)-1] != "locate_off" {
		t.Errorf("Names() = %v, want normal..locate_off", names)
	}
}
