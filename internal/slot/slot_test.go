package slot

import (
	"testing"

	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/ibpi"
)

// Mock backend for testing dispatch
type mockBackend struct {
	state    ibpi.Pattern
	setCalls []ibpi.Pattern
	setErr   error
}

func (m *mockBackend) GetState() ibpi.Pattern { return m.state }

func (m *mockBackend) SetState(p ibpi.Pattern) error {
	m.setCalls = append(m.setCalls, p)
	return m.setErr
}

func (m *mockBackend) Path() string { return "/sys/bus/pci/devices/0000:05:00.0" }

func TestNewNilBackend(t *testing.T) {
	if s := New("id", cntrl.TypeKernelNPEM, "", nil); s != nil {
		t.Error("New() with nil backend should return nil")
	}
}

func TestDispatch(t *testing.T) {
	backend := &mockBackend{state: ibpi.PatternLocate}
	s := New("0000:05:00.0", cntrl.TypeKernelNPEM, "sda", backend)
	if s == nil {
		t.Fatal("New() returned nil")
	}

	if got := s.GetState(); got != ibpi.PatternLocate {
		t.Errorf("GetState() = %v, want locate", got)
	}

	if err := s.SetState(ibpi.PatternRebuild); err != nil {
		t.Errorf("SetState() returned error: %v", err)
	}
	if len(backend.setCalls) != 1 || backend.setCalls[0] != ibpi.PatternRebuild {
		t.Errorf("SetState() dispatched %v, want [rebuild]", backend.setCalls)
	}

	if got := s.Path(); got != backend.Path() {
		t.Errorf("Path() = %q, want %q", got, backend.Path())
	}
}
