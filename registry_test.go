package diagrams

import (
	"errors"
	"slices"
	"testing"
)

// resetBackends clears all registered backends for test isolation.
func resetBackends(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]BackendFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetBackends(t)

	RegisterBackend("rec", func() any { return &recorder{} })

	b, err := NewBackend[*recorder]("rec")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if b == nil {
		t.Fatal("NewBackend returned nil backend")
	}

	// Each call creates a fresh instance.
	b2, _ := NewBackend[*recorder]("rec")
	if b == b2 {
		t.Error("NewBackend returned the same instance twice")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetBackends(t)

	_, err := NewBackend[*recorder]("nonexistent")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("got error %v, want ErrUnknownBackend", err)
	}
}

func TestNewBackendIncompatible(t *testing.T) {
	resetBackends(t)

	RegisterBackend("rec", func() any { return &recorder{} })

	_, err := NewBackend[string]("rec")
	if !errors.Is(err, ErrIncompatibleBackend) {
		t.Fatalf("got error %v, want ErrIncompatibleBackend", err)
	}
	var ie *IncompatibleBackendError
	if !errors.As(err, &ie) {
		t.Fatalf("got error %T, want *IncompatibleBackendError", err)
	}
	if ie.Name != "rec" {
		t.Errorf("Name = %q, want %q", ie.Name, "rec")
	}
}

func TestRegisterBackendDuplicate(t *testing.T) {
	resetBackends(t)

	RegisterBackend("dup", func() any { return &recorder{} })

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	RegisterBackend("dup", func() any { return &recorder{} })
}

func TestRegisterBackendNil(t *testing.T) {
	resetBackends(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil factory")
		}
	}()
	RegisterBackend("nil", nil)
}

func TestBackendsSorted(t *testing.T) {
	resetBackends(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		RegisterBackend(name, func() any { return &recorder{} })
	}
	if got := Backends(); !slices.Equal(got, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("Backends() = %v", got)
	}
	if !IsRegistered("mid") {
		t.Error("IsRegistered(mid) = false")
	}

	UnregisterBackend("mid")
	if IsRegistered("mid") {
		t.Error("IsRegistered(mid) = true after UnregisterBackend")
	}
	// Unregistering twice is a no-op.
	UnregisterBackend("mid")
}

func TestRegisterRendererDuplicate(t *testing.T) {
	RegisterRenderer[*recorder, string, label](renderLabel)
	t.Cleanup(UnregisterRenderer[*recorder, string, label])

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate renderer")
		}
	}()
	RegisterRenderer[*recorder, string, label](renderLabel)
}

func TestRegisterRendererNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil renderer")
		}
	}()
	RegisterRenderer[*recorder, string, label](nil)
}
