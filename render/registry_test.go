package render

import (
	"strings"
	"testing"
)

func stubFactory() Backend { return &countingBackend{} }

func TestRegisterAndNewBackend(t *testing.T) {
	Register("test-stub", stubFactory)
	defer Unregister("test-stub")

	if !IsRegistered("test-stub") {
		t.Fatal("IsRegistered = false after Register")
	}

	b, err := NewBackend("test-stub")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if b == nil {
		t.Fatal("NewBackend returned nil backend")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("does-not-exist")
	if err == nil {
		t.Fatal("NewBackend for unknown name: want error")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error %q does not name the backend", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", stubFactory)
	defer Unregister("test-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", stubFactory)
}

func TestRegisterNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil factory Register did not panic")
		}
	}()
	Register("test-nil", nil)
}

func TestBackendsSorted(t *testing.T) {
	Register("test-b", stubFactory)
	Register("test-a", stubFactory)
	defer Unregister("test-a")
	defer Unregister("test-b")

	names := Backends()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-a":
			ia = i
		case "test-b":
			ib = i
		}
	}
	if ia == -1 || ib == -1 || ia > ib {
		t.Errorf("Backends() = %v, want test-a before test-b", names)
	}
}
