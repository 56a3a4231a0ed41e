package commands

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

func TestRegisterAndRun(t *testing.T) {
	called := false
	Register("test-step", func(t *testing.T, page playwright.Page) {
		called = true
	})
	defer delete(registry, "test-step")

	Run("test-step", t, nil)

	if !called {
		t.Error("Run should execute the registered command")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-duplicate", func(t *testing.T, page playwright.Page) {})
	defer delete(registry, "test-duplicate")

	defer func() {
		if recover() == nil {
			t.Error("registering the same name twice should panic")
		}
	}()
	Register("test-duplicate", func(t *testing.T, page playwright.Page) {})
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a nil command should panic")
		}
	}()
	Register("test-nil", nil)
}

func TestRunUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("running an unknown command should panic")
		}
	}()
	Run("no-such-command", t, nil)
}

func TestDefaultCommandsRegistered(t *testing.T) {
	for _, name := range []string{"loginAsStandardUser", "fillCart"} {
		if _, ok := registry[name]; !ok {
			t.Errorf("default command %q should be registered", name)
		}
	}
}
