package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
)

type stubBackend struct{ name string }

func (s stubBackend) Name() string                                    { return s.name }
func (stubBackend) Init(gfx.Flags) error                              { return nil }
func (stubBackend) Quit()                                             {}
func (stubBackend) CreateWindow(string, int, int) (gfx.Window, error) { return nil, nil }
func (stubBackend) LoadBMP(string) (gfx.Surface, error)               { return nil, nil }
func (stubBackend) PollEvent() core.Event                             { return core.NoEvent }
func (stubBackend) Delay(time.Duration)                               {}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-test", "test backend", func() gfx.Backend { return stubBackend{name: "zz-test"} })
	Register("aa-test", "another", func() gfx.Backend { return stubBackend{name: "aa-test"} })

	if !Exists("zz-test") {
		t.Error("Exists() should report a registered backend")
	}
	if Exists("nope") {
		t.Error("Exists() should not report an unknown backend")
	}

	b, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.Name() != "zz-test" {
		t.Errorf("Name() = %q, expected zz-test", b.Name())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() of an unknown backend should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", "", func() gfx.Backend { return stubBackend{} })

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate name should panic")
		}
	}()
	Register("dup-test", "", func() gfx.Backend { return stubBackend{} })
}
