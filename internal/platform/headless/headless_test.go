package headless

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
)

func TestPollDeliversOnePerCall(t *testing.T) {
	b := New()
	b.Push(core.Event{Type: core.EventKey, Key: "a"}, core.QuitEvent())

	expected := []core.EventType{core.EventKey, core.EventQuit, core.EventNone}
	for i, want := range expected {
		if got := b.PollEvent().Type; got != want {
			t.Errorf("PollEvent() #%d = %v, expected %v", i, got, want)
		}
	}
	if b.Polls() != 3 {
		t.Errorf("Polls() = %d, expected 3", b.Polls())
	}
}

func TestFailOn(t *testing.T) {
	b := New()
	b.FailOn(OpInit, "no video device")

	err := b.Init(gfx.FlagVideo)
	if err == nil || err.Error() != "no video device" {
		t.Errorf("Init() error = %v, expected %q", err, "no video device")
	}
	if _, err := b.CreateWindow("x", 10, 10); err == nil {
		t.Error("CreateWindow() after failed Init expected error")
	}
}

func TestRendererRasterizes(t *testing.T) {
	b := New()
	if err := b.Init(gfx.FlagEverything); err != nil {
		t.Fatal(err)
	}
	w, err := b.CreateWindow("test", 20, 10)
	if err != nil {
		t.Fatal(err)
	}
	r, err := w.CreateRenderer()
	if err != nil {
		t.Fatal(err)
	}

	_ = r.SetDrawColor(core.ColorBlack)
	_ = r.Clear()
	_ = r.SetDrawColor(core.ColorWhite)
	_ = r.DrawPoint(3, 4)
	_ = r.DrawPoint(50, 50)
	_ = r.Present()

	hr := b.Window().Renderer()
	if len(hr.Points()) != 2 {
		t.Errorf("Points() = %d, expected 2", len(hr.Points()))
	}
	if n := hr.Screen().Count(core.StarRune); n != 1 {
		t.Errorf("visible stars = %d, expected 1", n)
	}
	if hr.Presented() != 1 {
		t.Errorf("Presented() = %d, expected 1", hr.Presented())
	}

	_ = r.Clear()
	if len(hr.Points()) != 0 {
		t.Errorf("Points() after Clear = %d, expected 0", len(hr.Points()))
	}
	if hr.Drawn() != 2 {
		t.Errorf("Drawn() = %d, expected 2", hr.Drawn())
	}
}

func TestDelayAccounting(t *testing.T) {
	b := New()
	b.Delay(10 * time.Millisecond)
	b.Delay(5 * time.Millisecond)

	n, total := b.Delays()
	if n != 2 || total != 15*time.Millisecond {
		t.Errorf("Delays() = %d, %v, expected 2, 15ms", n, total)
	}
}

func TestWindowOpenAtQuit(t *testing.T) {
	tests := []struct {
		name     string
		destroy  bool
		expected bool
	}{
		{"destroyed first", true, false},
		{"left open", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Init(gfx.FlagEverything); err != nil {
				t.Fatal(err)
			}
			w, err := b.CreateWindow("test", 10, 10)
			if err != nil {
				t.Fatal(err)
			}
			if tt.destroy {
				_ = w.Destroy()
			}
			b.Quit()

			if got := b.WindowOpenAtQuit(); got != tt.expected {
				t.Errorf("WindowOpenAtQuit() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
