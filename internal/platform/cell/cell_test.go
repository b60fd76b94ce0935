package cell

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
)

// newSimulated returns an initialized backend with an open 40x12 window on a
// simulation screen.
func newSimulated(t *testing.T) (*Backend, tcell.SimulationScreen, gfx.Window) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(screen)
	if err := b.Init(gfx.FlagEverything); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(b.Quit)

	w, err := b.CreateWindow("test", 640, 480)
	if err != nil {
		t.Fatalf("CreateWindow() error = %v", err)
	}
	screen.SetSize(40, 12)
	return b, screen, w
}

// waitEvent polls until an input event arrives. Resize events reported by
// the simulation screen are skipped.
func waitEvent(t *testing.T, b *Backend) core.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev := b.PollEvent()
		if ev.Type != core.EventNone && ev.Type != core.EventResize {
			return ev
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no event before deadline")
	return core.NoEvent
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl+c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, screen, _ := newSimulated(t)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			if ev := waitEvent(t, b); ev.Type != core.EventQuit {
				t.Errorf("event = %v, expected Quit", ev.Type)
			}
		})
	}
}

func TestOtherKeyForwarded(t *testing.T) {
	b, screen, _ := newSimulated(t)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	ev := waitEvent(t, b)
	if ev.Type != core.EventKey {
		t.Errorf("event = %v, expected Key", ev.Type)
	}
}

func TestPollEventEmpty(t *testing.T) {
	b := NewWithScreen(tcell.NewSimulationScreen("UTF-8"))
	b.events = make(chan tcell.Event, 1)

	if ev := b.PollEvent(); ev.Type != core.EventNone {
		t.Errorf("PollEvent() = %v, expected None", ev.Type)
	}
}

func TestRendererDrawsStars(t *testing.T) {
	_, screen, w := newSimulated(t)

	if width, height := w.Size(); width != 40 || height != 12 {
		t.Errorf("Size() = %dx%d, expected 40x12", width, height)
	}

	r, err := w.CreateRenderer()
	if err != nil {
		t.Fatalf("CreateRenderer() error = %v", err)
	}

	_ = r.SetDrawColor(core.ColorBlack)
	_ = r.Clear()
	_ = r.SetDrawColor(core.ColorWhite)
	_ = r.DrawPoint(5, 3)
	_ = r.DrawPoint(100, 100)
	_ = r.Present()

	mainc, _, style, _ := screen.GetContent(5, 3)
	if mainc != core.StarRune {
		t.Errorf("GetContent(5, 3) = %q, expected %q", mainc, core.StarRune)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("style = %v on %v, expected white on black", fg, bg)
	}

	if mainc, _, _, _ := screen.GetContent(6, 3); mainc != ' ' {
		t.Errorf("GetContent(6, 3) = %q, expected blank", mainc)
	}
}

func TestSecondWindowRejected(t *testing.T) {
	b, _, _ := newSimulated(t)

	if _, err := b.CreateWindow("two", 0, 0); err == nil {
		t.Error("second CreateWindow() expected error")
	}
}

func TestCreateWindowBeforeInit(t *testing.T) {
	b := NewWithScreen(tcell.NewSimulationScreen("UTF-8"))
	if _, err := b.CreateWindow("x", 0, 0); err == nil {
		t.Error("CreateWindow() before Init expected error")
	}
}

func TestTerminalTakenOverByWindowOnly(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	created := 0
	b := &Backend{newScreen: func() (tcell.Screen, error) {
		created++
		return screen, nil
	}}

	if err := b.Init(gfx.FlagVideo); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if created != 0 {
		t.Fatalf("screens after Init = %d, expected 0", created)
	}
	if ev := b.PollEvent(); ev.Type != core.EventNone {
		t.Errorf("PollEvent() without window = %v, expected None", ev.Type)
	}

	w, err := b.CreateWindow("test", 0, 0)
	if err != nil {
		t.Fatalf("CreateWindow() error = %v", err)
	}
	if created != 1 {
		t.Errorf("screens after CreateWindow = %d, expected 1", created)
	}

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	// Quit after Destroy must not finalize the screen again.
	b.Quit()

	if _, err := b.CreateWindow("again", 0, 0); err == nil {
		t.Error("CreateWindow() after Quit expected error")
	}
}
