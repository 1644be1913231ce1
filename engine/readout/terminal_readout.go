package readout

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-fly/engine/input"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Terminal is a readout drawn as a coloured box on a tcell screen. Clicking the box
// with the primary button fires the click callbacks.
//
// Terminal events are collected by a pump goroutine started with Start and handled
// on whichever goroutine calls Sync, so click callbacks run on the caller's goroutine.
type Terminal struct {
	mu     *sync.Mutex
	screen tcell.Screen
	logger logrus.FieldLogger
	style  tcell.Style

	originX, originY int
	lines            [3]string
	lastButtons      tcell.ButtonMask

	clicks *clickHandlers
	onQuit func()

	events    chan tcell.Event
	startOnce sync.Once
	closeOnce sync.Once
}

// NewTerminal initialises a screen and returns a readout drawing on it.
// Without WithScreen the controlling terminal is opened.
//
// Parameters:
//   - options: functional options to configure the readout
//
// Returns:
//   - *Terminal: the new readout
//   - error: error if the screen cannot be created or initialised
func NewTerminal(options ...TerminalOption) (*Terminal, error) {
	t := &Terminal{
		mu:     &sync.Mutex{},
		logger: logrus.StandardLogger(),
		style: tcell.StyleDefault.
			Background(tcell.GetColor(BackgroundHex)).
			Foreground(tcell.GetColor(ForegroundHex)),
		clicks: newClickHandlers(),
		events: make(chan tcell.Event, 64),
	}
	for _, option := range options {
		option(t)
	}
	t.logger = t.logger.WithField("component", "readout")

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create terminal screen: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()

	t.mu.Lock()
	t.draw()
	t.mu.Unlock()
	return t, nil
}

// Start launches the goroutine that reads terminal events. It runs until Close.
func (t *Terminal) Start() {
	t.startOnce.Do(func() {
		go func() {
			for {
				ev := t.screen.PollEvent()
				if ev == nil {
					return
				}
				select {
				case t.events <- ev:
				default:
					t.logger.Debug("terminal event dropped, queue full")
				}
			}
		}()
	})
}

// Sync handles every pending terminal event, then redraws.
func (t *Terminal) Sync() {
	for {
		select {
		case ev := <-t.events:
			t.HandleEvent(ev)
		default:
			t.mu.Lock()
			t.draw()
			t.mu.Unlock()
			return
		}
	}
}

// HandleEvent processes one terminal event: primary-button presses inside the box
// fire the click callbacks, Escape and Ctrl-C call the quit callback, and resizes
// redraw the screen.
//
// Parameters:
//   - ev: the tcell event
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		t.mu.Lock()
		pressed := e.Buttons()&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0
		t.lastButtons = e.Buttons()
		x, y := e.Position()
		hit := pressed && t.contains(x, y)
		t.mu.Unlock()

		if hit {
			t.clicks.fire()
		}
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			if t.onQuit != nil {
				t.onQuit()
			}
		}
	case *tcell.EventResize:
		t.mu.Lock()
		t.screen.Sync()
		t.draw()
		t.mu.Unlock()
	}
}

// SetText replaces the axis lines and redraws the box.
//
// Parameters:
//   - x, y, z: the formatted line for each axis
func (t *Terminal) SetText(x, y, z string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = [3]string{x, y, z}
	t.draw()
}

// Text returns the most recent axis lines.
//
// Returns:
//   - [3]string: the x, y and z lines
func (t *Terminal) Text() [3]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines
}

// OnClick registers a callback fired when the box is clicked.
//
// Parameters:
//   - callback: the function to call
//
// Returns:
//   - input.Subscription: handle that removes the callback when cancelled
func (t *Terminal) OnClick(callback func()) input.Subscription {
	return t.clicks.add(callback)
}

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.screen.Fini()
	})
}

// boxSize returns the box width and height in cells. Caller must hold the mutex.
func (t *Terminal) boxSize() (w, h int) {
	w = len(Title)
	for _, line := range t.lines {
		w = max(w, len(line))
	}
	return w + 2, len(t.lines) + 1
}

// contains reports whether a cell is inside the box. Caller must hold the mutex.
func (t *Terminal) contains(x, y int) bool {
	w, h := t.boxSize()
	return x >= t.originX && x < t.originX+w && y >= t.originY && y < t.originY+h
}

// draw paints the box and shows it. Caller must hold the mutex.
func (t *Terminal) draw() {
	w, h := t.boxSize()
	rows := append([]string{Title}, t.lines[:]...)
	for row := range h {
		text := []rune(rows[row])
		for col := range w {
			r := ' '
			if i := col - 1; i >= 0 && i < len(text) {
				r = text[i]
			}
			t.screen.SetContent(t.originX+col, t.originY+row, r, nil, t.style)
		}
	}
	t.screen.Show()
}
