package ui

import (
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/OpticalFlyer/paneui/logger"
)

// DefaultDoubleClickInterval is the longest gap between two presses on the
// same element that still counts as a double click.
const DefaultDoubleClickInterval = 400 * time.Millisecond

// minVisibleTitle is how much of a title bar UpdateScreenSize keeps on
// screen so the window can still be dragged back.
const minVisibleTitle = 24.0

// Controller manages all UI elements: the window stack, the toolbars, the
// style defaults used by its factories and the pointer state machine.
type Controller struct {
	// Index 0 is the front window.
	windows  []*Window
	toolbars []*Toolbar

	measure Measurer

	windowStyle  *WindowStyle
	buttonStyle  *ButtonStyle
	toolbarStyle *ToolbarStyle
	textBoxStyle *TextBoxStyle

	// Pointer state
	prev   PointerState
	cur    PointerState
	active MouseButton
	focus  pointerTarget

	clock       time.Duration
	pressedAt   time.Duration
	lastPress   pointerTarget
	lastButton  MouseButton
	lastPressAt time.Duration
	doubleClick time.Duration

	lastOutcome Outcome

	screenWidth, screenHeight float64
}

// Hit is the result of resolving a screen point against the UI.
type Hit struct {
	// Target is the element a press would focus, nil when nothing resolves.
	Target Element
	// Window contains Target, when Target lives in a window.
	Window *Window
	// Toolbar is the toolbar under the point. Toolbars occlude windows,
	// so Target may be nil while Toolbar is set.
	Toolbar *Toolbar
}

// NewController creates a new UI controller. m measures text for
// text box wrapping.
func NewController(m Measurer) *Controller {
	return &Controller{
		windows:     make([]*Window, 0),
		toolbars:    make([]*Toolbar, 0),
		measure:     m,
		doubleClick: DefaultDoubleClickInterval,
	}
}

// SetWindowDefaults registers the style applied by NewWindow.
func (c *Controller) SetWindowDefaults(s WindowStyle) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.windowStyle = &s
	return nil
}

// SetButtonDefaults registers the style applied by NewButton and by the
// close button of NewWindow.
func (c *Controller) SetButtonDefaults(s ButtonStyle) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.buttonStyle = &s
	return nil
}

// SetToolbarDefaults registers the style applied by NewToolbar.
func (c *Controller) SetToolbarDefaults(s ToolbarStyle) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.toolbarStyle = &s
	return nil
}

// SetTextBoxDefaults registers the style applied by NewTextBox.
func (c *Controller) SetTextBoxDefaults(s TextBoxStyle) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.textBoxStyle = &s
	return nil
}

// SetDoubleClickInterval changes the double click window. Zero disables
// double click events.
func (c *Controller) SetDoubleClickInterval(d time.Duration) {
	c.doubleClick = d
}

// NewWindow creates a window with the default style and a close button
// in the top-right corner of its title bar. The window is not added to
// the stack; call AddWindow.
func (c *Controller) NewWindow(x, y, width, height float64, title string) (*Window, error) {
	if c.windowStyle == nil {
		return nil, errors.Wrap(ErrMissingDefaults, "window")
	}
	if c.buttonStyle == nil {
		return nil, errors.Wrap(ErrMissingDefaults, "window close button")
	}

	w, err := NewWindow(x, y, width, height, title, *c.windowStyle)
	if err != nil {
		return nil, err
	}

	t := w.titleBarThickness
	closeButton, err := NewButton(width-t, 0, t, t, "X", *c.buttonStyle)
	if err != nil {
		return nil, errors.Wrap(err, "window close button")
	}
	closeButton.Handlers().On(LeftRelease, func(Element) {
		c.CloseWindow(w)
	})
	w.closeButton = closeButton
	w.AddButton(closeButton)

	return w, nil
}

// NewButton creates a button with the default style. x and y are relative
// to the container the button is added to.
func (c *Controller) NewButton(x, y, width, height float64, label string) (*Button, error) {
	if c.buttonStyle == nil {
		return nil, errors.Wrap(ErrMissingDefaults, "button")
	}
	return NewButton(x, y, width, height, label, *c.buttonStyle)
}

// NewToolbar creates a toolbar with the default style. The toolbar is not
// registered; call AddToolbar.
func (c *Controller) NewToolbar(x, y, width, height float64, title string) (*Toolbar, error) {
	if c.toolbarStyle == nil {
		return nil, errors.Wrap(ErrMissingDefaults, "toolbar")
	}
	return NewToolbar(x, y, width, height, title, *c.toolbarStyle)
}

// NewTextBox creates a text box with the default style, wrapped with the
// Controller's measurer.
func (c *Controller) NewTextBox(x, y, width, height float64, text string) (*TextBox, error) {
	if c.textBoxStyle == nil {
		return nil, errors.Wrap(ErrMissingDefaults, "text box")
	}
	return NewTextBox(x, y, width, height, text, *c.textBoxStyle, c.measure)
}

// AddWindow puts w at the front of the stack. A window already in the
// stack is moved to the front instead.
func (c *Controller) AddWindow(w *Window) {
	if w == nil {
		return
	}
	if slices.Contains(c.windows, w) {
		c.MoveWindowToTop(w)
		return
	}
	if len(c.windows) > 0 {
		c.windows[0].top = false
	}
	c.windows = slices.Insert(c.windows, 0, w)
	w.top = true
}

// AddToolbar registers t. Toolbars are hit-tested in registration order.
func (c *Controller) AddToolbar(t *Toolbar) {
	if t == nil || slices.Contains(c.toolbars, t) {
		return
	}
	c.toolbars = append(c.toolbars, t)
}

// MoveWindowToTop moves w to the front of the stack, keeping the relative
// order of the others. It reports whether the stack changed; a window
// that is already in front or not in the stack is left alone.
func (c *Controller) MoveWindowToTop(w *Window) bool {
	i := slices.Index(c.windows, w)
	if i <= 0 {
		return false
	}

	prevTop := c.windows[0]
	c.windows = slices.Insert(slices.Delete(c.windows, i, i+1), 0, w)
	prevTop.top = false
	w.top = true

	logger.GetLogger().Debug("window raised", "title", w.text, "from", i)
	return true
}

// CloseWindow removes w from the stack and promotes the new front window.
// Focus held by w or one of its children is released and dropped.
func (c *Controller) CloseWindow(w *Window) bool {
	i := slices.Index(c.windows, w)
	if i < 0 {
		return false
	}

	c.windows = slices.Delete(c.windows, i, i+1)
	w.top = false
	if len(c.windows) > 0 {
		c.windows[0].top = true
	}

	if c.focus != nil && w.contains(c.focus) {
		c.focus.pointerReleased(c, c.event(c.active))
		c.focus = nil
	}
	if c.lastPress != nil && w.contains(c.lastPress) {
		c.lastPress = nil
	}

	logger.GetLogger().Debug("window closed", "title", w.text, "remaining", len(c.windows))
	return true
}

// Windows returns the stack front to back.
func (c *Controller) Windows() []*Window {
	return slices.Clone(c.windows)
}

// Toolbars returns the toolbars in registration order.
func (c *Controller) Toolbars() []*Toolbar {
	return slices.Clone(c.toolbars)
}

// Focus returns the element receiving the current press sequence, or nil.
func (c *Controller) Focus() Element {
	if c.focus == nil {
		return nil
	}
	return c.focus
}

// LastOutcome reports what the most recent Update changed.
func (c *Controller) LastOutcome() Outcome {
	return c.lastOutcome
}

// HoldDuration is how long the active pointer button has been held, in
// frame time.
func (c *Controller) HoldDuration() time.Duration {
	if c.active == ButtonNone {
		return 0
	}
	return c.clock - c.pressedAt
}

// IsInteractingWithUI returns true while an element holds pointer focus.
func (c *Controller) IsInteractingWithUI() bool {
	return c.focus != nil
}

// UpdateScreenSize records the host screen size and pulls back any window
// whose title bar would otherwise be out of reach.
func (c *Controller) UpdateScreenSize(width, height int) {
	c.screenWidth, c.screenHeight = float64(width), float64(height)
	for _, w := range c.windows {
		x := min(max(w.bounds.X, minVisibleTitle-w.bounds.Width), c.screenWidth-minVisibleTitle)
		y := min(max(w.bounds.Y, 0), c.screenHeight-w.titleBarThickness)
		w.SetPosition(x, y)
	}
}

// Resolve finds what a press at (x, y) would target. It never changes
// the stack: toolbars are checked in registration order, then windows
// front to back.
func (c *Controller) Resolve(x, y float64) Hit {
	target, w, t := c.resolve(x, y)
	hit := Hit{Window: w, Toolbar: t}
	if target != nil {
		hit.Target = target
	}
	return hit
}

func (c *Controller) resolve(x, y float64) (pointerTarget, *Window, *Toolbar) {
	for _, t := range c.toolbars {
		if !t.bounds.Contains(x, y) {
			continue
		}
		if b := t.ButtonAt(x, y); b != nil {
			return b, nil, t
		}
		return nil, nil, t
	}
	for _, w := range c.windows {
		if !w.bounds.Contains(x, y) {
			continue
		}
		if b := w.ButtonAt(x, y); b != nil {
			return b, w, nil
		}
		return w, w, nil
	}
	return nil, nil, nil
}

// Update feeds one pointer sample through the press/hold/release state
// machine. It returns true when a focused element consumed the sample.
// Event handlers run synchronously inside Update.
func (c *Controller) Update(p PointerState, elapsed time.Duration) bool {
	c.clock += elapsed
	c.prev, c.cur = c.cur, p
	c.lastOutcome = OutcomeNone

	if c.active == ButtonNone {
		switch {
		case classify(ButtonLeft, c.prev, c.cur) == transitionPress:
			return c.press(ButtonLeft)
		case classify(ButtonRight, c.prev, c.cur) == transitionPress:
			return c.press(ButtonRight)
		}
		return false
	}

	switch classify(c.active, c.prev, c.cur) {
	case transitionHold:
		return c.hold()
	case transitionRelease:
		return c.release()
	}
	return false
}

func (c *Controller) event(b MouseButton) PointerEvent {
	return PointerEvent{Button: b, Prev: c.prev, Cur: c.cur}
}

func (c *Controller) press(b MouseButton) bool {
	c.active = b
	c.pressedAt = c.clock

	target, w, _ := c.resolve(c.cur.X, c.cur.Y)
	c.focus = target
	if target == nil {
		c.lastPress = nil
		logger.GetLogger().Debug("pointer press hit nothing", "button", b, "x", c.cur.X, "y", c.cur.Y)
		return false
	}

	var out Outcome
	if w != nil && c.MoveWindowToTop(w) {
		out |= OutcomeRaised
	}

	out |= target.pointerPressed(c, c.event(b))
	if target.Handlers().emit(slot(b, transitionPress), target) > 0 {
		out |= OutcomeInvoked
	}

	if c.isDoubleClick(target, b) {
		if target.Handlers().emit(doubleClickSlot(b), target) > 0 {
			out |= OutcomeInvoked
		}
		c.lastPress = nil
	} else {
		c.lastPress, c.lastButton, c.lastPressAt = target, b, c.clock
	}

	c.lastOutcome = out
	return true
}

func (c *Controller) isDoubleClick(target pointerTarget, b MouseButton) bool {
	return c.doubleClick > 0 &&
		c.lastPress == target &&
		c.lastButton == b &&
		c.clock-c.lastPressAt <= c.doubleClick
}

func (c *Controller) hold() bool {
	if c.focus == nil {
		return false
	}

	out := c.focus.pointerHeld(c, c.event(c.active))
	if c.focus != nil && c.focus.Handlers().emit(slot(c.active, transitionHold), c.focus) > 0 {
		out |= OutcomeInvoked
	}

	c.lastOutcome = out
	return true
}

func (c *Controller) release() bool {
	b := c.active
	c.active = ButtonNone

	focus := c.focus
	if focus == nil {
		return false
	}

	out := focus.pointerReleased(c, c.event(b))
	if target, _, _ := c.resolve(c.cur.X, c.cur.Y); target == focus {
		if focus.Handlers().emit(slot(b, transitionRelease), focus) > 0 {
			out |= OutcomeInvoked
		}
	}

	c.focus = nil
	c.lastOutcome = out
	return true
}

// Draw draws all UI elements: windows back to front, then toolbars.
func (c *Controller) Draw(s Surface) {
	for i := len(c.windows) - 1; i >= 0; i-- {
		c.windows[i].Draw(s, Point{})
	}
	for _, t := range c.toolbars {
		t.Draw(s, Point{})
	}
}
