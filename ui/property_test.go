package ui

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any sequence of window additions, raises and closes, exactly the
// window at index 0 carries the top flag and no window appears twice.
func TestProperty_TopWindowInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("top flag is set exactly on index 0", prop.ForAll(
		func(ops []int) bool {
			c := newTestController(t)
			var all []*Window

			for i, op := range ops {
				switch op % 3 {
				case 0:
					w, err := c.NewWindow(float64(i), float64(i), 100, 100, "w")
					if err != nil {
						return false
					}
					all = append(all, w)
					c.AddWindow(w)
				case 1:
					if len(all) > 0 {
						c.MoveWindowToTop(all[op%len(all)])
					}
				case 2:
					if len(all) > 0 {
						c.CloseWindow(all[op%len(all)])
					}
				}
				if topInvariantViolation(c) != "" {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}

// Raising the front window changes nothing.
func TestProperty_MoveFrontWindowIsNoOp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("MoveWindowToTop(front) is a no-op", prop.ForAll(
		func(n int) bool {
			c := newTestController(t)
			for i := 0; i < n; i++ {
				mustWindow(t, c, float64(i*10), 0, 100, 100, "w")
			}
			before := snapshot(c)
			if c.MoveWindowToTop(c.windows[0]) {
				return false
			}
			after := snapshot(c)
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

// Dragging by the title bar moves the window by the sum of the pointer
// deltas; the same motion started in the body moves nothing.
func TestProperty_DragSumsDeltas(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("title drag offset equals delta sum", prop.ForAll(
		func(dxs, dys []int) bool {
			c := newTestController(t)
			w := mustWindow(t, c, 300, 300, 400, 300, "drag")

			x, y := 310.0, 305.0
			c.Update(PointerState{X: x, Y: y, Left: true}, frame)

			var sumX, sumY float64
			for i := 0; i < len(dxs) && i < len(dys); i++ {
				x += float64(dxs[i])
				y += float64(dys[i])
				sumX += float64(dxs[i])
				sumY += float64(dys[i])
				c.Update(PointerState{X: x, Y: y, Left: true}, frame)
			}
			c.Update(PointerState{X: x, Y: y}, frame)

			got := w.Bounds().Origin()
			return got.X == 300+sumX && got.Y == 300+sumY
		},
		gen.SliceOf(gen.IntRange(-40, 40)),
		gen.SliceOf(gen.IntRange(-40, 40)),
	))

	properties.Property("body drag never moves the window", prop.ForAll(
		func(dxs, dys []int) bool {
			c := newTestController(t)
			w := mustWindow(t, c, 300, 300, 400, 300, "drag")

			// Start well below the 16px title strip and only move down.
			x, y := 500.0, 450.0
			c.Update(PointerState{X: x, Y: y, Left: true}, frame)
			for i := 0; i < len(dxs) && i < len(dys); i++ {
				x += float64(dxs[i])
				y += float64(dys[i])
				c.Update(PointerState{X: x, Y: y, Left: true}, frame)
			}
			c.Update(PointerState{X: x, Y: y}, frame)

			return w.Bounds().Origin() == Point{X: 300, Y: 300}
		},
		gen.SliceOf(gen.IntRange(-5, 5)),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}

// A press followed by a release over the same button invokes the release
// handlers once; a release anywhere else invokes nothing.
func TestProperty_ReleaseOverSameButton(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("release handler count matches release target", prop.ForAll(
		func(rx, ry int) bool {
			c := newTestController(t)
			w := mustWindow(t, c, 100, 100, 200, 150, "main")
			b := mustButton(t, c, 20, 40, 60, 30, "OK")
			w.AddButton(b)

			var invoked int
			b.Handlers().On(LeftRelease, func(Element) { invoked++ })

			c.Update(PointerState{X: 150, Y: 150, Left: true}, frame)
			c.Update(PointerState{X: float64(rx), Y: float64(ry)}, frame)

			over := b.Bounds().Translate(100, 100).Contains(float64(rx), float64(ry))
			if over {
				return invoked == 1 && !b.Pressed()
			}
			return invoked == 0 && !b.Pressed()
		},
		gen.IntRange(80, 220),
		gen.IntRange(120, 190),
	))

	properties.TestingRun(t)
}

// A toolbar over a window always wins the hit test.
func TestProperty_ToolbarBeatsWindow(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("points inside the toolbar never resolve to a window", prop.ForAll(
		func(px, py int) bool {
			c := newTestController(t)
			mustWindow(t, c, 0, 0, 300, 200, "under")
			tb, err := c.NewToolbar(0, 0, 400, 40, "tools")
			if err != nil {
				return false
			}
			c.AddToolbar(tb)
			tool := mustButton(t, c, 10, 5, 50, 30, "Tool")
			tb.AddButton(tool)

			hit := c.Resolve(float64(px), float64(py))
			if hit.Window != nil || hit.Toolbar != tb {
				return false
			}
			return hit.Target == nil || hit.Target == Element(tool)
		},
		gen.IntRange(1, 299),
		gen.IntRange(1, 39),
	))

	properties.TestingRun(t)
}

// Wrapping keeps every word in order and only overfills a line when the
// line holds a single word.
func TestProperty_WrapText(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	word := gen.IntRange(1, 8).Map(func(n int) string {
		return strings.Repeat("w", n)
	})

	properties.Property("words preserved and lines bounded", prop.ForAll(
		func(words []string, width int) bool {
			text := strings.Join(words, " ")
			lines := wrapText(fixedMeasurer{}, testFont(), text, float64(width))

			if strings.Join(lines, "") != text+" " {
				return false
			}
			for _, line := range lines {
				w, _ := fixedMeasurer{}.MeasureText(nil, line)
				if w >= float64(width) && strings.Count(line, " ") != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, word),
		gen.IntRange(15, 200),
	))

	properties.TestingRun(t)
}
