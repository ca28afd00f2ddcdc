package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/OpticalFlyer/paneui/config"
	"github.com/OpticalFlyer/paneui/logger"
	"github.com/OpticalFlyer/paneui/render"
	"github.com/OpticalFlyer/paneui/ui"
)

var background = color.RGBA{R: 32, G: 40, B: 48, A: 255}

// Demo implements ebiten.Game interface.
type Demo struct {
	cfg       config.Config
	ui        *ui.Controller
	status    *ui.TextBox
	debugMode bool
	started   time.Time
	frame     time.Duration

	pointer pointerSampler
}

func (d *Demo) Update() error {
	if d.cfg.Timeout > 0 && time.Since(d.started) >= d.cfg.Timeout {
		logger.GetLogger().Info("timeout reached, exiting", "timeout", d.cfg.Timeout)
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.debugMode = !d.debugMode
	}

	d.ui.Update(d.pointer.sample(), d.frame)
	return nil
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	d.ui.Draw(render.NewScreen(screen))

	if d.debugMode {
		focus := "none"
		if e := d.ui.Focus(); e != nil {
			focus = e.Text()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nWindows: %d\nFocus: %s\nHeld: %v",
			ebiten.ActualTPS(), len(d.ui.Windows()), focus, d.ui.HoldDuration()))
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.ui.UpdateScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func newDemo(cfg config.Config) (*Demo, error) {
	face, err := render.FaceForSize(cfg.FontSize)
	if err != nil {
		return nil, err
	}

	var textureFS fs.FS
	if cfg.Textures != "" {
		textureFS = os.DirFS(cfg.Textures)
	}
	tex := render.NewTextures(textureFS)

	ctrl := ui.NewController(render.Measurer{})
	ctrl.SetDoubleClickInterval(cfg.DoubleClick)
	if err := render.ApplyDefaults(ctrl, tex, render.DefaultPalette, face, cfg.TitleBarThickness); err != nil {
		return nil, err
	}
	if textureFS != nil {
		if err := skinButtons(ctrl, tex, face); err != nil {
			return nil, err
		}
	}

	d := &Demo{
		cfg:     cfg,
		ui:      ctrl,
		started: time.Now(),
		frame:   time.Second / time.Duration(cfg.TPS),
	}
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

// skinButtons replaces the solid button colour with button.png when the
// texture directory has one.
func skinButtons(ctrl *ui.Controller, tex *render.Textures, face text.Face) error {
	img, err := tex.Load("button.png")
	if err != nil {
		logger.GetLogger().Warn("texture not loaded, keeping solid colours", "error", err)
		return nil
	}
	return ctrl.SetButtonDefaults(ui.ButtonStyle{
		Normal:  img,
		Pressed: tex.Solid(render.DefaultPalette.ButtonPressed),
		Font:    &ui.Font{Face: face, Color: render.DefaultPalette.Text, Align: ui.AlignCenter},
	})
}

// build populates the demo scene: a toolbar and two overlapping windows.
func (d *Demo) build() error {
	ctrl := d.ui
	log := logger.GetLogger()

	toolbar, err := ctrl.NewToolbar(0, 0, float64(d.cfg.Width), 36, "")
	if err != nil {
		return err
	}
	ctrl.AddToolbar(toolbar)

	status, err := ctrl.NewTextBox(10, 60, 260, 120, "Drag a window by its title bar. Click a button to see its events.")
	if err != nil {
		return err
	}
	d.status = status

	info, err := ctrl.NewWindow(40, 60, 300, 220, "Events")
	if err != nil {
		return err
	}
	info.AddTextBox(status)

	tools, err := ctrl.NewWindow(220, 160, 260, 200, "Tools")
	if err != nil {
		return err
	}

	report := func(kind ui.EventKind) ui.ClickHandler {
		return func(e ui.Element) {
			d.status.SetText(fmt.Sprintf("%s on %q", kind, e.Text()))
			log.Debug("ui event", "kind", kind, "element", e.Text())
		}
	}

	for i, label := range []string{"Alpha", "Beta", "Gamma"} {
		b, err := ctrl.NewButton(20, 40+float64(i)*45, 120, 35, label)
		if err != nil {
			return err
		}
		for _, kind := range []ui.EventKind{ui.LeftRelease, ui.LeftDoubleClick, ui.RightClick} {
			b.Handlers().On(kind, report(kind))
		}
		tools.AddButton(b)
	}

	reopen, err := ctrl.NewButton(6, 4, 100, 28, "Windows")
	if err != nil {
		return err
	}
	reopen.Handlers().On(ui.LeftRelease, func(ui.Element) {
		for _, w := range []*ui.Window{info, tools} {
			ctrl.AddWindow(w)
		}
		d.status.SetText("Windows restored.")
	})
	toolbar.AddButton(reopen)

	ctrl.AddWindow(info)
	ctrl.AddWindow(tools)
	return nil
}

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.InitLogger(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.GetLogger()

	demo, err := newDemo(cfg)
	if err != nil {
		log.Error("building demo", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("paneui")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(demo); err != nil && err != ebiten.Termination {
		log.Error("game loop", "error", err)
		os.Exit(1)
	}
}
