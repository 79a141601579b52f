package main

import (
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/hubastard/thicket/engine/assets"
	"github.com/hubastard/thicket/engine/core"
	glbackend "github.com/hubastard/thicket/engine/gfx/gl"
	"github.com/hubastard/thicket/engine/platform"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/text"
	"github.com/hubastard/thicket/engine/ui"
)

// textureUploader is implemented by renderers that accept RGBA uploads.
type textureUploader interface {
	CreateTexture(img *image.RGBA) uint32
}

type App struct {
	imagePath string
	widgets   *LayerWidgets
	debug     *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	img := assets.Checkerboard(128, 128, 16, [4]uint8{230, 230, 230, 255}, [4]uint8{60, 90, 160, 255})
	if a.imagePath != "" {
		loaded, err := assets.LoadPNG(a.imagePath)
		if err != nil {
			core.Logger().Warn("image not loaded, using checkerboard", "err", err)
		} else {
			img = loaded
		}
	}
	var tex uint32
	if up, ok := e.Renderer.(textureUploader); ok {
		tex = up.CreateTexture(img)
	}

	a.widgets = &LayerWidgets{texture: tex}
	e.PushLayer(a.widgets)
	a.debug = &LayerDebug{}
	e.PushLayer(a.debug)
}

func (a *App) OnUI(e *core.Engine, u *ui.UI) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Quit()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	configPath := flag.String("config", "sandbox.yaml", "engine config file")
	imagePath := flag.String("image", "", "PNG shown by the texture tab")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	level, _ := core.ParseLevel(cfg.LogLevel)
	core.SetupLogging(os.Stderr, level)

	app := &App{imagePath: *imagePath}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config, face *text.Face) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg, face)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		core.Logger().Error("run", "err", err)
		os.Exit(1)
	}
}
