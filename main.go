package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/share"
	"ShapeBoard/internal/store"
	"ShapeBoard/internal/ui"

	"fyne.io/fyne/v2"
)

const browseTimeout = 3 * time.Second

func main() {
	cfg, err := config.Load(config.Path())
	setupLogging(cfg.Log.Level)
	if err != nil {
		logx.L().Error("bad configuration", "err", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	switch {
	case len(args) > 0 && args[0] == "browse":
		runBrowse()
	case len(args) > 0 && args[0] == "init-config":
		runInitConfig()
	case len(args) > 1 && args[0] == "export":
		runExport(cfg, args[1])
	case len(args) > 0 && share.IsLink(args[0]):
		runClient(cfg, args[0])
	default:
		runHost(cfg)
	}
}

func setupLogging(level string) {
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.ParseLevel(level)}))
	logx.Set(l)
	slog.SetDefault(l)
}

func runBrowse() {
	log := logx.For("main")
	log.Info("looking for hosts", "timeout", browseTimeout)
	err := share.Browse(browseTimeout, func(link string) {
		fmt.Println(link)
	})
	if err != nil {
		log.Error("browse failed", "err", err)
		os.Exit(1)
	}
}

func runInitConfig() {
	path := config.Path()
	if err := config.Init(path); err != nil {
		logx.L().Error("could not write config", "err", err)
		os.Exit(1)
	}
	fmt.Println("wrote", path)
}

// runExport renders the saved board to a .pdf or .png file without opening a
// window.
func runExport(cfg config.File, out string) {
	log := logx.For("main")
	list, err := store.Load(cfg.App.DrawingsPath)
	if err != nil {
		log.Error("could not load drawings", "err", err)
		os.Exit(1)
	}
	if err := export.SaveFile(out, list, export.Options{}); err != nil {
		log.Error("export failed", "out", out, "err", err)
		os.Exit(1)
	}
}

// loadDrawings reads the saved board. An unreadable file is moved aside so the
// save on close cannot replace it; when that fails too, saving on close is
// turned off by returning an empty save path.
func loadDrawings(path string) (list []shape.Drawing, savePath string, err error) {
	log := logx.For("main")
	list, aside, err := store.LoadOrSetAside(path)
	switch {
	case err == nil:
		return list, path, nil
	case aside != "":
		log.Warn("starting empty, unreadable drawings kept", "kept", aside, "err", err)
		return nil, path, fmt.Errorf("saved drawings could not be read and were kept as %s: %w", aside, err)
	default:
		log.Error("starting empty, saving on close disabled", "path", path, "err", err)
		return nil, "", fmt.Errorf("saved drawings could not be read, %s will not be overwritten: %w", path, err)
	}
}

func runHost(cfg config.File) {
	log := logx.For("main")
	log.Info("starting as host", "port", cfg.Share.Port)

	list, savePath, loadErr := loadDrawings(cfg.App.DrawingsPath)
	app := ui.NewApp(ui.Options{
		Title:        cfg.App.Title,
		Width:        cfg.App.WindowWidth,
		Height:       cfg.App.WindowHeight,
		ShareLink:    share.Link(share.OutgoingIP(), cfg.Share.Port),
		DrawingsPath: savePath,
		StartupError: loadErr,
	})

	cfg.Editor.Drawings = list
	board, err := ui.NewBoardWidget(cfg.Editor)
	if err != nil {
		log.Error("could not create board", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host := share.NewHost()
	relay := share.NewSync(share.NewReplica(share.NewClock()), host, applyRemote(board))
	host.OnMessage = relay.Deliver
	board.OnChange = func(list []shape.Drawing) {
		if err := relay.Changed(list); err != nil {
			log.Warn("broadcast failed", "err", err)
		}
	}
	if len(list) > 0 {
		board.OnChange(board.Drawings())
	}

	go func() {
		if err := host.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Share.Port)); err != nil {
			log.Error("host stopped", "err", err)
			fyne.Do(func() {
				board.SetStatus("Sharing unavailable")
				app.ShowError(fmt.Errorf("sharing unavailable: %w", err))
			})
		}
	}()

	if cfg.Share.Advertise {
		server, err := share.Advertise(cfg.Share.Port)
		if err != nil {
			log.Warn("mDNS advertise failed", "err", err)
		} else {
			defer server.Shutdown()
		}
	}

	app.Run(board)
}

func runClient(cfg config.File, link string) {
	log := logx.For("main")
	log.Info("starting as client", "link", link)

	app := ui.NewApp(ui.Options{
		Title:  cfg.App.Title + " (shared)",
		Width:  cfg.App.WindowWidth,
		Height: cfg.App.WindowHeight,
	})
	board, err := ui.NewBoardWidget(cfg.Editor)
	if err != nil {
		log.Error("could not create board", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go connect(ctx, link, app, board)

	app.Run(board)
}

func connect(ctx context.Context, link string, app *ui.App, board *ui.BoardWidget) {
	log := logx.For("main")
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := share.Dial(dialCtx, link)
	cancel()
	if err != nil {
		log.Error("connection failed", "link", link, "err", err)
		fyne.Do(func() {
			board.SetStatus("Connection failed")
			app.ShowError(fmt.Errorf("could not join %s: %w", link, err))
		})
		return
	}
	defer client.Close()

	relay := share.NewSync(share.NewReplica(share.NewClock()), client, applyRemote(board))
	fyne.Do(func() {
		board.OnChange = func(list []shape.Drawing) {
			if err := relay.Changed(list); err != nil {
				log.Warn("send failed", "err", err)
			}
		}
		board.SetStatus("Connected to host as " + client.LocalAddr())
	})
	log.Info("connected", "local", client.LocalAddr())

	if err := client.Run(ctx, relay.Deliver); err != nil {
		log.Warn("disconnected", "err", err)
		fyne.Do(func() { board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err)) })
		return
	}
	fyne.Do(func() { board.SetStatus("Disconnected from host") })
}

// applyRemote hands a winning remote list to the board on the UI goroutine.
func applyRemote(board *ui.BoardWidget) func([]shape.Drawing) {
	return func(list []shape.Drawing) {
		fyne.Do(func() { board.SetDrawings(list) })
	}
}
