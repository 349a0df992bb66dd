package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eringen/flatblog"
	"github.com/eringen/flatblog/views"
)

func runServe(configPath string) error {
	cfg, err := flatblog.LoadConfig(configPath)
	if err != nil {
		return err
	}
	app := flatblog.New(cfg, views.New(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				posts, err := app.Library.Reload(ctx)
				if err != nil {
					app.Echo.Logger.Errorf("reload: %v", err)
					continue
				}
				app.Echo.Logger.Infof("reloaded %d posts", len(posts))
			}
		}
	}()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
