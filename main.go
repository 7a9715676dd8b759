package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maxixo/datavista/internal/app"
	"github.com/maxixo/datavista/internal/config"
	"github.com/maxixo/datavista/internal/remote"
	"github.com/maxixo/datavista/internal/server"
	"github.com/maxixo/datavista/internal/store"
	"github.com/maxixo/datavista/internal/syncer"
	"github.com/maxixo/datavista/internal/syncqueue"
	"github.com/maxixo/datavista/internal/workspace"
)

func main() {
	application, err := initialize()
	if err != nil {
		panic(err)
	}

	if err = application.Run(context.Background()); err != nil {
		panic(err)
	}
}

func initialize() (*app.App, error) {
	var services []app.Service

	homeDir, err := config.HomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Local dataset storage. Survives restarts and works with no
	// connectivity at all.
	datasetStore, err := store.New(&store.Config{
		Path: cfg.DataDir,
	})
	if err != nil {
		return nil, err
	}
	services = append(services, datasetStore)

	// The durable mutation queue. Kept in its own database file so queue
	// churn never touches dataset pages.
	queue, err := syncqueue.New(&syncqueue.Config{
		Path: cfg.DataDir,
	})
	if err != nil {
		return nil, err
	}
	services = append(services, queue)

	remoteClient, err := remote.New(&remote.Config{
		BaseURL: cfg.RemoteURL,
		Token:   cfg.RemoteToken,
	})
	if err != nil {
		return nil, err
	}

	// The sync engine replays the queue against the remote store. It starts
	// online; the first failed push flips it into timer-driven retry.
	engine, err := syncer.New(&syncer.Config{
		Queue:         queue,
		Remote:        remoteClient,
		DrainInterval: cfg.SyncInterval,
		StartOnline:   true,
	})
	if err != nil {
		return nil, err
	}
	queue.SetListener(engine.OnOperationEnqueued)
	services = append(services, engine)

	// The workspace manager is the write path: local first, queue second.
	workspaceManager, err := workspace.New(&workspace.Config{
		Store:  datasetStore,
		Queue:  queue,
		Remote: remoteClient,
	})
	if err != nil {
		return nil, err
	}

	srv, err := server.New(&server.Config{
		Address:   cfg.ServerAddress,
		Port:      cfg.ServerPort,
		Workspace: workspaceManager,
		Engine:    engine,
	})
	if err != nil {
		return nil, err
	}
	services = append(services, srv)

	application, err := app.New(&app.Config{
		ServiceName: "DataVista",
		StopTimeout: 10 * time.Second,
	}, services...)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("DataVista home: %s", homeDir)
	return application, nil
}
