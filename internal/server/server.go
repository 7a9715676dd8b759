// Package server exposes the workspace over a local HTTP API. It is the
// surface the UI talks to; everything it does goes through the workspace
// manager and the sync engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxixo/datavista/internal/dataset"
)

//go:generate mockgen -destination=server_mock.go -package=server -source=server.go

type workspaceManager interface {
	Create(ownerID, name string, rows []dataset.Row) (*dataset.Dataset, error)
	Update(id, name string, rows []dataset.Row) (*dataset.Dataset, error)
	Delete(id string) error
	Get(id string) (*dataset.Dataset, error)
	ListByOwner(ownerID string) ([]*dataset.Dataset, error)
	PendingCount() (int, error)
	SyncFromRemote(ctx context.Context) (int, error)
}

type syncEngine interface {
	Online() bool
	Draining() bool
	OnConnectivityChange(online bool)
}

type httpServer interface {
	Addr() string
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// stdServer adapts net/http so the listener can be mocked in tests.
type stdServer struct {
	*http.Server
}

func (s *stdServer) Addr() string {
	return s.Server.Addr
}

type Server struct {
	address string
	port    int
	server  httpServer
}

type Config struct {
	Address   string
	Port      int
	Workspace workspaceManager
	Engine    syncEngine
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errGrp = append(errGrp, errors.New("port must be between 1 and 65535"))
	}
	if c.Workspace == nil {
		errGrp = append(errGrp, errors.New("workspace is required"))
	}
	if c.Engine == nil {
		errGrp = append(errGrp, errors.New("sync engine is required"))
	}
	return errors.Join(errGrp...)
}

// New creates the local API server.
func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	h := &handler{workspace: cfg.Workspace, engine: cfg.Engine}

	return &Server{
		address: cfg.Address,
		port:    cfg.Port,
		server: &stdServer{&http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:           h.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}},
	}, nil
}

func (s *Server) Start() error {
	log.Info().Msgf("datavista API listening at %s", s.server.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	// Block briefly so a bind failure surfaces as a start failure.
	select {
	case err := <-errCh:
		return err
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

func (s *Server) Stop() error {
	log.Info().Msg("Stopping datavista API")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) Name() string {
	return "datavista http server"
}
