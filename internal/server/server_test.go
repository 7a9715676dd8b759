package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ws := NewMockworkspaceManager(ctrl)
	eng := NewMocksyncEngine(ctrl)

	tests := map[string]struct {
		cfg   *Config
		want  *Server
		error error
	}{
		"invalid config": {
			cfg:   &Config{},
			error: errors.New("address is required\nport must be between 1 and 65535\nworkspace is required\nsync engine is required"),
		},
		"valid config": {
			cfg: &Config{
				Address:   "localhost",
				Port:      8421,
				Workspace: ws,
				Engine:    eng,
			},
			want: &Server{
				address: "localhost",
				port:    8421,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := New(tc.cfg)
			req := require.New(t)

			if tc.error != nil {
				req.Error(err)
				req.Equal(tc.error.Error(), err.Error())
				return
			}

			req.NoError(err)
			req.Equal(tc.want.port, got.port)
			req.Equal(tc.want.address, got.address)
			req.NotNil(got.server)
		})
	}
}

func TestServer_Name(t *testing.T) {
	s := &Server{}
	got := s.Name()
	assert.Equal(t, "datavista http server", got)
}

func TestServer_Start(t *testing.T) {
	tests := map[string]struct {
		listenErr  error
		shouldFail bool
	}{
		"unsuccessful start": {
			listenErr:  errors.New("bind error"),
			shouldFail: true,
		},
		"graceful shutdown on start will return err": {
			listenErr:  http.ErrServerClosed,
			shouldFail: true,
		},
		"successful start": {
			listenErr:  nil,
			shouldFail: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockServer := NewMockhttpServer(ctrl)
			mockServer.EXPECT().Addr().Return("localhost:8421")
			mockServer.EXPECT().ListenAndServe().Return(tc.listenErr)

			server := &Server{server: mockServer}
			err := server.Start()

			req := require.New(t)
			if tc.shouldFail {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}

	t.Run("real server: /health endpoint returns 200", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		port := 10421
		addr := fmt.Sprintf("127.0.0.1:%d", port)

		cfg := &Config{
			Address:   "127.0.0.1",
			Port:      port,
			Workspace: NewMockworkspaceManager(ctrl),
			Engine:    NewMocksyncEngine(ctrl),
		}
		srv, err := New(cfg)
		req.NoError(err)

		err = srv.Start()
		req.NoError(err)

		// Give it a moment to start
		time.Sleep(100 * time.Millisecond)

		resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
		req.NoError(err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		req.NoError(err)

		req.Equal(http.StatusOK, resp.StatusCode)
		req.JSONEq(`{"status": "ok"}`, string(body))

		err = srv.Stop()
		req.NoError(err)
	})
}

func TestServer_Stop(t *testing.T) {
	tests := map[string]struct {
		shutDownErr error
	}{
		"failure during shutdown": {
			shutDownErr: assert.AnError,
		},
		"successful shutdown": {},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockServer := NewMockhttpServer(ctrl)
			mockServer.EXPECT().Shutdown(gomock.Any()).Return(tc.shutDownErr).Times(1)

			server := &Server{server: mockServer}
			err := server.Stop()

			req := require.New(t)
			if tc.shutDownErr != nil {
				req.Error(err)
				req.Contains(err.Error(), tc.shutDownErr.Error())
			} else {
				req.NoError(err)
			}
		})
	}
}
