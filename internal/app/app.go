// Package app owns the daemon lifecycle: it starts every service, waits
// for a shutdown trigger and stops them again in reverse order.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Service is anything with a managed lifecycle: the dataset store, the
// sync queue, the sync engine and the HTTP server all implement it.
type Service interface {
	// Start brings the service up. Long-running services may block inside
	// Start until shutdown.
	Start() error
	// Stop shuts the service down gracefully.
	Stop() error
	// Name identifies the service in logs.
	Name() string
}

type App struct {
	serviceName string
	services    []Service
	// failChan receives the first start failure from any service.
	failChan chan error
	// signalChan receives the OS shutdown signal.
	signalChan chan os.Signal
	// stopCalled and runCalled guard against reuse.
	stopCalled  *atomic.Bool
	runCalled   *atomic.Bool
	stopTimeout time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ServiceName == "" {
		errGrp = append(errGrp, errors.New("service name is required"))
	}
	if c.StopTimeout == 0 {
		errGrp = append(errGrp, errors.New("stop timeout is required"))
	}
	return errors.Join(errGrp...)
}

// New creates the application around the given services. Services are
// started in the order given and stopped in reverse.
func New(cfg *Config, services ...Service) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName: cfg.ServiceName,
		services:    services,
		stopTimeout: cfg.StopTimeout,
		stopCalled:  &atomic.Bool{},
		runCalled:   &atomic.Bool{},
		failChan:    make(chan error, len(services)),
		signalChan:  make(chan os.Signal, 1),
	}, nil
}

// Run starts every service and blocks until the context is cancelled, a
// service fails to start, or the OS asks for shutdown.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		close(a.failChan)
		close(a.signalChan)
		cancel()
	}()

	for _, svc := range a.services {
		// Services run in their own goroutine; a blocking Start must not
		// keep the rest of the app from coming up.
		go func(svc Service) {
			defer func() {
				if r := recover(); r != nil {
					a.failChan <- fmt.Errorf("panic in Start() for service %s: %v", svc.Name(), r)
				}
			}()

			log.Info().Msg("Starting service: " + svc.Name())
			if err := svc.Start(); err != nil {
				a.failChan <- fmt.Errorf("failure in Start() for service %s: %v", svc.Name(), err)
			}
		}(svc)
	}

	signal.Notify(a.signalChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-runCtx.Done():
		log.Info().Msg("Context cancelled: shutting down")
	case err := <-a.failChan:
		log.Error().Msg("Service failed to start: " + err.Error())
	case sig := <-a.signalChan:
		log.Info().Msg("OS signal received: " + sig.String() + ", shutdown beginning")
	}

	signal.Stop(a.signalChan)
	if err := a.stop(); err != nil {
		log.Error().Msg("Error stopping application: " + err.Error())
		return err
	}
	return nil
}

// stop shuts services down in reverse start order, so the HTTP surface
// goes away before the queue and store underneath it.
func (a *App) stop() error {
	if !a.stopCalled.CompareAndSwap(false, true) {
		return errors.New("stop has already been called")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), a.stopTimeout)

	var errGrp []error
	go func() {
		defer cancel()
		for i := len(a.services) - 1; i >= 0; i-- {
			svc := a.services[i]
			log.Info().Msg("Stopping service: " + svc.Name())
			if err := svc.Stop(); err != nil {
				errGrp = append(errGrp, fmt.Errorf("failure in Stop() for service %s: %v", svc.Name(), err))
			}
		}
	}()

	// Block until every service stopped or the timeout hit.
	<-stopCtx.Done()
	if err := stopCtx.Err(); errors.Is(err, context.DeadlineExceeded) {
		errGrp = append(errGrp, err)
	}

	return errors.Join(errGrp...)
}
