// Package interrupt provides cooperative cancellation for long-running
// transform/check operations — batch transforms over large trees,
// eventually-until statistical assertions — adapted from the teacher's
// pkg/emergency.Controller.
package interrupt

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/reporting"
)

// Controller watches for a stop-file or SIGINT/SIGTERM and fans the signal
// out to registered callbacks, mirroring emergency.Controller's shape.
type Controller struct {
	stopFile       string
	stopCh         chan struct{}
	stopped        bool
	mutex          sync.RWMutex
	callbacks      []func()
	pollInterval   time.Duration
	signalHandlers bool
	logger         *reporting.Logger
}

// Config configures a Controller.
type Config struct {
	StopFile             string
	PollInterval         time.Duration
	EnableSignalHandlers bool
	Logger               *reporting.Logger
}

// New builds a Controller. An empty StopFile defaults to
// /tmp/kinda-lang-stop; a zero PollInterval defaults to one second.
func New(config Config) *Controller {
	if config.StopFile == "" {
		config.StopFile = "/tmp/kinda-lang-stop"
	}
	if config.PollInterval == 0 {
		config.PollInterval = 1 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = reporting.NewLogger(reporting.LoggerConfig{})
	}
	return &Controller{
		stopFile:       config.StopFile,
		stopCh:         make(chan struct{}),
		callbacks:      make([]func(), 0),
		pollInterval:   config.PollInterval,
		signalHandlers: config.EnableSignalHandlers,
		logger:         logger,
	}
}

// Start begins watching for stop conditions in the background. It returns
// immediately; cancel ctx to stop watching without triggering a stop.
func (c *Controller) Start(ctx context.Context) {
	go c.watchStopFile(ctx)
	if c.signalHandlers {
		go c.watchSignals(ctx)
	}
}

func (c *Controller) watchStopFile(ctx context.Context) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.checkStopFile() {
				c.logger.Warn("interrupt: stop file detected", "path", c.stopFile)
				c.triggerStop("stop file detected")
				return
			}
		}
	}
}

func (c *Controller) watchSignals(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		signal.Stop(sigCh)
		return
	case sig := <-sigCh:
		c.logger.Warn("interrupt: stop signal received", "signal", fmt.Sprint(sig))
		c.triggerStop(fmt.Sprintf("signal: %v", sig))
		signal.Stop(sigCh)
		return
	}
}

func (c *Controller) checkStopFile() bool {
	_, err := os.Stat(c.stopFile)
	return err == nil
}

func (c *Controller) triggerStop(reason string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stopCh)

	c.logger.Warn("interrupt: stop triggered", "reason", reason)
	for i, callback := range c.callbacks {
		c.logger.Info("interrupt: running stop callback", "index", i+1, "total", len(c.callbacks))
		callback()
	}
}

// Stop manually triggers a stop, as if the stop file or signal had fired.
func (c *Controller) Stop(reason string) {
	c.triggerStop(reason)
}

// IsStopped reports whether a stop has been triggered.
func (c *Controller) IsStopped() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.stopped
}

// StopChannel returns a channel that closes the moment a stop is triggered.
func (c *Controller) StopChannel() <-chan struct{} {
	return c.stopCh
}

// OnStop registers a callback run (in registration order) when stop fires.
func (c *Controller) OnStop(callback func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.callbacks = append(c.callbacks, callback)
}

// CreateStopFile writes the stop file, for tests and for an operator to
// request a graceful abort of a running batch transform.
func (c *Controller) CreateStopFile() error {
	f, err := os.Create(c.stopFile)
	if err != nil {
		return fmt.Errorf("interrupt: create stop file: %w", err)
	}
	defer f.Close()
	_, err = f.WriteString(fmt.Sprintf("stop requested at %s\n", time.Now().Format(time.RFC3339)))
	if err != nil {
		return fmt.Errorf("interrupt: write stop file: %w", err)
	}
	return nil
}

// RemoveStopFile removes the stop file, if present.
func (c *Controller) RemoveStopFile() error {
	err := os.Remove(c.stopFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("interrupt: remove stop file: %w", err)
	}
	return nil
}

// StopFilePath returns the path being watched.
func (c *Controller) StopFilePath() string {
	return c.stopFile
}
