// Package server hosts the SSH preview surface: connecting with a preset name
// as the SSH username drops the session into the preset browser TUI.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	bm "github.com/charmbracelet/wish/bubbletea"

	"styleboard/internal/config"
	"styleboard/internal/router"
	"styleboard/internal/store"
	"styleboard/internal/tui"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Runtime wires config + middleware + Wish server as a testable unit.
type Runtime struct {
	cfg           config.Config
	middlewareIDs []string
	server        *ssh.Server
}

// New builds the SSH runtime over the style table. The middleware chain runs
// in descriptor order before the TUI takes over the session.
func New(cfg config.Config, table *store.Store, chain []router.Descriptor) (*Runtime, error) {
	address := fmt.Sprintf("%s:%d", cfg.SSHHost, cfg.SSHPort)

	// Wish composes middleware innermost-first, so the TUI handler goes
	// first and the chain is appended in reverse to preserve descriptor
	// order at execution time.
	middleware := []wish.Middleware{bm.Middleware(teaHandler(table))}
	chainMiddleware := router.MiddlewareFromDescriptors(chain)
	for i := len(chainMiddleware) - 1; i >= 0; i-- {
		middleware = append(middleware, chainMiddleware[i])
	}

	wishServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(middleware...),
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(chain))
	for _, descriptor := range chain {
		ids = append(ids, descriptor.Name)
	}

	return &Runtime{cfg: cfg, middlewareIDs: ids, server: wishServer}, nil
}

// MiddlewareIDs returns the descriptor names in execution order.
func (r *Runtime) MiddlewareIDs() []string {
	out := make([]string, len(r.middlewareIDs))
	copy(out, r.middlewareIDs)
	return out
}

func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves SSH sessions until ctx is canceled or a signal arrives.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-ctx.Done()
		_ = r.server.Shutdown(context.Background())
	}()

	log.Info("ssh preview listening",
		"address", r.server.Addr,
		"middleware", r.middlewareIDs,
		"host_key_path", r.cfg.HostKeyPath,
		"idle_timeout", r.cfg.IdleTimeout,
	)

	err := r.server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) || err == nil {
		return nil
	}

	return err
}

func teaHandler(table *store.Store) bm.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		width, height := fallbackWidth, fallbackHeight
		if pty, _, ok := s.Pty(); ok {
			if pty.Window.Width > 0 {
				width = pty.Window.Width
			}
			if pty.Window.Height > 0 {
				height = pty.Window.Height
			}
		}

		initial := router.PresetNameFromSession(s)
		model := tui.New(table.List(), initial, width, height)
		return model, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
