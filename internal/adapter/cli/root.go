package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnsaved/kanban-board-showcase/internal/app/bootstrap"
	"github.com/gnsaved/kanban-board-showcase/internal/config"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

// Engine is an opened board with the store behind it.
type Engine struct {
	Service ports.BoardService
	Store   ports.BoardStore
	Close   func() error
}

type Opener func(ctx context.Context) (*Engine, error)

type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Open defaults to BootstrapOpener(Config).
	Open Opener
}

// BootstrapOpener opens the store and the board service described by cfg.
func BootstrapOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (*Engine, error) {
		store, closeStore, err := bootstrap.NewStore(cfg)
		if err != nil {
			return nil, err
		}
		svc, err := bootstrap.NewBoardService(ctx, cfg, store)
		if err != nil {
			_ = closeStore()
			return nil, err
		}
		return &Engine{Service: svc, Store: store, Close: closeStore}, nil
	}
}

type app struct {
	opts Options
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Config == nil {
		opts.Config = config.LoadConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Open == nil {
		opts.Open = BootstrapOpener(opts.Config)
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "board",
		Short: "Kanban board from the terminal",
		Long: `board drives the local kanban board: list, add, edit, move and reorder tasks
across the todo, doing and done columns.

Tasks can be referenced by id or by key (KB-001).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.editCmd())
	rootCmd.AddCommand(a.moveCmd())
	rootCmd.AddCommand(a.cycleCmd())
	rootCmd.AddCommand(a.rmCmd())
	rootCmd.AddCommand(a.reorderCmd())
	rootCmd.AddCommand(a.resetCmd())
	rootCmd.AddCommand(a.serveCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(opts Options) error {
	if err := NewRootCommand(opts).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// withEngine opens the board for the duration of one command.
func (a *app) withEngine(cmd *cobra.Command, fn func(ctx context.Context, e *Engine) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	engine, err := a.opts.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if engine.Close == nil {
			return
		}
		if err := engine.Close(); err != nil {
			a.opts.Logger.Warn("failed to close board storage", zap.Error(err))
		}
	}()
	return fn(ctx, engine)
}
