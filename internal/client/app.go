package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-shift-keeper/internal/config"
	"github.com/MKhiriev/go-shift-keeper/internal/crypto"
	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/MKhiriev/go-shift-keeper/internal/service"
	"github.com/MKhiriev/go-shift-keeper/internal/store"
	"github.com/MKhiriev/go-shift-keeper/internal/workers"
	"github.com/MKhiriev/go-shift-keeper/models"
)

// Supported commands.
const (
	CommandCreate  = "create"
	CommandRestore = "restore"
	CommandList    = "list"
)

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoEngine        = errors.New("backup engine is required")
)

type App struct {
	engine  service.BackupEngine
	timeout time.Duration
	out     io.Writer
	logger  *logger.Logger

	closers []io.Closer
}

// NewApp returns an [App] running commands against services. Command output
// is written to out.
func NewApp(services *service.Services, cfg config.Workers, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil || services.BackupEngine == nil {
		return nil, ErrNoEngine
	}

	return &App{
		engine:  services.BackupEngine,
		timeout: cfg.OperationTimeout,
		out:     out,
		logger:  log,
	}, nil
}

// New opens every dependency described by cfg and returns the ready [App].
// The caller must Close it.
func New(ctx context.Context, cfg *config.StructuredConfig, out io.Writer, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open storages: %w", err)
	}

	secureStore, err := crypto.NewFileSecureStore(cfg.Storage.Files.KeystoreDir, cfg.App.DeviceSecret)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open keystore: %w", err), storages.Close())
	}
	vault := crypto.NewKeyVault(secureStore, cfg.App.KeyAlias, log)

	services := service.NewServices(cfg.App.UserID, storages, vault, log,
		service.WithObserver(func(c models.StateChange) {
			log.Trace().
				Str("func", "client.observer").
				Str("operation", string(c.Operation)).
				Str("state", string(c.To)).
				Msg("engine progress")
		}),
	)

	app, err := NewApp(services, cfg.Workers, out, log)
	if err != nil {
		return nil, errors.Join(err, vault.Close(), storages.Close())
	}
	app.closers = []io.Closer{vault, storages}

	return app, nil
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("command", args[0]).
		Msg("running command")

	switch args[0] {
	case CommandCreate:
		return a.create(ctx)
	case CommandRestore:
		if len(args) < 2 {
			return fmt.Errorf("%w: restore needs a backup path", ErrMissingArgument)
		}
		return a.restore(ctx, args[1])
	case CommandList:
		return a.list(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// Close releases the vault and the storages opened by [New].
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) create(ctx context.Context) error {
	ctx, cancel := a.operationContext(ctx)
	defer cancel()

	res := workers.Wait(ctx, workers.Go[string](ctx, a.engine.CreateBackup))
	if res.Err != nil {
		return fmt.Errorf("create backup: %w", res.Err)
	}

	fmt.Fprintf(a.out, "backup written to %s\n", res.Value)
	return nil
}

func (a *App) restore(ctx context.Context, path string) error {
	ctx, cancel := a.operationContext(ctx)
	defer cancel()

	res := workers.Wait(ctx, workers.Go[int](ctx, func(ctx context.Context) (int, error) {
		return a.engine.RestoreBackup(ctx, path)
	}))
	if res.Err != nil {
		if res.Value > 0 {
			a.logger.Warn().
				Str("func", "App.restore").
				Int("applied", res.Value).
				Msg("restore interrupted after applying records")
		}
		return fmt.Errorf("restore backup: %w", res.Err)
	}

	fmt.Fprintf(a.out, "%d records restored from %s\n", res.Value, path)
	return nil
}

func (a *App) list(ctx context.Context) error {
	ctx, cancel := a.operationContext(ctx)
	defer cancel()

	res := workers.Wait(ctx, workers.Go[[]string](ctx, a.engine.GetAvailableBackups))
	if res.Err != nil {
		return fmt.Errorf("list backups: %w", res.Err)
	}

	if len(res.Value) == 0 {
		fmt.Fprintln(a.out, "no backups found")
		return nil
	}
	for _, path := range res.Value {
		fmt.Fprintln(a.out, path)
	}
	return nil
}

func (a *App) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}
