package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/gm3197/CSE437s-group-4/internal/config"
	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/operator"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
	"github.com/gm3197/CSE437s-group-4/internal/service"
	"github.com/gm3197/CSE437s-group-4/internal/session"
	"github.com/gm3197/CSE437s-group-4/internal/storage"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

// runtime is the wired client for one command invocation. The UI loop runs
// on its own goroutine; commands enter it through call.
type runtime struct {
	cfg     *config.Config
	logger  *logrus.Logger
	storage *storage.Storage
	session *session.Session
	loop    *dispatch.Loop
	ops     *operator.OperatorDelegator
	svc     *service.Service
	out     io.Writer

	cancel   context.CancelFunc
	loopDone chan struct{}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRuntime(c *cli.Context) (*runtime, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := logging.SetupLogging(cfg.LogLevel)

	store, err := storage.NewStorage(cfg.DevicePath, logger)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(c.Context, store.Values)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	client := transport.NewClient(transport.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}, sess, logger)
	repo := repository.New(client)
	ops := operator.NewOperatorDelegator(repo, cfg.QueueSize)
	loop := dispatch.NewLoop(cfg.QueueSize)

	ctx, cancel := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = loop.Run(ctx)
	}()

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		storage:  store,
		session:  sess,
		loop:     loop,
		ops:      ops,
		svc:      service.NewService(repo, sess, loop, ops, logger),
		out:      c.App.Writer,
		cancel:   cancel,
		loopDone: loopDone,
	}, nil
}

func (rt *runtime) Close() {
	rt.ops.Stop()
	rt.cancel()
	<-rt.loopDone
	if err := rt.storage.Close(); err != nil {
		rt.logger.WithError(err).Warn("Runtime.Close.Storage")
	}
}

// withRuntime wraps a command action. Unless anonymous is set the command
// requires a stored session.
func withRuntime(anonymous bool, action func(c *cli.Context, rt *runtime) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		rt, err := newRuntime(c)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer rt.Close()

		if !anonymous && rt.session.State() != session.Authenticated {
			return cli.Exit("not logged in, run login first", 1)
		}
		return action(c, rt)
	}
}

// call starts an operation on the UI loop and waits for its result.
func call[T any](c *cli.Context, rt *runtime, start func() *dispatch.Future[T]) (T, error) {
	var future *dispatch.Future[T]
	if err := rt.loop.Do(c.Context, func() { future = start() }); err != nil {
		var zero T
		return zero, err
	}
	return future.Await(c.Context)
}

// onLoop runs fn on the UI loop.
func onLoop(c *cli.Context, rt *runtime, fn func()) error {
	return rt.loop.Do(c.Context, fn)
}

func intArg(c *cli.Context, index int, name string) (int, error) {
	raw := c.Args().Get(index)
	if raw == "" {
		return 0, cli.Exit(fmt.Sprintf("missing %s", name), 2)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("invalid %s %q", name, raw), 2)
	}
	return value, nil
}

func decimalValue(raw, name string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, cli.Exit(fmt.Sprintf("invalid %s %q", name, raw), 2)
	}
	return value, nil
}

// categoryValue parses a category flag; "none" clears the category.
func categoryValue(raw string) (*int, error) {
	if raw == "none" || raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("invalid category %q", raw), 2)
	}
	return &id, nil
}
