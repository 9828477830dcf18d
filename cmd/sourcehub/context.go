package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sourcehub/internal/catalog"
	"sourcehub/internal/config"
	"sourcehub/internal/draft"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/logging"
	"sourcehub/internal/official"
	"sourcehub/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) baseLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.New(logging.Options{Level: cfg.Logging.Level, Console: os.Stderr})
		}
		c.logger = logger
	})
	return c.logger
}

// commandScope tags the command's context with a fresh correlation id and the
// collection it works on, and returns a logger carrying both.
func (c *commandContext) commandScope(cmd *cobra.Command, mode catalog.ViewMode) (context.Context, *slog.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithRequestID(ctx, uuid.NewString())
	ctx = services.WithViewMode(ctx, string(mode))
	logger := logging.WithContext(ctx, c.baseLogger()).With(logging.String("command", cmd.CommandPath()))
	return ctx, logger
}

// withDraft opens the draft store for the duration of fn.
func (c *commandContext) withDraft(ctx context.Context, logger *slog.Logger, fn func(*draft.Workflow) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := draftstore.Open(cfg)
	if err != nil {
		return fmt.Errorf("open draft store: %w", err)
	}
	defer store.Close()

	workflow := draft.New(ctx, draftstore.NewAdapter(store, logger), logger)
	return fn(workflow)
}

// withSession builds a browsing session over the official collection and the
// draft, starting in mode. The official collection is only fetched when needed.
func (c *commandContext) withSession(cmd *cobra.Command, mode catalog.ViewMode, needOfficial bool, fn func(context.Context, *catalog.Session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ctx, logger := c.commandScope(cmd, mode)
	return c.withDraft(ctx, logger, func(workflow *draft.Workflow) error {
		var session *catalog.Session
		if needOfficial {
			res := official.NewFromConfig(cfg, logger).Load(ctx)
			session = catalog.NewSession(res.Sources, workflow, logger)
		} else {
			session = catalog.NewSession(nil, workflow, logger)
		}
		session.SetMode(mode)
		return fn(ctx, session)
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
