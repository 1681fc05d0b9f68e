package main

import (
	"log/slog"
	"strings"
	"sync"

	"courier/internal/config"
	"courier/internal/history"
	"courier/internal/logging"
	"courier/internal/order"
	"courier/internal/report"
)

// runtime bundles the wired pipelines for one CLI invocation. The history
// store lives in process memory, so everything a command appends is gone
// when the process exits.
type runtime struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *history.Store
	dispatcher *order.Dispatcher
	pipeline   *report.Pipeline
}

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	runtimeOnce sync.Once
	runtime     *runtime
	runtimeErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureRuntime() (*runtime, error) {
	c.runtimeOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.runtimeErr = err
			return
		}

		format := cfg.Logging.Format
		if strings.TrimSpace(format) == "" {
			format = defaultLogFormat()
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: format,
		})
		if err != nil {
			c.runtimeErr = err
			return
		}

		store, err := history.Open()
		if err != nil {
			c.runtimeErr = err
			return
		}

		channels := order.NewChannelRegistry(logger)
		templates := report.NewTemplateRegistry()
		formats := report.NewFormatRegistry()
		deliveries := report.NewDeliveryRegistry(cfg.Report, logger)

		c.runtime = &runtime{
			cfg:        cfg,
			logger:     logger,
			store:      store,
			dispatcher: order.NewDispatcher(channels, store, logger),
			pipeline:   report.NewPipeline(templates, formats, deliveries, store, logger),
		}
	})
	return c.runtime, c.runtimeErr
}
