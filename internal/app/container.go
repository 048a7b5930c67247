package app

import (
	"context"
	"fmt"
	"time"

	"github.com/llmshell/llmshell/internal/application/shell"
	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/infrastructure/ai"
	"github.com/llmshell/llmshell/internal/infrastructure/config"
	"github.com/llmshell/llmshell/internal/infrastructure/executor"
	"github.com/llmshell/llmshell/internal/infrastructure/security"
	"github.com/llmshell/llmshell/internal/infrastructure/validator"
	"github.com/llmshell/llmshell/internal/pkg/logger"
)

// Options carries CLI-level overrides into the dependency graph.
type Options struct {
	Provider    string
	Model       string
	Temperature float64
	Verbose     bool
}

// Container wires the pipeline with its infrastructure adapters.
type Container struct {
	ShellService *shell.Service
	ConfigLoader *config.FileLoader
	Config       domain.Config
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	log := logger.NewStd(opts.Verbose)

	translator, err := ai.NewTranslator(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("translator init: %w", err)
	}

	// Prompter and Renderer are CLI adapters; the cli package injects them
	// after construction to keep this package free of a cli dependency.
	service := &shell.Service{
		Translator: translator,
		Validator:  validator.New(),
		Sanitizer:  security.New(cfg.Safety.EnableSanitization),
		Executor:   executor.New("", time.Duration(cfg.Safety.TimeoutSeconds)*time.Second),
		Logger:     log,
		Config:     cfg,
	}

	return &Container{
		ShellService: service,
		ConfigLoader: cfgLoader,
		Config:       cfg,
	}, nil
}

func applyOverrides(cfg domain.Config, opts Options) domain.Config {
	if opts.Provider != "" {
		cfg.Provider = opts.Provider
	}
	if opts.Model == "" && opts.Temperature < 0 {
		return cfg
	}
	for i, p := range cfg.Providers {
		if p.Name != cfg.Provider {
			continue
		}
		if opts.Model != "" {
			cfg.Providers[i].Model = opts.Model
		}
		if opts.Temperature >= 0 {
			cfg.Providers[i].Temperature = opts.Temperature
		}
	}
	return cfg
}
