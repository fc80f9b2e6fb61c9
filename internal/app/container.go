// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/pipeboard/pipeboard/internal/infra/api"
	"github.com/pipeboard/pipeboard/internal/infra/config"
	"github.com/pipeboard/pipeboard/internal/infra/fixture"
	"github.com/pipeboard/pipeboard/internal/infra/logging"
	"github.com/pipeboard/pipeboard/internal/usecase"
)

// Options configures container creation.
type Options struct {
	// FixturePath selects the offline YAML fixture store instead of
	// the CRM API. Takes precedence over the configured base URL.
	FixturePath string
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Service      domain.OpportunityService
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock
	Logger       *logging.Logger
	Config       *domain.Config
}

// New creates a Container for the given working directory.
func New(workDir string, opts Options) (*Container, error) {
	loader := config.NewLoader(workDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))

	// Service stays nil when neither a fixture nor an API base URL is
	// configured; config commands still work, data commands check
	// RequireService first.
	var svc domain.OpportunityService
	switch {
	case opts.FixturePath != "":
		svc, err = fixture.Load(opts.FixturePath)
		if err != nil {
			return nil, err
		}
	case cfg.API.BaseURL != "":
		svc = api.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout.Std())
	}

	return &Container{
		Service:      svc,
		ConfigLoader: loader,
		Clock:        domain.RealClock{},
		Logger:       logger,
		Config:       cfg,
	}, nil
}

// NewFromWorkingDir creates a Container rooted at the current directory.
func NewFromWorkingDir(opts Options) (*Container, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return New(cwd, opts)
}

// RequireService returns an error when no opportunity service is
// configured.
func (c *Container) RequireService() error {
	if c.Service == nil {
		return domain.ErrNoService
	}
	return nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}

// LoadBoardUseCase creates the LoadBoard use case.
func (c *Container) LoadBoardUseCase() *usecase.LoadBoard {
	return usecase.NewLoadBoard(c.Service, c.Logger)
}

// MoveOpportunityUseCase creates the MoveOpportunity use case.
func (c *Container) MoveOpportunityUseCase() *usecase.MoveOpportunity {
	return usecase.NewMoveOpportunity(c.Service, c.Logger)
}

// ListOpportunitiesUseCase creates the ListOpportunities use case.
func (c *Container) ListOpportunitiesUseCase() *usecase.ListOpportunities {
	return usecase.NewListOpportunities(c.Service, c.Clock)
}
