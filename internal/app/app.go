package app

import (
	"shardkit/internal/chain"
	"shardkit/internal/domain"
	"shardkit/internal/prompt"
	"shardkit/internal/rpc"
	"shardkit/internal/services/compose"
	"shardkit/internal/services/key"
)

// App builds services on demand so the chain driver is only resolved when a
// command actually needs it.
type App struct {
	cfg    Config
	prompt domain.Prompter
}

// New returns an app for cfg using the terminal prompter.
func New(cfg Config) *App {
	return &App{cfg: cfg, prompt: prompt.Terminal{}}
}

// Prompt returns the hidden-input prompter.
func (a *App) Prompt() domain.Prompter { return a.prompt }

// KeystorePath returns the configured keystore file path.
func (a *App) KeystorePath() string { return a.cfg.KeystorePath }

// Chain resolves the configured chain driver.
func (a *App) Chain() (domain.Chain, error) {
	return chain.Lookup(a.cfg.ChainDriver)
}

// Keys returns the key custody service.
func (a *App) Keys() (*key.Service, error) {
	c, err := a.Chain()
	if err != nil {
		return nil, err
	}
	return key.New(c), nil
}

// Composer returns the transaction composition service.
func (a *App) Composer() (*compose.Service, error) {
	c, err := a.Chain()
	if err != nil {
		return nil, err
	}
	return compose.New(rpc.NewClient(a.cfg.RPC), c), nil
}
