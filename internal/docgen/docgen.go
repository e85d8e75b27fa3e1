// Package docgen drives the registry docs generation pipeline: fetch the
// registry, fetch and sanitize icons, render cards, substitute into the
// template, and write the output page.
package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/soyeahso/registrygen/internal/config"
	"github.com/soyeahso/registrygen/internal/logging"
	"github.com/soyeahso/registrygen/internal/registry"
	"github.com/soyeahso/registrygen/internal/render"
	"github.com/soyeahso/registrygen/internal/svg"
)

// Generator runs the docs generation pipeline.
type Generator struct {
	cfg    config.Config
	client *registry.Client
	log    *logging.Logger
}

// New creates a Generator for the given configuration.
func New(cfg config.Config, log *logging.Logger) *Generator {
	runLog := log.WithRun(uuid.New().String())
	return &Generator{
		cfg:    cfg,
		client: registry.NewClient(cfg, runLog.Sub("registry")),
		log:    runLog,
	}
}

// Run executes one generation pass. Missing template and registry failures
// are fatal; icon failures and an empty agent list degrade with a warning.
func (g *Generator) Run(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(g.cfg.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	template, err := os.ReadFile(g.cfg.Template)
	if err != nil {
		return fmt.Errorf("template file %s: %w", g.cfg.Template, err)
	}

	reg, err := g.client.FetchRegistry(ctx)
	if err != nil {
		return err
	}
	if len(reg.Agents) == 0 {
		g.log.Warn().Msg("no agents found in registry")
	}

	icons := g.fetchIcons(ctx, reg.Agents)
	cards := render.Cards(reg.Agents, icons)
	output := strings.ReplaceAll(string(template), g.cfg.Placeholder, cards)

	if err := os.WriteFile(g.cfg.Output, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	g.log.Info().Str("path", g.cfg.Output).Int("agents", len(reg.Agents)).Msg("generated registry page")
	return nil
}

// fetchIcons retrieves and sanitizes each agent's icon. Failures are
// recoverable: the agent simply renders without an icon.
func (g *Generator) fetchIcons(ctx context.Context, agents []registry.Agent) map[string]string {
	icons := make(map[string]string, len(agents))
	for _, agent := range agents {
		raw, err := g.client.FetchIcon(ctx, agent.ID)
		if err != nil {
			g.log.Warn().Err(err).Str("agent", agent.ID).Msg("could not fetch icon")
			continue
		}
		icons[agent.ID] = svg.Sanitize(raw)
	}
	return icons
}
