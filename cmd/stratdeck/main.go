package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"stratdeck/internal/assets"
	"stratdeck/internal/catalog"
	"stratdeck/internal/config"
	"stratdeck/internal/database"
	"stratdeck/internal/database/repository"
	"stratdeck/internal/logging"
	"stratdeck/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stratdeck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	ctx := context.Background()
	if err := database.SeedCatalog(ctx, db); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	// The dataset is loaded once up front and treated as read-only for the
	// lifetime of the program. A failure here is fatal before any UI starts.
	repo := repository.NewFrameworkRepo(db)
	dataset, err := catalog.Load(ctx, repo)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	industries, err := loadIndustries(dataset, log)
	if err != nil {
		return fmt.Errorf("load industries: %w", err)
	}

	log.Info().
		Int("frameworks", dataset.Len()).
		Int("categories", catalog.CategoryCount(dataset)).
		Int("industries", len(industries)).
		Msg("catalog loaded")

	app := tui.New(dataset, industries, cfg, log)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// loadIndustries resolves the embedded industry entries against the loaded
// catalog. Recommendations naming unknown frameworks are skipped with a
// warning rather than failing startup.
func loadIndustries(dataset catalog.Dataset, log zerolog.Logger) ([]tui.Industry, error) {
	seeds, err := assets.Industries()
	if err != nil {
		return nil, err
	}
	out := make([]tui.Industry, 0, len(seeds))
	for _, s := range seeds {
		ind := tui.Industry{Name: s.Name, Note: s.Note}
		for _, name := range s.Recommended {
			rec, ok := dataset.ByName(name)
			if !ok {
				log.Warn().Str("industry", s.Name).Str("framework", name).
					Msg("recommendation names unknown framework")
				continue
			}
			ind.Recommended = append(ind.Recommended, rec)
		}
		out = append(out, ind)
	}
	return out, nil
}
