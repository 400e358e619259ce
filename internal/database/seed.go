package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"stratdeck/internal/assets"
	"stratdeck/internal/database/repository"
)

// SeedCatalog loads the embedded framework catalog into an empty database.
// It is idempotent and safe to run on every startup; a populated catalog is
// left untouched.
func SeedCatalog(ctx context.Context, db *sql.DB) error {
	repo := repository.NewFrameworkRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count frameworks: %w", err)
	}
	if n > 0 {
		return nil
	}

	seeds, err := assets.Frameworks()
	if err != nil {
		return err
	}

	idFor := func(name string) string {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte("framework:"+name)).String()
	}
	// All or nothing: a partial seed would pass the populated check on the
	// next start and never be repaired.
	return WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewFrameworkRepo(tx)
		for idx, s := range seeds {
			f := repository.Framework{
				ID:           idFor(s.Name),
				Name:         s.Name,
				Category:     s.Category,
				CoreFunction: s.CoreFunction,
				TypicalUses:  s.TypicalUses,
				SortOrder:    idx,
			}
			if err := repo.Upsert(ctx, f); err != nil {
				return fmt.Errorf("seed %q: %w", s.Name, err)
			}
		}
		// Relations go in a second pass so every endpoint row exists.
		for _, s := range seeds {
			if len(s.Related) == 0 {
				continue
			}
			relIDs := make([]string, 0, len(s.Related))
			for _, rel := range s.Related {
				relIDs = append(relIDs, idFor(rel))
			}
			if err := repo.ReplaceRelations(ctx, idFor(s.Name), relIDs); err != nil {
				return fmt.Errorf("seed relations for %q: %w", s.Name, err)
			}
		}
		return nil
	})
}
