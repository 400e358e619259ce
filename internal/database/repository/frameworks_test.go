package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stratdeck/internal/database"
	"stratdeck/internal/database/repository"
)

func openRepo(t *testing.T) (context.Context, *repository.FrameworkRepo) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return ctx, repository.NewFrameworkRepo(db)
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	t.Parallel()
	ctx, repo := openRepo(t)

	f := repository.Framework{
		ID: "id-1", Name: "SWOT Analysis", Category: "Strategic Planning Frameworks",
		CoreFunction: "Identify strengths/weaknesses", TypicalUses: "Strategy sessions", SortOrder: 0,
	}
	require.NoError(t, repo.Upsert(ctx, f))

	f.CoreFunction = "Identify strengths, weaknesses, opportunities, threats"
	require.NoError(t, repo.Upsert(ctx, f))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, f.CoreFunction, list[0].CoreFunction)
}

func TestReplaceRelations(t *testing.T) {
	t.Parallel()
	ctx, repo := openRepo(t)

	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Upsert(ctx, repository.Framework{
			ID: "id-" + name, Name: name, Category: "X", CoreFunction: "f", TypicalUses: "u", SortOrder: i,
		}))
	}
	require.NoError(t, repo.ReplaceRelations(ctx, "id-A", []string{"id-B", "id-C"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, list[0].Related)

	// Rewriting drops edges that are no longer present.
	require.NoError(t, repo.ReplaceRelations(ctx, "id-A", []string{"id-C"}))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, list[0].Related)
}

func TestListEmpty(t *testing.T) {
	t.Parallel()
	ctx, repo := openRepo(t)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
