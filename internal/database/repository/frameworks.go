package repository

import (
	"context"
	"database/sql"

	"stratdeck/internal/catalog"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// repository can run standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// FrameworkRepo handles the framework catalog.
type FrameworkRepo struct {
	db DBTX
}

func NewFrameworkRepo(db DBTX) *FrameworkRepo {
	return &FrameworkRepo{db: db}
}

func (r *FrameworkRepo) Upsert(ctx context.Context, f Framework) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO frameworks(id, name, category, core_function, typical_uses, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 category=excluded.category,
	 core_function=excluded.core_function,
	 typical_uses=excluded.typical_uses,
	 sort_order=excluded.sort_order;
	`, f.ID, f.Name, f.Category, f.CoreFunction, f.TypicalUses, f.SortOrder)
	return err
}

// ReplaceRelations rewrites the outgoing relation edges for a framework.
func (r *FrameworkRepo) ReplaceRelations(ctx context.Context, frameworkID string, relatedIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM framework_relations WHERE framework_id = ?`, frameworkID); err != nil {
		return err
	}
	for _, rel := range relatedIDs {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO framework_relations(framework_id, related_id) VALUES (?, ?)
		ON CONFLICT(framework_id, related_id) DO NOTHING;
		`, frameworkID, rel); err != nil {
			return err
		}
	}
	return nil
}

// List returns all frameworks in seed order with related names attached.
func (r *FrameworkRepo) List(ctx context.Context) ([]Framework, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, category, core_function, typical_uses, sort_order
	FROM frameworks ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Framework
	index := map[string]int{}
	for rows.Next() {
		var f Framework
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.CoreFunction, &f.TypicalUses, &f.SortOrder); err != nil {
			return nil, err
		}
		index[f.ID] = len(out)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	relRows, err := r.db.QueryContext(ctx, `
	SELECT fr.framework_id, f.name
	FROM framework_relations fr
	JOIN frameworks f ON f.id = fr.related_id
	ORDER BY fr.framework_id, f.sort_order`)
	if err != nil {
		return nil, err
	}
	defer relRows.Close()
	for relRows.Next() {
		var fromID, relatedName string
		if err := relRows.Scan(&fromID, &relatedName); err != nil {
			return nil, err
		}
		if i, ok := index[fromID]; ok {
			out[i].Related = append(out[i].Related, relatedName)
		}
	}
	return out, relRows.Err()
}

// Categories returns the distinct category labels ordered by first appearance
// in the catalog.
func (r *FrameworkRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category FROM frameworks GROUP BY category ORDER BY MIN(sort_order)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of frameworks in the catalog.
func (r *FrameworkRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM frameworks`).Scan(&n)
	return n, err
}

// AllFrameworks implements catalog.Provider.
func (r *FrameworkRepo) AllFrameworks(ctx context.Context) ([]catalog.Record, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Record, 0, len(list))
	for _, f := range list {
		out = append(out, catalog.Record{
			ID:           f.ID,
			Name:         f.Name,
			Category:     f.Category,
			CoreFunction: f.CoreFunction,
			TypicalUses:  f.TypicalUses,
			Related:      f.Related,
		})
	}
	return out, nil
}
