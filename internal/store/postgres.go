package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps every logical table in three physical tables: a name
// registry, a generic row store (cells as text[]) and per-column constraint
// lists. Constraints are enforced on append, so scripted callers cannot
// bypass them the way they could a UI-side check.
type Postgres struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	p := &Postgres{db: pool}
	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return p, nil
}

func (p *Postgres) Close() {
	if p.db != nil {
		p.db.Close()
	}
}

func (p *Postgres) initSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sheets (
			name TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS sheet_rows (
			sheet TEXT NOT NULL REFERENCES sheets(name),
			pos   BIGSERIAL PRIMARY KEY,
			cells TEXT[] NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sheet_constraints (
			sheet   TEXT NOT NULL REFERENCES sheets(name),
			col     INT  NOT NULL,
			allowed TEXT[] NOT NULL,
			PRIMARY KEY (sheet, col)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to init store schema: %w", err)
		}
	}
	return nil
}

func (p *Postgres) TableExists(ctx context.Context, name string) (bool, error) {
	var found int
	err := p.db.QueryRow(ctx, "SELECT 1 FROM sheets WHERE name = $1", name).Scan(&found)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table %q: %w", name, err)
	}
	return true, nil
}

func (p *Postgres) CreateTable(ctx context.Context, name string) error {
	_, err := p.db.Exec(ctx, "INSERT INTO sheets (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	if err != nil {
		return fmt.Errorf("failed to create table %q: %w", name, err)
	}
	return nil
}

func (p *Postgres) ReadAll(ctx context.Context, name string) ([][]string, error) {
	exists, err := p.TableExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	rows, err := p.db.Query(ctx, "SELECT cells FROM sheet_rows WHERE sheet = $1 ORDER BY pos", name)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", name, err)
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	return result, nil
}

func (p *Postgres) AppendRow(ctx context.Context, name string, cells []string) error {
	constraints, err := p.constraints(ctx, name)
	if err != nil {
		return err
	}
	if err := checkConstraints(constraints, cells); err != nil {
		return err
	}

	_, err = p.db.Exec(ctx, "INSERT INTO sheet_rows (sheet, cells) VALUES ($1, $2)", name, cells)
	if err != nil {
		return fmt.Errorf("failed to append to table %q: %w", name, err)
	}
	return nil
}

func (p *Postgres) SetColumnConstraint(ctx context.Context, name string, col int, allowed []string) error {
	exists, err := p.TableExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	_, err = p.db.Exec(ctx, `
		INSERT INTO sheet_constraints (sheet, col, allowed) VALUES ($1, $2, $3)
		ON CONFLICT (sheet, col) DO UPDATE SET allowed = EXCLUDED.allowed`,
		name, col, allowed)
	if err != nil {
		return fmt.Errorf("failed to set constraint on %q col %d: %w", name, col, err)
	}
	return nil
}

func (p *Postgres) constraints(ctx context.Context, name string) (map[int][]string, error) {
	exists, err := p.TableExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	rows, err := p.db.Query(ctx, "SELECT col, allowed FROM sheet_constraints WHERE sheet = $1", name)
	if err != nil {
		return nil, fmt.Errorf("failed to load constraints of %q: %w", name, err)
	}
	defer rows.Close()

	constraints := make(map[int][]string)
	for rows.Next() {
		var col int
		var allowed []string
		if err := rows.Scan(&col, &allowed); err != nil {
			return nil, fmt.Errorf("failed to scan constraint of %q: %w", name, err)
		}
		constraints[col] = allowed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load constraints of %q: %w", name, err)
	}
	return constraints, nil
}

// checkConstraints validates a row against per-column allow lists.
func checkConstraints(constraints map[int][]string, cells []string) error {
	for col, allowed := range constraints {
		if col >= len(cells) {
			continue
		}
		ok := false
		for _, v := range allowed {
			if cells[col] == v {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %q (column %d)", ErrConstraintViolation, cells[col], col)
		}
	}
	return nil
}
