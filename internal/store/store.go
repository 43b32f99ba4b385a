package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/appengine-ltd/lemonade-stand/internal/config"
	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/tidwall/gjson"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// ErrNotFound is returned when no save slot has the requested id.
var ErrNotFound = errors.New("save slot not found")

type Dialect string

const (
	DialectSQLite   Dialect = config.DialectSQLite
	DialectPostgres Dialect = config.DialectPostgres
)

// Repository keeps game states as JSON payloads keyed by slot id.
type Repository struct {
	dialect Dialect
	db      *sql.DB
	now     func() time.Time
}

// Slot summarises a save without decoding the whole state.
type Slot struct {
	ID              string
	Day             int
	Cash            float64
	Reputation      int
	Phase           game.Phase
	LifetimeRevenue float64
	UpdatedAt       time.Time
}

// Open connects to the configured database and applies pending migrations.
func Open(ctx context.Context, cfg config.StorageConfig) (*Repository, error) {
	dialect := Dialect(strings.TrimSpace(strings.ToLower(cfg.Dialect)))
	if dialect == "" {
		dialect = DialectSQLite
	}

	var driverName, dsn string
	switch dialect {
	case DialectSQLite:
		driverName = "sqlite"
		dsn = strings.TrimSpace(cfg.SQLitePath)
		if dsn == "" {
			return nil, errors.New("sqlite storage requires a path")
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	case DialectPostgres:
		driverName = "pgx"
		dsn = strings.TrimSpace(cfg.PostgresDSN)
		if dsn == "" {
			return nil, errors.New("postgres storage requires DB_POSTGRES_DSN or DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unsupported storage dialect %q", cfg.Dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}

	repo := &Repository{dialect: dialect, db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := repo.applyMigrations(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Debug("save store opened", "dialect", dialect)
	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Dialect() Dialect {
	return r.dialect
}

func (r *Repository) bind(pos int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (r *Repository) insertQuery(table string, cols []string) string {
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = r.bind(i + 1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(cols, ", "),
		strings.Join(ph, ", "),
	)
}

func (r *Repository) applyMigrations(ctx context.Context) error {
	create := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := map[string]bool{}
	rows, err := r.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return fmt.Errorf("scan schema migration: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate schema migrations: %w", err)
	}
	rows.Close()

	files, err := fs.Glob(migrationFS, fmt.Sprintf("migrations/%s/*.sql", r.dialect))
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		base := filepath.Base(file)
		if applied[base] {
			continue
		}
		sqlBytes, err := migrationFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration tx %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
		q := r.insertQuery("schema_migrations", []string{"version", "applied_at"})
		if _, err := tx.ExecContext(ctx, q, base, r.now()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
		slog.Debug("migration applied", "version", base, "dialect", r.dialect)
	}
	return nil
}

// Save writes state into slot id, creating the slot when id is empty or
// unknown. It returns the slot id.
func (r *Repository) Save(ctx context.Context, id string, state game.GameState) (string, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("save slot id %q: %w", id, err)
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin save tx: %w", err)
	}
	now := r.now()
	created := now
	err = tx.QueryRowContext(ctx, "SELECT created_at FROM saves WHERE id = "+r.bind(1), id).Scan(&created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = now
	case err != nil:
		_ = tx.Rollback()
		return "", fmt.Errorf("look up slot %s: %w", id, err)
	default:
		if _, err := tx.ExecContext(ctx, "DELETE FROM saves WHERE id = "+r.bind(1), id); err != nil {
			_ = tx.Rollback()
			return "", fmt.Errorf("clear slot %s: %w", id, err)
		}
	}
	q := r.insertQuery("saves", []string{"id", "payload", "created_at", "updated_at"})
	if _, err := tx.ExecContext(ctx, q, id, string(payload), created, now); err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("insert slot %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save tx: %w", err)
	}
	return id, nil
}

// Load decodes the state held in slot id.
func (r *Repository) Load(ctx context.Context, id string) (game.GameState, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, "SELECT payload FROM saves WHERE id = "+r.bind(1), id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return game.GameState{}, fmt.Errorf("load slot %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return game.GameState{}, fmt.Errorf("load slot %s: %w", id, err)
	}
	var state game.GameState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return game.GameState{}, fmt.Errorf("decode slot %s: %w", id, err)
	}
	return state, nil
}

// List returns every slot, most recently saved first.
func (r *Repository) List(ctx context.Context) ([]Slot, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, payload, updated_at FROM saves ORDER BY updated_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	out := []Slot{}
	for rows.Next() {
		var (
			id      string
			payload string
			updated time.Time
		)
		if err := rows.Scan(&id, &payload, &updated); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		out = append(out, summarise(id, payload, updated))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}
	return out, nil
}

func summarise(id, payload string, updated time.Time) Slot {
	fields := gjson.GetMany(payload, "day", "cash", "reputation", "phase", "stats.lifetime_revenue")
	return Slot{
		ID:              id,
		Day:             int(fields[0].Int()),
		Cash:            fields[1].Float(),
		Reputation:      int(fields[2].Int()),
		Phase:           game.Phase(fields[3].String()),
		LifetimeRevenue: fields[4].Float(),
		UpdatedAt:       updated,
	}
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM saves WHERE id = "+r.bind(1), id)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete slot %s: %w", id, ErrNotFound)
	}
	return nil
}
