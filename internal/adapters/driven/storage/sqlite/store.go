package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/glotblocks-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed lexicon that persists generated words
// across runs.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.LexiconStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.glotblocks/data/lexicon.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".glotblocks", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "lexicon.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores a generated word, updating any existing row with the
// same spelled form.
func (s *Store) Save(ctx context.Context, word domain.GeneratedWord) error {
	if word.Spelled == "" {
		return domain.ErrInvalidInput
	}

	contextJSON, err := json.Marshal(word.Context)
	if err != nil {
		return fmt.Errorf("marshalling context: %w", err)
	}

	rejectionsJSON, err := json.Marshal(word.Rejections)
	if err != nil {
		return fmt.Errorf("marshalling rejections: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO words (id, raw, spelled, context, attempts, rejections, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(spelled) DO UPDATE SET
			raw = excluded.raw,
			context = excluded.context,
			attempts = excluded.attempts,
			rejections = excluded.rejections
	`, word.ID, word.Raw, word.Spelled, string(contextJSON),
		word.Attempts, string(rejectionsJSON), word.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving word: %w", err)
	}
	return nil
}

// Get retrieves a word by its spelled form.
func (s *Store) Get(ctx context.Context, spelled string) (*domain.GeneratedWord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, raw, spelled, context, attempts, rejections, created_at
		FROM words WHERE spelled = ?
	`, spelled)

	return scanWord(row)
}

// List returns all stored words ordered by spelled form.
func (s *Store) List(ctx context.Context) ([]domain.GeneratedWord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, raw, spelled, context, attempts, rejections, created_at
		FROM words ORDER BY spelled
	`)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var words []domain.GeneratedWord //nolint:prealloc // size unknown from query
	for rows.Next() {
		word, err := scanWordRows(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating words: %w", err)
	}

	return words, nil
}

// Delete removes a word by its spelled form.
func (s *Store) Delete(ctx context.Context, spelled string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM words WHERE spelled = ?", spelled)
	if err != nil {
		return fmt.Errorf("deleting word: %w", err)
	}
	return nil
}

// Clear removes every stored word.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM words")
	if err != nil {
		return fmt.Errorf("clearing words: %w", err)
	}
	return nil
}

// scanWord scans a single word row.
func scanWord(row *sql.Row) (*domain.GeneratedWord, error) {
	var word domain.GeneratedWord
	var contextJSON, rejectionsJSON sql.NullString

	if err := row.Scan(&word.ID, &word.Raw, &word.Spelled,
		&contextJSON, &word.Attempts, &rejectionsJSON, &word.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning word: %w", err)
	}

	if err := unmarshalWordJSON(&word, contextJSON, rejectionsJSON); err != nil {
		return nil, err
	}

	return &word, nil
}

// scanWordRows scans a word from *sql.Rows.
func scanWordRows(rows *sql.Rows) (*domain.GeneratedWord, error) {
	var word domain.GeneratedWord
	var contextJSON, rejectionsJSON sql.NullString

	if err := rows.Scan(&word.ID, &word.Raw, &word.Spelled,
		&contextJSON, &word.Attempts, &rejectionsJSON, &word.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning word: %w", err)
	}

	if err := unmarshalWordJSON(&word, contextJSON, rejectionsJSON); err != nil {
		return nil, err
	}

	return &word, nil
}

// unmarshalWordJSON decodes the JSON columns of a word row.
func unmarshalWordJSON(word *domain.GeneratedWord, contextJSON, rejectionsJSON sql.NullString) error {
	if contextJSON.Valid && contextJSON.String != "" && contextJSON.String != "null" {
		if err := json.Unmarshal([]byte(contextJSON.String), &word.Context); err != nil {
			return fmt.Errorf("unmarshalling context: %w", err)
		}
	}

	if rejectionsJSON.Valid && rejectionsJSON.String != "" && rejectionsJSON.String != "null" {
		if err := json.Unmarshal([]byte(rejectionsJSON.String), &word.Rejections); err != nil {
			return fmt.Errorf("unmarshalling rejections: %w", err)
		}
	}

	return nil
}
