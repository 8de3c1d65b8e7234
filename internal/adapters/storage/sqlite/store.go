// Package sqlite provides the embedded SQLite implementation of ports.Store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/content-admin/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen/content-admin/internal/domain"
	"github.com/jsamuelsen/content-admin/internal/platform/telemetry"
)

// Name identifies the store in health checks and spans.
const Name = "sqlite"

// Store persists Contents and Questions in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path and applies the embedded migrations.
// Use ":memory:" only with a single connection; tests use a temp file instead.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return Name
}

// Check implements ports.HealthChecker by pinging the database.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateContent inserts a Content.
func (s *Store) CreateContent(ctx context.Context, title string) (_ *domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "create_content")
	defer func() { done(err) }()

	content := &domain.Content{Title: strings.TrimSpace(title), CreatedAt: s.now().UTC()}
	if err := content.Validate(); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contents (title, created_at) VALUES (?, ?)`,
		content.Title, toMillis(content.CreatedAt),
	)
	if err != nil {
		return nil, mapError(fmt.Errorf("create content: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	content.ID = domain.ContentID(id)
	content.CreatedAt = fromMillis(toMillis(content.CreatedAt))

	return content, nil
}

// FindContent returns one Content by ID.
func (s *Store) FindContent(ctx context.Context, id domain.ContentID) (_ *domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "find_content")
	defer func() { done(err) }()

	var (
		content   domain.Content
		createdAt int64
	)

	err = s.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM contents WHERE id = ?`, int64(id),
	).Scan(&content.ID, &content.Title, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityContent, id.String())
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("find content: %w", err))
	}

	content.CreatedAt = fromMillis(createdAt)

	return &content, nil
}

// ListContents returns every Content in creation order.
func (s *Store) ListContents(ctx context.Context) (_ []*domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "list_contents")
	defer func() { done(err) }()

	rows, err := s.db.QueryContext(ctx, `SELECT id, title, created_at FROM contents ORDER BY id`)
	if err != nil {
		return nil, mapError(fmt.Errorf("list contents: %w", err))
	}
	defer rows.Close()

	contents := make([]*domain.Content, 0)
	for rows.Next() {
		var (
			content   domain.Content
			createdAt int64
		)
		if err := rows.Scan(&content.ID, &content.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}

		content.CreatedAt = fromMillis(createdAt)
		contents = append(contents, &content)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(fmt.Errorf("list contents: %w", err))
	}

	return contents, nil
}

const questionColumns = `id, content_id, title, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var (
		q                    domain.Question
		createdAt, updatedAt int64
	)

	if err := row.Scan(&q.ID, &q.ContentID, &q.Title, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	q.CreatedAt = fromMillis(createdAt)
	q.UpdatedAt = fromMillis(updatedAt)

	return &q, nil
}

// ListQuestions returns the Content's Questions in insertion order.
func (s *Store) ListQuestions(ctx context.Context, contentID domain.ContentID) (_ []*domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "list_questions")
	defer func() { done(err) }()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE content_id = ? ORDER BY id`, int64(contentID),
	)
	if err != nil {
		return nil, mapError(fmt.Errorf("list questions: %w", err))
	}
	defer rows.Close()

	questions := make([]*domain.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(fmt.Errorf("list questions: %w", err))
	}

	return questions, nil
}

// FindQuestion returns a Question within the Content's scope.
func (s *Store) FindQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "find_question")
	defer func() { done(err) }()

	q, err := scanQuestion(s.db.QueryRowContext(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = ? AND content_id = ?`,
		int64(id), int64(contentID),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("find question: %w", err))
	}

	return q, nil
}

// CreateQuestion validates attrs and inserts a new Question.
func (s *Store) CreateQuestion(ctx context.Context, contentID domain.ContentID, attrs domain.QuestionAttrs) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "create_question")
	defer func() { done(err) }()

	q := domain.NewQuestion(contentID).WithAttrs(attrs)
	if err := q.Validate(); err != nil {
		return nil, err
	}

	now := toMillis(s.now())

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (content_id, title, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		int64(contentID), q.Title, now, now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError(domain.EntityContent, contentID.String())
		}

		return nil, mapError(fmt.Errorf("create question: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	q.ID = domain.QuestionID(id)
	q.CreatedAt = fromMillis(now)
	q.UpdatedAt = q.CreatedAt

	return q, nil
}

// UpdateQuestion validates attrs and applies them to an existing Question.
func (s *Store) UpdateQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID, attrs domain.QuestionAttrs) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "update_question")
	defer func() { done(err) }()

	candidate := (&domain.Question{ID: id, ContentID: contentID}).WithAttrs(attrs)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE questions SET title = ?, updated_at = ? WHERE id = ? AND content_id = ?`,
		candidate.Title, toMillis(s.now()), int64(id), int64(contentID),
	)
	if err != nil {
		return nil, mapError(fmt.Errorf("update question: %w", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	if affected == 0 {
		return nil, domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}

	return s.FindQuestion(ctx, contentID, id)
}

// DeleteQuestion removes a Question immediately.
func (s *Store) DeleteQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "delete_question")
	defer func() { done(err) }()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM questions WHERE id = ? AND content_id = ?`, int64(id), int64(contentID),
	)
	if err != nil {
		return mapError(fmt.Errorf("delete question: %w", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// mapError turns lock contention and a closed handle into domain.ErrUnavailable.
func mapError(err error) error {
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(Name, "connection closed"), err)
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return fmt.Errorf("%w: %w", domain.NewUnavailableError(Name, "database is locked"), err)
		}
	}

	if strings.Contains(err.Error(), "sql: database is closed") {
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(Name, "database is closed"), err)
	}

	return err
}
