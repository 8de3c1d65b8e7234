// Package postgres provides the PostgreSQL implementation of ports.Store using GORM.
//
// The schema is created with AutoMigrate. Questions reference their Content
// with an ON DELETE CASCADE foreign key, so removing a Content removes its
// Questions.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/content-admin/internal/domain"
	"github.com/jsamuelsen/content-admin/internal/platform/telemetry"
)

// Name identifies the store in health checks and spans.
const Name = "postgres"

// slowQueryThreshold is when GORM starts logging a query as slow.
const slowQueryThreshold = 200 * time.Millisecond

// Config configures the PostgreSQL connection pool.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          *slog.Logger
}

// Store persists Contents and Questions in PostgreSQL.
type Store struct {
	db *gorm.DB
}

type contentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	CreatedAt time.Time
	Questions []questionModel `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

func (contentModel) TableName() string { return "contents" }

func (m *contentModel) toDomain() *domain.Content {
	return &domain.Content{
		ID:        domain.ContentID(m.ID),
		Title:     m.Title,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type questionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ContentID int64  `gorm:"not null;index:idx_questions_content_id"`
	Title     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (questionModel) TableName() string { return "questions" }

func (m *questionModel) toDomain() *domain.Question {
	return &domain.Question{
		ID:        domain.QuestionID(m.ID),
		ContentID: domain.ContentID(m.ContentID),
		Title:     m.Title,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// Open connects to PostgreSQL, configures the pool and migrates the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("postgres dsn is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get postgres handle: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	store := &Store{db: db}
	if err := store.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return store, nil
}

// Migrate creates any missing tables, indexes and foreign keys.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&contentModel{}, &questionModel{}); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return Name
}

// Check implements ports.HealthChecker by pinging the pool.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// CreateContent inserts a Content.
func (s *Store) CreateContent(ctx context.Context, title string) (_ *domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "create_content")
	defer func() { done(err) }()

	content := &domain.Content{Title: strings.TrimSpace(title)}
	if err := content.Validate(); err != nil {
		return nil, err
	}

	model := contentModel{Title: content.Title}
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, mapError(fmt.Errorf("create content: %w", err))
	}

	return model.toDomain(), nil
}

// FindContent returns one Content by ID.
func (s *Store) FindContent(ctx context.Context, id domain.ContentID) (_ *domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "find_content")
	defer func() { done(err) }()

	var model contentModel

	err = s.db.WithContext(ctx).First(&model, "id = ?", int64(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError(domain.EntityContent, id.String())
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("find content: %w", err))
	}

	return model.toDomain(), nil
}

// ListContents returns every Content in creation order.
func (s *Store) ListContents(ctx context.Context) (_ []*domain.Content, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "list_contents")
	defer func() { done(err) }()

	var models []contentModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, mapError(fmt.Errorf("list contents: %w", err))
	}

	contents := make([]*domain.Content, 0, len(models))
	for i := range models {
		contents = append(contents, models[i].toDomain())
	}

	return contents, nil
}

// ListQuestions returns the Content's Questions in insertion order.
func (s *Store) ListQuestions(ctx context.Context, contentID domain.ContentID) (_ []*domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "list_questions")
	defer func() { done(err) }()

	var models []questionModel

	err = s.db.WithContext(ctx).
		Where("content_id = ?", int64(contentID)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, mapError(fmt.Errorf("list questions: %w", err))
	}

	return questionsToDomain(models), nil
}

// FindQuestion returns a Question within the Content's scope.
func (s *Store) FindQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "find_question")
	defer func() { done(err) }()

	var model questionModel

	err = s.db.WithContext(ctx).
		Where("id = ? AND content_id = ?", int64(id), int64(contentID)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("find question: %w", err))
	}

	return model.toDomain(), nil
}

// CreateQuestion validates attrs and inserts a new Question.
func (s *Store) CreateQuestion(ctx context.Context, contentID domain.ContentID, attrs domain.QuestionAttrs) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "create_question")
	defer func() { done(err) }()

	q := domain.NewQuestion(contentID).WithAttrs(attrs)
	if err := q.Validate(); err != nil {
		return nil, err
	}

	model := questionModel{ContentID: int64(contentID), Title: q.Title}

	err = s.db.WithContext(ctx).Create(&model).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, domain.NewNotFoundError(domain.EntityContent, contentID.String())
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("create question: %w", err))
	}

	return model.toDomain(), nil
}

// UpdateQuestion validates attrs and applies them to an existing Question.
func (s *Store) UpdateQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID, attrs domain.QuestionAttrs) (_ *domain.Question, err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "update_question")
	defer func() { done(err) }()

	candidate := (&domain.Question{ID: id, ContentID: contentID}).WithAttrs(attrs)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Model(&questionModel{}).
		Where("id = ? AND content_id = ?", int64(id), int64(contentID)).
		Update("title", candidate.Title)
	if res.Error != nil {
		return nil, mapError(fmt.Errorf("update question: %w", res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}

	return s.FindQuestion(ctx, contentID, id)
}

// DeleteQuestion removes a Question immediately.
func (s *Store) DeleteQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (err error) {
	ctx, done := telemetry.StartStoreSpan(ctx, Name, "delete_question")
	defer func() { done(err) }()

	res := s.db.WithContext(ctx).
		Where("id = ? AND content_id = ?", int64(id), int64(contentID)).
		Delete(&questionModel{})
	if res.Error != nil {
		return mapError(fmt.Errorf("delete question: %w", res.Error))
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityQuestion, id.String())
	}

	return nil
}

func questionsToDomain(models []questionModel) []*domain.Question {
	questions := make([]*domain.Question, 0, len(models))
	for i := range models {
		questions = append(questions, models[i].toDomain())
	}

	return questions
}

// mapError turns connectivity failures into domain.ErrUnavailable.
func mapError(err error) error {
	var netErr net.Error

	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(Name, "connection failed"), err)
	case strings.Contains(err.Error(), "database is closed"):
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(Name, "database is closed"), err)
	default:
		return err
	}
}
