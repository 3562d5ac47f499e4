package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/coverage_map/internal/models"
	"github.com/shenikar/coverage_map/internal/service"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) service.ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create создает новую запись о проекте в бд
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, description, media_kind, media_src)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.Media.Kind(),
		project.Media.Source(),
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID возвращает проект по его UUID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `
		SELECT id, title, description, media_kind, media_src, created_at
		FROM projects
		WHERE id = $1;
	`
	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

// List возвращает список проектов с пагинацией, новые первыми
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int) ([]*models.Project, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, title, description, media_kind, media_src, created_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return projects, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var (
		project   models.Project
		mediaKind string
		mediaSrc  string
	)
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&mediaKind,
		&mediaSrc,
		&project.CreatedAt,
	); err != nil {
		return nil, err
	}

	media, err := models.NewMedia(mediaKind, mediaSrc, project.Title)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.ID, err)
	}
	project.Media = media
	return &project, nil
}
