package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/coverage_map/internal/models"
)

// ErrProjectNotFound возвращается репозиторием, если проекта нет
var ErrProjectNotFound = errors.New("project not found")

//go:generate mockgen -source=project.go -destination=mocks/project_mock.go -package=mocks

// ProjectRepository определяет контракт для работы с бд проектов
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Project, error)
}

// ProjectService определяет контракт витрины проектов
type ProjectService interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context, page, pageSize int) ([]*models.Project, error)
	ProjectDetails(ctx context.Context, id uuid.UUID) (*models.Project, template.HTML, error)
}

type projectService struct {
	repo   ProjectRepository
	logger *logrus.Logger
}

func NewProjectService(repo ProjectRepository, logger *logrus.Logger) ProjectService {
	return &projectService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProject создает проект
func (s *projectService) CreateProject(ctx context.Context, project *models.Project) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "project",
		"method":  "CreateProject",
		"title":   project.Title,
	})
	log.Info("Attempting to create a new project")

	if project.Media == nil {
		log.Warn("Project has no media")
		return fmt.Errorf("service: %w: no media", models.ErrInvalidMedia)
	}

	if err := s.repo.Create(ctx, project); err != nil {
		log.WithError(err).Error("Failed to create project in repository")
		return fmt.Errorf("service: could not create project: %w", err)
	}

	log.WithField("project_id", project.ID).Info("Project created successfully")
	return nil
}

// GetProject получает проект по ID
func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "project",
		"method":     "GetProject",
		"project_id": id,
	})

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get project from repository")
		return nil, fmt.Errorf("service: could not get project: %w", err)
	}
	return project, nil
}

// ListProjects возвращает список проектов с пагинацией
func (s *projectService) ListProjects(ctx context.Context, page, pageSize int) ([]*models.Project, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "project",
		"method":    "ListProjects",
		"page":      page,
		"page_size": pageSize,
	})

	projects, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list projects from repository")
		return nil, fmt.Errorf("service: could not list projects: %w", err)
	}

	log.WithField("count", len(projects)).Debug("Projects listed successfully")
	return projects, nil
}

// ProjectDetails возвращает проект вместе с готовым HTML медиа-блока
func (s *projectService) ProjectDetails(ctx context.Context, id uuid.UUID) (*models.Project, template.HTML, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, "", err
	}

	fragment, err := RenderMedia(project.Media)
	if err != nil {
		s.logger.WithError(err).WithField("project_id", id).Error("Failed to render project media")
		return nil, "", fmt.Errorf("service: could not render media: %w", err)
	}
	return project, fragment, nil
}
