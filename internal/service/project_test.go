package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/coverage_map/internal/models"
	"github.com/shenikar/coverage_map/internal/service/mocks"
)

// newTestProjectService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestProjectService(t *testing.T) (ProjectService, *mocks.MockProjectRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProjectRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewProjectService(repoMock, logger), repoMock
}

func TestCreateProject_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestProjectService(t)
	ctx := context.Background()
	project := &models.Project{
		Title: "Turbine",
		Media: models.ModelViewer{Src: "https://cdn.example.com/turbine.glb", Alt: "Turbine"},
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, project).
		DoAndReturn(func(_ context.Context, p *models.Project) error {
			p.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := svc.CreateProject(ctx, project)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
}

func TestCreateProject_NoMedia(t *testing.T) {
	svc, repoMock := newTestProjectService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateProject(context.Background(), &models.Project{Title: "Empty"})

	assert.ErrorIs(t, err, models.ErrInvalidMedia)
}

func TestGetProject_NotFound(t *testing.T) {
	svc, repoMock := newTestProjectService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)).Times(1)

	project, err := svc.GetProject(ctx, id)

	require.Error(t, err)
	assert.Nil(t, project)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestListProjects_ClampsPaging(t *testing.T) {
	svc, repoMock := newTestProjectService(t)
	ctx := context.Background()
	expected := []*models.Project{{ID: uuid.New(), Title: "One"}}

	repoMock.EXPECT().List(ctx, 1, 20).Return(expected, nil).Times(1)

	projects, err := svc.ListProjects(ctx, 0, 1000)

	require.NoError(t, err)
	assert.Equal(t, expected, projects)
}

func TestProjectDetails_RendersMedia(t *testing.T) {
	svc, repoMock := newTestProjectService(t)
	ctx := context.Background()
	id := uuid.New()
	project := &models.Project{
		ID:    id,
		Title: "Demo reel",
		Media: models.NativeVideo{Src: "https://cdn.example.com/reel.mp4"},
	}

	repoMock.EXPECT().GetByID(ctx, id).Return(project, nil).Times(1)

	got, fragment, err := svc.ProjectDetails(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, project, got)
	assert.Contains(t, string(fragment), `<video src="https://cdn.example.com/reel.mp4" controls`)
}
