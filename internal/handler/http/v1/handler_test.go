package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/coverage_map/internal/config"
	"github.com/shenikar/coverage_map/internal/models"
	"github.com/shenikar/coverage_map/internal/refresh"
	refreshmocks "github.com/shenikar/coverage_map/internal/refresh/mocks"
	"github.com/shenikar/coverage_map/internal/service"
	"github.com/shenikar/coverage_map/internal/service/mocks"
)

type testDeps struct {
	coverage  *mocks.MockCoverageService
	projects  *mocks.MockProjectService
	publisher *refreshmocks.MockPublisher
	router    *gin.Engine
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		coverage:  mocks.NewMockCoverageService(ctrl),
		projects:  mocks.NewMockProjectService(ctrl),
		publisher: refreshmocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(deps.coverage, deps.projects, deps.publisher, logger, cfg)

	gin.SetMode(gin.TestMode)
	deps.router = gin.New()
	api := deps.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return deps
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

func TestGetRanking_Success(t *testing.T) {
	deps := newTestHandler(t)
	ranking := &models.Ranking{
		Version: 3,
		Regions: []models.RankedRegion{
			{RegionRecord: models.RegionRecord{Name: "A", Population: 100, InsuredCount: 90, UninsuredCount: 10}, UninsuredRatio: 0.1, InsuredRatio: 0.9},
			{RegionRecord: models.RegionRecord{Name: "B", Population: 200, InsuredCount: 100, UninsuredCount: 100}, UninsuredRatio: 0.5, InsuredRatio: 0.5},
		},
		Excluded: []string{"Z"},
	}
	deps.coverage.EXPECT().Ranking(gomock.Any()).Return(ranking, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/ranking", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RankingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Regions, 2)
	assert.Equal(t, "A", resp.Regions[0].Name)
	assert.Equal(t, int64(10), resp.Regions[0].NumberUninsured)
	assert.InDelta(t, 0.5, resp.Regions[1].UninsuredRatio, 1e-9)
	assert.Equal(t, []string{"Z"}, resp.Excluded)
}

func TestGetRanking_NotReady(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Ranking(gomock.Any()).Return(nil, service.ErrNotReady).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/ranking", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), errNotLoaded)
}

func TestGetNormalized_Success(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Normalized(gomock.Any()).Return(map[string]float64{"A": 1, "B": 0}, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/normalized", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1.0, resp["A"])
	assert.Equal(t, 0.0, resp["B"])
}

func TestGetChart_Success(t *testing.T) {
	deps := newTestHandler(t)
	data := &models.ChartData{
		Title:      "title",
		Subtitle:   "subtitle",
		Categories: []string{"A", "B"},
		Series: []models.ChartSeries{
			{Name: models.SeriesTotal, Data: []int64{100, 200}},
			{Name: models.SeriesUninsured, Data: []int64{10, 100}},
		},
	}
	deps.coverage.EXPECT().Chart(gomock.Any()).Return(data, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/chart", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Ready)
	assert.Equal(t, []string{"A", "B"}, resp.Categories)
	require.Len(t, resp.Series, 2)
	assert.Equal(t, models.SeriesUninsured, resp.Series[1].Name)
	assert.Equal(t, []int64{10, 100}, resp.Series[1].Data)
}

func TestGetChart_NotReady(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Chart(gomock.Any()).Return(nil, service.ErrNotReady).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/chart", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Ready)
	assert.Empty(t, resp.Categories)
}

func TestGetChart_ServiceError(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Chart(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/chart", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetChartPNG_Success(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().ChartPNG(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("\x89PNG\r\n\x1a\n"))
			return err
		}).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/chart.png", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestGetChartPNG_NotReady(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().ChartPNG(gomock.Any(), gomock.Any()).Return(service.ErrNotReady).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/chart.png", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetMap_Success(t *testing.T) {
	deps := newTestHandler(t)
	data := &models.MapData{
		View: models.MapView{Center: models.LatLng{Lat: 40.0034, Lng: -102.0506}, Zoom: 3},
		Polygons: []models.MapPolygon{{
			Name:          "A",
			Path:          []models.LatLng{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}, {Lat: 5, Lng: 6}},
			StrokeColour:  "#FF0000",
			StrokeOpacity: 0.5,
			StrokeWeight:  0.5,
			FillColour:    "#00ff41",
			FillOpacity:   0.6,
			InsuredRatio:  0.9,
			Normalized:    1,
		}},
		Skipped: []string{"Atlantis"},
	}
	deps.coverage.EXPECT().Map(gomock.Any()).Return(data, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/map", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Ready)
	require.Len(t, resp.Polygons, 1)
	assert.Equal(t, "#00ff41", resp.Polygons[0].FillColour)
	assert.Len(t, resp.Polygons[0].Path, 3)
	assert.Equal(t, []string{"Atlantis"}, resp.Skipped)
	require.NotNil(t, resp.Center)
	assert.Equal(t, 40.0034, resp.Center.Lat)
	assert.Equal(t, 3, resp.Zoom)
}

func TestGetMap_NotReady(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Map(gomock.Any()).Return(nil, service.ErrNotReady).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/map", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":false`)
}

func TestGetMapGeoJSON_Success(t *testing.T) {
	deps := newTestHandler(t)
	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(orb.Polygon{orb.Ring{{2, 1}, {4, 3}, {6, 5}, {2, 1}}})
	feature.Properties["name"] = "A"
	fc.Append(feature)
	deps.coverage.EXPECT().MapGeoJSON(gomock.Any()).Return(fc, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/map.geojson", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
	decoded, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, "A", decoded.Features[0].Properties.MustString("name"))
}

func TestGetMapGeoJSON_NotReady(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().MapGeoJSON(gomock.Any()).Return(nil, service.ErrNotReady).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/coverage/map.geojson", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRefreshDatasets_Success(t *testing.T) {
	deps := newTestHandler(t)
	deps.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event refresh.RefreshEvent) error {
			assert.Equal(t, refresh.DatasetOutlines, event.Dataset)
			assert.False(t, event.Timestamp.IsZero())
			return nil
		}).Times(1)

	w := makeRequest(deps.router, "POST", "/api/v1/datasets/refresh", bytes.NewBufferString(`{"dataset":"outlines"}`), apiKey)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "queued")
}

func TestRefreshDatasets_Unauthorized(t *testing.T) {
	deps := newTestHandler(t)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "POST", "/api/v1/datasets/refresh", bytes.NewBufferString(`{"dataset":"all"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestRefreshDatasets_InvalidKey(t *testing.T) {
	deps := newTestHandler(t)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "POST", "/api/v1/datasets/refresh", bytes.NewBufferString(`{"dataset":"all"}`),
		map[string]string{"Authorization": "Bearer wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestRefreshDatasets_UnknownDataset(t *testing.T) {
	deps := newTestHandler(t)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "POST", "/api/v1/datasets/refresh", bytes.NewBufferString(`{"dataset":"counties"}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshDatasets_PublishError(t *testing.T) {
	deps := newTestHandler(t)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	w := makeRequest(deps.router, "POST", "/api/v1/datasets/refresh", bytes.NewBufferString(`{"dataset":"all"}`), apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateProject_Success(t *testing.T) {
	deps := newTestHandler(t)
	projectID := uuid.New()
	reqBody := CreateProjectRequest{
		Title:       "Turbine",
		Description: "Rotor blade model",
		MediaType:   models.MediaKindModelViewer,
		MediaSrc:    "https://example.com/turbine.glb",
	}

	deps.projects.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Project) error {
			assert.IsType(t, models.ModelViewer{}, p.Media)
			p.ID = projectID
			p.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(deps.router, "POST", "/api/v1/projects", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, projectID, resp.ID)
	assert.Equal(t, models.MediaKindModelViewer, resp.MediaType)
	assert.Equal(t, reqBody.MediaSrc, resp.MediaSrc)
}

func TestCreateProject_InvalidJSON(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "POST", "/api/v1/projects", bytes.NewBufferString(`{"title": "x"`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateProject_ValidationError(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateProjectRequest{
		Title:     "Turbine",
		MediaType: "flash",
		MediaSrc:  "https://example.com/a.swf",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(deps.router, "POST", "/api/v1/projects", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MediaType")
}

func TestCreateProject_Unauthorized(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "POST", "/api/v1/projects", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject_ServiceError(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(errors.New("db error")).Times(1)

	reqBody := CreateProjectRequest{
		Title:     "Clip",
		MediaType: models.MediaKindNativeVideo,
		MediaSrc:  "https://example.com/clip.mp4",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(deps.router, "POST", "/api/v1/projects", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListProjects_Success(t *testing.T) {
	deps := newTestHandler(t)
	projects := []*models.Project{
		{ID: uuid.New(), Title: "One", Media: models.NativeVideo{Src: "https://example.com/1.mp4"}},
		{ID: uuid.New(), Title: "Two", Media: models.VideoFrame{Src: "https://www.youtube.com/embed/x", Title: "Two"}},
	}
	deps.projects.EXPECT().ListProjects(gomock.Any(), 2, 5).Return(projects, nil).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/projects?page=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, models.MediaKindVideoFrame, resp[1].MediaType)
}

func TestListProjects_ServiceError(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().ListProjects(gomock.Any(), 1, 20).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/projects", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProject_Success(t *testing.T) {
	deps := newTestHandler(t)
	projectID := uuid.New()
	project := &models.Project{ID: projectID, Title: "Clip", Media: models.NativeVideo{Src: "https://example.com/clip.mp4"}}
	fragment := template.HTML(`<video src="https://example.com/clip.mp4" controls></video>`)
	deps.projects.EXPECT().ProjectDetails(gomock.Any(), projectID).Return(project, fragment, nil).Times(1)

	w := makeRequest(deps.router, "GET", fmt.Sprintf("/api/v1/projects/%s", projectID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ProjectDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, projectID, resp.ID)
	assert.Equal(t, string(fragment), resp.MediaHTML)
}

func TestGetProject_InvalidID(t *testing.T) {
	deps := newTestHandler(t)
	deps.projects.EXPECT().ProjectDetails(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, "GET", "/api/v1/projects/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid project ID")
}

func TestGetProject_NotFound(t *testing.T) {
	deps := newTestHandler(t)
	projectID := uuid.New()
	deps.projects.EXPECT().
		ProjectDetails(gomock.Any(), projectID).
		Return(nil, template.HTML(""), fmt.Errorf("service: %w", service.ErrProjectNotFound)).Times(1)

	w := makeRequest(deps.router, "GET", fmt.Sprintf("/api/v1/projects/%s", projectID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	deps := newTestHandler(t)
	deps.coverage.EXPECT().Status().Return(models.SnapshotStatus{RecordsVersion: 1, Records: 51, Ready: false}).Times(1)

	w := makeRequest(deps.router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 51, resp.Snapshots.Records)
}
