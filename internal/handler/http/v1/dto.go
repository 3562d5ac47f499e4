package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/coverage_map/internal/models"
)

// RankedRegionResponse DTO региона в рейтинге
// @Description DTO региона в рейтинге
type RankedRegionResponse struct {
	Name            string  `json:"name"`
	Population      int64   `json:"population"`
	NumberInsured   int64   `json:"number_insured"`
	NumberUninsured int64   `json:"number_uninsured"`
	UninsuredRatio  float64 `json:"uninsured_ratio"`
	InsuredRatio    float64 `json:"insured_ratio"`
}

// RankingResponse DTO рейтинга по доле незастрахованных
// @Description DTO рейтинга по доле незастрахованных
type RankingResponse struct {
	Version  int64                  `json:"version"`
	Regions  []RankedRegionResponse `json:"regions"`
	Excluded []string               `json:"excluded"`
}

// SeriesResponse DTO ряда диаграммы
// @Description DTO ряда диаграммы
type SeriesResponse struct {
	Name string  `json:"name"`
	Data []int64 `json:"data"`
}

// ChartResponse DTO данных диаграммы; Ready=false, пока статистика не загружена
// @Description DTO данных диаграммы
type ChartResponse struct {
	Ready      bool             `json:"ready"`
	Title      string           `json:"title,omitempty"`
	Subtitle   string           `json:"subtitle,omitempty"`
	Categories []string         `json:"categories"`
	Series     []SeriesResponse `json:"series"`
}

// PolygonResponse DTO полигона региона
// @Description DTO полигона региона
type PolygonResponse struct {
	Name          string          `json:"name"`
	Path          []models.LatLng `json:"path"`
	StrokeColour  string          `json:"strokeColor"`
	StrokeOpacity float64         `json:"strokeOpacity"`
	StrokeWeight  float64         `json:"strokeWeight"`
	FillColour    string          `json:"fillColor"`
	FillOpacity   float64         `json:"fillOpacity"`
	InsuredRatio  float64         `json:"insured_ratio"`
	Normalized    float64         `json:"normalized"`
}

// MapResponse DTO карты; Ready=false, пока не загружены оба набора
// @Description DTO карты
type MapResponse struct {
	Ready    bool              `json:"ready"`
	Center   *models.LatLng    `json:"center,omitempty"`
	Zoom     int               `json:"zoom,omitempty"`
	Polygons []PolygonResponse `json:"polygons"`
	Skipped  []string          `json:"skipped"`
}

// RefreshRequest DTO запроса на перезагрузку набора данных
// @Description DTO запроса на перезагрузку набора данных
type RefreshRequest struct {
	Dataset string `json:"dataset" validate:"required,oneof=records outlines all"`
}

// CreateProjectRequest DTO для создания проекта
// @Description DTO для создания проекта
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	MediaType   string `json:"media_type" validate:"required,oneof=model-viewer youtube video"`
	MediaSrc    string `json:"media_src" validate:"required,url"`
}

// ProjectResponse DTO для ответа с информацией о проекте
// @Description DTO для ответа с информацией о проекте
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaType   string    `json:"media_type"`
	MediaSrc    string    `json:"media_src"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectDetailsResponse DTO для модального окна проекта
// @Description DTO для модального окна проекта
type ProjectDetailsResponse struct {
	ProjectResponse
	MediaHTML string `json:"media_html"`
}

// HealthResponse DTO для health-check
// @Description DTO для health-check
type HealthResponse struct {
	Status    string                `json:"status"`
	Snapshots models.SnapshotStatus `json:"snapshots"`
}
