package v1

import (
	"github.com/shenikar/coverage_map/internal/models"
)

// DTOToProjectModel преобразует DTO создания в доменную модель
func DTOToProjectModel(dto CreateProjectRequest) (*models.Project, error) {
	media, err := models.NewMedia(dto.MediaType, dto.MediaSrc, dto.Title)
	if err != nil {
		return nil, err
	}
	return &models.Project{
		Title:       dto.Title,
		Description: dto.Description,
		Media:       media,
	}, nil
}

// ModelToProjectResponse преобразует доменную модель в DTO для ответа
func ModelToProjectResponse(model *models.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
	if model.Media != nil {
		resp.MediaType = model.Media.Kind()
		resp.MediaSrc = model.Media.Source()
	}
	return resp
}

// ModelsToProjectResponses преобразует слайс моделей в слайс DTO
func ModelsToProjectResponses(models []*models.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToProjectResponse(model)
	}
	return responses
}

// ModelToRankingResponse преобразует рейтинг в DTO
func ModelToRankingResponse(model *models.Ranking) *RankingResponse {
	resp := &RankingResponse{
		Version:  model.Version,
		Regions:  make([]RankedRegionResponse, len(model.Regions)),
		Excluded: model.Excluded,
	}
	for i, r := range model.Regions {
		resp.Regions[i] = RankedRegionResponse{
			Name:            r.Name,
			Population:      r.Population,
			NumberInsured:   r.InsuredCount,
			NumberUninsured: r.UninsuredCount,
			UninsuredRatio:  r.UninsuredRatio,
			InsuredRatio:    r.InsuredRatio,
		}
	}
	return resp
}

// ModelToChartResponse преобразует данные диаграммы в DTO
func ModelToChartResponse(model *models.ChartData) *ChartResponse {
	resp := &ChartResponse{
		Ready:      true,
		Title:      model.Title,
		Subtitle:   model.Subtitle,
		Categories: model.Categories,
		Series:     make([]SeriesResponse, len(model.Series)),
	}
	for i, s := range model.Series {
		resp.Series[i] = SeriesResponse{Name: s.Name, Data: s.Data}
	}
	return resp
}

// ModelToMapResponse преобразует данные карты в DTO
func ModelToMapResponse(model *models.MapData) *MapResponse {
	center := model.View.Center
	resp := &MapResponse{
		Ready:    true,
		Center:   &center,
		Zoom:     model.View.Zoom,
		Polygons: make([]PolygonResponse, len(model.Polygons)),
		Skipped:  model.Skipped,
	}
	for i, p := range model.Polygons {
		resp.Polygons[i] = PolygonResponse{
			Name:          p.Name,
			Path:          p.Path,
			StrokeColour:  p.StrokeColour,
			StrokeOpacity: p.StrokeOpacity,
			StrokeWeight:  p.StrokeWeight,
			FillColour:    p.FillColour,
			FillOpacity:   p.FillOpacity,
			InsuredRatio:  p.InsuredRatio,
			Normalized:    p.Normalized,
		}
	}
	return resp
}
