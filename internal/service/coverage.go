package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/coverage_map/internal/dataset"
	"github.com/shenikar/coverage_map/internal/models"
	"github.com/shenikar/coverage_map/internal/ranking"
	"github.com/shenikar/coverage_map/internal/render"
)

const (
	chartTitle    = "Total Population and Uninsured Population by State"
	chartSubtitle = "Ordered by Uninsured Ratio"

	strokeOpacity = 0.5
	strokeWeight  = 0.5
	fillOpacity   = 0.6
)

// Карта открывается над центром континентальной части США
var defaultView = models.MapView{
	Center: models.LatLng{Lat: 40.0034, Lng: -102.0506},
	Zoom:   3,
}

// ErrNotReady возвращается, пока нужные наборы данных ещё не загружены
var ErrNotReady = errors.New("coverage data is not loaded yet")

//go:generate mockgen -source=coverage.go -destination=mocks/coverage_mock.go -package=mocks

// PayloadCache определяет контракт кеша готовых ответов
type PayloadCache interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CoverageService определяет контракт загрузки наборов данных и построения диаграммы и карты
type CoverageService interface {
	LoadRecords(ctx context.Context) error
	LoadOutlines(ctx context.Context) error
	Ranking(ctx context.Context) (*models.Ranking, error)
	Normalized(ctx context.Context) (map[string]float64, error)
	Chart(ctx context.Context) (*models.ChartData, error)
	ChartPNG(ctx context.Context, w io.Writer) error
	Map(ctx context.Context) (*models.MapData, error)
	MapGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)
	Status() models.SnapshotStatus
}

type coverageService struct {
	recordsSource  dataset.Source
	outlinesSource dataset.Source
	store          *SnapshotStore
	cache          PayloadCache
	logger         *logrus.Logger
}

func NewCoverageService(recordsSource, outlinesSource dataset.Source, cache PayloadCache, logger *logrus.Logger) CoverageService {
	return &coverageService{
		recordsSource:  recordsSource,
		outlinesSource: outlinesSource,
		store:          NewSnapshotStore(),
		cache:          cache,
		logger:         logger,
	}
}

// LoadRecords загружает статистику и публикует новый снимок.
// При ошибке предыдущий снимок остаётся в силе.
func (s *coverageService) LoadRecords(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "coverage",
		"method":  "LoadRecords",
		"source":  s.recordsSource.String(),
	})
	log.Info("Loading population dataset")

	raw, err := s.recordsSource.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch population dataset")
		return fmt.Errorf("service: could not fetch records: %w", err)
	}
	records, err := dataset.DecodeRecords(raw)
	if err != nil {
		log.WithError(err).Error("Failed to decode population dataset")
		return fmt.Errorf("service: could not decode records: %w", err)
	}

	_, unrated := ranking.Partition(records)
	for _, r := range unrated {
		log.WithField("region", r.Name).Warn("Region has zero population and is excluded from ranking")
	}

	snap := s.store.PublishRecords(records, raw)
	log.WithFields(logrus.Fields{
		"version": snap.Version,
		"count":   len(records),
	}).Info("Population dataset loaded")
	return nil
}

// LoadOutlines загружает контуры регионов и публикует новый снимок
func (s *coverageService) LoadOutlines(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "coverage",
		"method":  "LoadOutlines",
		"source":  s.outlinesSource.String(),
	})
	log.Info("Loading outline dataset")

	raw, err := s.outlinesSource.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch outline dataset")
		return fmt.Errorf("service: could not fetch outlines: %w", err)
	}
	outlines, err := dataset.DecodeOutlines(raw)
	if err != nil {
		log.WithError(err).Error("Failed to decode outline dataset")
		return fmt.Errorf("service: could not decode outlines: %w", err)
	}

	snap := s.store.PublishOutlines(outlines, raw)
	log.WithFields(logrus.Fields{
		"version": snap.Version,
		"count":   len(outlines),
	}).Info("Outline dataset loaded")
	return nil
}

// Ranking возвращает регионы по возрастанию доли незастрахованных
func (s *coverageService) Ranking(ctx context.Context) (*models.Ranking, error) {
	snap := s.store.Records()
	if snap == nil {
		return nil, ErrNotReady
	}

	ranked := ranking.Rank(snap.Records)
	_, unrated := ranking.Partition(snap.Records)

	result := &models.Ranking{
		Version:  snap.Version,
		Regions:  make([]models.RankedRegion, len(ranked)),
		Excluded: make([]string, 0, len(unrated)),
	}
	for i, r := range ranked {
		result.Regions[i] = models.RankedRegion{
			RegionRecord:   r,
			UninsuredRatio: r.UninsuredRatio(),
			InsuredRatio:   r.InsuredRatio(),
		}
	}
	for _, r := range unrated {
		result.Excluded = append(result.Excluded, r.Name)
	}
	return result, nil
}

// Normalized возвращает нормированную долю застрахованных по имени региона
func (s *coverageService) Normalized(ctx context.Context) (map[string]float64, error) {
	snap := s.store.Records()
	if snap == nil {
		return nil, ErrNotReady
	}
	return ranking.Normalize(snap.Records), nil
}

// Chart строит данные для диаграммы: категории и два выровненных ряда
func (s *coverageService) Chart(ctx context.Context) (*models.ChartData, error) {
	snap := s.store.Records()
	if snap == nil {
		return nil, ErrNotReady
	}
	// Без регионов с населением рисовать нечего
	if rated, _ := ranking.Partition(snap.Records); len(rated) == 0 {
		return nil, ErrNotReady
	}

	key := fmt.Sprintf("coverage:chart:%s", snap.Digest)
	data := &models.ChartData{}
	if s.fromCache(ctx, key, data) {
		return data, nil
	}

	data = buildChart(snap.Records)
	s.toCache(ctx, key, data)
	return data, nil
}

// ChartPNG рисует диаграмму в PNG
func (s *coverageService) ChartPNG(ctx context.Context, w io.Writer) error {
	data, err := s.Chart(ctx)
	if err != nil {
		return err
	}
	if len(data.Categories) == 0 {
		return ErrNotReady
	}

	// Рендерим в буфер, чтобы не отдать клиенту половину картинки
	var buf bytes.Buffer
	if err := render.ChartPNG(&buf, data); err != nil {
		return fmt.Errorf("service: could not render chart: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Map соединяет контуры со статистикой по имени и считает цвет заливки.
// Пока не загружен хотя бы один из наборов, возвращает ErrNotReady.
func (s *coverageService) Map(ctx context.Context) (*models.MapData, error) {
	records, outlines := s.store.Records(), s.store.Outlines()
	if records == nil || outlines == nil || len(records.Records) == 0 || len(outlines.Outlines) == 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "coverage",
			"method":  "Map",
		}).Debug("Missing data in map, nothing to draw")
		return nil, ErrNotReady
	}

	key := fmt.Sprintf("coverage:map:%s:%s", records.Digest, outlines.Digest)
	data := &models.MapData{}
	if !s.fromCache(ctx, key, data) {
		data = s.buildMap(records.Records, outlines.Outlines)
		s.toCache(ctx, key, data)
	}
	data.View = defaultView
	return data, nil
}

// MapGeoJSON отдаёт полигоны карты как GeoJSON FeatureCollection
func (s *coverageService) MapGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	data, err := s.Map(ctx)
	if err != nil {
		return nil, err
	}
	return render.MapFeatures(data), nil
}

func (s *coverageService) Status() models.SnapshotStatus {
	return s.store.Status()
}

func buildChart(records []models.RegionRecord) *models.ChartData {
	ranked := ranking.Rank(records)
	data := &models.ChartData{
		Title:      chartTitle,
		Subtitle:   chartSubtitle,
		Categories: make([]string, len(ranked)),
		Series: []models.ChartSeries{
			{Name: models.SeriesTotal, Data: make([]int64, len(ranked))},
			{Name: models.SeriesUninsured, Data: make([]int64, len(ranked))},
		},
	}
	for i, r := range ranked {
		data.Categories[i] = r.Name
		data.Series[0].Data[i] = r.Population
		data.Series[1].Data[i] = r.UninsuredCount
	}
	return data
}

func (s *coverageService) buildMap(records []models.RegionRecord, outlines []models.RegionOutline) *models.MapData {
	log := s.logger.WithFields(logrus.Fields{
		"service": "coverage",
		"method":  "Map",
	})

	normalized := ranking.Normalize(records)
	byName := make(map[string]models.RegionRecord, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	data := &models.MapData{
		View:     defaultView,
		Polygons: make([]models.MapPolygon, 0, len(outlines)),
		Skipped:  make([]string, 0),
	}
	drawn := make(map[string]struct{}, len(outlines))
	for _, o := range outlines {
		rec, ok := byName[o.Name]
		if !ok {
			log.WithField("region", o.Name).Warn("Outline has no matching population record, skipping")
			data.Skipped = append(data.Skipped, o.Name)
			continue
		}
		t, ok := normalized[o.Name]
		if !ok {
			log.WithField("region", o.Name).Warn("Region has zero population, skipping")
			data.Skipped = append(data.Skipped, o.Name)
			continue
		}

		path := make([]models.LatLng, len(o.Points))
		copy(path, o.Points)
		data.Polygons = append(data.Polygons, models.MapPolygon{
			Name:          o.Name,
			Path:          path,
			StrokeColour:  o.Colour,
			StrokeOpacity: strokeOpacity,
			StrokeWeight:  strokeWeight,
			FillColour:    ranking.Hex(ranking.FillColour(t)),
			FillOpacity:   fillOpacity,
			InsuredRatio:  rec.InsuredRatio(),
			Normalized:    t,
		})
		drawn[o.Name] = struct{}{}
	}

	for _, r := range records {
		if _, ok := drawn[r.Name]; !ok {
			log.WithField("region", r.Name).Debug("Population record has no outline")
		}
	}
	return data
}

func (s *coverageService) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to read payload cache")
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to decode cached payload")
		return false
	}
	return true
}

func (s *coverageService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to encode payload for cache")
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to write payload cache")
	}
}
