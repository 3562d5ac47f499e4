package models

// RankedRegion - запись с вычисленными долями
type RankedRegion struct {
	RegionRecord
	UninsuredRatio float64 `json:"uninsured_ratio"`
	InsuredRatio   float64 `json:"insured_ratio"`
}

// Ranking - регионы по возрастанию доли незастрахованных
type Ranking struct {
	Version  int64          `json:"version"`
	Regions  []RankedRegion `json:"regions"`
	Excluded []string       `json:"excluded"`
}

// ChartSeries - один ряд столбчатой диаграммы, выровненный по Categories
type ChartSeries struct {
	Name string  `json:"name"`
	Data []int64 `json:"data"`
}

// ChartData - данные для диаграммы населения и незастрахованных
type ChartData struct {
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// MapPolygon - запрос на отрисовку одного региона
type MapPolygon struct {
	Name          string   `json:"name"`
	Path          []LatLng `json:"path"`
	StrokeColour  string   `json:"stroke_colour"`
	StrokeOpacity float64  `json:"stroke_opacity"`
	StrokeWeight  float64  `json:"stroke_weight"`
	FillColour    string   `json:"fill_colour"`
	FillOpacity   float64  `json:"fill_opacity"`
	InsuredRatio  float64  `json:"insured_ratio"`
	Normalized    float64  `json:"normalized"`
}

// MapView - начальное положение карты
type MapView struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// MapData - все полигоны карты плюс регионы, не попавшие в соединение
type MapData struct {
	View     MapView      `json:"view"`
	Polygons []MapPolygon `json:"polygons"`
	Skipped  []string     `json:"skipped"`
}

// Имена рядов диаграммы
const (
	SeriesTotal     = "Total Population"
	SeriesUninsured = "Uninsured Population"
)
