package models

import "time"

// RegionRecord - статистика по населению и страхованию для одного региона
type RegionRecord struct {
	Name           string `json:"name"`
	Population     int64  `json:"population"`
	InsuredCount   int64  `json:"number_insured"`
	UninsuredCount int64  `json:"number_uninsured"`
}

// Rated сообщает, можно ли вычислить для записи доли (население > 0)
func (r RegionRecord) Rated() bool {
	return r.Population > 0
}

// UninsuredRatio возвращает долю незастрахованных; для неоцениваемых записей 0
func (r RegionRecord) UninsuredRatio() float64 {
	if !r.Rated() {
		return 0
	}
	return float64(r.UninsuredCount) / float64(r.Population)
}

// InsuredRatio возвращает долю застрахованных; для неоцениваемых записей 0
func (r RegionRecord) InsuredRatio() float64 {
	if !r.Rated() {
		return 0
	}
	return float64(r.InsuredCount) / float64(r.Population)
}

// LatLng - вершина контура
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RegionOutline - контур региона на карте
type RegionOutline struct {
	Name   string   `json:"name"`
	Colour string   `json:"colour"`
	Points []LatLng `json:"point"`
}

// RecordSnapshot - неизменяемый результат одной загрузки статистики
type RecordSnapshot struct {
	Version  int64
	Digest   string
	LoadedAt time.Time
	Records  []RegionRecord
}

// OutlineSnapshot - неизменяемый результат одной загрузки контуров
type OutlineSnapshot struct {
	Version  int64
	Digest   string
	LoadedAt time.Time
	Outlines []RegionOutline
}

// SnapshotStatus - сводка по текущим снимкам для health-check
type SnapshotStatus struct {
	RecordsVersion  int64 `json:"records_version"`
	Records         int   `json:"records"`
	OutlinesVersion int64 `json:"outlines_version"`
	Outlines        int   `json:"outlines"`
	Ready           bool  `json:"ready"`
}
