// Package ranking упорядочивает регионы по доле незастрахованных и
// нормирует долю застрахованных для раскраски карты.
//
// Записи с нулевым населением не участвуют ни в ранжировании, ни в
// нормировке: Partition отделяет их, чтобы вызывающий код мог их залогировать.
package ranking

import (
	"math"
	"sort"

	"github.com/shenikar/coverage_map/internal/models"
)

// Degenerate - значение нормировки, когда все доли совпадают
const Degenerate = 0.5

// Partition делит записи на оцениваемые и записи с нулевым населением.
// Порядок внутри каждой группы сохраняется.
func Partition(records []models.RegionRecord) (rated, unrated []models.RegionRecord) {
	rated = make([]models.RegionRecord, 0, len(records))
	for _, r := range records {
		if r.Rated() {
			rated = append(rated, r)
		} else {
			unrated = append(unrated, r)
		}
	}
	return rated, unrated
}

// Rank возвращает новый срез оцениваемых записей по возрастанию доли
// незастрахованных. При равных долях порядок определяется именем.
func Rank(records []models.RegionRecord) []models.RegionRecord {
	ranked, _ := Partition(records)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].UninsuredRatio(), ranked[j].UninsuredRatio()
		if a != b {
			return a < b
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// Normalize переводит долю застрахованных каждой оцениваемой записи в [0,1]
// относительно минимума и максимума по коллекции.
func Normalize(records []models.RegionRecord) map[string]float64 {
	rated, _ := Partition(records)
	out := make(map[string]float64, len(rated))
	if len(rated) == 0 {
		return out
	}

	lo, hi := rated[0].InsuredRatio(), rated[0].InsuredRatio()
	for _, r := range rated[1:] {
		v := r.InsuredRatio()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	for _, r := range rated {
		if span == 0 {
			out[r.Name] = Degenerate
			continue
		}
		out[r.Name] = clamp((r.InsuredRatio() - lo) / span)
	}
	return out
}

func clamp(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
