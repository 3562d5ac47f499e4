// Package dataset разбирает JSON-фикстуры со статистикой по регионам и их контурами.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/coverage_map/internal/models"
)

const minOutlineVertices = 3

type recordsDocument struct {
	Data []models.RegionRecord `json:"data"`
}

type outlinesDocument struct {
	States struct {
		State []rawOutline `json:"state"`
	} `json:"states"`
}

type rawOutline struct {
	Name   string     `json:"name"`
	Colour string     `json:"colour"`
	Point  []rawPoint `json:"point"`
}

type rawPoint struct {
	Lat coordinate `json:"lat"`
	Lng coordinate `json:"lng"`
}

// coordinate принимает и строку, и число
type coordinate float64

func (c *coordinate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(b), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid coordinate %s: not a finite number", string(b))
	}
	*c = coordinate(v)
	return nil
}

// DecodeRecords разбирает документ {"data": [...]} или голый массив записей
func DecodeRecords(raw []byte) ([]models.RegionRecord, error) {
	var records []models.RegionRecord
	if isArray(raw) {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("failed to decode records: %w", err)
		}
	} else {
		var doc recordsDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode records: %w", err)
		}
		records = doc.Data
	}

	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("record %d: empty name", i)
		}
		if r.Population < 0 || r.InsuredCount < 0 || r.UninsuredCount < 0 {
			return nil, fmt.Errorf("record %q: negative count", r.Name)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("record %q: duplicate name", r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return records, nil
}

// DecodeOutlines разбирает документ {"states": {"state": [...]}} или голый массив контуров
func DecodeOutlines(raw []byte) ([]models.RegionOutline, error) {
	var items []rawOutline
	if isArray(raw) {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode outlines: %w", err)
		}
	} else {
		var doc outlinesDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode outlines: %w", err)
		}
		items = doc.States.State
	}

	outlines := make([]models.RegionOutline, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("outline %d: empty name", i)
		}
		if _, dup := seen[item.Name]; dup {
			return nil, fmt.Errorf("outline %q: duplicate name", item.Name)
		}
		seen[item.Name] = struct{}{}
		if len(item.Point) < minOutlineVertices {
			return nil, fmt.Errorf("outline %q: need at least %d vertices, got %d", item.Name, minOutlineVertices, len(item.Point))
		}

		points := make([]models.LatLng, len(item.Point))
		for j, p := range item.Point {
			lat, lng := float64(p.Lat), float64(p.Lng)
			if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
				return nil, fmt.Errorf("outline %q: vertex %d out of range (%f, %f)", item.Name, j, lat, lng)
			}
			points[j] = models.LatLng{Lat: lat, Lng: lng}
		}
		outlines = append(outlines, models.RegionOutline{
			Name:   item.Name,
			Colour: item.Colour,
			Points: points,
		})
	}
	return outlines, nil
}

func isArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
