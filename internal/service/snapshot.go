package service

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/shenikar/coverage_map/internal/models"
)

// SnapshotStore хранит последний снимок каждого набора данных.
// Снимок заменяется целиком, читатели никогда не видят частичную загрузку.
type SnapshotStore struct {
	records  atomic.Pointer[models.RecordSnapshot]
	outlines atomic.Pointer[models.OutlineSnapshot]
	version  atomic.Int64
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// PublishRecords публикует новый снимок статистики
func (s *SnapshotStore) PublishRecords(records []models.RegionRecord, raw []byte) *models.RecordSnapshot {
	snap := &models.RecordSnapshot{
		Version:  s.version.Add(1),
		Digest:   digest(raw),
		LoadedAt: time.Now().UTC(),
		Records:  records,
	}
	s.records.Store(snap)
	return snap
}

// PublishOutlines публикует новый снимок контуров
func (s *SnapshotStore) PublishOutlines(outlines []models.RegionOutline, raw []byte) *models.OutlineSnapshot {
	snap := &models.OutlineSnapshot{
		Version:  s.version.Add(1),
		Digest:   digest(raw),
		LoadedAt: time.Now().UTC(),
		Outlines: outlines,
	}
	s.outlines.Store(snap)
	return snap
}

// Records возвращает текущий снимок статистики или nil
func (s *SnapshotStore) Records() *models.RecordSnapshot {
	return s.records.Load()
}

// Outlines возвращает текущий снимок контуров или nil
func (s *SnapshotStore) Outlines() *models.OutlineSnapshot {
	return s.outlines.Load()
}

// Status собирает сводку по обоим снимкам
func (s *SnapshotStore) Status() models.SnapshotStatus {
	var st models.SnapshotStatus
	records, outlines := s.Records(), s.Outlines()
	if records != nil {
		st.RecordsVersion = records.Version
		st.Records = len(records.Records)
	}
	if outlines != nil {
		st.OutlinesVersion = outlines.Version
		st.Outlines = len(outlines.Outlines)
	}
	st.Ready = records != nil && outlines != nil
	return st
}

func digest(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}
