package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxDocumentSize ограничивает размер скачиваемого документа
const maxDocumentSize = 32 << 20

// Source - откуда берётся сырой документ набора данных
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource выбирает реализацию по схеме location: http(s):// - HTTP, остальное - файл
func NewSource(location string, timeout time.Duration) (Source, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("dataset location is empty")
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPSource{
			URL:    location,
			Client: &http.Client{Timeout: timeout},
		}, nil
	default:
		return FileSource{Path: strings.TrimPrefix(location, "file://")}, nil
	}
}

// FileSource читает документ с диска
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return raw, nil
}

func (s FileSource) String() string { return "file://" + s.Path }

// HTTPSource скачивает документ GET-запросом
type HTTPSource struct {
	URL    string
	Client *http.Client
	// MaxBytes - предел размера документа; 0 означает maxDocumentSize
	MaxBytes int64
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", s.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = maxDocumentSize
	}
	// Читаем на байт больше предела, чтобы отличить большой документ от обрезанного
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", s.URL, err)
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("document %s is too large: more than %d bytes", s.URL, limit)
	}
	return raw, nil
}

func (s *HTTPSource) String() string { return s.URL }
