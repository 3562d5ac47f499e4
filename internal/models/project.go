package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Виды медиа в карточке проекта, как они приходят от клиента
const (
	MediaKindModelViewer = "model-viewer"
	MediaKindVideoFrame  = "youtube"
	MediaKindNativeVideo = "video"
)

// ErrInvalidMedia возвращается для неизвестного вида медиа или пустого источника
var ErrInvalidMedia = errors.New("invalid project media")

// Media - медиа-блок карточки проекта.
// Реализации: ModelViewer, VideoFrame, NativeVideo.
type Media interface {
	Kind() string
	Source() string
}

// ModelViewer - встроенный 3D-просмотрщик
type ModelViewer struct {
	Src string
	Alt string
}

func (m ModelViewer) Kind() string   { return MediaKindModelViewer }
func (m ModelViewer) Source() string { return m.Src }

// VideoFrame - iframe видеохостинга
type VideoFrame struct {
	Src   string
	Title string
}

func (m VideoFrame) Kind() string   { return MediaKindVideoFrame }
func (m VideoFrame) Source() string { return m.Src }

// NativeVideo - обычный video-элемент
type NativeVideo struct {
	Src string
}

func (m NativeVideo) Kind() string   { return MediaKindNativeVideo }
func (m NativeVideo) Source() string { return m.Src }

// NewMedia собирает вариант медиа по строковому виду.
// title используется как alt/title там, где он нужен.
func NewMedia(kind, src, title string) (Media, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidMedia)
	}
	switch kind {
	case MediaKindModelViewer:
		return ModelViewer{Src: src, Alt: title}, nil
	case MediaKindVideoFrame:
		return VideoFrame{Src: src, Title: title}, nil
	case MediaKindNativeVideo:
		return NativeVideo{Src: src}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidMedia, kind)
	}
}

// Project - проект из витрины портфолио
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Media       Media     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
