package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shenikar/coverage_map/internal/models"
)

const videoFrameAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

var mediaTemplates = template.Must(template.New("media").Parse(`
{{define "model-viewer"}}<model-viewer src="{{.Src}}" alt="{{.Alt}}" auto-rotate camera-controls shadow-intensity="1" style="width: 100%; height: 400px"></model-viewer>{{end}}
{{define "youtube"}}<iframe src="{{.Src}}" title="{{.Title}}" frameborder="0" allow="{{.Allow}}" allowfullscreen class="w-full h-full aspect-video"></iframe>{{end}}
{{define "video"}}<video src="{{.Src}}" controls class="w-full h-full rounded-lg"></video>{{end}}
`))

// RenderMedia собирает HTML-фрагмент медиа-блока для модального окна проекта
func RenderMedia(media models.Media) (template.HTML, error) {
	var (
		name string
		data any
	)
	switch m := media.(type) {
	case models.ModelViewer:
		name, data = models.MediaKindModelViewer, m
	case models.VideoFrame:
		name, data = models.MediaKindVideoFrame, struct {
			models.VideoFrame
			Allow string
		}{m, videoFrameAllow}
	case models.NativeVideo:
		name, data = models.MediaKindNativeVideo, m
	case nil:
		return "", fmt.Errorf("%w: no media", models.ErrInvalidMedia)
	default:
		return "", fmt.Errorf("%w: unsupported media %T", models.ErrInvalidMedia, media)
	}

	var buf bytes.Buffer
	if err := mediaTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s media: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
