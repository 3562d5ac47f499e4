package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/coverage_map/internal/models"
)

func TestRenderMedia(t *testing.T) {
	cases := []struct {
		name  string
		media models.Media
		want  []string
	}{
		{
			name:  "model viewer",
			media: models.ModelViewer{Src: "https://cdn.example.com/a.glb", Alt: "Arm <v2>"},
			want:  []string{"<model-viewer", `src="https://cdn.example.com/a.glb"`, `alt="Arm &lt;v2&gt;"`, "auto-rotate", "camera-controls", `shadow-intensity="1"`},
		},
		{
			name:  "video frame",
			media: models.VideoFrame{Src: "https://www.youtube.com/embed/xyz", Title: "Talk"},
			want:  []string{"<iframe", `title="Talk"`, "allowfullscreen", "picture-in-picture"},
		},
		{
			name:  "native video",
			media: models.NativeVideo{Src: "https://cdn.example.com/v.mp4"},
			want:  []string{"<video", "controls"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			html, err := RenderMedia(tc.media)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, string(html), w)
			}
		})
	}
}

func TestRenderMedia_UnsafeURL(t *testing.T) {
	html, err := RenderMedia(models.NativeVideo{Src: "javascript:alert(1)"})

	require.NoError(t, err)
	assert.NotContains(t, string(html), "javascript:")
}

func TestRenderMedia_Nil(t *testing.T) {
	_, err := RenderMedia(nil)
	assert.ErrorIs(t, err, models.ErrInvalidMedia)
}

func TestNewMedia(t *testing.T) {
	m, err := models.NewMedia(models.MediaKindVideoFrame, "https://www.youtube.com/embed/xyz", "Talk")
	require.NoError(t, err)
	assert.Equal(t, models.VideoFrame{Src: "https://www.youtube.com/embed/xyz", Title: "Talk"}, m)

	_, err = models.NewMedia("hologram", "x", "y")
	assert.ErrorIs(t, err, models.ErrInvalidMedia)

	_, err = models.NewMedia(models.MediaKindNativeVideo, "", "y")
	assert.ErrorIs(t, err, models.ErrInvalidMedia)
}
