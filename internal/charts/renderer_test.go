package charts

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	for _, kind := range []Kind{KindLine, KindBar} {
		t.Run(string(kind), func(t *testing.T) {
			a, err := r.Render(Series{
				Key:    KeyKD,
				Title:  "K/D Ratio",
				YAxis:  "K/D Ratio",
				Kind:   kind,
				Labels: []string{"2025-01", "2025-02", "2025-03"},
				Values: []float64{0.8, 1.25, 0},
			})
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(a.ID, "kd_"))
			assert.Equal(t, KeyKD, a.Key)

			img, err := png.Decode(bytes.NewReader(a.PNG))
			require.NoError(t, err)
			assert.Equal(t, 800, img.Bounds().Dx())
			assert.Equal(t, 400, img.Bounds().Dy())
		})
	}
}

func TestRenderer_RenderRejectsEmpty(t *testing.T) {
	r, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Render(Series{Key: KeyKD})
	assert.Error(t, err)
}

func TestRenderer_RenderAll(t *testing.T) {
	r, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	artifacts, err := r.RenderAll(nil)
	require.NoError(t, err)
	assert.Empty(t, artifacts)

	artifacts, err = r.RenderAll([]Series{
		{Key: KeyWinRate, Kind: KindBar, Labels: []string{"2025-01"}, Values: []float64{50}},
		{Key: KeyKillsPerMatch, Kind: KindLine},
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, KeyWinRate, artifacts[0].Key)
	assert.NotEqual(t, artifacts[0].ID, "")
}
