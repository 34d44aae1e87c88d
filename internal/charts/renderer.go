package charts

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Artifact is a rendered chart ready to be served or embedded. PNG is
// base64 in JSON.
type Artifact struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
	PNG   []byte `json:"png"`
}

type Style struct {
	Width        int
	Height       int
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	GridLines    int
	Colors       map[string][3]float64
}

func DefaultStyle() Style {
	return Style{
		Width:        800,
		Height:       400,
		MarginLeft:   70,
		MarginRight:  25,
		MarginTop:    45,
		MarginBottom: 65,
		GridLines:    5,
		Colors: map[string][3]float64{
			KeyKD:            {0.0, 0.0, 1.0},
			KeyWinRate:       {0.0, 0.5, 0.0},
			KeyKillsPerMatch: {1.0, 0.0, 0.0},
		},
	}
}

type Renderer struct {
	style   Style
	regular *truetype.Font
	bold    *truetype.Font
	logger  zerolog.Logger
}

func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Renderer{style: DefaultStyle(), regular: regular, bold: bold, logger: logger}, nil
}

// RenderAll renders every non-empty series. No series means no artifacts.
func (r *Renderer) RenderAll(series []Series) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(series))
	for _, s := range series {
		if s.Len() == 0 {
			continue
		}
		a, err := r.Render(s)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, *a)
	}
	return artifacts, nil
}

func (r *Renderer) Render(s Series) (*Artifact, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("series %q has no points", s.Key)
	}
	if len(s.Values) != len(s.Labels) {
		return nil, fmt.Errorf("series %q has %d labels but %d values", s.Key, len(s.Labels), len(s.Values))
	}

	start := time.Now()
	defer func() {
		r.logger.Debug().
			Str("chart", s.Key).
			Int("points", s.Len()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("chart rendered")
	}()

	id, err := gonanoid.New(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart id: %w", err)
	}

	st := r.style
	dc := gg.NewContext(st.Width, st.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotX := st.MarginLeft
	plotY := st.MarginTop
	plotW := float64(st.Width) - st.MarginLeft - st.MarginRight
	plotH := float64(st.Height) - st.MarginTop - st.MarginBottom
	yMax := niceMax(s.Values)

	toY := func(v float64) float64 {
		return plotY + plotH - (v/yMax)*plotH
	}
	slot := plotW / float64(s.Len())
	toX := func(i int) float64 {
		return plotX + slot*(float64(i)+0.5)
	}

	dc.SetFontFace(r.face(r.regular, 11))
	for i := 0; i <= st.GridLines; i++ {
		v := yMax * float64(i) / float64(st.GridLines)
		y := toY(v)
		dc.SetRGB(0.9, 0.9, 0.92)
		dc.SetLineWidth(1)
		dc.DrawLine(plotX, y, plotX+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.35, 0.35, 0.4)
		dc.DrawStringAnchored(formatTick(v), plotX-8, y, 1, 0.35)
	}

	color := st.Colors[s.Key]
	dc.SetRGB(color[0], color[1], color[2])
	switch s.Kind {
	case KindBar:
		barW := slot * 0.6
		for i, v := range s.Values {
			top := toY(v)
			dc.DrawRectangle(toX(i)-barW/2, top, barW, plotY+plotH-top)
			dc.Fill()
		}
	default:
		dc.SetLineWidth(3)
		for i, v := range s.Values {
			if i == 0 {
				dc.MoveTo(toX(i), toY(v))
			} else {
				dc.LineTo(toX(i), toY(v))
			}
		}
		dc.Stroke()
		for i, v := range s.Values {
			dc.DrawCircle(toX(i), toY(v), 4)
			dc.Fill()
		}
	}

	dc.SetRGB(0.2, 0.2, 0.25)
	dc.SetLineWidth(1.5)
	dc.DrawLine(plotX, plotY+plotH, plotX+plotW, plotY+plotH)
	dc.DrawLine(plotX, plotY, plotX, plotY+plotH)
	dc.Stroke()

	for i, label := range s.Labels {
		dc.DrawStringAnchored(label, toX(i), plotY+plotH+16, 0.5, 0.5)
	}

	dc.SetFontFace(r.face(r.bold, 12))
	dc.DrawStringAnchored("Month", plotX+plotW/2, float64(st.Height)-18, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 18, plotY+plotH/2)
	dc.DrawStringAnchored(s.YAxis, 18, plotY+plotH/2, 0.5, 0.5)
	dc.Pop()

	dc.SetFontFace(r.face(r.bold, 15))
	dc.DrawStringAnchored(s.Title, float64(st.Width)/2, st.MarginTop/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart %q: %w", s.Key, err)
	}

	return &Artifact{
		ID:    s.Key + "_" + id,
		Key:   s.Key,
		Title: s.Title,
		Kind:  s.Kind,
		PNG:   buf.Bytes(),
	}, nil
}

// face builds a new face per render; truetype faces keep a glyph cache and
// are not safe for concurrent use.
func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func niceMax(values []float64) float64 {
	top := 0.0
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	if top == 0 {
		return 1
	}
	return top * 1.1
}

func formatTick(v float64) string {
	if v >= 10 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
