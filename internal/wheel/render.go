package wheel

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"lucky_wheel/internal/model"
)

const (
	rimInset       = 40
	hubRadius      = 60
	labelMaxRunes  = 15
	labelKeepRunes = 12
	labelInset     = 25
)

type segmentColor struct {
	bg   string
	text string
}

var palette = []segmentColor{
	{bg: "#FF9A8B", text: "#7B241C"},
	{bg: "#8DC4FA", text: "#1A5276"},
	{bg: "#FFCC80", text: "#7E5109"},
	{bg: "#A5D6A7", text: "#145A32"},
	{bg: "#CE93D8", text: "#4A235A"},
	{bg: "#90CAF9", text: "#1B4F72"},
	{bg: "#FFAB91", text: "#943126"},
	{bg: "#B39DDB", text: "#512E5F"},
	{bg: "#FFF59D", text: "#7D6608"},
	{bg: "#80DEEA", text: "#0E6251"},
}

func colorsFor(i int) segmentColor {
	return palette[i%len(palette)]
}

// Renderer рисует колесо на холсте заданного размера
type Renderer struct {
	Width    int
	Height   int
	FontSize float64
	FontPath string
}

// Render рисует колесо, повёрнутое на angle. spinning добавляет подсветку указателя.
func (r Renderer) Render(prizes []model.Prize, angle float64, spinning bool) (*gg.Context, error) {
	dc := gg.NewContext(r.Width, r.Height)
	if r.FontPath != "" {
		if err := dc.LoadFontFace(r.FontPath, r.FontSize+2); err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	}

	cx := float64(r.Width) / 2
	cy := float64(r.Height) / 2
	radius := math.Min(cx, cy) - rimInset

	// Внешний обод
	dc.DrawCircle(cx, cy, radius+15)
	dc.SetHexColor("#6C6C6C")
	dc.Fill()

	// Градиентное кольцо
	ring := gg.NewLinearGradient(0, 0, float64(r.Width), float64(r.Height))
	ring.AddColorStop(0, hexColor("#f9a8d4"))
	ring.AddColorStop(1, hexColor("#a855f7"))
	dc.DrawCircle(cx, cy, radius+10)
	dc.SetFillStyle(ring)
	dc.Fill()

	dc.DrawCircle(cx, cy, radius)
	dc.SetColor(color.White)
	dc.Fill()

	arc := SegmentWidth(len(prizes))
	for i, prize := range prizes {
		start := angle + float64(i)*arc
		c := colorsFor(i)

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, start, start+arc)
		dc.ClosePath()

		fill := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
		fill.AddColorStop(0, color.White)
		fill.AddColorStop(0.3, hexColor(c.bg))
		fill.AddColorStop(1, hexColor(c.bg))
		dc.SetFillStyle(fill)
		dc.FillPreserve()

		dc.SetRGBA(1, 1, 1, 0.7)
		dc.SetLineWidth(1)
		dc.Stroke()

		r.drawLabel(dc, prize.Name, c, cx, cy, radius, start+arc/2)
	}

	// Ступица
	hub := gg.NewRadialGradient(cx, cy, 10, cx, cy, hubRadius)
	hub.AddColorStop(0, color.White)
	hub.AddColorStop(1, hexColor("#f1f5f9"))
	dc.DrawCircle(cx, cy, hubRadius)
	dc.SetFillStyle(hub)
	dc.FillPreserve()
	dc.SetHexColor("#e5e7eb")
	dc.SetLineWidth(2)
	dc.Stroke()

	drawPointer(dc, cx, cy, radius, spinning)

	return dc, nil
}

// PNG рисует колесо и кодирует его в PNG
func (r Renderer) PNG(w io.Writer, prizes []model.Prize, angle float64, spinning bool) error {
	dc, err := r.Render(prizes, angle, spinning)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (r Renderer) drawLabel(dc *gg.Context, name string, c segmentColor, cx, cy, radius, mid float64) {
	dc.Push()
	defer dc.Pop()

	dc.Translate(cx, cy)
	dc.Rotate(mid)
	dc.SetHexColor(contrastText(c.bg))

	textRadius := radius - labelInset
	label := truncateLabel(name)

	// Нижняя половина переворачивается, чтобы подпись читалась
	if isUpsideDown(mid) {
		dc.Rotate(math.Pi)
		dc.DrawStringAnchored(label, -textRadius, 0, 0, 0.5)
		return
	}
	dc.DrawStringAnchored(label, textRadius, 0, 1, 0.5)
}

func drawPointer(dc *gg.Context, cx, cy, radius float64, spinning bool) {
	tip := cx + radius + 5
	back := cx + radius + 25

	if spinning {
		dc.MoveTo(tip-3, cy)
		dc.LineTo(back+3, cy-18)
		dc.LineTo(back+3, cy+18)
		dc.ClosePath()
		dc.SetRGBA(239.0/255, 68.0/255, 68.0/255, 0.4)
		dc.Fill()
	}

	dc.MoveTo(tip, cy)
	dc.LineTo(back, cy-15)
	dc.LineTo(back, cy+15)
	dc.ClosePath()

	grad := gg.NewLinearGradient(tip, cy, back, cy)
	grad.AddColorStop(0, hexColor("#ef4444"))
	grad.AddColorStop(1, hexColor("#b91c1c"))
	dc.SetFillStyle(grad)
	dc.FillPreserve()

	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func truncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) > labelMaxRunes {
		return string(runes[:labelKeepRunes]) + "..."
	}
	return name
}

func isUpsideDown(mid float64) bool {
	a := Normalize(mid)
	return a > math.Pi/2 && a < 3*math.Pi/2
}

// contrastText выбирает чёрный или белый текст по яркости фона (YIQ)
func contrastText(bg string) string {
	c := hexColor(bg)
	brightness := (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
	if brightness > 128 {
		return "#000000"
	}
	return "#FFFFFF"
}

func hexColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
