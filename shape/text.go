package shape

import (
	"fmt"
	"sync"

	"github.com/gogpu/diagrams"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Text is a single-line label set in the Go Regular font.
//
// The label's baseline starts at Origin. U is the image of one font unit
// along the baseline and W the image of one font unit downwards; both
// start as the unit axes and change only through Transform.
type Text struct {
	Content string
	Size    float64
	Origin  diagrams.V2
	U, W    diagrams.V2
	Style   Style

	advance float64
	ascent  float64
	descent float64
}

var (
	goRegular = sync.OnceValues(func() (*opentype.Font, error) {
		return opentype.Parse(goregular.TTF)
	})

	facesMu sync.Mutex
	faces   = make(map[float64]font.Face)
)

// FontTTF returns the font data used to measure labels, so that
// backends can draw with the same metrics.
func FontTTF() []byte {
	return goregular.TTF
}

// NewText measures s at the given size and returns a label whose
// baseline starts at the origin. The content is normalised to NFC.
func NewText(s string, size float64) (Text, error) {
	if size <= 0 {
		return Text{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	s = norm.NFC.String(s)

	facesMu.Lock()
	defer facesMu.Unlock()

	face, err := faceAt(size)
	if err != nil {
		return Text{}, err
	}
	m := face.Metrics()
	return Text{
		Content: s,
		Size:    size,
		U:       diagrams.UnitX,
		W:       diagrams.UnitY,
		Style:   Style{Fill: DefaultStyle.Stroke},
		advance: fixedToFloat64(font.MeasureString(face, s)),
		ascent:  fixedToFloat64(m.Ascent),
		descent: fixedToFloat64(m.Descent),
	}, nil
}

// faceAt returns a cached face. facesMu must be held.
func faceAt(size float64) (font.Face, error) {
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("shape: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("shape: failed to create face: %w", err)
	}
	faces[size] = face
	return face, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// WithStyle returns a copy of t with style s.
func (t Text) WithStyle(s Style) Text {
	t.Style = s
	return t
}

// Advance returns the untransformed width of the label.
func (t Text) Advance() float64 { return t.advance }

// Ascent returns the untransformed height above the baseline.
func (t Text) Ascent() float64 { return t.ascent }

// Descent returns the untransformed depth below the baseline.
func (t Text) Descent() float64 { return t.descent }

// Centered returns a copy of t moved so that its line box is centered on
// the current origin.
func (t Text) Centered() Text {
	dx := -t.advance / 2
	dy := (t.ascent - t.descent) / 2
	t.Origin = t.Origin.Add(t.U.Scale(dx)).Add(t.W.Scale(dy))
	return t
}

// Transform maps the label through t.
func (t Text) Transform(tr diagrams.Transformation[diagrams.V2]) Text {
	t.Origin = tr.Apply(t.Origin)
	t.U = tr.ApplyVector(t.U)
	t.W = tr.ApplyVector(t.W)
	return t
}

// Corners returns the four corners of the label's line box.
func (t Text) Corners() [4]diagrams.V2 {
	at := func(x, y float64) diagrams.V2 {
		return t.Origin.Add(t.U.Scale(x)).Add(t.W.Scale(y))
	}
	return [4]diagrams.V2{
		at(0, -t.ascent),
		at(t.advance, -t.ascent),
		at(t.advance, t.descent),
		at(0, t.descent),
	}
}

// Bounds returns the bounding function of the label's line box.
func (t Text) Bounds() diagrams.Bounds[diagrams.V2] {
	c := t.Corners()
	return diagrams.PointBounds(c[:]...)
}
