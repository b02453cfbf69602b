package symbol

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultSize is the area used when a shape is asked for a non-positive size.
const DefaultSize = 64

// ErrUnknownShape is returned by Lookup for names not in the registry.
var ErrUnknownShape = errors.New("unknown symbol shape")

// Shape produces SVG path data for a glyph of the given area.
type Shape interface {
	Path(size float64) string
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc func(size float64) string

// Path implements Shape.
func (f ShapeFunc) Path(size float64) string {
	return f(size)
}

// Registry maps shape names to generators. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]Shape
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Shape)}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry holding the built-in shapes.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register("circle", ShapeFunc(circle))
		defaultRegistry.Register("cross", ShapeFunc(cross))
		defaultRegistry.Register("diamond", ShapeFunc(diamond))
		defaultRegistry.Register("square", ShapeFunc(square))
		defaultRegistry.Register("star", ShapeFunc(star))
		defaultRegistry.Register("triangle", ShapeFunc(triangle))
		defaultRegistry.Register("wye", ShapeFunc(wye))
	})
	return defaultRegistry
}

// Register adds or replaces a shape. Names are case-insensitive.
func (r *Registry) Register(name string, shape Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes[strings.ToLower(name)] = shape
}

// Lookup returns the shape registered under name.
func (r *Registry) Lookup(name string) (Shape, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shape, ok := r.shapes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return shape, nil
}

// Names returns the registered shape names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pathBuilder accumulates SVG path commands with compact number formatting.
type pathBuilder struct {
	b strings.Builder
}

func (p *pathBuilder) moveTo(x, y float64) {
	p.b.WriteString("M" + num(x) + "," + num(y))
}

func (p *pathBuilder) lineTo(x, y float64) {
	p.b.WriteString("L" + num(x) + "," + num(y))
}

func (p *pathBuilder) arc(r, x, y float64) {
	p.b.WriteString("A" + num(r) + "," + num(r) + ",0,1,1," + num(x) + "," + num(y))
}

func (p *pathBuilder) close() string {
	p.b.WriteString("Z")
	return p.b.String()
}

// num formats v rounded to three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func area(size float64) float64 {
	if size <= 0 || math.IsNaN(size) {
		return DefaultSize
	}
	return size
}

func circle(size float64) string {
	r := math.Sqrt(area(size) / math.Pi)
	var p pathBuilder
	p.moveTo(r, 0)
	p.arc(r, -r, 0)
	p.arc(r, r, 0)
	return p.close()
}

func square(size float64) string {
	w := math.Sqrt(area(size))
	x := -w / 2
	var p pathBuilder
	p.moveTo(x, x)
	p.lineTo(x+w, x)
	p.lineTo(x+w, x+w)
	p.lineTo(x, x+w)
	return p.close()
}

func cross(size float64) string {
	r := math.Sqrt(area(size)/5) / 2
	var p pathBuilder
	p.moveTo(-3*r, -r)
	p.lineTo(-r, -r)
	p.lineTo(-r, -3*r)
	p.lineTo(r, -3*r)
	p.lineTo(r, -r)
	p.lineTo(3*r, -r)
	p.lineTo(3*r, r)
	p.lineTo(r, r)
	p.lineTo(r, 3*r)
	p.lineTo(-r, 3*r)
	p.lineTo(-r, r)
	p.lineTo(-3*r, r)
	return p.close()
}

var (
	tan30   = math.Sqrt(1.0 / 3)
	tan30x2 = tan30 * 2
)

func diamond(size float64) string {
	y := math.Sqrt(area(size) / tan30x2)
	x := y * tan30
	var p pathBuilder
	p.moveTo(0, -y)
	p.lineTo(x, 0)
	p.lineTo(0, y)
	p.lineTo(-x, 0)
	return p.close()
}

var sqrt3 = math.Sqrt(3)

func triangle(size float64) string {
	y := -math.Sqrt(area(size) / (sqrt3 * 3))
	var p pathBuilder
	p.moveTo(0, y*2)
	p.lineTo(-sqrt3*y, -y)
	p.lineTo(sqrt3*y, -y)
	return p.close()
}

const starArea = 0.89081309152928522810

var (
	starRatio = math.Sin(math.Pi/10) / math.Sin(7*math.Pi/10)
	starX     = math.Sin(2*math.Pi/10) * starRatio
	starY     = -math.Cos(2*math.Pi/10) * starRatio
)

func star(size float64) string {
	r := math.Sqrt(area(size) * starArea)
	x := starX * r
	y := starY * r
	var p pathBuilder
	p.moveTo(0, -r)
	p.lineTo(x, y)
	for i := 1; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		c, s := math.Cos(a), math.Sin(a)
		p.lineTo(s*r, -c*r)
		p.lineTo(c*x-s*y, s*x+c*y)
	}
	return p.close()
}

var (
	wyeC = -0.5
	wyeS = math.Sqrt(3) / 2
	wyeK = 1 / math.Sqrt(12)
	wyeA = (wyeK/2 + 1) * 3
)

func wye(size float64) string {
	r := math.Sqrt(area(size) / wyeA)
	x0, y0 := r/2, r*wyeK
	x1, y1 := x0, r*wyeK+r
	x2, y2 := -x1, y1
	c, s := wyeC, wyeS
	var p pathBuilder
	p.moveTo(x0, y0)
	p.lineTo(x1, y1)
	p.lineTo(x2, y2)
	p.lineTo(c*x0-s*y0, s*x0+c*y0)
	p.lineTo(c*x1-s*y1, s*x1+c*y1)
	p.lineTo(c*x2-s*y2, s*x2+c*y2)
	p.lineTo(c*x0+s*y0, c*y0-s*x0)
	p.lineTo(c*x1+s*y1, c*y1-s*x1)
	p.lineTo(c*x2+s*y2, c*y2-s*x2)
	return p.close()
}
