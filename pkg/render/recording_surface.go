package render

import (
	"image/color"
	"math"
)

// Circle 一次 FillCircle 调用
type Circle struct {
	X, Y, Radius float64
	Color        color.Color
}

// RecordingSurface 记录最近一帧绘制内容的表面
// 每次 Clear 开始新的一帧
type RecordingSurface struct {
	Width, Height int

	Resizes int
	Clears  int
	Circles []Circle
}

// NewRecordingSurface 创建记录表面
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

// Resize implements host.Surface.
func (s *RecordingSurface) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Resizes++
}

// Clear implements host.Surface.
func (s *RecordingSurface) Clear() {
	s.Clears++
	s.Circles = s.Circles[:0]
}

// FillCircle implements host.Surface.
func (s *RecordingSurface) FillCircle(x, y, radius float64, clr color.Color) {
	s.Circles = append(s.Circles, Circle{X: x, Y: y, Radius: radius, Color: clr})
}

// Bounds 返回本帧所有圆心的包围盒
// 没有绘制任何圆时 ok 为 false
func (s *RecordingSurface) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(s.Circles) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range s.Circles {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY, true
}
