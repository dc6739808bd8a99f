package particlefield

import (
	"image/color"
	"math"
)

// draw 清空表面并绘制所有粒子
func (s *Simulator) draw() {
	if s.surface == nil {
		return
	}

	s.surface.Clear()
	for i := range s.particles {
		p := &s.particles[i]
		s.surface.FillCircle(p.X, p.Y, p.Size, s.particleColor(p.Opacity))
	}
}

// particleColor 返回带透明度的粒子颜色（非预乘 alpha）
func (s *Simulator) particleColor(opacity float64) color.NRGBA {
	a := math.Round(opacity * 255)
	if a < 0 {
		a = 0
	} else if a > 255 {
		a = 255
	}
	return color.NRGBA{R: s.color.R, G: s.color.G, B: s.color.B, A: uint8(a)}
}
