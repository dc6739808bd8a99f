// Package render 提供粒子场绘图表面的实现
//
// EbitenSurface 把绘制调用落到一张离屏 ebiten.Image 上，画面在帧之间保留
// （与浏览器 canvas 相同），暂停期间屏幕上仍然显示最后一帧。
// RecordingSurface 只记录调用，供无窗口的校验工具和测试使用。
package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 基于离屏图像的绘图表面
type EbitenSurface struct {
	canvas        *ebiten.Image
	width, height int
	antialias     bool
}

// NewEbitenSurface 创建绘图表面，尺寸在第一次 Resize 时确定
func NewEbitenSurface(antialias bool) *EbitenSurface {
	return &EbitenSurface{antialias: antialias}
}

// Resize 按视口尺寸重建离屏图像
// 尺寸不变时保留现有内容；任一边为 0 时释放图像，之后的绘制调用被忽略
func (s *EbitenSurface) Resize(width, height int) {
	if width == s.width && height == s.height && (s.canvas != nil || width <= 0 || height <= 0) {
		return
	}

	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = width, height
	if width <= 0 || height <= 0 {
		return
	}

	s.canvas = ebiten.NewImage(width, height)
	log.Printf("[Render] Canvas resized to %dx%d", width, height)
}

// Clear 清空画布（透明）
func (s *EbitenSurface) Clear() {
	if s.canvas == nil {
		return
	}
	s.canvas.Clear()
}

// FillCircle 绘制实心圆
func (s *EbitenSurface) FillCircle(x, y, radius float64, clr color.Color) {
	if s.canvas == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(radius), clr, s.antialias)
}

// Size 返回当前画布尺寸
func (s *EbitenSurface) Size() (int, int) {
	return s.width, s.height
}

// Image 返回离屏画布，尚未分配时为 nil
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.canvas
}

// DrawTo 把画布合成到目标图像的左上角
func (s *EbitenSurface) DrawTo(dst *ebiten.Image) {
	if s.canvas == nil || dst == nil {
		return
	}
	dst.DrawImage(s.canvas, &ebiten.DrawImageOptions{})
}
