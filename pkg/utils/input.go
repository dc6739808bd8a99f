// Package utils 提供通用工具函数
package utils

import (
	"math"
	"sort"

	"github.com/graysable/site/pkg/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchPoint 一个活动触摸点
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y int
}

// InputSnapshot 存储当前帧的原始输入状态
// 与 ebiten 解耦，便于在测试中构造
type InputSnapshot struct {
	// 鼠标位置（移动设备上忽略）
	CursorX, CursorY int
	HasCursor        bool

	// 当前仍按下的触摸点，按 ID 排序
	Touches []TouchPoint
	// 本帧新按下 / 刚抬起的触摸数量
	JustPressed  int
	JustReleased int

	// 滚轮垂直偏移，正值表示向上滚动
	WheelY float64

	// 窗口是否处于前台
	Focused bool
}

// ReadInputSnapshot 读取当前帧的输入状态
// 应在 ebiten 的 Update 中调用
func ReadInputSnapshot() InputSnapshot {
	snap := InputSnapshot{Focused: ebiten.IsFocused()}

	if !IsMobile() {
		snap.CursorX, snap.CursorY = ebiten.CursorPosition()
		snap.HasCursor = true
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		snap.Touches = append(snap.Touches, TouchPoint{ID: id, X: x, Y: y})
	}
	sort.Slice(snap.Touches, func(i, j int) bool { return snap.Touches[i].ID < snap.Touches[j].ID })

	snap.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil))
	snap.JustReleased = len(inpututil.AppendJustReleasedTouchIDs(nil))

	_, snap.WheelY = ebiten.Wheel()
	return snap
}

// InputSink 接收浏览器风格输入事件的一方（通常是 *host.Loop）
type InputSink interface {
	MovePointer(x, y float64)
	LeavePointer()
	Scroll(y float64)
	TouchStart(touches ...host.Point)
	TouchMove(touches ...host.Point)
	TouchEnd(remaining ...host.Point)
	SetHidden(hidden bool)
}

// InputTracker 把逐帧轮询的 ebiten 输入转换为浏览器风格的事件
//
// 同时维护一个虚拟页面的滚动位置：窗口相当于一个高度为 pageHeight 的页面上的视口，
// 滚轮和单指拖动会滚动页面。
type InputTracker struct {
	width, height int
	pageHeight    float64
	wheelStep     float64

	scrollY float64

	cursorInside   bool
	cursorX        int
	cursorY        int
	touches        []TouchPoint
	touchScrolling bool
}

// NewInputTracker 创建输入跟踪器
// 参数：
//
//	pageHeight - 虚拟页面总高度（像素）
//	wheelStep - 滚轮每格滚动的像素数
func NewInputTracker(pageHeight, wheelStep float64) *InputTracker {
	return &InputTracker{pageHeight: pageHeight, wheelStep: wheelStep}
}

// SetViewport 更新视口尺寸，并把滚动位置限制在新的可滚动范围内
func (t *InputTracker) SetViewport(width, height int) {
	t.width, t.height = width, height
	t.scrollY = t.clampScroll(t.scrollY)
}

// ScrollY 返回虚拟页面的当前滚动位置
func (t *InputTracker) ScrollY() float64 {
	return t.scrollY
}

// maxScroll 返回最大滚动距离
func (t *InputTracker) maxScroll() float64 {
	return math.Max(0, t.pageHeight-float64(t.height))
}

func (t *InputTracker) clampScroll(y float64) float64 {
	return math.Max(0, math.Min(y, t.maxScroll()))
}

// Update 比较本帧与上一帧的输入，向 sink 派发对应事件
func (t *InputTracker) Update(snap InputSnapshot, sink InputSink) {
	sink.SetHidden(!snap.Focused)

	t.updateTouches(snap, sink)
	if len(snap.Touches) == 0 && len(t.touches) == 0 {
		t.updateCursor(snap, sink)
	}
	t.updateWheel(snap, sink)

	t.touches = append(t.touches[:0], snap.Touches...)
}

func (t *InputTracker) updateTouches(snap InputSnapshot, sink InputSink) {
	current := touchPoints(snap.Touches)

	if snap.JustPressed > 0 && len(current) > 0 {
		sink.TouchStart(current...)
		t.touchScrolling = len(current) == 1
		return
	}

	if snap.JustReleased > 0 || (len(current) < len(t.touches)) {
		sink.TouchEnd(current...)
		t.touchScrolling = false
		return
	}

	if len(current) == 0 || !touchesMoved(t.touches, snap.Touches) {
		return
	}

	sink.TouchMove(current...)

	// 单指拖动滚动页面（手指向上移动，页面向下滚动）
	if t.touchScrolling && len(t.touches) > 0 {
		dy := float64(t.touches[0].Y - snap.Touches[0].Y)
		if next := t.clampScroll(t.scrollY + dy); next != t.scrollY {
			t.scrollY = next
			sink.Scroll(t.scrollY)
		}
	}
}

func (t *InputTracker) updateCursor(snap InputSnapshot, sink InputSink) {
	inside := snap.HasCursor &&
		snap.CursorX >= 0 && snap.CursorX < t.width &&
		snap.CursorY >= 0 && snap.CursorY < t.height

	switch {
	case inside && (!t.cursorInside || snap.CursorX != t.cursorX || snap.CursorY != t.cursorY):
		sink.MovePointer(float64(snap.CursorX), float64(snap.CursorY))
	case !inside && t.cursorInside:
		sink.LeavePointer()
	}

	t.cursorInside = inside
	t.cursorX, t.cursorY = snap.CursorX, snap.CursorY
}

// updateWheel 滚轮输入总是派发 scroll 事件，即使已在页面顶部或底部
// （相当于带回弹效果的触控板过度滚动）
func (t *InputTracker) updateWheel(snap InputSnapshot, sink InputSink) {
	if snap.WheelY == 0 {
		return
	}
	t.scrollY = t.clampScroll(t.scrollY - snap.WheelY*t.wheelStep)
	sink.Scroll(t.scrollY)
}

func touchPoints(touches []TouchPoint) []host.Point {
	if len(touches) == 0 {
		return nil
	}
	points := make([]host.Point, len(touches))
	for i, tp := range touches {
		points[i] = host.Point{X: float64(tp.X), Y: float64(tp.Y)}
	}
	return points
}

func touchesMoved(prev, cur []TouchPoint) bool {
	if len(prev) != len(cur) {
		return true
	}
	for i := range cur {
		if prev[i] != cur[i] {
			return true
		}
	}
	return false
}
