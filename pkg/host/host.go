// Package host 定义粒子场与其宿主环境之间的契约
//
// 宿主相当于浏览器窗口：提供绘图表面、视口尺寸、滚动位置、可见性，
// 派发输入事件，并提供帧回调（requestAnimationFrame）和定时器（setTimeout）。
// 所有回调都在同一个执行上下文中串行执行，不存在并发。
package host

import (
	"fmt"
	"image/color"
	"time"
)

// EventKind 宿主事件类型
type EventKind int

const (
	EventResize EventKind = iota
	EventPointerMove
	EventPointerLeave
	EventScroll
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventVisibilityChange
)

var eventKindNames = [...]string{
	EventResize:           "resize",
	EventPointerMove:      "pointermove",
	EventPointerLeave:     "pointerleave",
	EventScroll:           "scroll",
	EventTouchStart:       "touchstart",
	EventTouchMove:        "touchmove",
	EventTouchEnd:         "touchend",
	EventVisibilityChange: "visibilitychange",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Point 表示一个触摸点或指针位置（视口坐标）
type Point struct {
	X, Y float64
}

// Event 宿主派发的事件
type Event struct {
	Kind EventKind
	// X, Y 指针位置，仅对 EventPointerMove 有意义
	X, Y float64
	// Touches 当前仍处于按下状态的触摸点
	// touchstart/touchmove 至少包含一个点；touchend 时为剩余的触摸点
	Touches []Point
}

// ID 类型，均从 1 开始分配，0 表示无效
type (
	ListenerID uint64
	FrameID    uint64
	TimerID    uint64
)

// Listener 事件监听函数
type Listener func(Event)

// FrameCallback 帧回调，timestamp 为宿主时钟的毫秒数
type FrameCallback func(timestamp float64)

// Surface 2D 绘图表面
type Surface interface {
	// Resize 调整表面尺寸以匹配视口
	Resize(width, height int)
	// Clear 清空整个表面
	Clear()
	// FillCircle 在 (x, y) 绘制半径为 radius 的实心圆
	FillCircle(x, y, radius float64, clr color.Color)
}

// Host 宿主环境
type Host interface {
	// Surface 返回绘图表面；无法获取绘图上下文时返回 nil
	Surface() Surface
	// Viewport 返回当前视口尺寸（像素）
	Viewport() (width, height int)
	// ScrollY 返回页面当前的垂直滚动偏移
	ScrollY() float64
	// Hidden 返回宿主当前是否处于后台
	Hidden() bool

	AddListener(kind EventKind, fn Listener) ListenerID
	RemoveListener(id ListenerID)

	RequestFrame(fn FrameCallback) FrameID
	CancelFrame(id FrameID)

	SetTimeout(delay time.Duration, fn func()) TimerID
	ClearTimeout(id TimerID)
}
