package host

import (
	"time"
)

// Loop 是一个单线程协作式宿主实现
//
// Loop 模拟浏览器的事件队列：事件监听器、帧请求和定时器都挂在同一个
// 逻辑时钟上，由驱动方（ebiten 游戏循环、命令行工具或测试）推进。
// Loop 不创建 goroutine，也不是并发安全的。
type Loop struct {
	now time.Duration

	width, height int
	scrollY       float64
	hidden        bool
	surface       Surface

	nextID uint64

	listeners     map[ListenerID]*listenerEntry
	listenerOrder []ListenerID

	frames     map[FrameID]FrameCallback
	frameOrder []FrameID
	// running 当前帧正在执行的回调批次，允许在帧内取消同批次的回调
	running map[FrameID]FrameCallback

	timers map[TimerID]*timerEntry
}

type listenerEntry struct {
	kind EventKind
	fn   Listener
}

type timerEntry struct {
	id       TimerID
	deadline time.Duration
	fn       func()
}

// Stats 宿主上尚未释放的资源数量
type Stats struct {
	Listeners int
	Frames    int
	Timers    int
}

// Idle 返回是否没有任何挂起的监听器、帧请求或定时器
func (s Stats) Idle() bool {
	return s.Listeners == 0 && s.Frames == 0 && s.Timers == 0
}

// NewLoop 创建一个宿主循环
// surface 可以为 nil，表示无法获取绘图上下文
func NewLoop(width, height int, surface Surface) *Loop {
	return &Loop{
		width:     width,
		height:    height,
		surface:   surface,
		listeners: make(map[ListenerID]*listenerEntry),
		frames:    make(map[FrameID]FrameCallback),
		timers:    make(map[TimerID]*timerEntry),
	}
}

func (l *Loop) allocID() uint64 {
	l.nextID++
	return l.nextID
}

// Surface implements Host.
func (l *Loop) Surface() Surface {
	return l.surface
}

// Viewport implements Host.
func (l *Loop) Viewport() (int, int) {
	return l.width, l.height
}

// ScrollY implements Host.
func (l *Loop) ScrollY() float64 {
	return l.scrollY
}

// Hidden implements Host.
func (l *Loop) Hidden() bool {
	return l.hidden
}

// Now 返回宿主逻辑时钟
func (l *Loop) Now() time.Duration {
	return l.now
}

// AddListener implements Host.
func (l *Loop) AddListener(kind EventKind, fn Listener) ListenerID {
	id := ListenerID(l.allocID())
	l.listeners[id] = &listenerEntry{kind: kind, fn: fn}
	l.listenerOrder = append(l.listenerOrder, id)
	return id
}

// RemoveListener implements Host. Unknown ids are ignored.
func (l *Loop) RemoveListener(id ListenerID) {
	if _, ok := l.listeners[id]; !ok {
		return
	}
	delete(l.listeners, id)
	for i, lid := range l.listenerOrder {
		if lid == id {
			l.listenerOrder = append(l.listenerOrder[:i], l.listenerOrder[i+1:]...)
			break
		}
	}
}

// RequestFrame implements Host.
// 帧内请求的回调在下一帧执行
func (l *Loop) RequestFrame(fn FrameCallback) FrameID {
	id := FrameID(l.allocID())
	l.frames[id] = fn
	l.frameOrder = append(l.frameOrder, id)
	return id
}

// CancelFrame implements Host. Unknown ids are ignored.
func (l *Loop) CancelFrame(id FrameID) {
	if _, ok := l.running[id]; ok {
		delete(l.running, id)
		return
	}
	if _, ok := l.frames[id]; !ok {
		return
	}
	delete(l.frames, id)
	for i, fid := range l.frameOrder {
		if fid == id {
			l.frameOrder = append(l.frameOrder[:i], l.frameOrder[i+1:]...)
			break
		}
	}
}

// SetTimeout implements Host.
func (l *Loop) SetTimeout(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	id := TimerID(l.allocID())
	l.timers[id] = &timerEntry{id: id, deadline: l.now + delay, fn: fn}
	return id
}

// ClearTimeout implements Host. Unknown or already fired ids are ignored.
func (l *Loop) ClearTimeout(id TimerID) {
	delete(l.timers, id)
}

// Stats 返回当前挂起的资源数量
func (l *Loop) Stats() Stats {
	return Stats{
		Listeners: len(l.listeners),
		Frames:    len(l.frames),
		Timers:    len(l.timers),
	}
}

// Advance 推进逻辑时钟到 now，按截止时间顺序触发所有到期的定时器
// 截止时间相同的定时器按创建顺序触发；now 早于当前时钟时不回退
func (l *Loop) Advance(now time.Duration) {
	for {
		next := l.nextDueTimer(now)
		if next == nil {
			break
		}
		delete(l.timers, next.id)
		if next.deadline > l.now {
			l.now = next.deadline
		}
		next.fn()
	}
	if now > l.now {
		l.now = now
	}
}

func (l *Loop) nextDueTimer(now time.Duration) *timerEntry {
	var best *timerEntry
	for _, t := range l.timers {
		if t.deadline > now {
			continue
		}
		if best == nil || t.deadline < best.deadline || (t.deadline == best.deadline && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Frame 推进时钟到 now 并执行本帧之前请求的所有帧回调
// 返回执行的回调数量
func (l *Loop) Frame(now time.Duration) int {
	l.Advance(now)

	if len(l.frameOrder) == 0 {
		return 0
	}

	order := l.frameOrder
	l.running = l.frames
	l.frameOrder = nil
	l.frames = make(map[FrameID]FrameCallback)

	timestamp := float64(l.now) / float64(time.Millisecond)
	ran := 0
	for _, id := range order {
		fn, ok := l.running[id]
		if !ok {
			continue
		}
		delete(l.running, id)
		fn(timestamp)
		ran++
	}
	l.running = nil
	return ran
}

// Dispatch 将事件派发给该类型的所有监听器（按注册顺序）
// 派发过程中被移除的监听器不再被调用
func (l *Loop) Dispatch(ev Event) {
	ids := make([]ListenerID, 0, len(l.listenerOrder))
	for _, id := range l.listenerOrder {
		if entry := l.listeners[id]; entry != nil && entry.kind == ev.Kind {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		entry, ok := l.listeners[id]
		if !ok {
			continue
		}
		entry.fn(ev)
	}
}

// Resize 更新视口尺寸并派发 resize 事件
func (l *Loop) Resize(width, height int) {
	l.width, l.height = width, height
	l.Dispatch(Event{Kind: EventResize})
}

// MovePointer 派发指针移动事件
func (l *Loop) MovePointer(x, y float64) {
	l.Dispatch(Event{Kind: EventPointerMove, X: x, Y: y})
}

// LeavePointer 派发指针离开事件
func (l *Loop) LeavePointer() {
	l.Dispatch(Event{Kind: EventPointerLeave})
}

// Scroll 更新滚动位置并派发 scroll 事件
func (l *Loop) Scroll(y float64) {
	l.scrollY = y
	l.Dispatch(Event{Kind: EventScroll})
}

// TouchStart 派发触摸开始事件
func (l *Loop) TouchStart(touches ...Point) {
	l.Dispatch(Event{Kind: EventTouchStart, Touches: touches})
}

// TouchMove 派发触摸移动事件
func (l *Loop) TouchMove(touches ...Point) {
	l.Dispatch(Event{Kind: EventTouchMove, Touches: touches})
}

// TouchEnd 派发触摸结束事件，remaining 为仍在屏幕上的触摸点
func (l *Loop) TouchEnd(remaining ...Point) {
	l.Dispatch(Event{Kind: EventTouchEnd, Touches: remaining})
}

// SetHidden 更新可见性，状态变化时派发 visibilitychange 事件
func (l *Loop) SetHidden(hidden bool) {
	if l.hidden == hidden {
		return
	}
	l.hidden = hidden
	l.Dispatch(Event{Kind: EventVisibilityChange})
}
