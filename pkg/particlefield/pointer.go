package particlefield

// pointerState 最近一次交互位置（鼠标或触摸）
// 没有活动指针时位于远离画布的哨兵位置，排斥效果自然失效
type pointerState struct {
	x, y                 float64
	sentinelX, sentinelY float64
}

func newPointerState(sentinelX, sentinelY float64) pointerState {
	return pointerState{x: sentinelX, y: sentinelY, sentinelX: sentinelX, sentinelY: sentinelY}
}

func (p *pointerState) set(x, y float64) {
	p.x, p.y = x, y
}

func (p *pointerState) reset() {
	p.x, p.y = p.sentinelX, p.sentinelY
}

func (p *pointerState) active() bool {
	return p.x != p.sentinelX || p.y != p.sentinelY
}
