package particlefield

// simulationClock 累计模拟时间
//
// simTime 以“60Hz 下的一帧”为单位，只在活动帧中累加，暂停期间保持不变。
// 重置后（hasLast == false）的第一帧步长为零。
type simulationClock struct {
	simTime       float64
	lastTimestamp float64
	hasLast       bool
}

// resetLast 丢弃上一帧时间戳，下一帧按零步长计算
func (c *simulationClock) resetLast() {
	c.lastTimestamp = 0
	c.hasLast = false
}

// advance 根据帧时间戳推进模拟时间，返回实际应用的步长（毫秒）
// 步长被限制在 [0, maxDelta] 内，避免切回前台或滚动卡顿后粒子突然加速
func (c *simulationClock) advance(timestamp, maxDelta, referenceFrame float64) float64 {
	if !c.hasLast {
		c.lastTimestamp = timestamp
		c.hasLast = true
	}

	delta := timestamp - c.lastTimestamp
	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < 0 {
		delta = 0
	}
	c.lastTimestamp = timestamp

	c.simTime += delta / referenceFrame
	return delta
}
