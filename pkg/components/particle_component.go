package components

// ParticleComponent represents a single particle of the background field.
// It stores all the runtime state for an individual particle: position,
// velocity, visual properties and the sinusoidal drift parameters.
//
// Particles are created by the particle field when the drawing surface is
// (re)sized and mutated once per frame; the whole set is replaced on resize.
//
// This is a pure data component - it contains no methods.
type ParticleComponent struct {
	// Position (画布坐标)
	X float64
	Y float64

	// Size 半径（像素），生成后固定
	Size float64

	// Opacity 透明度 (0-1)，生成后固定
	Opacity float64

	// Velocity (每帧位移，按 60Hz 归一化)
	VelocityX float64
	VelocityY float64

	// Drift 水平摆动（雪花效果）
	// sway = sin(simTime * DriftSpeed + DriftOffset) * Drift
	Drift       float64 // 摆动幅度
	DriftSpeed  float64 // 摆动速度
	DriftOffset float64 // 相位偏移（弧度）
}
