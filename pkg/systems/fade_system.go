package systems

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeSystem 管理每个格子在默认色与选中色之间的渐变
//
// 每个格子有一个 0.0~1.0 的混合系数：0 为默认色，1 为选中色。
// 格子被翻转时调用 Trigger 启动一个补间，Update 每帧推进所有补间。
type FadeSystem struct {
	duration float32
	levels   []float32
	tweens   []*gween.Tween
}

// NewFadeSystem 创建渐变系统
//
// 参数:
//   - cellCount: 格子总数（行优先下标）
//   - duration: 渐变时长（秒），<= 0 时 Trigger 立即跳到目标值
func NewFadeSystem(cellCount int, duration float64) *FadeSystem {
	return &FadeSystem{
		duration: float32(duration),
		levels:   make([]float32, cellCount),
		tweens:   make([]*gween.Tween, cellCount),
	}
}

// Trigger 让格子 index 渐变到 selected 对应的目标值
// 从当前混合系数开始，正在进行的补间会被替换
func (s *FadeSystem) Trigger(index int, selected bool) {
	target := float32(0)
	if selected {
		target = 1
	}

	if s.duration <= 0 {
		s.levels[index] = target
		s.tweens[index] = nil
		return
	}
	s.tweens[index] = gween.New(s.levels[index], target, s.duration, ease.OutQuad)
}

// Update 推进所有补间
func (s *FadeSystem) Update(dt float64) {
	for i, tw := range s.tweens {
		if tw == nil {
			continue
		}
		level, finished := tw.Update(float32(dt))
		s.levels[i] = level
		if finished {
			s.tweens[i] = nil
		}
	}
}

// Level 返回格子 index 当前的混合系数
func (s *FadeSystem) Level(index int) float32 {
	return s.levels[index]
}

// Animating 是否还有未完成的补间
func (s *FadeSystem) Animating() bool {
	for _, tw := range s.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}

// Blend 按混合系数 t 在 from 与 to 之间线性插值
func Blend(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: lerp(from.A, to.A),
	}
}
