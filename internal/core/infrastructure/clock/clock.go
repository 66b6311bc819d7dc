// Package clock 提供时间源实现
package clock

import (
	"sync"
	"time"

	"go.uber.org/fx"

	infraClock "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/clock"
)

// SystemClock 使用系统真实时间
type SystemClock struct{}

func NewSystemClock() infraClock.Clock { return SystemClock{} }

func (SystemClock) Now() time.Time                  { return time.Now() }
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// ManualClock 手动推进的时钟
//
// 每次 Now 之后按 step 自动前进，step 为 0 时时间保持不动直到 Advance。
type ManualClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

var _ infraClock.Clock = (*ManualClock)(nil)

// NewManualClock 创建手动时钟
func NewManualClock(initial time.Time, step time.Duration) *ManualClock {
	return &ManualClock{current: initial, step: step}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

func (c *ManualClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Sub(t)
}

// Advance 推进时间
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Module 提供系统时钟
func Module() fx.Option {
	return fx.Module("clock",
		fx.Provide(NewSystemClock),
	)
}
