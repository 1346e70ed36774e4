// Package clock 提供时间源实现
package clock

import (
	"sync"
	"time"

	infraClock "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"go.uber.org/fx"
)

// SystemClock 使用系统真实时间
type SystemClock struct{}

// NewSystemClock 创建系统时钟
func NewSystemClock() infraClock.Clock { return SystemClock{} }

func (SystemClock) Now() time.Time                  { return time.Now() }
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// MockClock 测试用时钟，时间可控
//
// 可被多个 goroutine 同时读取（批量推导）。
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

// NewMockClock 创建可控时钟
func NewMockClock(initial time.Time) *MockClock { return &MockClock{currentTime: initial} }

// Now 返回当前设定的时间
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

// Since 基于设定时间计算
func (c *MockClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// Advance 推进时间
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// Ensure接口实现满足 infraClock.Clock
var (
	_ infraClock.Clock = SystemClock{}
	_ infraClock.Clock = (*MockClock)(nil)
)

// Module 返回时钟模块，提供系统时钟
func Module() fx.Option {
	return fx.Module("clock",
		fx.Provide(NewSystemClock),
	)
}
