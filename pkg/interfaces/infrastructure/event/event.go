// Package event 定义进程内事件总线接口
//
// 扩展调用完成后由宿主分发器发布 CallRecord，
// 调用日志（journal）等组件通过订阅获取调用记录。
package event

// EventType 事件类型
type EventType string

// 事件主题
const (
	// EventTypeExtensionCall 一次链扩展调用完成（参数：*types.CallRecord）
	EventTypeExtensionCall EventType = "extension:call"
)

// EventBus 事件总线接口
type EventBus interface {
	// Subscribe 订阅事件
	Subscribe(eventType EventType, handler interface{}) error
	// SubscribeAsync 异步订阅事件
	SubscribeAsync(eventType EventType, handler interface{}, transactional bool) error
	// Publish 发布事件
	Publish(eventType EventType, args ...interface{})
	// Unsubscribe 取消订阅
	Unsubscribe(eventType EventType, handler interface{}) error
	// HasCallback 是否存在订阅者
	HasCallback(eventType EventType) bool
	// WaitAsync 等待异步处理完成
	WaitAsync()
}
