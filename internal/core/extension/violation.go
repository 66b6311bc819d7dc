package extension

import (
	"errors"
	"fmt"

	"github.com/weisyn/assetbridge/pkg/types"
)

// ViolationKind 协议违例类型
type ViolationKind uint8

const (
	UnknownStatus    ViolationKind = iota + 1 // 宿主返回未公开的状态码
	MalformedPayload                          // 成功载荷无法按返回形态解码
	UnknownSelector                           // 宿主收到目录外的选择子
	MalformedArgs                             // 宿主无法按参数元组解码输入
	HostDiverged                              // 回放时调用序列与记录不一致
)

var violationNames = map[ViolationKind]string{
	UnknownStatus:    "UnknownStatus",
	MalformedPayload: "MalformedPayload",
	UnknownSelector:  "UnknownSelector",
	MalformedArgs:    "MalformedArgs",
	HostDiverged:     "HostDiverged",
}

// String 返回违例类型名
func (k ViolationKind) String() string {
	if name, ok := violationNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ViolationKind(%d)", uint8(k))
}

// ProtocolViolation 调用边界两侧对协议理解不一致
//
// 违例不属于错误目录，也不作为类型化结果返回：它通过 panic 中止当前调用，
// 只有调用栈最外层（CLI、场景执行器、测试）才用 Recover 把它转为 error。
type ProtocolViolation struct {
	Kind      ViolationKind
	Operation string
	Selector  types.Selector
	Status    types.StatusCode
	Cause     error
}

// Error 实现 error 接口
func (v *ProtocolViolation) Error() string {
	msg := "psp22 extension protocol violation: " + v.Kind.String()
	if v.Operation != "" {
		msg += fmt.Sprintf(" op=%s", v.Operation)
	}
	msg += fmt.Sprintf(" selector=%s", v.Selector)
	if v.Kind == UnknownStatus {
		msg += fmt.Sprintf(" status=%d", uint32(v.Status))
	}
	if v.Cause != nil {
		msg += ": " + v.Cause.Error()
	}
	return msg
}

// Unwrap 返回底层原因
func (v *ProtocolViolation) Unwrap() error {
	return v.Cause
}

// Abort 以协议违例中止当前调用
func Abort(v *ProtocolViolation) {
	panic(v)
}

// Recover 在调用边界把协议违例转为 error
//
// 必须直接以 defer 调用：
//
//	defer extension.Recover(&err)
//
// 其他 panic 原样继续传播。
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if v, ok := r.(*ProtocolViolation); ok {
		if errp != nil {
			*errp = v
		}
		return
	}
	panic(r)
}

// AsProtocolViolation 从错误链中提取协议违例
func AsProtocolViolation(err error) (*ProtocolViolation, bool) {
	var v *ProtocolViolation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// IsProtocolViolation 错误链中是否包含协议违例
func IsProtocolViolation(err error) bool {
	_, ok := AsProtocolViolation(err)
	return ok
}
