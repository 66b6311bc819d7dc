// Package wasm 把扩展调用门的宿主侧绑定到 wazero 运行时
//
// 📋 **宿主函数**：
//
//	seal0.seal_call_chain_extension(func_id, input_ptr, input_len, output_ptr, output_len_ptr) -> u32
//
//   - func_id 高 16 位为扩展ID（必须与配置一致），低 16 位为选择子
//   - 输入从 guest 内存 [input_ptr, input_ptr+input_len) 读取
//   - *output_len_ptr 为输出缓冲区容量，返回时写回实际长度
//   - 返回值为宿主状态码
//
// 越界访问、输入超限或输出超出容量都会使 guest 陷入（trap），不产生状态码。
package wasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	extensionconfig "github.com/weisyn/assetbridge/internal/config/extension"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

const (
	// ModuleName 宿主模块名
	ModuleName = "seal0"
	// FunctionName 宿主函数名
	FunctionName = "seal_call_chain_extension"
)

var (
	ErrUnknownExtension = errors.New("unknown chain extension id")
	ErrInputTooLarge    = errors.New("extension input exceeds limit")
	ErrOutputOverflow   = errors.New("extension output exceeds buffer")
	ErrMemoryAccess     = errors.New("guest memory access out of bounds")
)

// Binding 宿主函数绑定
type Binding struct {
	host    ext.HostCaller
	options *extensionconfig.ExtensionOptions
	logger  log.Logger
}

// NewBinding 创建绑定，options 为 nil 时使用默认配置
func NewBinding(host ext.HostCaller, options *extensionconfig.ExtensionOptions, logger log.Logger) *Binding {
	if options == nil {
		options = extensionconfig.New(nil).GetOptions()
	}
	return &Binding{host: host, options: options, logger: logger}
}

// Instantiate 在运行时中注册并实例化 seal0 宿主模块
func (b *Binding) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	mod, err := r.NewHostModuleBuilder(ModuleName).
		NewFunctionBuilder().
		WithFunc(b.callChainExtension).
		Export(FunctionName).
		Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("宿主模块实例化失败: %w", err)
	}
	if b.logger != nil {
		b.logger.Debugf("注册宿主函数: %s.%s extension_id=%d", ModuleName, FunctionName, b.options.ExtensionID)
	}
	return mod, nil
}

// FuncID 组合扩展ID与选择子
func FuncID(extensionID uint16, selector types.Selector) uint32 {
	return uint32(extensionID)<<16 | uint32(selector)
}

func (b *Binding) callChainExtension(ctx context.Context, m api.Module, funcID, inputPtr, inputLen, outputPtr, outputLenPtr uint32) uint32 {
	status, err := b.dispatch(ctx, m.Memory(), funcID, inputPtr, inputLen, outputPtr, outputLenPtr)
	if err != nil {
		if b.logger != nil {
			b.logger.Errorf("扩展调用陷入: func_id=0x%08x err=%v", funcID, err)
		}
		// wazero 把宿主函数中的 panic 转为 guest 陷入
		panic(err)
	}
	return uint32(status)
}

// dispatch 读取 guest 输入、调用宿主、写回输出
func (b *Binding) dispatch(ctx context.Context, mem api.Memory, funcID, inputPtr, inputLen, outputPtr, outputLenPtr uint32) (types.StatusCode, error) {
	if mem == nil {
		return 0, fmt.Errorf("%w: guest has no memory", ErrMemoryAccess)
	}

	extensionID := uint16(funcID >> 16)
	if extensionID != b.options.ExtensionID {
		return 0, fmt.Errorf("%w: %d", ErrUnknownExtension, extensionID)
	}
	selector := types.Selector(funcID & 0xffff)

	if inputLen > b.options.MaxInputLen {
		return 0, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, inputLen, b.options.MaxInputLen)
	}
	view, ok := mem.Read(inputPtr, inputLen)
	if !ok {
		return 0, fmt.Errorf("%w: input [%d, +%d)", ErrMemoryAccess, inputPtr, inputLen)
	}
	// Read 返回的是 guest 内存视图，调用宿主前复制一份
	input := append([]byte(nil), view...)

	capacity, ok := mem.ReadUint32Le(outputLenPtr)
	if !ok {
		return 0, fmt.Errorf("%w: output_len_ptr %d", ErrMemoryAccess, outputLenPtr)
	}

	status, output := b.host.Call(ctx, selector, input)

	outLen := uint32(len(output))
	if outLen > capacity || outLen > b.options.MaxOutputLen {
		return 0, fmt.Errorf("%w: %d bytes, capacity %d", ErrOutputOverflow, outLen, capacity)
	}
	if outLen > 0 && !mem.Write(outputPtr, output) {
		return 0, fmt.Errorf("%w: output [%d, +%d)", ErrMemoryAccess, outputPtr, outLen)
	}
	if !mem.WriteUint32Le(outputLenPtr, outLen) {
		return 0, fmt.Errorf("%w: output_len_ptr %d", ErrMemoryAccess, outputLenPtr)
	}
	return status, nil
}
