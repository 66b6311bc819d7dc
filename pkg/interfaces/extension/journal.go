package extension

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

// Journal 扩展调用记录存储
//
// 记录按追加顺序保存，List 按相同顺序返回。
type Journal interface {
	Append(ctx context.Context, record *types.CallRecord) error
	List(ctx context.Context) ([]*types.CallRecord, error)
	Close() error
}
