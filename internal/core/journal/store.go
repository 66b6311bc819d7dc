// Package journal 提供扩展调用记录的持久化、录制与回放
//
// 📋 **组件**：
//   - Store：基于 BadgerDB 的追加式调用记录存储（磁盘或内存）
//   - Recorder：订阅事件总线，把每条 CallRecord 写入 Store
//   - ReplayHost：按记录顺序应答扩展调用，用于离线复现
package journal

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v3"

	journalconfig "github.com/weisyn/assetbridge/internal/config/journal"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

var (
	recordPrefix = []byte("call/")
	sequenceKey  = []byte("seq/call")
)

// ErrClosed 存储已关闭
var ErrClosed = errors.New("journal closed")

// Store 基于 BadgerDB 的调用记录存储
type Store struct {
	db     *badgerdb.DB
	seq    *badgerdb.Sequence
	logger log.Logger

	mu     sync.Mutex
	closed bool
}

var _ ext.Journal = (*Store)(nil)

// Open 按配置打开存储
func Open(config *journalconfig.Config, logger log.Logger) (*Store, error) {
	var opts badgerdb.Options
	if config.IsInMemory() {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		dir := config.GetDir()
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("创建调用日志目录失败: %w", err)
		}
		opts = badgerdb.DefaultOptions(dir)
		opts.SyncWrites = config.IsSyncWritesEnabled()
	}
	opts.Logger = nil
	if logger != nil {
		opts.Logger = newBadgerLogger(logger)
	}
	// 调用日志数据量小，收紧缓存与 value log 占用
	opts.BlockCacheSize = 8 << 20
	opts.IndexCacheSize = 8 << 20
	opts.NumMemtables = 2
	opts.ValueLogFileSize = 64 << 20

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("打开调用日志失败: %w", err)
	}

	seq, err := db.GetSequence(sequenceKey, 64)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("获取调用日志序列失败: %w", err)
	}

	if logger != nil {
		if config.IsInMemory() {
			logger.Info("调用日志使用内存存储")
		} else {
			logger.Infof("调用日志目录: %s", config.GetDir())
		}
	}
	return &Store{db: db, seq: seq, logger: logger}, nil
}

func recordKey(n uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], n)
	return key
}

// Append 追加一条调用记录
func (s *Store) Append(_ context.Context, record *types.CallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	n, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("分配记录序号失败: %w", err)
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("序列化调用记录失败: %w", err)
	}
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(recordKey(n), value)
	})
}

// List 按追加顺序返回全部调用记录
func (s *Store) List(ctx context.Context) ([]*types.CallRecord, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	var records []*types.CallRecord
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = recordPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var record types.CallRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return fmt.Errorf("解析调用记录失败 key=%x: %w", it.Item().Key(), err)
				}
				records = append(records, &record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close 释放序列并关闭数据库
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.seq.Release(); err != nil && s.logger != nil {
		s.logger.Warnf("释放调用日志序列失败: %v", err)
	}
	return s.db.Close()
}

// badgerLogger BadgerDB日志适配器
type badgerLogger struct {
	logger log.Logger
}

func newBadgerLogger(logger log.Logger) *badgerLogger {
	return &badgerLogger{logger: logger}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf("[BadgerDB] "+format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf("[BadgerDB] "+format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf("[BadgerDB] "+format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf("[BadgerDB] "+format, args...)
}
