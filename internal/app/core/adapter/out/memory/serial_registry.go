package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-account/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-account/pkg/log"
)

// DefaultQueueSize 輸送帶預設容量
const DefaultQueueSize = 1000

type registryResult struct {
	snapshot domain.Snapshot
	err      error
}

// registryRequest 請求包裝 channel，讓呼叫端可以等待結果
type registryRequest struct {
	apply  func(accounts map[uuid.UUID]*domain.Account) (domain.Snapshot, error)
	result chan registryResult
}

// SerialRegistry 單一寫入者的帳戶登錄
//
// accounts 只由 run loop 存取，因此不需要任何鎖。
// 呼叫端把請求放上輸送帶，再等結果 channel。
// 在 Start 之前送出的請求會停在輸送帶上，直到 loop 啟動。
type SerialRegistry struct {
	accounts map[uuid.UUID]*domain.Account
	// 輸送帶 負責接收請求
	requests chan *registryRequest
	// loop 結束後關閉
	done      chan struct{}
	startOnce sync.Once
	count     atomic.Int64
	// Pool 減少 GC 壓力
	requestPool sync.Pool
}

// NewSerialRegistry 建立一個新的 SerialRegistry 實例
//
// 參數:
//
//	queueSize: 輸送帶容量，<= 0 時使用 DefaultQueueSize
func NewSerialRegistry(queueSize int) *SerialRegistry {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &SerialRegistry{
		accounts: make(map[uuid.UUID]*domain.Account),
		requests: make(chan *registryRequest, queueSize),
		done:     make(chan struct{}),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &registryRequest{
					result: make(chan registryResult, 1),
				}
			},
		},
	}
}

// Start 啟動核心 loop (非同步)，ctx 取消後處理完剩餘請求即結束
func (s *SerialRegistry) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.run(ctx)
	})
}

// Done 在 loop 結束後關閉
func (s *SerialRegistry) Done() <-chan struct{} {
	return s.done
}

func (s *SerialRegistry) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			s.drain()
			log.Infow("serial registry stopped", "accounts", s.count.Load())
			return
		case req := <-s.requests:
			s.process(req)
		}
	}
}

func (s *SerialRegistry) drain() {
	for {
		select {
		case req := <-s.requests:
			s.process(req)
		default:
			return
		}
	}
}

func (s *SerialRegistry) process(req *registryRequest) {
	snapshot, err := req.apply(s.accounts)
	req.result <- registryResult{snapshot: snapshot, err: err}
}

// submit 放上輸送帶並等待結果
//
// Run Loop 結束後送出的請求回傳 domain.ErrRegistryClosed
func (s *SerialRegistry) submit(ctx context.Context, apply func(map[uuid.UUID]*domain.Account) (domain.Snapshot, error)) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	req := s.requestPool.Get().(*registryRequest)
	req.apply = apply

	select {
	case s.requests <- req:
	case <-ctx.Done():
		s.release(req)
		return domain.Snapshot{}, ctx.Err()
	case <-s.done:
		s.release(req)
		return domain.Snapshot{}, domain.ErrRegistryClosed
	}

	select {
	case res := <-req.result:
		s.release(req)
		return res.snapshot, res.err
	case <-s.done:
		// loop 結束前已處理的請求結果一定已在 channel 裡
		select {
		case res := <-req.result:
			s.release(req)
			return res.snapshot, res.err
		default:
			// 請求卡在輸送帶上不會再被處理，req 不放回 Pool
			return domain.Snapshot{}, domain.ErrRegistryClosed
		}
	}
}

func (s *SerialRegistry) release(req *registryRequest) {
	req.apply = nil
	s.requestPool.Put(req)
}

// Create 登錄新帳戶
func (s *SerialRegistry) Create(ctx context.Context, account *domain.Account) error {
	_, err := s.submit(ctx, func(accounts map[uuid.UUID]*domain.Account) (domain.Snapshot, error) {
		if _, ok := accounts[account.ID]; ok {
			return domain.Snapshot{}, domain.ErrAccountAlreadyExists
		}
		accounts[account.ID] = account
		s.count.Add(1)
		return account.Snapshot(), nil
	})
	return err
}

// Snapshot 取得帳戶目前狀態
func (s *SerialRegistry) Snapshot(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	return s.submit(ctx, func(accounts map[uuid.UUID]*domain.Account) (domain.Snapshot, error) {
		account, ok := accounts[id]
		if !ok {
			return domain.Snapshot{}, domain.ErrAccountNotFound
		}
		return account.Snapshot(), nil
	})
}

// Update 在 loop 內執行 fn
func (s *SerialRegistry) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (domain.Snapshot, error) {
	return s.submit(ctx, func(accounts map[uuid.UUID]*domain.Account) (domain.Snapshot, error) {
		account, ok := accounts[id]
		if !ok {
			return domain.Snapshot{}, domain.ErrAccountNotFound
		}
		err := fn(account)
		return account.Snapshot(), err
	})
}

// Len 帳戶數量
func (s *SerialRegistry) Len() int {
	return int(s.count.Load())
}

var _ usecase.Registry = (*SerialRegistry)(nil)
