package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-account/internal/app/core/usecase"
)

// MutexRegistry 是一個使用 RWMutex 實現的帳戶登錄
//
// 結構:
//
//	accounts: 帳戶資料 Map
//	mu: 保護 accounts 以及帳戶內容
type MutexRegistry struct {
	accounts map[uuid.UUID]*domain.Account
	mu       sync.RWMutex
}

// NewMutexRegistry 建立一個新的 MutexRegistry 實例
func NewMutexRegistry() *MutexRegistry {
	return &MutexRegistry{
		accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create 登錄新帳戶
//
// 參數:
//
//	ctx: 上下文
//	account: 新帳戶
//
// 回傳:
//
//	error: domain.ErrAccountAlreadyExists
func (m *MutexRegistry) Create(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; ok {
		return domain.ErrAccountAlreadyExists
	}
	m.accounts[account.ID] = account
	return nil
}

// Snapshot 取得帳戶目前狀態
func (m *MutexRegistry) Snapshot(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[id]
	if !ok {
		return domain.Snapshot{}, domain.ErrAccountNotFound
	}
	return account.Snapshot(), nil
}

// Update 持有寫鎖執行 fn
//
// 參數:
//
//	ctx: 上下文
//	id: 帳戶 ID
//	fn: 帳戶操作，回傳錯誤代表被規則拒絕 (狀態不變)
//
// 回傳:
//
//	domain.Snapshot: 執行後狀態
//	error: fn 的錯誤或 domain.ErrAccountNotFound
func (m *MutexRegistry) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return domain.Snapshot{}, domain.ErrAccountNotFound
	}
	err := fn(account)
	return account.Snapshot(), err
}

// Len 帳戶數量
func (m *MutexRegistry) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts)
}

var _ usecase.Registry = (*MutexRegistry)(nil)
