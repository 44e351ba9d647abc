package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
)

// AccountUseCase 是核心業務邏輯層
type AccountUseCase struct {
	registry         Registry
	defaultMaxCredit int64
}

// Option 定義了 AccountUseCase 的配置選項函數
type Option func(*AccountUseCase)

// WithDefaultMaxCredit 設定新開帳戶的預設信用額度
func WithDefaultMaxCredit(maxCredit int64) Option {
	return func(c *AccountUseCase) {
		c.defaultMaxCredit = maxCredit
	}
}

func NewAccountUseCase(registry Registry, opts ...Option) *AccountUseCase {
	c := &AccountUseCase{
		registry: registry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenAccount 開立新帳戶
//
// 若有預設信用額度，依帳戶規則 凍結 -> 設定額度 -> 解凍，
// 任一步驟失敗則不登錄帳戶。
//
// 回傳:
//
//	domain.Snapshot: 新帳戶狀態
//	error: 額度不合法或登錄失敗
func (c *AccountUseCase) OpenAccount(ctx context.Context) (domain.Snapshot, error) {
	account := domain.NewAccount(uuid.New())
	if c.defaultMaxCredit != 0 {
		account.Block()
		if err := account.TrySetMaxCredit(c.defaultMaxCredit); err != nil {
			return domain.Snapshot{}, err
		}
		if err := account.TryUnblock(); err != nil {
			return domain.Snapshot{}, err
		}
	}
	if err := c.registry.Create(ctx, account); err != nil {
		return domain.Snapshot{}, err
	}
	return account.Snapshot(), nil
}

// GetAccount 取得帳戶狀態
func (c *AccountUseCase) GetAccount(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	return c.registry.Snapshot(ctx, id)
}

// Deposit 存款
func (c *AccountUseCase) Deposit(ctx context.Context, id uuid.UUID, amount int64) (domain.Snapshot, error) {
	return c.registry.Update(ctx, id, func(a *domain.Account) error {
		return a.TryDeposit(amount)
	})
}

// Withdraw 提款
func (c *AccountUseCase) Withdraw(ctx context.Context, id uuid.UUID, amount int64) (domain.Snapshot, error) {
	return c.registry.Update(ctx, id, func(a *domain.Account) error {
		return a.TryWithdraw(amount)
	})
}

// Block 凍結帳戶
func (c *AccountUseCase) Block(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	return c.registry.Update(ctx, id, func(a *domain.Account) error {
		a.Block()
		return nil
	})
}

// Unblock 解凍帳戶
func (c *AccountUseCase) Unblock(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	return c.registry.Update(ctx, id, func(a *domain.Account) error {
		return a.TryUnblock()
	})
}

// SetMaxCredit 調整信用額度 (帳戶須已凍結)
func (c *AccountUseCase) SetMaxCredit(ctx context.Context, id uuid.UUID, maxCredit int64) (domain.Snapshot, error) {
	return c.registry.Update(ctx, id, func(a *domain.Account) error {
		return a.TrySetMaxCredit(maxCredit)
	})
}
