package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
)

// Registry 是帳戶登錄的介面
//
// 帳戶本身不做同步，所有對同一帳戶的存取都由 Registry 序列化。
type Registry interface {
	// Create 登錄新帳戶，ID 重複時回傳 domain.ErrAccountAlreadyExists
	Create(ctx context.Context, account *domain.Account) error
	// Snapshot 取得帳戶目前狀態
	Snapshot(ctx context.Context, id uuid.UUID) (domain.Snapshot, error)
	// Update 在獨佔該帳戶的情況下執行 fn，回傳執行後的狀態
	// fn 回傳錯誤時帳戶狀態不變，仍回傳當下的狀態
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (domain.Snapshot, error)
}
