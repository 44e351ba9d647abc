package grpc

import (
	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
)

// Empty 無參數請求
type Empty struct{}

// AccountRequest 指定帳戶的請求
type AccountRequest struct {
	AccountID string `json:"account_id"`
}

// AmountRequest 帶金額的請求 (存款、提款、信用額度)
type AmountRequest struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

// AccountView 回應中的帳戶狀態
type AccountView struct {
	ID        string `json:"id"`
	Balance   int64  `json:"balance"`
	MaxCredit int64  `json:"max_credit"`
	Blocked   bool   `json:"blocked"`
}

// AccountReply 所有 RPC 共用的回應
//
// Success=false 代表被帳戶規則拒絕 (Soft Failure)，Message 為原因，
// Account 為未變動的帳戶狀態。
type AccountReply struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Account *AccountView `json:"account,omitempty"`
}

func toView(snap domain.Snapshot) *AccountView {
	if snap.ID == uuid.Nil {
		return nil
	}
	return &AccountView{
		ID:        snap.ID.String(),
		Balance:   snap.Balance,
		MaxCredit: snap.MaxCredit,
		Blocked:   snap.Blocked,
	}
}
