package domain

import "github.com/google/uuid"

// Limit 單筆存提款金額與信用額度絕對值的上限
const Limit int64 = 1_000_000

// Account 單一帳戶
//
// 零值即為新帳戶: 餘額 0、未凍結、信用額度 0。
// Account 本身不做任何同步，共用時須由外部互斥 (見 usecase.Registry)。
type Account struct {
	ID        uuid.UUID
	balance   int64
	maxCredit int64
	blocked   bool
}

// NewAccount 建立一個指定 ID 的新帳戶
func NewAccount(id uuid.UUID) *Account {
	return &Account{ID: id}
}

// Balance 目前餘額
func (a *Account) Balance() int64 {
	return a.balance
}

// MaxCredit 目前信用額度
func (a *Account) MaxCredit() int64 {
	return a.maxCredit
}

// IsBlocked 是否凍結
func (a *Account) IsBlocked() bool {
	return a.blocked
}

// Deposit 存款，成功回傳 true
func (a *Account) Deposit(amount int64) bool {
	return a.TryDeposit(amount) == nil
}

// TryDeposit 存款，失敗時回傳被哪條規則拒絕，狀態不變
//
// 參數:
//
//	amount: 存款金額，須在 [0, Limit]
//
// 回傳:
//
//	error: ErrAmountOutOfRange / ErrAccountBlocked
func (a *Account) TryDeposit(amount int64) error {
	if !validAmount(amount) {
		return ErrAmountOutOfRange
	}
	if a.blocked {
		return ErrAccountBlocked
	}
	a.balance += amount
	return nil
}

// Withdraw 提款，成功回傳 true
func (a *Account) Withdraw(amount int64) bool {
	return a.TryWithdraw(amount) == nil
}

// TryWithdraw 提款，餘額最低可到 -maxCredit
//
// 參數:
//
//	amount: 提款金額，須在 [0, Limit]
//
// 回傳:
//
//	error: ErrAmountOutOfRange / ErrAccountBlocked / ErrInsufficientCredit
func (a *Account) TryWithdraw(amount int64) error {
	if !validAmount(amount) {
		return ErrAmountOutOfRange
	}
	if a.blocked {
		return ErrAccountBlocked
	}
	if amount > a.balance+a.maxCredit {
		return ErrInsufficientCredit
	}
	a.balance -= amount
	return nil
}

// Block 凍結帳戶 (可重複呼叫)
func (a *Account) Block() {
	a.blocked = true
}

// Unblock 解凍，成功回傳 true
func (a *Account) Unblock() bool {
	return a.TryUnblock() == nil
}

// TryUnblock 只有 balance >= -maxCredit 時才能解凍，否則維持凍結
func (a *Account) TryUnblock() error {
	if a.balance < -a.maxCredit {
		return ErrCreditLimitExceeded
	}
	a.blocked = false
	return nil
}

// SetMaxCredit 設定信用額度，成功回傳 true
func (a *Account) SetMaxCredit(value int64) bool {
	return a.TrySetMaxCredit(value) == nil
}

// TrySetMaxCredit 設定信用額度，只允許在凍結狀態下調整
// 存入的值即為參數本身 (不取負號)
//
// 參數:
//
//	value: 新額度，須在 [-Limit, Limit]
//
// 回傳:
//
//	error: ErrAccountNotBlocked / ErrMaxCreditOutOfRange
func (a *Account) TrySetMaxCredit(value int64) error {
	if !a.blocked {
		return ErrAccountNotBlocked
	}
	if !ValidMaxCredit(value) {
		return ErrMaxCreditOutOfRange
	}
	a.maxCredit = value
	return nil
}

// Snapshot 回傳目前狀態的值拷貝
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		ID:        a.ID,
		Balance:   a.balance,
		MaxCredit: a.maxCredit,
		Blocked:   a.blocked,
	}
}

// ValidMaxCredit 信用額度是否在 [-Limit, Limit]
func ValidMaxCredit(value int64) bool {
	return value >= -Limit && value <= Limit
}

func validAmount(amount int64) bool {
	return amount >= 0 && amount <= Limit
}

// Snapshot 帳戶狀態的唯讀拷貝，跨層傳遞時使用，避免外部持有帳戶本身
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	Balance   int64     `json:"balance"`
	MaxCredit int64     `json:"max_credit"`
	Blocked   bool      `json:"blocked"`
}
