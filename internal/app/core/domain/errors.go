package domain

import "errors"

var (
	// ErrAmountOutOfRange 單筆金額不在 [0, Limit] 範圍內
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrAccountBlocked 帳戶已凍結，不可存提款
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrAccountNotBlocked 帳戶未凍結，不可調整信用額度
	ErrAccountNotBlocked = errors.New("account is not blocked")

	// ErrInsufficientCredit 餘額加信用額度不足
	ErrInsufficientCredit = errors.New("insufficient balance and credit")

	// ErrMaxCreditOutOfRange 信用額度不在 [-Limit, Limit] 範圍內
	ErrMaxCreditOutOfRange = errors.New("max credit out of range")

	// ErrCreditLimitExceeded 餘額低於 -maxCredit，無法解凍
	ErrCreditLimitExceeded = errors.New("balance below credit limit")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrRegistryClosed 帳戶登錄已關閉
	ErrRegistryClosed = errors.New("registry closed")
)
