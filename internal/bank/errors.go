// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤屬於商業邏輯層級（非系統錯誤），由 console 層轉換成使用者可讀的訊息。
// 依性質分三類：使用者錯誤（可重試）、資料完整性錯誤（結束本次操作）、持久化錯誤。

package bank

import "errors"

var (
	// ── 使用者錯誤：顯示訊息後重新提示 ──

	// ErrExceedsMaximum 代表單筆提款超過上限（MaxWithdrawal）。
	ErrExceedsMaximum = errors.New("amount exceeds the withdrawal limit")

	// ErrInvalidAmount 代表金額為負數。
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds 代表餘額不足。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotMultipleOfTen 代表金額不是 10 的倍數。
	ErrNotMultipleOfTen = errors.New("amount must be a multiple of 10")

	// ErrTooSmall 代表金額無法以 50 與 20 面額湊出（例如 10、30）。
	ErrTooSmall = errors.New("amount cannot be dispensed with 50 and 20 notes")

	// ── 資料完整性錯誤 ──

	// ErrNotFound 代表帳戶檔案不存在。
	ErrNotFound = errors.New("account not found")

	// ErrCorrupt 代表帳戶檔案內容不合法（PIN 非 4 位數字、餘額無法解析或為負）。
	ErrCorrupt = errors.New("account record is corrupt")

	// ── 持久化錯誤 ──

	// ErrPersist 代表餘額寫回檔案失敗；原檔維持不變，記憶體中的餘額尚未同步。
	ErrPersist = errors.New("failed to persist account")
)
