// internal/bank/bank.go

// Package bank 定義核心商業邏輯：PIN 比對、提款面額規劃、扣款與提款日誌。
// 金額以 decimal.Decimal 表示，避免浮點誤差；餘額固定兩位小數。
// 本層為單一執行緒使用，不含任何鎖。
package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdraw 提款：以 Plan 規劃面額並扣款。
// 任何檢核失敗都不會改變餘額，也不會寫入日誌。
func (a *Account) Withdraw(amount int) (Breakdown, error) {
	b, err := Plan(amount, a.Balance)
	if err != nil {
		return Breakdown{}, err
	}
	a.debit(b, false)
	return b, nil
}

// Dispense 以固定面額組合扣款，供 20 / 40 快捷選項使用。
// 只檢查餘額是否足夠；組合本身由呼叫端保證合法。
func (a *Account) Dispense(b Breakdown) error {
	if b.Empty() {
		return ErrTooSmall
	}
	if decimal.NewFromInt(int64(b.Total())).GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.debit(b, true)
	return nil
}

// debit 於同一步驟內更新餘額與追加日誌，確保兩者一致。
func (a *Account) debit(b Breakdown, shortcut bool) {
	amount := b.Total()
	a.Balance = a.Balance.Sub(decimal.NewFromInt(int64(amount)))
	a.Logs = append(a.Logs, Log{
		Time:     time.Now(),
		Amount:   amount,
		Notes:    b,
		Balance:  a.Balance,
		Shortcut: shortcut,
	})
}

// Shortcut 回傳快捷金額對應的面額組合（僅 20 與 40）。
// 結果與 Plan 對相同金額的規劃一致。
func Shortcut(amount int) (Breakdown, bool) {
	switch amount {
	case 20:
		return Breakdown{Twenties: 1}, true
	case 40:
		return Breakdown{Twenties: 2}, true
	}
	return Breakdown{}, false
}
