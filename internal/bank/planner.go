// internal/bank/planner.go
//
// 提款面額規劃：將整數金額拆成 50 與 20 兩種紙鈔的張數。
// 為純函式，不修改任何帳戶狀態；扣款由 Account.Withdraw 負責。

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxWithdrawal 為單筆提款上限。
	MaxWithdrawal = 1000

	// NoteFifty 與 NoteTwenty 為僅有的兩種紙鈔面額。
	NoteFifty  = 50
	NoteTwenty = 20
)

// Breakdown 為一筆提款的面額組合。
type Breakdown struct {
	Fifties  int
	Twenties int
}

// Total 回傳紙鈔總額。
func (b Breakdown) Total() int {
	return b.Fifties*NoteFifty + b.Twenties*NoteTwenty
}

// Empty 回報組合是否一張紙鈔都沒有。
func (b Breakdown) Empty() bool {
	return b.Fifties == 0 && b.Twenties == 0
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%d x %d, %d x %d", b.Fifties, NoteFifty, b.Twenties, NoteTwenty)
}

// Plan 計算 amount 的面額組合。
//
// 檢核順序：上限 → 負數 → 餘額 → 10 的倍數。
// 通過後先取最多張 50，若餘數不能被 20 整除，則從 fifties-1 往下遞減到 0，
// 取第一個使剩餘金額可被 20 整除的張數。找不到解或結果為零張時回傳 ErrTooSmall。
func Plan(amount int, available decimal.Decimal) (Breakdown, error) {
	switch {
	case amount > MaxWithdrawal:
		return Breakdown{}, ErrExceedsMaximum
	case amount < 0:
		return Breakdown{}, ErrInvalidAmount
	case decimal.NewFromInt(int64(amount)).GreaterThan(available):
		return Breakdown{}, ErrInsufficientFunds
	case amount%10 != 0:
		return Breakdown{}, ErrNotMultipleOfTen
	}

	b, ok := decompose(amount)
	if !ok || b.Empty() {
		return Breakdown{}, ErrTooSmall
	}
	return b, nil
}

// decompose 為不含業務檢核的面額拆解。
func decompose(amount int) (Breakdown, bool) {
	fifties := amount / NoteFifty
	rem := amount % NoteFifty
	if rem%NoteTwenty == 0 {
		return Breakdown{Fifties: fifties, Twenties: rem / NoteTwenty}, true
	}
	for i := fifties - 1; i >= 0; i-- {
		left := amount - i*NoteFifty
		if left%NoteTwenty == 0 {
			return Breakdown{Fifties: i, Twenties: left / NoteTwenty}, true
		}
	}
	return Breakdown{}, false
}
