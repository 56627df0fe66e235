// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 與提款 Log 結構，不含任何 console 或儲存細節。

package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// PINLength 為 PIN 碼固定長度。
const PINLength = 4

// Account represents an ATM account loaded from its record file.
type Account struct {
	Number  int64
	PIN     string
	Balance decimal.Decimal
	Logs    []Log
}

// Log represents a withdrawal made during the current session.
// 僅保存在記憶體，不寫回帳戶檔案。
type Log struct {
	Time     time.Time
	Amount   int
	Notes    Breakdown
	Balance  decimal.Decimal
	Shortcut bool
}

// ValidPIN 回報 s 是否為恰好 4 個 ASCII 數字。
// 不做數值轉換，保留前導零（"0099" 與 "99" 不同）。
func ValidPIN(s string) bool {
	if len(s) != PINLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MatchPIN 以字串相等比對輸入與帳戶 PIN。
func (a *Account) MatchPIN(input string) bool {
	return ValidPIN(input) && input == a.PIN
}
