// internal/console/response.go
//
// 本檔負責統一 console 輸出格式。
// 錯誤訊息由 writeErr 集中轉換：領域錯誤 → 使用者可讀的一行訊息。
package console

import (
	"errors"
	"fmt"
	"io"

	"atm/internal/bank"
)

var (
	errInvalidChoice = errors.New("no such option")
	errInvalidInput  = errors.New("invalid input")
	errPINFormat     = errors.New("pin must be 4 digits")
	errWrongPIN      = errors.New("wrong pin")
)

// message 將錯誤轉為顯示給使用者的文字。
func message(err error) string {
	switch {
	case errors.Is(err, errInvalidChoice):
		return "No such option!"
	case errors.Is(err, errInvalidInput):
		return "Invalid input, enter a number."
	case errors.Is(err, errPINFormat):
		return fmt.Sprintf("PIN must be %d digits!", bank.PINLength)
	case errors.Is(err, errWrongPIN):
		return "Wrong PIN. Try again."
	case errors.Is(err, bank.ErrExceedsMaximum):
		return fmt.Sprintf("The maximum withdrawal is %d.", bank.MaxWithdrawal)
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, bank.ErrNotMultipleOfTen):
		return "The amount must be a multiple of 10."
	case errors.Is(err, bank.ErrTooSmall):
		return fmt.Sprintf("The amount cannot be paid in %d and %d notes.", bank.NoteFifty, bank.NoteTwenty)
	case errors.Is(err, bank.ErrNotFound):
		return "Account not found."
	case errors.Is(err, bank.ErrCorrupt):
		return "The account record is damaged. Contact your bank."
	case errors.Is(err, bank.ErrPersist):
		return "Saving the new balance failed."
	default:
		return err.Error()
	}
}

// writeErr 輸出一行錯誤訊息。
func writeErr(w io.Writer, err error) {
	fmt.Fprintf(w, "- %s\n", message(err))
}

// writeSeparator 於每個畫面開始前輸出分隔線。
func writeSeparator(w io.Writer) {
	fmt.Fprint(w, "\n---\n")
}

// writeMenu 輸出標題與選項，options 依序為 "鍵 - 說明"。
func writeMenu(w io.Writer, title string, options ...string) {
	if title != "" {
		fmt.Fprintln(w, title)
	}
	for _, o := range options {
		fmt.Fprintf(w, "  %s\n", o)
	}
	fmt.Fprintln(w)
}

// writeNotes 輸出提款的面額組合。
func writeNotes(w io.Writer, b bank.Breakdown) {
	fmt.Fprintf(w, "Dispensing %d:\n", b.Total())
	if b.Fifties > 0 {
		fmt.Fprintf(w, "  %d x %d\n", b.Fifties, bank.NoteFifty)
	}
	if b.Twenties > 0 {
		fmt.Fprintf(w, "  %d x %d\n", b.Twenties, bank.NoteTwenty)
	}
}
