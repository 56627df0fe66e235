// internal/storage/record.go
//
// 定義帳戶檔案 (account record) 的文字格式與編解碼：
//
//	第 1 行：PIN，恰好 4 個 ASCII 數字
//	第 2 行：餘額，非負小數，寫回時固定兩位小數（例如 123.40）
//	其後：任意內容，寫回時逐位元組保留
//
// 本層只處理格式，不涉入 I/O。
package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"atm/internal/bank"
)

// record 為帳戶檔案拆解後的三段內容。
// eol 為第二行的行尾（"\n"、"\r\n" 或檔尾無換行時為空），tail 為其後全部位元組。
type record struct {
	pinLine []byte
	balance []byte
	eol     []byte
	tail    []byte
}

// splitRecord 將檔案內容拆成 PIN 行、餘額行與其餘內容。
// 第一行必須以換行結束；第二行可為檔案最後一行。
func splitRecord(data []byte) (record, error) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return record{}, fmt.Errorf("%w: missing balance line", bank.ErrCorrupt)
	}
	r := record{pinLine: data[:i+1]}
	rest := data[i+1:]

	j := bytes.IndexByte(rest, '\n')
	if j < 0 {
		r.balance = rest
	} else {
		r.balance = rest[:j]
		r.eol = []byte{'\n'}
		r.tail = rest[j+1:]
	}
	if n := len(r.balance); n > 0 && r.balance[n-1] == '\r' {
		r.balance = r.balance[:n-1]
		r.eol = append([]byte{'\r'}, r.eol...)
	}
	return r, nil
}

// pin 回傳去除行尾後的 PIN 字串。
func (r record) pin() string {
	return string(bytes.TrimRight(r.pinLine, "\r\n"))
}

// decodeRecord 解析帳戶檔案並驗證內容。
func decodeRecord(number int64, data []byte) (bank.Account, error) {
	r, err := splitRecord(data)
	if err != nil {
		return bank.Account{}, err
	}
	pin := r.pin()
	if !bank.ValidPIN(pin) {
		return bank.Account{}, fmt.Errorf("%w: pin must be %d digits", bank.ErrCorrupt, bank.PINLength)
	}
	bal, err := parseBalance(string(r.balance))
	if err != nil {
		return bank.Account{}, err
	}
	return bank.Account{Number: number, PIN: pin, Balance: bal}, nil
}

// parseBalance 驗證餘額：合法十進位數、非負、最多兩位小數。
func parseBalance(s string) (decimal.Decimal, error) {
	if !plainDecimal(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: balance %q is not a decimal number", bank.ErrCorrupt, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: balance %q: %v", bank.ErrCorrupt, s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative balance %s", bank.ErrCorrupt, s)
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Decimal{}, fmt.Errorf("%w: balance %s has more than 2 decimals", bank.ErrCorrupt, s)
	}
	return d, nil
}

// plainDecimal 只接受 [-]digits[.digits]，排除指數、正號與空白。
func plainDecimal(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(frac)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// encodeBalance 以新餘額重組檔案內容，其餘位元組保持原樣。
func encodeBalance(data []byte, balance decimal.Decimal) ([]byte, error) {
	r, err := splitRecord(data)
	if err != nil {
		return nil, err
	}
	line := balance.StringFixed(2)
	out := make([]byte, 0, len(r.pinLine)+len(line)+len(r.eol)+len(r.tail))
	out = append(out, r.pinLine...)
	out = append(out, line...)
	out = append(out, r.eol...)
	out = append(out, r.tail...)
	return out, nil
}
