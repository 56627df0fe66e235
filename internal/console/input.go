// internal/console/input.go
//
// 行輸入的讀取與解析。
// 數字輸入統一轉成帶標記的 Input（Valid / Invalid / Cancel），不使用保留整數值。
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind 為輸入解析結果的類別。
type Kind int

const (
	Invalid Kind = iota
	Valid
	Cancel
)

// Input 為一次數字輸入的解析結果；僅 Kind 為 Valid 時 N 有意義。
type Input struct {
	Kind Kind
	N    int
}

// cancelAmount 為金額提示中代表「取消」的輸入。
const cancelAmount = "-1"

// maxDigits 限制數字長度，避免溢位。
const maxDigits = 9

// ParseChoice 解析選單選項：前後空白去除後必須是純數字。
// 空行、非數字、多個欄位皆為 Invalid。
func ParseChoice(line string) Input {
	s := strings.TrimSpace(line)
	if !digits(s) {
		return Input{Kind: Invalid}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Input{Kind: Invalid}
	}
	return Input{Kind: Valid, N: n}
}

// ParseAmount 解析提款金額：允許一個前導負號，"-1" 為 Cancel。
// 其他負數為 Valid，交由 bank.Plan 判定為不合法金額。
func ParseAmount(line string) Input {
	s := strings.TrimSpace(line)
	if s == cancelAmount {
		return Input{Kind: Cancel}
	}
	neg := strings.HasPrefix(s, "-")
	in := ParseChoice(strings.TrimPrefix(s, "-"))
	if in.Kind == Valid && neg {
		in.N = -in.N
	}
	return in
}

func digits(s string) bool {
	if s == "" || len(s) > maxDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// prompter 負責輸出提示並讀取一行回覆。
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

// line 輸出 prompt 並讀取一行（不含換行）。輸入結束時回傳 io.EOF。
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		fmt.Fprintln(p.out)
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.sc.Text(), "\r"), nil
}

// choice 讀取一個選單選項。
func (p *prompter) choice(prompt string) (Input, error) {
	s, err := p.line(prompt)
	if err != nil {
		return Input{}, err
	}
	return ParseChoice(s), nil
}

// amount 讀取一個提款金額。
func (p *prompter) amount(prompt string) (Input, error) {
	s, err := p.line(prompt)
	if err != nil {
		return Input{}, err
	}
	return ParseAmount(s), nil
}
