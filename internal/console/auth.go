// internal/console/auth.go
//
// 登入流程：先找到帳戶檔案，再比對 PIN。
// 帳號錯誤只重問帳號；PIN 錯誤只重問 PIN；帳戶檔案損壞則直接結束，不重試。
package console

import (
	"errors"
	"fmt"
	"strings"

	"atm/internal/bank"
	"atm/internal/logger"
)

// Authenticate 詢問帳號與 PIN，成功時回傳已載入的帳戶。
// 帳戶檔案已在 store.Load 內關閉，登入後不持有任何檔案。
func (s *Session) Authenticate() (bank.Account, error) {
	a, err := s.locateAccount()
	if err != nil {
		return bank.Account{}, err
	}
	if err := s.verifyPIN(&a); err != nil {
		return bank.Account{}, err
	}
	return a, nil
}

func (s *Session) locateAccount() (bank.Account, error) {
	for {
		in, err := s.p.choice("Account number: ")
		if err != nil {
			return bank.Account{}, aborted(err)
		}
		if in.Kind != Valid {
			writeErr(s.out, errInvalidInput)
			continue
		}
		number := int64(in.N)
		a, err := s.store.Load(number)
		switch {
		case err == nil:
			return a, nil
		case errors.Is(err, bank.ErrNotFound):
			s.log.Info("unknown account", logger.Int64("account", number))
			writeErr(s.out, err)
		default:
			// 資料完整性問題，不屬使用者錯誤
			s.log.Error("cannot load account", logger.Int64("account", number), logger.Error(err))
			writeErr(s.out, err)
			return bank.Account{}, fmt.Errorf("%w: %w", ErrAborted, err)
		}
	}
}

func (s *Session) verifyPIN(a *bank.Account) error {
	for attempt := 1; ; attempt++ {
		pin, err := s.p.line(fmt.Sprintf("Enter %d-digit PIN: ", bank.PINLength))
		if err != nil {
			return aborted(err)
		}
		pin = strings.TrimSpace(pin)
		if !bank.ValidPIN(pin) {
			writeErr(s.out, errPINFormat)
			continue
		}
		if a.MatchPIN(pin) {
			s.log.Info("pin accepted", logger.Int64("account", a.Number), logger.Int("attempt", attempt))
			return nil
		}
		s.log.Warn("wrong pin", logger.Int64("account", a.Number), logger.Int("attempt", attempt))
		writeErr(s.out, errWrongPIN)
	}
}
