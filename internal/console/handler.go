// internal/console/handler.go
//
// Package console
// ─────────────────────────────────────────────
// 提供文字選單介面，作為 bank 模組的應用層。
// Session 擁有本次使用的全部狀態（帳戶、目前畫面、同步狀態），
// 依序處理：登入 → 主選單 / 提款 / 餘額 → 離開。
// 餘額有變動時，於離開提款畫面前透過 AccountStore 寫回一次。
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"atm/internal/bank"
	"atm/internal/logger"
)

// ErrAborted 代表本次使用非正常結束（帳戶檔案損壞或輸入結束）。
var ErrAborted = errors.New("session aborted")

// AccountStore 為帳戶的讀取與寫回介面。
type AccountStore interface {
	Load(number int64) (bank.Account, error)
	Save(a bank.Account) error
}

// Session 為一次 ATM 使用的 context：
// - store：注入持久化實作（檔案或測試用假物件）。
// - account：登入後載入的帳戶，整個 session 以記憶體內為準。
// - unsynced：最近一次寫回失敗且使用者選擇繼續時為 true。
type Session struct {
	ID       uuid.UUID
	store    AccountStore
	p        *prompter
	out      io.Writer
	log      *zap.Logger
	account  bank.Account
	view     View
	unsynced bool
}

// NewSession 建立新的 session；in / out 為使用者的輸入與輸出。
func NewSession(store AccountStore, in io.Reader, out io.Writer) *Session {
	id := uuid.New()
	return &Session{
		ID:    id,
		store: store,
		p:     newPrompter(in, out),
		out:   out,
		log:   logger.Log.With(logger.String("session_id", id.String())),
		view:  Main,
	}
}

// Account 回傳目前帳戶的副本。
func (s *Session) Account() bank.Account {
	a := s.account
	a.Logs = append([]bank.Log(nil), s.account.Logs...)
	return a
}

// Unsynced 回報記憶體中的餘額是否尚未寫回。
func (s *Session) Unsynced() bool {
	return s.unsynced
}

// Run 執行登入與選單迴圈，直到使用者選擇離開。
// 正常離開回傳 nil；帳戶檔案損壞或輸入結束時回傳包裝 ErrAborted 的錯誤。
func (s *Session) Run() error {
	a, err := s.Authenticate()
	if err != nil {
		s.log.Warn("session aborted at login", logger.Error(err))
		return err
	}
	s.account = a
	s.view = Main
	s.log.Info("logged in", logger.Int64("account", a.Number))

	routes := s.routes()
	for s.view != Quit {
		h, ok := routes[s.view]
		if !ok {
			return fmt.Errorf("no handler for view %s", s.view)
		}
		writeSeparator(s.out)
		next, err := h()
		if err != nil {
			s.log.Warn("session aborted", logger.String("view", s.view.String()), logger.Error(err))
			return err
		}
		s.view = next
	}

	fmt.Fprintln(s.out, "\nExiting...")
	s.log.Info("logged out",
		logger.Int64("account", s.account.Number),
		logger.Int("withdrawals", len(s.account.Logs)),
		logger.Bool("unsynced", s.unsynced),
	)
	return nil
}

// mainView 處理主選單：1 → 提款、2 → 餘額、0 → 離開。
func (s *Session) mainView() (View, error) {
	for {
		writeMenu(s.out, "Choose",
			"1 - Withdraw",
			"2 - Balance",
			"0 - Quit",
		)
		in, err := s.p.choice("Choice: ")
		if err != nil {
			return Quit, aborted(err)
		}
		switch {
		case in.Kind == Valid && in.N == 1:
			return Withdraw, nil
		case in.Kind == Valid && in.N == 2:
			return Balance, nil
		case in.Kind == Valid && in.N == 0:
			return Quit, nil
		}
		writeErr(s.out, errInvalidChoice)
	}
}

// withdrawView 處理提款畫面。
// 離開畫面時若餘額與進入時不同，寫回一次。
func (s *Session) withdrawView() (View, error) {
	entry := s.account.Balance
	next, err := s.withdrawMenu()
	if !s.account.Balance.Equal(entry) {
		if perr := s.persist(); perr != nil && err == nil {
			err = perr
		}
	}
	return next, err
}

func (s *Session) withdrawMenu() (View, error) {
	writeMenu(s.out, "Withdraw",
		"1 - 20",
		"2 - 40",
		"3 - Other amount",
		"0 - Back",
	)
	for {
		in, err := s.p.choice("Choice: ")
		if err != nil {
			return Quit, aborted(err)
		}
		if in.Kind != Valid {
			writeErr(s.out, errInvalidChoice)
			continue
		}
		switch in.N {
		case 1, 2:
			b, _ := bank.Shortcut(20 * in.N)
			if err := s.account.Dispense(b); err != nil {
				writeErr(s.out, err)
				continue
			}
			s.dispensed(b)
			return Main, nil
		case 3:
			if err := s.customAmount(); err != nil {
				return Quit, err
			}
			return Main, nil
		case 0:
			return Main, nil
		default:
			writeErr(s.out, errInvalidChoice)
		}
	}
}

// customAmount 反覆詢問金額，直到提款成功或使用者輸入 -1 取消。
func (s *Session) customAmount() error {
	for {
		in, err := s.p.amount(fmt.Sprintf("Amount (max %d, -1 cancels): ", bank.MaxWithdrawal))
		if err != nil {
			return aborted(err)
		}
		switch in.Kind {
		case Cancel:
			s.log.Debug("withdrawal cancelled")
			return nil
		case Invalid:
			writeErr(s.out, errInvalidInput)
			continue
		}
		b, err := s.account.Withdraw(in.N)
		if err != nil {
			s.log.Debug("withdrawal rejected", logger.Int("amount", in.N), logger.Error(err))
			writeErr(s.out, err)
			continue
		}
		s.dispensed(b)
		return nil
	}
}

// dispensed 輸出面額並記錄日誌。
func (s *Session) dispensed(b bank.Breakdown) {
	writeNotes(s.out, b)
	s.log.Info("withdrawal",
		logger.Int64("account", s.account.Number),
		logger.Int("amount", b.Total()),
		logger.Int("fifties", b.Fifties),
		logger.Int("twenties", b.Twenties),
		logger.String("balance", s.account.Balance.StringFixed(2)),
	)
}

// persist 將目前餘額寫回。失敗時詢問重試或以未同步狀態繼續。
func (s *Session) persist() error {
	for {
		err := s.store.Save(s.account)
		if err == nil {
			s.unsynced = false
			return nil
		}
		s.unsynced = true
		s.log.Error("save failed", logger.Int64("account", s.account.Number), logger.Error(err))
		writeErr(s.out, err)

		retry, err := s.askRetry()
		if err != nil {
			return err
		}
		if !retry {
			fmt.Fprintln(s.out, "- Continuing. The new balance is not saved.")
			return nil
		}
	}
}

func (s *Session) askRetry() (bool, error) {
	writeMenu(s.out, "", "1 - Retry", "0 - Continue without saving")
	for {
		in, err := s.p.choice("Choice: ")
		if err != nil {
			return false, aborted(err)
		}
		if in.Kind == Valid && (in.N == 0 || in.N == 1) {
			return in.N == 1, nil
		}
		writeErr(s.out, errInvalidChoice)
	}
}

// balanceView 顯示餘額與本次提款紀錄：1 → 主選單、0 → 離開。
func (s *Session) balanceView() (View, error) {
	fmt.Fprintf(s.out, "Balance: %s", s.account.Balance.StringFixed(2))
	if s.unsynced {
		fmt.Fprint(s.out, " (not saved)")
	}
	fmt.Fprintln(s.out)
	for _, l := range s.account.Logs {
		fmt.Fprintf(s.out, "  %s  -%d.00  (%s)\n", l.Time.Format("15:04:05"), l.Amount, l.Notes)
	}
	writeMenu(s.out, "", "1 - Main menu", "0 - Quit")

	for {
		in, err := s.p.choice("Choice: ")
		if err != nil {
			return Quit, aborted(err)
		}
		switch {
		case in.Kind == Valid && in.N == 1:
			return Main, nil
		case in.Kind == Valid && in.N == 0:
			return Quit, nil
		}
		writeErr(s.out, errInvalidChoice)
	}
}

// aborted 以 ErrAborted 包裝輸入錯誤（通常為 io.EOF）。
func aborted(err error) error {
	return fmt.Errorf("%w: %w", ErrAborted, err)
}
