// internal/console/router.go
//
// 本檔負責畫面 (View) 與處理函式的對應。
// handler.go 定義「每個畫面如何處理輸入」，router.go 定義「目前畫面交給誰處理」。
package console

// View 為選單狀態；Quit 為終止狀態，沒有對應的處理函式。
type View int

const (
	Main View = iota
	Withdraw
	Balance
	Quit
)

func (v View) String() string {
	switch v {
	case Main:
		return "main"
	case Withdraw:
		return "withdraw"
	case Balance:
		return "balance"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// viewFunc 處理一個畫面，回傳下一個畫面。
type viewFunc func() (View, error)

// routes 建立畫面 → 處理函式的對應表。
func (s *Session) routes() map[View]viewFunc {
	return map[View]viewFunc{
		Main:     s.mainView,
		Withdraw: s.withdrawView,
		Balance:  s.balanceView,
	}
}
