// internal/storage/filestore_test.go
//
// 測試目標：驗證帳戶檔案的讀取、驗證與原子寫回。
// 使用 t.TempDir() 確保測試不汙染本機環境。
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shopspring/decimal"

	"atm/internal/bank"
)

// writeRecord 為測試輔助函式：在 dir 內建立帳戶檔案。
func writeRecord(t *testing.T, s *FileStore, number int64, content string) string {
	t.Helper()
	path := s.Path(number)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

// TestLoad 驗證正常檔案的解析結果。
func TestLoad(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	writeRecord(t, s, 1234, "0099\n123.40\n")

	a, err := s.Load(1234)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if a.Number != 1234 || a.PIN != "0099" {
		t.Fatalf("account=%+v", a)
	}
	if a.Balance.StringFixed(2) != "123.40" {
		t.Fatalf("balance=%s want 123.40", a.Balance.StringFixed(2))
	}
}

// TestLoadNotFound 驗證不存在的帳號與非正數帳號。
func TestLoadNotFound(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	for _, n := range []int64{42, 0, -1} {
		if _, err := s.Load(n); !errors.Is(err, bank.ErrNotFound) {
			t.Fatalf("Load(%d) err=%v want ErrNotFound", n, err)
		}
	}
}

// TestLoadCorrupt 驗證各種不合法內容皆回報 ErrCorrupt。
func TestLoadCorrupt(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	cases := map[string]string{
		"short pin":      "123\n10.00\n",
		"long pin":       "12345\n10.00\n",
		"alpha pin":      "12a4\n10.00\n",
		"spaced pin":     " 1234\n10.00\n",
		"no balance":     "1234",
		"empty balance":  "1234\n\n",
		"bad balance":    "1234\nabc\n",
		"negative":       "1234\n-5.00\n",
		"exponent":       "1234\n1e3\n",
		"three decimals": "1234\n1.005\n",
		"spaced balance": "1234\n 10.00\n",
	}
	var n int64 = 1
	for name, content := range cases {
		writeRecord(t, s, n, content)
		if _, err := s.Load(n); !errors.Is(err, bank.ErrCorrupt) {
			t.Fatalf("%s: err=%v want ErrCorrupt", name, err)
		}
		n++
	}
}

// TestLoadAcceptsCRLFAndNoTrailingNewline 驗證 Windows 行尾與檔尾無換行。
func TestLoadAcceptsCRLFAndNoTrailingNewline(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	writeRecord(t, s, 1, "1234\r\n50.5\r\n")
	writeRecord(t, s, 2, "1234\n50")

	for _, n := range []int64{1, 2} {
		a, err := s.Load(n)
		if err != nil {
			t.Fatalf("Load(%d) err=%v", n, err)
		}
		if a.PIN != "1234" {
			t.Fatalf("Load(%d) pin=%q", n, a.PIN)
		}
	}
}

// TestSaveRoundTripIsByteIdentical 驗證餘額不變時 Save(Load(n)) 不改變檔案內容。
func TestSaveRoundTripIsByteIdentical(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	content := "0099\n100.00\nextra line\n  kept verbatim"
	path := writeRecord(t, s, 5, content)

	a, err := s.Load(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(a); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if got := readFile(t, path); got != content {
		t.Fatalf("content changed:\n%q\nwant\n%q", got, content)
	}
}

// TestSaveReplacesBalanceOnly 驗證只替換第二行，並保留 PIN 行、行尾與其餘內容。
func TestSaveReplacesBalanceOnly(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	cases := []struct {
		in, want string
	}{
		{"0099\n100.00\nnote\n", "0099\n60.00\nnote\n"},
		{"0099\r\n100\r\nnote\r\n", "0099\r\n60.00\r\nnote\r\n"},
		{"0099\n100.5", "0099\n60.00"},
	}
	for i, c := range cases {
		n := int64(i + 1)
		path := writeRecord(t, s, n, c.in)
		a, err := s.Load(n)
		if err != nil {
			t.Fatal(err)
		}
		a.Balance = decimal.NewFromInt(60)
		if err := s.Save(a); err != nil {
			t.Fatalf("Save err=%v", err)
		}
		if got := readFile(t, path); got != c.want {
			t.Fatalf("case %d: got %q want %q", i, got, c.want)
		}
	}
}

// TestSaveLeavesNoTempFiles 驗證成功寫回後目錄內只剩正式檔案。
func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, "")
	writeRecord(t, s, 9, "1234\n10.00\n")
	a, _ := s.Load(9)
	a.Balance = decimal.Zero
	if err := s.Save(a); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "9.acc" {
		t.Fatalf("unexpected dir entries: %v", entries)
	}
}

// TestSaveMissingRecord 驗證原檔消失時回報 ErrPersist。
func TestSaveMissingRecord(t *testing.T) {
	s := NewFileStore(t.TempDir(), "")
	err := s.Save(bank.Account{Number: 77, PIN: "1234", Balance: decimal.NewFromInt(1)})
	if !errors.Is(err, bank.ErrPersist) {
		t.Fatalf("err=%v want ErrPersist", err)
	}
}

// TestSaveUnwritableDir 驗證暫存檔無法建立時回報 ErrPersist，且原檔不變。
func TestSaveUnwritableDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	dir := t.TempDir()
	s := NewFileStore(dir, "")
	path := writeRecord(t, s, 3, "1234\n10.00\n")
	a, _ := s.Load(3)

	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	a.Balance = decimal.Zero
	if err := s.Save(a); !errors.Is(err, bank.ErrPersist) {
		t.Fatalf("err=%v want ErrPersist", err)
	}
	if got := readFile(t, path); got != "1234\n10.00\n" {
		t.Fatalf("original changed: %q", got)
	}
}

// TestPath 驗證檔名由帳號與副檔名組成。
func TestPath(t *testing.T) {
	s := NewFileStore("data", ".tili")
	if got, want := s.Path(1234), filepath.Join("data", "1234.tili"); got != want {
		t.Fatalf("Path=%q want %q", got, want)
	}
}
