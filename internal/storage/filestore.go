// internal/storage/filestore.go
//
// 提供以「每帳戶一個檔案」為單位的 AccountStore 實作。
// 檔名由帳號推導：<dir>/<number><ext>，例如 ./1234.acc。
// 寫回採原子寫入：先寫入同目錄下的暫存檔並 fsync，再以 os.Rename() 取代原檔。
// 失敗時刪除暫存檔，原檔維持不變。
//
// 已知限制：在 rename 無法原子取代的平台上，取代過程中程式中斷可能遺失原檔。
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"atm/internal/bank"
	"atm/internal/logger"
)

// DefaultExt 為帳戶檔案預設副檔名。
const DefaultExt = ".acc"

// FileStore 以目錄中的純文字檔保存帳戶。
// 不持有任何開啟中的檔案；每次 Load / Save 都在函式內開啟並關閉。
type FileStore struct {
	dir string
	ext string
}

// NewFileStore 建立指向 dir 的 FileStore；ext 為空時使用 DefaultExt。
func NewFileStore(dir, ext string) *FileStore {
	if ext == "" {
		ext = DefaultExt
	}
	return &FileStore{dir: dir, ext: ext}
}

// Path 回傳帳號對應的檔案路徑。
func (s *FileStore) Path(number int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(number, 10)+s.ext)
}

// Load 讀取帳戶檔案並解析成 bank.Account。
// 檔案不存在回傳 bank.ErrNotFound；內容不合法回傳包裝 bank.ErrCorrupt 的錯誤。
func (s *FileStore) Load(number int64) (bank.Account, error) {
	if number <= 0 {
		return bank.Account{}, bank.ErrNotFound
	}
	path := s.Path(number)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return bank.Account{}, bank.ErrNotFound
		}
		return bank.Account{}, fmt.Errorf("%w: read %s: %v", bank.ErrCorrupt, path, err)
	}
	a, err := decodeRecord(number, data)
	if err != nil {
		logger.Log.Warn("corrupt account record", logger.String("path", path), logger.Error(err))
		return bank.Account{}, err
	}
	return a, nil
}

// Save 將帳戶餘額寫回檔案，僅替換第二行。
// 流程：
//  1. 重新讀取原檔內容（保留 PIN 行與其餘內容）。
//  2. 於同目錄建立暫存檔，寫入完整新內容並 fsync。
//  3. 沿用原檔權限後以 os.Rename() 取代原檔。
//
// 任一步驟失敗回傳包裝 bank.ErrPersist 的錯誤。
func (s *FileStore) Save(a bank.Account) error {
	path := s.Path(a.Number)
	orig, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", bank.ErrPersist, path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", bank.ErrPersist, path, err)
	}
	data, err := encodeBalance(orig, a.Balance)
	if err != nil {
		return fmt.Errorf("%w: %v", bank.ErrPersist, err)
	}

	if err := writeAtomic(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %v", bank.ErrPersist, err)
	}
	logger.Log.Info("account saved",
		logger.Int64("account", a.Number),
		logger.String("balance", a.Balance.StringFixed(2)),
	)
	return nil
}

// writeAtomic 以暫存檔 + rename 取代 path 的內容。
func writeAtomic(path string, data []byte, perm fs.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}

	// 原子替換
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	ok = true
	return nil
}
