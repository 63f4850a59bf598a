// Package persist writes winning keypairs to disk. Records go into a
// CSV file named after the pattern and a per-process session timestamp,
// so repeated finds within one run append to the same file.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// SubDir is the directory created beneath the configured base path.
const SubDir = "FancyWallets"

var (
	sessionOnce  sync.Once
	sessionStamp string
)

// session returns the process-wide timestamp used in file names, fixed
// on first use so one run always writes to the same file per pattern.
func session() string {
	sessionOnce.Do(func() {
		sessionStamp = time.Now().Format("20060102_150405")
	})
	return sessionStamp
}

// Record is one keypair to persist.
type Record struct {
	Address    string
	PrivateKey string
	Pattern    string
}

// Store appends records beneath a base directory.
type Store struct {
	base string
}

// NewStore creates a store rooted at base. Nothing is touched on disk
// until the first Save.
func NewStore(base string) *Store {
	return &Store{base: base}
}

// Save appends the record as a CSV row, writing the header when the file
// is new. Returns the path written. The file is created 0600; it holds a
// private key.
func (s *Store) Save(rec Record) (string, error) {
	dir := filepath.Join(s.base, SubDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create wallet directory: %w", err)
	}

	name := fmt.Sprintf("wallet_%s_%s.csv", sanitizePattern(rec.Pattern), session())
	path := filepath.Join(dir, name)

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("open wallet file: %w", err)
	}
	defer file.Close()

	if writeHeader {
		if _, err := fmt.Fprintln(file, "address,private_key,pattern"); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := fmt.Fprintf(file, "%s,%s,%s\n", rec.Address, rec.PrivateKey, rec.Pattern); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}
	return path, nil
}

// sanitizePattern strips wildcard markers so they never land in a file name.
func sanitizePattern(pattern string) string {
	return strings.ReplaceAll(pattern, "*", "")
}
