package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// DateLayout is the calendar-date layout used by every persisted log.
const DateLayout = "2006-01-02"

// DateString formats t as a local calendar date.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysAgo returns the calendar date n days before t.
func DaysAgo(t time.Time, n int) string {
	return DateString(t.AddDate(0, 0, -n))
}

// NewID returns prefix_<random hex>.
func NewID(prefix string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms, fall back to time
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}
	return prefix + "_" + hex.EncodeToString(b)
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, fmt.Errorf("%s: is not a directory", path)
	}
	if !isDir && stat.IsDir() {
		return false, fmt.Errorf("%s: is a directory", path)
	}
	return true, nil
}
