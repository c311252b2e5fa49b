package assistant

import (
	"errors"
	"sync"
)

var (
	ErrInvalidInput     = errors.New("invalid assistant input")
	ErrUnexpectedFormat = errors.New("AI provided data in an unexpected format")
)

//go:generate mockgen -destination=generator_mocks_test.go -package=assistant_test github.com/2beens/lifearchitect/internal/ai Generator

// lastError keeps the message of a feature's most recent failure. A
// successful call clears it.
type lastError struct {
	mu  sync.Mutex
	msg string
}

func (l *lastError) LastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.msg
}

func (l *lastError) record(err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		l.msg = ""
	} else {
		l.msg = err.Error()
	}
	return err
}
