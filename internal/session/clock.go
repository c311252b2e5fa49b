package session

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the ticker driving a running session.
type TickerFactory func(interval time.Duration) Ticker

type systemTicker struct {
	t *time.Ticker
}

func (st systemTicker) C() <-chan time.Time {
	return st.t.C
}

func (st systemTicker) Stop() {
	st.t.Stop()
}

func NewSystemTicker(interval time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(interval)}
}
