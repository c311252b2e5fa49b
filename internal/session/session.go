package session

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrUnknownKind       = errors.New("unknown session kind")
)

type Kind string

const (
	KindQuickHit   Kind = "quickhit"
	KindMeditation Kind = "meditation"
	KindStudy      Kind = "study"
	KindWorkout    Kind = "workout"
)

var Kinds = []Kind{KindQuickHit, KindMeditation, KindStudy, KindWorkout}

// DefaultDuration is the countdown each kind starts from. Zero counts up.
func (k Kind) DefaultDuration() time.Duration {
	switch k {
	case KindQuickHit:
		return 5 * time.Minute
	case KindMeditation:
		return 15 * time.Minute
	case KindStudy:
		return 10 * time.Hour
	}
	return 0
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateEnded   State = "ended"
)

const DefaultTickInterval = time.Second

type Completion struct {
	Kind           Kind          `json:"kind"`
	Elapsed        time.Duration `json:"elapsed"`
	ElapsedMinutes int           `json:"elapsedMinutes"`
	Topic          string        `json:"topic,omitempty"`
	LinkedKRID     string        `json:"linkedKRId,omitempty"`
	AutoCompleted  bool          `json:"autoCompleted"`
}

type Snapshot struct {
	Kind             Kind   `json:"kind"`
	State            State  `json:"state"`
	DurationSeconds  int    `json:"durationSeconds"`
	RemainingSeconds int    `json:"remainingSeconds"`
	ElapsedSeconds   int    `json:"elapsedSeconds"`
	CountsUp         bool   `json:"countsUp"`
	Topic            string `json:"topic,omitempty"`
	LinkedKRID       string `json:"linkedKRId,omitempty"`
}

type Option func(*Session)

func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

func WithTicker(f TickerFactory, interval time.Duration) Option {
	return func(s *Session) {
		s.newTicker = f
		s.interval = interval
	}
}

func WithDuration(d time.Duration) Option {
	return func(s *Session) { s.initial = d }
}

// OnComplete registers the callback that receives every completion. It runs
// outside the session lock.
func OnComplete(fn func(Completion)) Option {
	return func(s *Session) { s.onComplete = fn }
}

// Session is a pausable countdown (or count-up when it has no duration).
// Elapsed time is measured from clock deltas between ticks, so late or
// missed ticks do not skew it.
type Session struct {
	kind       Kind
	clock      Clock
	newTicker  TickerFactory
	interval   time.Duration
	onComplete func(Completion)
	initial    time.Duration

	mu        sync.Mutex
	state     State
	duration  time.Duration
	remaining time.Duration
	elapsed   time.Duration
	lastTick  time.Time
	topic     string
	krID      string
	stop      chan struct{}

	wg sync.WaitGroup
}

func New(kind Kind, opts ...Option) *Session {
	s := &Session{
		kind:      kind,
		clock:     SystemClock{},
		newTicker: NewSystemTicker,
		interval:  DefaultTickInterval,
		initial:   kind.DefaultDuration(),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.duration = s.initial
	s.remaining = s.initial
	return s
}

func (s *Session) Kind() Kind {
	return s.kind
}

// Configure sets the topic and linked key result reported on completion.
func (s *Session) Configure(topic, linkedKRID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = topic
	s.krID = linkedKRID
}

// Start runs the session. A positive d starts a countdown of d keeping any
// elapsed time; zero resumes, restarting a finished countdown from its
// configured length.
func (s *Session) Start(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: negative duration %s", ErrInvalidTransition, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRunning:
		return fmt.Errorf("%w: %s session already running", ErrInvalidTransition, s.kind)
	case StateEnded:
		s.resetLocked()
	}

	switch {
	case d > 0:
		s.duration = d
		s.remaining = d
	case s.duration > 0 && s.remaining <= 0:
		s.remaining = s.duration
	}

	s.state = StateRunning
	s.lastTick = s.clock.Now()
	s.startTickerLocked()
	return nil
}

func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return fmt.Errorf("%w: cannot pause %s session in state %s", ErrInvalidTransition, s.kind, s.state)
	}
	s.advanceLocked()
	s.state = StatePaused
	s.stopTickerLocked()
	return nil
}

func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return fmt.Errorf("%w: cannot resume %s session in state %s", ErrInvalidTransition, s.kind, s.state)
	}
	s.state = StateRunning
	s.lastTick = s.clock.Now()
	s.startTickerLocked()
	return nil
}

// End finishes a running or paused session, reports the completion and
// resets the session to idle.
func (s *Session) End() (Completion, error) {
	s.mu.Lock()
	if s.state != StateRunning && s.state != StatePaused {
		state := s.state
		s.mu.Unlock()
		return Completion{}, fmt.Errorf("%w: cannot end %s session in state %s", ErrInvalidTransition, s.kind, state)
	}
	if s.state == StateRunning {
		s.advanceLocked()
	}
	c := s.completionLocked(false)
	s.stopTickerLocked()
	s.resetLocked()
	s.mu.Unlock()

	s.emit(c)
	return c, nil
}

// Reset drops any progress and returns to idle without a completion.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTickerLocked()
	s.resetLocked()
}

// Tick advances a running session to the clock's current time. When a
// countdown reaches zero the session ends and the completion is reported,
// exactly once. It reports whether the session is still running.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return false
	}
	s.advanceLocked()
	if s.duration <= 0 || s.remaining > 0 {
		s.mu.Unlock()
		return true
	}

	s.remaining = 0
	s.state = StateEnded
	s.stopTickerLocked()
	c := s.completionLocked(true)
	s.mu.Unlock()

	s.emit(c)
	return false
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Kind:             s.kind,
		State:            s.state,
		DurationSeconds:  int(s.duration / time.Second),
		RemainingSeconds: int(s.remaining / time.Second),
		ElapsedSeconds:   int(s.elapsed / time.Second),
		CountsUp:         s.duration <= 0,
		Topic:            s.topic,
		LinkedKRID:       s.krID,
	}
}

// Close stops the ticker goroutine and waits for it to exit.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopTickerLocked()
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) advanceLocked() {
	now := s.clock.Now()
	delta := now.Sub(s.lastTick)
	s.lastTick = now
	if delta <= 0 {
		return
	}
	s.elapsed += delta
	if s.duration > 0 {
		s.remaining -= delta
	}
}

func (s *Session) completionLocked(auto bool) Completion {
	return Completion{
		Kind:           s.kind,
		Elapsed:        s.elapsed,
		ElapsedMinutes: int(s.elapsed / time.Minute),
		Topic:          s.topic,
		LinkedKRID:     s.krID,
		AutoCompleted:  auto,
	}
}

func (s *Session) resetLocked() {
	s.state = StateIdle
	s.duration = s.initial
	s.remaining = s.initial
	s.elapsed = 0
}

func (s *Session) startTickerLocked() {
	if s.stop != nil {
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	t := s.newTicker(s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C():
				if !s.Tick() {
					return
				}
			}
		}
	}()
}

func (s *Session) stopTickerLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
}

func (s *Session) emit(c Completion) {
	if s.onComplete != nil {
		s.onComplete(c)
	}
}
