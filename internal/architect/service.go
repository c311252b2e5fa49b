package architect

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/habits"
	"github.com/2beens/lifearchitect/internal/ledger"
	"github.com/2beens/lifearchitect/internal/notify"
	"github.com/2beens/lifearchitect/internal/okr"
	"github.com/2beens/lifearchitect/internal/playlist"
	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/session"
	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/internal/telemetry/metrics"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"
	"github.com/2beens/lifearchitect/pkg"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownSession = errors.New("unknown session")
)

const (
	ThemeLight        = "light"
	ThemeDark         = "dark"
	ThemeHighContrast = "high-contrast"
)

type Settings struct {
	Theme              string `json:"theme"`
	SpotifyPlaylistURL string `json:"spotifyPlaylistUrl"`
	AvailableEquipment string `json:"availableEquipment"`
}

// SettingsUpdate changes only the fields that are set.
type SettingsUpdate struct {
	Theme              *string `json:"theme,omitempty"`
	SpotifyPlaylistURL *string `json:"spotifyPlaylistUrl,omitempty"`
	AvailableEquipment *string `json:"availableEquipment,omitempty"`
}

// Result reports the points a flow awarded and the new total.
type Result struct {
	PointsAwarded int `json:"pointsAwarded"`
	Points        int `json:"points"`
}

type State struct {
	Points                 int                 `json:"points"`
	CompletedActivities    []string            `json:"completedActivities"`
	TotalStudyHours        float64             `json:"totalStudyHours"`
	TargetStudyHours       int                 `json:"targetStudyHours"`
	GymDayIndex            int                 `json:"gymDayIndex"`
	NextGymDay             schedule.GymDayType `json:"nextGymDay"`
	QuickHitStreak         int                 `json:"quickHitStreak"`
	LastQuickHitDate       string              `json:"lastQuickHitDate"`
	Quarter                string              `json:"quarter"`
	Objectives             []okr.Objective     `json:"objectives"`
	Settings               Settings            `json:"settings"`
	NotificationPermission notify.Permission   `json:"notificationPermission"`
	NextActivity           *schedule.Activity  `json:"nextActivity,omitempty"`
}

type Params struct {
	Store    store.Store
	Sinks    []notify.Sink
	Metrics  *metrics.Manager
	Location *time.Location
	// Now defaults to time.Now in Location.
	Now            func() time.Time
	SessionOptions []session.Option
}

// Service owns the dashboard state. Every mutation runs under one lock, so
// HTTP requests and session ticks never interleave inside a flow.
type Service struct {
	mu sync.Mutex

	store    store.Store
	metrics  *metrics.Manager
	now      func() time.Time
	tracker  *okr.Tracker
	logs     *activitylog.Aggregator
	ledger   *ledger.Ledger
	habits   *habits.Engine
	notifier *notify.Notifier
	sessions map[session.Kind]*session.Session

	settings        Settings
	totalStudyHours float64
}

func NewService(ctx context.Context, params Params) (*Service, error) {
	if params.Store == nil {
		return nil, errors.New("store is required")
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().In(loc) }
	}

	s := &Service{
		store:   newInstrumentedStore(params.Store, params.Metrics),
		metrics: params.Metrics,
		now:     now,
	}

	var err error
	if s.tracker, err = okr.NewTracker(ctx, s.store); err != nil {
		return nil, fmt.Errorf("load objectives: %w", err)
	}
	if s.logs, err = activitylog.NewAggregator(ctx, s.store, now); err != nil {
		return nil, fmt.Errorf("load activity logs: %w", err)
	}
	if s.ledger, err = ledger.NewLedger(ctx, s.store); err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if s.habits, err = habits.NewEngine(ctx, s.store); err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	if s.notifier, err = notify.NewNotifier(ctx, s.store, params.Sinks...); err != nil {
		return nil, fmt.Errorf("load notifier: %w", err)
	}
	if err := s.loadSettings(ctx); err != nil {
		return nil, err
	}

	s.sessions = make(map[session.Kind]*session.Session, len(session.Kinds))
	for _, kind := range session.Kinds {
		opts := append(slices.Clone(params.SessionOptions), session.OnComplete(s.onSessionComplete))
		s.sessions[kind] = session.New(kind, opts...)
	}

	return s, nil
}

func (s *Service) loadSettings(ctx context.Context) error {
	var err error
	if s.settings.Theme, err = store.Load(ctx, s.store, store.KeyTheme, ThemeDark); err != nil {
		return err
	}
	if s.settings.SpotifyPlaylistURL, err = store.Load(ctx, s.store, store.KeySpotifyPlaylistURL, schedule.DefaultPlaylist); err != nil {
		return err
	}
	if s.settings.AvailableEquipment, err = store.Load(ctx, s.store, store.KeyAvailableEquipment, schedule.DefaultEquipment); err != nil {
		return err
	}
	if s.totalStudyHours, err = store.Load(ctx, s.store, store.KeyStudyHours, 0.0); err != nil {
		return err
	}
	if !validTheme(s.settings.Theme) {
		log.Warnf("architect: unknown stored theme [%s], using %s", s.settings.Theme, ThemeDark)
		s.settings.Theme = ThemeDark
	}
	return nil
}

// Close stops every session ticker. It must not be called while a flow runs.
func (s *Service) Close() {
	for _, sess := range s.sessions {
		sess.Close()
	}
}

func (s *Service) today() string {
	return pkg.DateString(s.now())
}

// award adds n points and reports them. Callers hold s.mu.
func (s *Service) award(ctx context.Context, n int) error {
	err := s.ledger.AddPoints(ctx, n)
	if !errors.Is(err, ledger.ErrNegativePoints) {
		s.countPoints(n)
	}
	return err
}

func (s *Service) markCompleted(ctx context.Context, id string, points int) error {
	added, err := s.ledger.MarkActivityCompleted(ctx, id, points)
	if added {
		s.countPoints(points)
		if s.metrics != nil {
			s.metrics.CounterActivitiesCompleted.Inc()
		}
	}
	return err
}

func (s *Service) countPoints(n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.CounterPointsAwarded.Add(float64(n))
	}
}

func (s *Service) result(before int) Result {
	after := s.ledger.Points()
	return Result{PointsAwarded: after - before, Points: after}
}

func (s *Service) notify(ctx context.Context, title, body string) {
	if err := s.notifier.Notify(ctx, title, body); err != nil {
		log.Warnf("architect: notification [%s] not delivered: %s", title, err)
	}
}

// CompleteStudy books a finished study session: hours, log, points,
// completion marker and linked key result.
func (s *Service) CompleteStudy(ctx context.Context, minutes float64, topic, krID string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.completeStudy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if minutes <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return Result{}, fmt.Errorf("%w: study minutes must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	before := s.ledger.Points()
	hours := minutes / 60

	var errs []error
	s.totalStudyHours += hours
	errs = append(errs, store.Save(ctx, s.store, store.KeyStudyHours, s.totalStudyHours))

	_, err = s.logs.AppendStudyLog(ctx, activitylog.StudySessionLog{
		DurationMinutes: minutes,
		Topic:           topic,
		LinkedKRID:      krID,
	})
	errs = append(errs, err)
	errs = append(errs, s.award(ctx, int(math.Floor(hours*schedule.StudyPointsPerH))))
	marker := pkg.NewID("study_session")
	errs = append(errs, s.markCompleted(ctx, marker, int(math.Floor(hours*schedule.StudyBonusPerH))))
	errs = append(errs, s.tracker.Credit(ctx, krID, okr.StudyActivity{Minutes: minutes}))

	res := s.result(before)
	s.mu.Unlock()

	s.notify(ctx, "Study Session Complete!", fmt.Sprintf("Great job! You studied %s for %.0f minutes.", topicOrDefault(topic), minutes))
	return res, errors.Join(errs...)
}

func topicOrDefault(topic string) string {
	if topic == "" {
		return "your exam"
	}
	return topic
}

// LogWorkoutSet records one exercise entry and credits the linked key result.
func (s *Service) LogWorkoutSet(ctx context.Context, l activitylog.WorkoutLog) (_ activitylog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.logWorkoutSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := l.Validate(); err != nil {
		return activitylog.WorkoutLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamped, appendErr := s.logs.AppendWorkoutLog(ctx, l)
	creditErr := s.tracker.Credit(ctx, stamped.LinkedKRID, okr.WorkoutActivity{
		Reps:   float64(stamped.Reps),
		Weight: stamped.Weight,
		Sets:   float64(stamped.Sets),
	})
	return stamped, errors.Join(appendErr, creditErr)
}

// LogCardio records a cardio session. It also completes a non-weight gym
// session, so a linked key result is credited twice.
func (s *Service) LogCardio(ctx context.Context, l activitylog.CardioLog) (_ activitylog.CardioLog, _ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.logCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := l.Validate(); err != nil {
		return activitylog.CardioLog{}, Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Points()
	stamped, appendErr := s.logs.AppendCardioLog(ctx, l)
	creditErr := s.tracker.Credit(ctx, l.LinkedKRID, okr.CardioActivity{
		DurationMinutes: l.DurationMinutes,
		DistanceKm:      l.DistanceKm,
		CaloriesBurned:  l.CaloriesBurned,
	})
	gymErr := s.completeGymSessionLocked(ctx, false, schedule.GymDayCardio, l.LinkedKRID)

	return stamped, s.result(before), errors.Join(appendErr, creditErr, gymErr)
}

func validGymDay(d schedule.GymDayType) bool {
	return d == schedule.GymDayCardio || slices.Contains(schedule.GymDayRotation, d)
}

func (s *Service) CompleteGymSession(ctx context.Context, isWeightTraining bool, dayType schedule.GymDayType, krID string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.completeGymSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !validGymDay(dayType) {
		return Result{}, fmt.Errorf("%w: unknown gym day type %q", ErrInvalidInput, dayType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Points()
	err = s.completeGymSessionLocked(ctx, isWeightTraining, dayType, krID)
	return s.result(before), err
}

func (s *Service) completeGymSessionLocked(ctx context.Context, isWeightTraining bool, dayType schedule.GymDayType, krID string) error {
	points, rotateErr := s.habits.CompleteGymSession(ctx, isWeightTraining, dayType)
	awardErr := s.award(ctx, points)
	var krErr error
	if krID != "" {
		krErr = s.tracker.UpdateProgress(ctx, krID, 1, nil)
	}
	return errors.Join(rotateErr, awardErr, krErr)
}

func (s *Service) CompleteQuickHit(ctx context.Context, krID string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.completeQuickHit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Points()
	points, streakErr := s.habits.CompleteQuickHit(ctx, s.today())
	errs := []error{streakErr, s.award(ctx, points)}
	errs = append(errs, s.markCompleted(ctx, schedule.QuickHitActivityID, 0))
	if krID != "" {
		errs = append(errs, s.tracker.UpdateProgress(ctx, krID, 1, nil))
	}
	return s.result(before), errors.Join(errs...)
}

// LogMeal stamps the meal with today's date, awards the logging points and
// credits the linked key result.
func (s *Service) LogMeal(ctx context.Context, m activitylog.MealAnalysis) (_ activitylog.MealAnalysis, _ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.logMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := m.Validate(); err != nil {
		return activitylog.MealAnalysis{}, Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Points()
	m.Date = s.today()
	stamped, appendErr := s.logs.AppendMealLog(ctx, m)
	awardErr := s.award(ctx, schedule.MealPoints)
	creditErr := s.tracker.Credit(ctx, m.LinkedKRID, okr.MealActivity{
		Calories:     m.Calories,
		ProteinGrams: m.ProteinGrams,
	})
	return stamped, s.result(before), errors.Join(appendErr, awardErr, creditErr)
}

func (s *Service) CompleteMeditation(ctx context.Context) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.completeMeditation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	before := s.ledger.Points()
	err = s.markCompleted(ctx, pkg.NewID("meditation"), schedule.MeditationPoints)
	res := s.result(before)
	s.mu.Unlock()

	s.notify(ctx, "Meditation Complete", "Well done! Take a moment to notice how you feel.")
	return res, err
}

// ToggleActivity marks a schedule entry done. Study entries are worth more.
func (s *Service) ToggleActivity(ctx context.Context, id string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "architect.service.toggleActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if id == "" {
		return Result{}, fmt.Errorf("%w: empty activity id", ErrInvalidInput)
	}

	points := schedule.OtherToggleReward
	if a, ok := schedule.Find(id); ok && a.Type == schedule.ActivityStudy {
		points = schedule.StudyToggleReward
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Points()
	err = s.markCompleted(ctx, id, points)
	return s.result(before), err
}

func (s *Service) onSessionComplete(c session.Completion) {
	ctx := context.Background()
	if s.metrics != nil {
		s.metrics.CounterSessionsCompleted.WithLabelValues(string(c.Kind), fmt.Sprint(c.AutoCompleted)).Inc()
	}

	var err error
	switch c.Kind {
	case session.KindStudy:
		if c.ElapsedMinutes <= 0 {
			log.Debugf("architect: study session ended after %s, nothing to book", c.Elapsed)
			return
		}
		_, err = s.CompleteStudy(ctx, float64(c.ElapsedMinutes), c.Topic, c.LinkedKRID)
	case session.KindMeditation:
		_, err = s.CompleteMeditation(ctx)
	case session.KindQuickHit:
		_, err = s.CompleteQuickHit(ctx, c.LinkedKRID)
	case session.KindWorkout:
		s.mu.Lock()
		day := s.habits.CurrentDayType()
		s.mu.Unlock()
		_, err = s.CompleteGymSession(ctx, true, day, c.LinkedKRID)
	}
	if err != nil {
		log.Errorf("architect: %s session completion: %s", c.Kind, err)
	}
}

func (s *Service) sessionFor(kind session.Kind) (*session.Session, error) {
	sess, ok := s.sessions[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, kind)
	}
	return sess, nil
}

// StartSession configures and starts the session of the given kind. Session
// calls do not take the controller lock; completions re-enter the flows.
func (s *Service) StartSession(kind session.Kind, d time.Duration, topic, krID string) (session.Snapshot, error) {
	sess, err := s.sessionFor(kind)
	if err != nil {
		return session.Snapshot{}, err
	}
	sess.Configure(topic, krID)
	if err := sess.Start(d); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *Service) PauseSession(kind session.Kind) (session.Snapshot, error) {
	sess, err := s.sessionFor(kind)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.Pause(); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *Service) ResumeSession(kind session.Kind) (session.Snapshot, error) {
	sess, err := s.sessionFor(kind)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.Resume(); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// EndSession ends the session manually. The completion flow has already run
// when this returns.
func (s *Service) EndSession(kind session.Kind) (session.Completion, error) {
	sess, err := s.sessionFor(kind)
	if err != nil {
		return session.Completion{}, err
	}
	return sess.End()
}

func (s *Service) SessionSnapshot(kind session.Kind) (session.Snapshot, error) {
	sess, err := s.sessionFor(kind)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	quarter := okr.CurrentQuarter(now)
	st := State{
		Points:                 s.ledger.Points(),
		CompletedActivities:    s.ledger.CompletedActivities(),
		TotalStudyHours:        s.totalStudyHours,
		TargetStudyHours:       schedule.TargetStudyHours,
		GymDayIndex:            s.habits.GymDayIndex(),
		NextGymDay:             s.habits.CurrentDayType(),
		QuickHitStreak:         s.habits.QuickHitStreak(),
		LastQuickHitDate:       s.habits.LastQuickHitDate(),
		Quarter:                quarter,
		Objectives:             s.tracker.ObjectivesForQuarter(quarter),
		Settings:               s.settings,
		NotificationPermission: s.notifier.Permission(),
	}
	if next, ok := schedule.Next(now.Hour()*60 + now.Minute()); ok {
		st.NextActivity = &next
	}
	return st
}

func (s *Service) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func validTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeHighContrast
}

func (s *Service) UpdateSettings(ctx context.Context, u SettingsUpdate) (Settings, error) {
	if u.Theme != nil && !validTheme(*u.Theme) {
		return Settings{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, *u.Theme)
	}
	if u.SpotifyPlaylistURL != nil && *u.SpotifyPlaylistURL != "" {
		if _, err := playlist.ParseID(*u.SpotifyPlaylistURL); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if u.Theme != nil {
		s.settings.Theme = *u.Theme
		errs = append(errs, store.Save(ctx, s.store, store.KeyTheme, s.settings.Theme))
	}
	if u.SpotifyPlaylistURL != nil {
		s.settings.SpotifyPlaylistURL = *u.SpotifyPlaylistURL
		errs = append(errs, store.Save(ctx, s.store, store.KeySpotifyPlaylistURL, s.settings.SpotifyPlaylistURL))
	}
	if u.AvailableEquipment != nil {
		s.settings.AvailableEquipment = *u.AvailableEquipment
		errs = append(errs, store.Save(ctx, s.store, store.KeyAvailableEquipment, s.settings.AvailableEquipment))
	}
	return s.settings, errors.Join(errs...)
}

func (s *Service) RequestNotificationPermission(ctx context.Context, granted bool) (notify.Permission, error) {
	return s.notifier.RequestPermission(ctx, granted)
}

func (s *Service) Objectives(quarter string) []okr.Objective {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quarter == "" {
		return s.tracker.Objectives()
	}
	return s.tracker.ObjectivesForQuarter(quarter)
}

func (s *Service) AddObjective(ctx context.Context, o okr.Objective) (okr.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.Quarter == "" {
		o.Quarter = okr.CurrentQuarter(s.now())
	}
	return s.tracker.AddObjective(ctx, o)
}

func (s *Service) UpdateObjective(ctx context.Context, o okr.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.UpdateObjective(ctx, o)
}

func (s *Service) DeleteObjective(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.DeleteObjective(ctx, id)
}

func (s *Service) AddKeyResult(ctx context.Context, objectiveID string, kr okr.KeyResult) (okr.KeyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.AddKeyResult(ctx, objectiveID, kr)
}

// UpdateProgress adds delta, or sets absolute when given. It returns the key
// result after the change, and false when the id is unknown.
func (s *Service) UpdateProgress(ctx context.Context, krID string, delta float64, absolute *float64) (okr.KeyResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.tracker.UpdateProgress(ctx, krID, delta, absolute)
	kr, ok := s.tracker.FindKeyResult(krID)
	return kr, ok, err
}

// RelevantKeyResults lists the current quarter's key results a view can link to.
func (s *Service) RelevantKeyResults(view okr.View) []okr.KeyResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.RelevantKeyResults(view, okr.CurrentQuarter(s.now()))
}

// PruneMeals drops meals outside the retention window.
func (s *Service) PruneMeals(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs.PruneMeals(ctx)
}

// RollOverCompletions clears yesterday's schedule completions. Points stay.
func (s *Service) RollOverCompletions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ResetDailyCompletions(ctx, schedule.IDs())
}
