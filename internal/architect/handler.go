package architect

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/assistant"
	"github.com/2beens/lifearchitect/internal/okr"
	"github.com/2beens/lifearchitect/internal/playlist"
	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/session"
	"github.com/2beens/lifearchitect/internal/telemetry/metrics"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"
	"github.com/2beens/lifearchitect/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StudyCompleteRequest struct {
	Minutes    float64 `json:"minutes"`
	Topic      string  `json:"topic"`
	LinkedKRID string  `json:"linkedKRId,omitempty"`
}

type GymCompleteRequest struct {
	IsWeightTraining bool                `json:"isWeightTraining"`
	DayType          schedule.GymDayType `json:"dayType"`
	LinkedKRID       string              `json:"linkedKRId,omitempty"`
}

type LinkedKRRequest struct {
	LinkedKRID string `json:"linkedKRId,omitempty"`
}

type ProgressRequest struct {
	Delta    float64  `json:"delta"`
	Absolute *float64 `json:"absolute,omitempty"`
}

type ProgressResponse struct {
	Found     bool           `json:"found"`
	KeyResult *okr.KeyResult `json:"keyResult,omitempty"`
}

type SessionStartRequest struct {
	DurationSeconds int    `json:"durationSeconds"`
	Topic           string `json:"topic,omitempty"`
	LinkedKRID      string `json:"linkedKRId,omitempty"`
}

type PermissionRequest struct {
	Granted bool `json:"granted"`
}

type MealEstimateRequest struct {
	Description string `json:"description"`
}

type ExerciseAlternativeRequest struct {
	DayType    schedule.GymDayType `json:"dayType"`
	ExerciseID string              `json:"exerciseId"`
}

type QuestionsRequest struct {
	Topic       string `json:"topic"`
	SubTopic    string `json:"subTopic,omitempty"`
	SubSubTopic string `json:"subSubTopic,omitempty"`
}

type QuestionsResponse struct {
	Questions string `json:"questions"`
}

type ScheduleResponse struct {
	Activities          []schedule.Activity `json:"activities"`
	CompletedActivities []string            `json:"completedActivities"`
}

type FlowResponse struct {
	Result
	Log any `json:"log,omitempty"`
}

type DeleteObjectiveResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service   *Service
	meals     MealEstimator
	advisor   ExerciseAdvisor
	questions QuestionGenerator
	playlists PlaylistResolver
	metrics   *metrics.Manager
}

func NewHandler(
	service *Service,
	meals MealEstimator,
	advisor ExerciseAdvisor,
	questions QuestionGenerator,
	playlists PlaylistResolver,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:   service,
		meals:     meals,
		advisor:   advisor,
		questions: questions,
		playlists: playlists,
		metrics:   metricsManager,
	}
}

// SetupRoutes registers every dashboard route on r. aiRoutes receives the
// AI endpoints, so the caller can put them behind a rate limiter.
func (handler *Handler) SetupRoutes(r *mux.Router, aiRoutes *mux.Router) {
	r.HandleFunc("/state", handler.HandleState).Methods("GET")
	r.HandleFunc("/schedule", handler.HandleSchedule).Methods("GET")
	r.HandleFunc("/schedule/{id}/complete", handler.HandleCompleteActivity).Methods("POST")

	r.HandleFunc("/objectives", handler.HandleListObjectives).Methods("GET")
	r.HandleFunc("/objectives", handler.HandleAddObjective).Methods("POST")
	r.HandleFunc("/objectives/{id}", handler.HandleUpdateObjective).Methods("PUT")
	r.HandleFunc("/objectives/{id}", handler.HandleDeleteObjective).Methods("DELETE")
	r.HandleFunc("/objectives/{id}/keyresults", handler.HandleAddKeyResult).Methods("POST")
	r.HandleFunc("/keyresults/{id}/progress", handler.HandleUpdateProgress).Methods("PUT")

	r.HandleFunc("/study/complete", handler.HandleCompleteStudy).Methods("POST")
	r.HandleFunc("/gym/sets", handler.HandleLogWorkoutSet).Methods("POST")
	r.HandleFunc("/gym/cardio", handler.HandleLogCardio).Methods("POST")
	r.HandleFunc("/gym/complete", handler.HandleCompleteGymSession).Methods("POST")
	r.HandleFunc("/quickhit/complete", handler.HandleCompleteQuickHit).Methods("POST")
	r.HandleFunc("/meals", handler.HandleLogMeal).Methods("POST")
	r.HandleFunc("/meditation/complete", handler.HandleCompleteMeditation).Methods("POST")
	r.HandleFunc("/meditation/playlist", handler.HandlePlaylist).Methods("GET")

	r.HandleFunc("/sessions/{kind}", handler.HandleSessionSnapshot).Methods("GET")
	r.HandleFunc("/sessions/{kind}/{action:start|pause|resume|end}", handler.HandleSessionAction).Methods("POST")

	r.HandleFunc("/analytics/study", handler.HandleStudyAnalytics).Methods("GET")
	r.HandleFunc("/analytics/nutrition", handler.HandleNutritionAnalytics).Methods("GET")
	r.HandleFunc("/analytics/gym", handler.HandleGymAnalytics).Methods("GET")

	r.HandleFunc("/settings", handler.HandleUpdateSettings).Methods("PUT")
	r.HandleFunc("/notifications/permission", handler.HandleNotificationPermission).Methods("POST")

	aiRoutes.HandleFunc("/meal", handler.HandleAIMeal).Methods("POST")
	aiRoutes.HandleFunc("/exercise-alternative", handler.HandleAIExerciseAlternative).Methods("POST")
	aiRoutes.HandleFunc("/questions", handler.HandleAIQuestions).Methods("POST")
}

// statusFor maps flow and collaborator errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, activitylog.ErrInvalidLog),
		errors.Is(err, okr.ErrInvalidObjective),
		errors.Is(err, okr.ErrInvalidKeyResult),
		errors.Is(err, assistant.ErrInvalidInput),
		errors.Is(err, playlist.ErrInvalidPlaylistURL),
		errors.Is(err, session.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, okr.ErrObjectiveNotFound),
		errors.Is(err, okr.ErrKeyResultNotFound),
		errors.Is(err, ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ai.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error, what string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Errorf("%s: %s", what, err)
		http.Error(w, "error, "+what+" failed", code)
		return
	}
	log.Debugf("%s rejected: %s", what, err)
	http.Error(w, err.Error(), code)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeOptionalJSON accepts an empty body as the zero value.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return true
	}
	return decodeJSON(w, r, v)
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.state")
	defer span.End()
	pkg.WriteJSON(w, http.StatusOK, handler.service.State())
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.schedule")
	defer span.End()
	pkg.WriteJSON(w, http.StatusOK, ScheduleResponse{
		Activities:          schedule.Daily(),
		CompletedActivities: handler.service.State().CompletedActivities,
	})
}

func (handler *Handler) HandleCompleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.completeActivity")
	defer span.End()

	res, err := handler.service.ToggleActivity(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "complete activity")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (handler *Handler) HandleListObjectives(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.listObjectives")
	defer span.End()

	objectives := handler.service.Objectives(r.URL.Query().Get("quarter"))
	if objectives == nil {
		objectives = []okr.Objective{}
	}
	pkg.WriteJSON(w, http.StatusOK, objectives)
}

func (handler *Handler) HandleAddObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.addObjective")
	defer span.End()

	var o okr.Objective
	if !decodeJSON(w, r, &o) {
		return
	}
	added, err := handler.service.AddObjective(ctx, o)
	if err != nil {
		writeError(w, err, "add objective")
		return
	}
	log.Debugf("new objective added: [%s] %s", added.ID, added.Title)
	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (handler *Handler) HandleUpdateObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.updateObjective")
	defer span.End()

	var o okr.Objective
	if !decodeJSON(w, r, &o) {
		return
	}
	o.ID = mux.Vars(r)["id"]
	if err := handler.service.UpdateObjective(ctx, o); err != nil {
		writeError(w, err, "update objective")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, o)
}

func (handler *Handler) HandleDeleteObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.deleteObjective")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteObjective(ctx, id); err != nil {
		writeError(w, err, "delete objective")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, DeleteObjectiveResponse{DeletedID: id})
}

func (handler *Handler) HandleAddKeyResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.addKeyResult")
	defer span.End()

	var kr okr.KeyResult
	if !decodeJSON(w, r, &kr) {
		return
	}
	added, err := handler.service.AddKeyResult(ctx, mux.Vars(r)["id"], kr)
	if err != nil {
		writeError(w, err, "add key result")
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, added)
}

// HandleUpdateProgress reports found=false for an unknown key result rather
// than failing, the same way linked activities treat it.
func (handler *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.updateProgress")
	defer span.End()

	var req ProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	kr, found, err := handler.service.UpdateProgress(ctx, mux.Vars(r)["id"], req.Delta, req.Absolute)
	if err != nil {
		writeError(w, err, "update progress")
		return
	}
	resp := ProgressResponse{Found: found}
	if found {
		resp.KeyResult = &kr
	}
	pkg.WriteJSON(w, http.StatusOK, resp)
}

func (handler *Handler) HandleCompleteStudy(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.completeStudy")
	defer span.End()

	var req StudyCompleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := handler.service.CompleteStudy(ctx, req.Minutes, req.Topic, req.LinkedKRID)
	if err != nil {
		writeError(w, err, "complete study session")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (handler *Handler) HandleLogWorkoutSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.logWorkoutSet")
	defer span.End()

	var l activitylog.WorkoutLog
	if !decodeJSON(w, r, &l) {
		return
	}
	logged, err := handler.service.LogWorkoutSet(ctx, l)
	if err != nil {
		writeError(w, err, "log workout set")
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, logged)
}

func (handler *Handler) HandleLogCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.logCardio")
	defer span.End()

	var l activitylog.CardioLog
	if !decodeJSON(w, r, &l) {
		return
	}
	logged, res, err := handler.service.LogCardio(ctx, l)
	if err != nil {
		writeError(w, err, "log cardio")
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, FlowResponse{Result: res, Log: logged})
}

func (handler *Handler) HandleCompleteGymSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.completeGymSession")
	defer span.End()

	var req GymCompleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := handler.service.CompleteGymSession(ctx, req.IsWeightTraining, req.DayType, req.LinkedKRID)
	if err != nil {
		writeError(w, err, "complete gym session")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (handler *Handler) HandleCompleteQuickHit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.completeQuickHit")
	defer span.End()

	var req LinkedKRRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}
	res, err := handler.service.CompleteQuickHit(ctx, req.LinkedKRID)
	if err != nil {
		writeError(w, err, "complete quick-hit")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (handler *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.logMeal")
	defer span.End()

	var m activitylog.MealAnalysis
	if !decodeJSON(w, r, &m) {
		return
	}
	logged, res, err := handler.service.LogMeal(ctx, m)
	if err != nil {
		writeError(w, err, "log meal")
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, FlowResponse{Result: res, Log: logged})
}

func (handler *Handler) HandleCompleteMeditation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.completeMeditation")
	defer span.End()

	res, err := handler.service.CompleteMeditation(ctx)
	if err != nil {
		writeError(w, err, "complete meditation")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (handler *Handler) HandlePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.playlist")
	defer span.End()

	info, err := handler.playlists.Resolve(ctx, handler.service.Settings().SpotifyPlaylistURL)
	if err != nil {
		writeError(w, err, "resolve playlist")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, info)
}

func (handler *Handler) HandleSessionSnapshot(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.sessionSnapshot")
	defer span.End()

	kind, err := session.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, err, "get session")
		return
	}
	snap, err := handler.service.SessionSnapshot(kind)
	if err != nil {
		writeError(w, err, "get session")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, snap)
}

func (handler *Handler) HandleSessionAction(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.sessionAction")
	defer span.End()

	vars := mux.Vars(r)
	kind, err := session.ParseKind(vars["kind"])
	if err != nil {
		writeError(w, err, "session action")
		return
	}

	action := vars["action"]
	var snap session.Snapshot
	switch action {
	case "start":
		var req SessionStartRequest
		if !decodeOptionalJSON(w, r, &req) {
			return
		}
		if req.DurationSeconds < 0 {
			http.Error(w, "duration must not be negative", http.StatusBadRequest)
			return
		}
		snap, err = handler.service.StartSession(kind, time.Duration(req.DurationSeconds)*time.Second, req.Topic, req.LinkedKRID)
	case "pause":
		snap, err = handler.service.PauseSession(kind)
	case "resume":
		snap, err = handler.service.ResumeSession(kind)
	case "end":
		var c session.Completion
		c, err = handler.service.EndSession(kind)
		if err == nil {
			pkg.WriteJSON(w, http.StatusOK, c)
			return
		}
	}
	if err != nil {
		writeError(w, err, action+" session")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, snap)
}

func daysParam(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		return DefaultAnalyticsDays
	}
	return days
}

func (handler *Handler) HandleStudyAnalytics(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.studyAnalytics")
	defer span.End()
	pkg.WriteJSON(w, http.StatusOK, handler.service.StudyAnalytics(daysParam(r)))
}

func (handler *Handler) HandleNutritionAnalytics(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.nutritionAnalytics")
	defer span.End()

	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse(pkg.DateLayout, date); err != nil {
			http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	pkg.WriteJSON(w, http.StatusOK, handler.service.NutritionAnalytics(date, daysParam(r)))
}

func (handler *Handler) HandleGymAnalytics(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.gymAnalytics")
	defer span.End()
	pkg.WriteJSON(w, http.StatusOK, handler.service.GymAnalytics())
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.updateSettings")
	defer span.End()

	var req SettingsUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	settings, err := handler.service.UpdateSettings(ctx, req)
	if err != nil {
		writeError(w, err, "update settings")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, settings)
}

func (handler *Handler) HandleNotificationPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.notificationPermission")
	defer span.End()

	var req PermissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := handler.service.RequestNotificationPermission(ctx, req.Granted)
	if err != nil {
		writeError(w, err, "request notification permission")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, map[string]string{"permission": string(p)})
}

func (handler *Handler) countAICall(feature string, err error) {
	if handler.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		outcome = "disabled"
	case err != nil:
		outcome = "error"
	}
	handler.metrics.CounterAICalls.WithLabelValues(feature, outcome).Inc()
}

// writeAIError answers 503 when AI is disabled, 400 for rejected input and
// 502 with the call's own error message otherwise.
func writeAIError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		code = http.StatusBadGateway
	}
	log.Warnf("ai feature failed [%d]: %s", code, err)
	http.Error(w, err.Error(), code)
}

func (handler *Handler) HandleAIMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.aiMeal")
	defer span.End()

	var req MealEstimateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	meal, err := handler.meals.Estimate(ctx, req.Description)
	handler.countAICall("meal", err)
	if err != nil {
		writeAIError(w, err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, meal)
}

func (handler *Handler) HandleAIExerciseAlternative(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.aiExerciseAlternative")
	defer span.End()

	var req ExerciseAlternativeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	plan, ok := schedule.PlanFor(req.DayType)
	if !ok {
		http.Error(w, "unknown workout plan", http.StatusNotFound)
		return
	}
	var exercise *schedule.DetailedExercise
	for _, ph := range plan.Phases {
		for i := range ph.Exercises {
			if ph.Exercises[i].ID == req.ExerciseID {
				exercise = &ph.Exercises[i]
			}
		}
	}
	if exercise == nil {
		http.Error(w, "unknown exercise", http.StatusNotFound)
		return
	}

	alt, err := handler.advisor.Alternative(ctx, *exercise, plan.Name, handler.service.Settings().AvailableEquipment, plan.ExerciseNames())
	handler.countAICall("exercise", err)
	if err != nil {
		writeAIError(w, err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, alt)
}

func (handler *Handler) HandleAIQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.architect.aiQuestions")
	defer span.End()

	var req QuestionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	text, err := handler.questions.Generate(ctx, req.Topic, req.SubTopic, req.SubSubTopic)
	handler.countAICall("questions", err)
	if err != nil {
		writeAIError(w, err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, QuestionsResponse{Questions: text})
}
