package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("key not found")

// Keys of the persisted dashboard state. Each is loaded and written on its own.
const (
	KeyTheme                  = "lifeArchitectTheme"
	KeyPoints                 = "lifeArchitectPoints"
	KeyStudyHours             = "lifeArchitectStudyHours"
	KeyStudySessionLogs       = "lifeArchitectStudySessionLogs"
	KeyCompletedActivities    = "lifeArchitectCompletedActivities"
	KeyGymDayIndex            = "lifeArchitectGymDayIndex"
	KeyWorkoutLogs            = "lifeArchitectWorkoutLogs"
	KeyCardioLogs             = "lifeArchitectCardioLogs"
	KeyQuickHitStreak         = "lifeArchitectQuickHitStreak"
	KeyLastQuickHitDate       = "lifeArchitectLastQuickHitDate"
	KeySpotifyPlaylistURL     = "lifeArchitectSpotifyPlaylistUrl"
	KeyAvailableEquipment     = "lifeArchitectAvailableEquipment"
	KeyDailyNutrition         = "lifeArchitectDailyNutrition"
	KeyObjectives             = "lifeArchitectObjectives"
	KeyNotificationPermission = "lifeArchitectNotificationPermission"
)

// AllKeys lists every key in a stable order.
var AllKeys = []string{
	KeyTheme,
	KeyPoints,
	KeyStudyHours,
	KeyStudySessionLogs,
	KeyCompletedActivities,
	KeyGymDayIndex,
	KeyWorkoutLogs,
	KeyCardioLogs,
	KeyQuickHitStreak,
	KeyLastQuickHitDate,
	KeySpotifyPlaylistURL,
	KeyAvailableEquipment,
	KeyDailyNutrition,
	KeyObjectives,
	KeyNotificationPermission,
}

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=store_test

// Store is a flat key-value store holding JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Keys(ctx context.Context) ([]string, error)
}

// Load reads key into a value of type T. A missing key yields def. A value
// that cannot be decoded is logged and also yields def, so one corrupt key
// never blocks the rest of the state from loading.
func Load[T any](ctx context.Context, s Store, key string, def T) (_ T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("load %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warnf("stored value for [%s] is corrupt, using default: %s", key, err)
		return def, nil
	}
	return v, nil
}

// Save writes v under key as JSON.
func Save(ctx context.Context, s Store, key string, v any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Snapshot returns the raw value of every stored key.
func Snapshot(ctx context.Context, s Store) (map[string]json.RawMessage, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	snapshot := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raw, err := s.Get(ctx, k)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", k, err)
		}
		if !json.Valid(raw) {
			log.Warnf("snapshot: skipping non-json value under [%s]", k)
			continue
		}
		snapshot[k] = raw
	}
	return snapshot, nil
}

// Restore writes every entry of a snapshot back into s.
func Restore(ctx context.Context, s Store, snapshot map[string]json.RawMessage) error {
	for k, v := range snapshot {
		if err := s.Set(ctx, k, v); err != nil {
			return fmt.Errorf("restore %s: %w", k, err)
		}
	}
	return nil
}
