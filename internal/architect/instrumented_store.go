package architect

import (
	"context"

	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// instrumentedStore counts and logs failed writes per key.
type instrumentedStore struct {
	store.Store
	metrics *metrics.Manager
}

func newInstrumentedStore(s store.Store, m *metrics.Manager) store.Store {
	if m == nil {
		return s
	}
	return &instrumentedStore{Store: s, metrics: m}
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.Store.Set(ctx, key, value)
	if err != nil {
		s.metrics.CounterStoreWriteFailures.WithLabelValues(key).Inc()
		log.Errorf("architect: write %s: %s", key, err)
	}
	return err
}
