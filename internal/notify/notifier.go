package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/lifearchitect/internal/store"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

func (p Permission) Valid() bool {
	return p == PermissionDefault || p == PermissionGranted || p == PermissionDenied
}

// Sink delivers a notification somewhere a person will see it.
type Sink interface {
	Send(ctx context.Context, title, body string) error
}

// Notifier fans notifications out to its sinks once the user has granted
// permission. Until then every Notify call is a silent no-op.
type Notifier struct {
	store store.Store
	sinks []Sink

	mu         sync.RWMutex
	permission Permission
}

func NewNotifier(ctx context.Context, s store.Store, sinks ...Sink) (*Notifier, error) {
	p, err := store.Load(ctx, s, store.KeyNotificationPermission, PermissionDefault)
	if err != nil {
		return nil, err
	}
	if !p.Valid() {
		log.Warnf("notify: unknown stored permission [%s], using default", p)
		p = PermissionDefault
	}
	return &Notifier{
		store:      s,
		sinks:      sinks,
		permission: p,
	}, nil
}

func (n *Notifier) Permission() Permission {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.permission
}

// RequestPermission records the user's answer to the permission prompt. An
// already decided permission is returned unchanged.
func (n *Notifier) RequestPermission(ctx context.Context, granted bool) (Permission, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.permission != PermissionDefault {
		return n.permission, nil
	}
	n.permission = PermissionDenied
	if granted {
		n.permission = PermissionGranted
	}
	return n.permission, store.Save(ctx, n.store, store.KeyNotificationPermission, n.permission)
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if n.Permission() != PermissionGranted {
		return nil
	}

	var errs error
	for _, s := range n.sinks {
		if err := s.Send(ctx, title, body); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%T: %w", s, err))
		}
	}
	if errs != nil {
		log.Errorf("notify [%s]: %s", title, errs)
	}
	return errs
}
