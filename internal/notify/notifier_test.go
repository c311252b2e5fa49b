package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/2beens/lifearchitect/internal/store"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	titles []string
	err    error
}

func (r *recordingSink) Send(_ context.Context, title, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
	return r.err
}

type fakeSlackClient struct {
	channel string
	calls   int
	err     error
}

func (f *fakeSlackClient) PostMessageContext(_ context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.channel = channelID
	f.calls++
	if len(options) == 0 {
		return "", "", errors.New("no message options")
	}
	return channelID, "1751540000.000100", f.err
}

func TestNotifier_SilentUnlessGranted(t *testing.T) {
	ctx := context.Background()
	sink := &recordingSink{}
	n, err := NewNotifier(ctx, store.NewMemoryStore(), sink)
	require.NoError(t, err)
	assert.Equal(t, PermissionDefault, n.Permission())

	require.NoError(t, n.Notify(ctx, "Study Session Complete!", "90 minutes"))
	assert.Empty(t, sink.titles)

	p, err := n.RequestPermission(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, p)

	require.NoError(t, n.Notify(ctx, "Meditation Complete", "well done"))
	assert.Equal(t, []string{"Meditation Complete"}, sink.titles)
}

func TestNotifier_DecidedPermissionIsFinal(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	sink := &recordingSink{}
	n, err := NewNotifier(ctx, s, sink)
	require.NoError(t, err)

	p, err := n.RequestPermission(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, p)

	p, err = n.RequestPermission(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, p)

	require.NoError(t, n.Notify(ctx, "x", "y"))
	assert.Empty(t, sink.titles)

	reloaded, err := NewNotifier(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, reloaded.Permission())
}

func TestNotifier_UnknownStoredPermission(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Save(ctx, s, store.KeyNotificationPermission, "maybe"))

	n, err := NewNotifier(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, PermissionDefault, n.Permission())
}

func TestNotifier_SinkErrorsAreCombined(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Save(ctx, s, store.KeyNotificationPermission, PermissionGranted))

	ok := &recordingSink{}
	bad := &recordingSink{err: errors.New("unreachable")}
	n, err := NewNotifier(ctx, s, bad, ok)
	require.NoError(t, err)

	err = n.Notify(ctx, "Study Session Complete!", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Len(t, ok.titles, 1)
}

func TestSlackSink(t *testing.T) {
	_, err := NewSlackSink("", "C123")
	assert.Error(t, err)

	client := &fakeSlackClient{}
	_, err = NewSlackSinkWithClient(client, "")
	assert.Error(t, err)

	sink, err := NewSlackSinkWithClient(client, "C123")
	require.NoError(t, err)
	require.NoError(t, sink.Send(context.Background(), "Meditation Complete", "15 minutes"))
	assert.Equal(t, "C123", client.channel)
	assert.Equal(t, 1, client.calls)

	client.err = errors.New("channel_not_found")
	err = sink.Send(context.Background(), "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}
