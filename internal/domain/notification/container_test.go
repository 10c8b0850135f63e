package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockService serves a fixed list and can fail deletes for selected IDs.
type mockService struct {
	mu        sync.Mutex
	list      []Notification
	listErr   error
	readErr   error
	failIDs   map[string]bool
	deleted   []string
	readCalls []string
}

func (m *mockService) Create(_ context.Context, _ CreateRequest) (*Notification, error) {
	return nil, errors.New("not used")
}

func (m *mockService) ListByUser(_ context.Context, _ string) ([]Notification, error) {
	return m.list, m.listErr
}

func (m *mockService) MarkAsRead(_ context.Context, id string) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readCalls = append(m.readCalls, id)
	if m.readErr != nil {
		return nil, m.readErr
	}
	return &Notification{ID: id, IsRead: true}, nil
}

func (m *mockService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failIDs[id] {
		return errors.Errorf("delete %s failed", id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func fixtures() []Notification {
	return []Notification{
		{ID: "n1", Type: TypeOrder, Message: "Order confirmed", IsRead: false},
		{ID: "n2", Type: TypePromotion, Message: "Spring sale", IsRead: true},
		{ID: "n3", Type: TypePayment, Message: "Payment received", IsRead: false},
	}
}

func signedIn(t *testing.T, svc *mockService) *Container {
	t.Helper()
	c := NewContainer(svc)
	require.NoError(t, c.HandleSignIn(context.Background(), "u1"))
	return c
}

func TestContainer_UnreadCount(t *testing.T) {
	c := signedIn(t, &mockService{list: fixtures()})
	assert.Equal(t, 2, c.UnreadCount())
}

func TestContainer_UnauthenticatedMutationsFail(t *testing.T) {
	svc := &mockService{list: fixtures()}
	c := NewContainer(svc)

	require.ErrorIs(t, c.MarkAsRead(context.Background(), "n1"), ErrUnauthenticated)
	require.ErrorIs(t, c.Delete(context.Background(), "n1"), ErrUnauthenticated)
	require.ErrorIs(t, c.ClearAll(context.Background()), ErrUnauthenticated)
	assert.Empty(t, svc.readCalls)
	assert.Empty(t, svc.deleted)
}

func TestContainer_MarkAsReadMirrorsAfterSuccess(t *testing.T) {
	svc := &mockService{list: fixtures()}
	c := signedIn(t, svc)

	require.NoError(t, c.MarkAsRead(context.Background(), "n1"))

	assert.Equal(t, []string{"n1"}, svc.readCalls)
	assert.Equal(t, 1, c.UnreadCount())
}

func TestContainer_MarkAsReadFailureLeavesStateUntouched(t *testing.T) {
	svc := &mockService{list: fixtures(), readErr: errors.New("boom")}
	c := signedIn(t, svc)

	require.Error(t, c.MarkAsRead(context.Background(), "n1"))
	assert.Equal(t, 2, c.UnreadCount())
}

func TestContainer_DeleteRemovesLocally(t *testing.T) {
	svc := &mockService{list: fixtures()}
	c := signedIn(t, svc)

	require.NoError(t, c.Delete(context.Background(), "n2"))

	assert.Len(t, c.Notifications(), 2)
	assert.Equal(t, []string{"n2"}, svc.deleted)
}

func TestContainer_ClearAllDeletesEverything(t *testing.T) {
	svc := &mockService{list: fixtures()}
	c := signedIn(t, svc)

	require.NoError(t, c.ClearAll(context.Background()))

	assert.Empty(t, c.Notifications())
	assert.ElementsMatch(t, []string{"n1", "n2", "n3"}, svc.deleted)
}

func TestContainer_ClearAllPartialFailure(t *testing.T) {
	// One delete fails: the survivors stay in local state, the succeeded
	// deletes remain applied, and no retry or rollback happens.
	svc := &mockService{
		list:    fixtures(),
		failIDs: map[string]bool{"n2": true},
	}
	c := signedIn(t, svc)

	err := c.ClearAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n2")

	remaining := c.Notifications()
	require.Len(t, remaining, 1)
	assert.Equal(t, "n2", remaining[0].ID)
	assert.ElementsMatch(t, []string{"n1", "n3"}, svc.deleted)
}

func TestContainer_SignOutDiscardsState(t *testing.T) {
	svc := &mockService{list: fixtures()}
	c := signedIn(t, svc)

	c.HandleSignOut()

	assert.Empty(t, c.Notifications())
	assert.Equal(t, 0, c.UnreadCount())
}
