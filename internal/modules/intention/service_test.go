package intention

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parishledger/internal/domain"
	"parishledger/internal/modules/search"
)

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Load(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func (m *MockSnapshotStore) Save(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func newTestService(store *MockSnapshotStore) *Service {
	return NewService(store, "parish-intentions", nil, nil)
}

func registerRequest() RegisterIntentionRequest {
	return RegisterIntentionRequest{
		IntentionFor:  "Difunto Juan Pérez",
		IntentionType: domain.IntentionDeceased,
		Slot:          domain.SlotEvening,
		Payment:       50,
	}
}

func TestService_Register_AssignsIdentityAndTimestamp(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, "parish-intentions", mock.Anything).Return(nil)

	svc := newTestService(store)

	record, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Date.IsZero())
	assert.Equal(t, "Difunto Juan Pérez", record.IntentionFor)
	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestService_Register_IDsAreUnique(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(store)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		record, err := svc.Register(context.Background(), registerRequest())
		require.NoError(t, err)
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		seen[record.ID] = true
	}
}

func TestService_Register_NoPerSlotCap(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(store)

	// The UI mentions 20 per slot; the ledger must not enforce it.
	for i := 0; i < 25; i++ {
		_, err := svc.Register(context.Background(), registerRequest())
		require.NoError(t, err)
	}
	assert.Len(t, search.BySlot(svc.All(), domain.SlotEvening), 25)
}

func TestService_Register_Validation(t *testing.T) {
	store := new(MockSnapshotStore)
	svc := newTestService(store)

	cases := map[string]func(*RegisterIntentionRequest){
		"empty intention_for":  func(r *RegisterIntentionRequest) { r.IntentionFor = "  " },
		"unknown type":         func(r *RegisterIntentionRequest) { r.IntentionType = "wedding" },
		"unknown slot":         func(r *RegisterIntentionRequest) { r.Slot = "noon" },
		"non-positive payment": func(r *RegisterIntentionRequest) { r.Payment = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := registerRequest()
			mutate(&req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.Empty(t, svc.All())
}

func TestService_SlotFilter(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(store)

	evening := registerRequest()
	record, err := svc.Register(context.Background(), evening)
	require.NoError(t, err)

	eveningRecords := search.BySlot(svc.All(), domain.SlotEvening)
	require.Len(t, eveningRecords, 1)
	assert.Equal(t, record.ID, eveningRecords[0].ID)

	assert.Empty(t, search.BySlot(svc.All(), domain.SlotMorning))
}

func TestService_PersistFailureDoesNotRollBack(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := newTestService(store)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Len(t, svc.All(), 1)
}

func TestService_Hydrate_FallsBackToSeed(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Load", mock.Anything, "parish-intentions", mock.Anything).Return(errors.New("no snapshot"))

	svc := newTestService(store)
	svc.Hydrate(context.Background(), []domain.Intention{{ID: "1", IntentionFor: "Difunto Juan Pérez"}})

	all := svc.All()
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].ID)
}
