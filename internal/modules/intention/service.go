package intention

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"parishledger/internal/domain"
)

// Service is the intention ledger. Intentions have no uniqueness constraint
// and are immutable once registered. There is no per-slot cap: the 20
// intentions per mass the office mentions is guidance for the clerk, not a
// rule the ledger enforces.
type Service struct {
	mu      sync.RWMutex
	records []domain.Intention

	store   SnapshotStore
	key     string
	events  EventSink
	loggerf func(format string, args ...interface{})
	now     func() time.Time
	lastID  int64
}

func NewService(store SnapshotStore, key string, events EventSink, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		store:   store,
		key:     key,
		events:  events,
		loggerf: loggerf,
		now:     time.Now,
	}
}

// Hydrate loads the record set from the store, falling back to the seed
// dataset when nothing can be loaded.
func (s *Service) Hydrate(ctx context.Context, fallback []domain.Intention) {
	var records []domain.Intention
	if err := s.store.Load(ctx, s.key, &records); err != nil {
		s.loggerf("level=warn msg=intention snapshot load failed, using seed dataset err=%v", err)
		records = append([]domain.Intention(nil), fallback...)
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Register assigns a fresh id and creation timestamp and appends the
// intention. It only fails on invalid input.
func (s *Service) Register(ctx context.Context, req RegisterIntentionRequest) (*domain.Intention, error) {
	if strings.TrimSpace(req.IntentionFor) == "" {
		return nil, ErrValidation
	}
	if !req.IntentionType.Valid() || !req.Slot.Valid() {
		return nil, ErrValidation
	}
	if req.Payment <= 0 || math.IsNaN(req.Payment) || math.IsInf(req.Payment, 0) {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.Intention{
		ID:            s.nextID(),
		IntentionFor:  req.IntentionFor,
		IntentionType: req.IntentionType,
		Slot:          req.Slot,
		Payment:       req.Payment,
		Date:          s.now(),
	}
	s.records = append(s.records, record)

	if err := s.store.Save(ctx, s.key, s.records); err != nil {
		s.loggerf("level=error msg=failed to persist intention snapshot err=%v", err)
	}

	if s.events != nil {
		s.events.IntentionRegistered(record.ID)
	}
	return &record, nil
}

// All returns a copy of the record set.
func (s *Service) All() []domain.Intention {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Intention(nil), s.records...)
}

// nextID derives ids from the clock, bumped when two registrations land on
// the same nanosecond. Called with the write lock held.
func (s *Service) nextID() string {
	id := s.now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
