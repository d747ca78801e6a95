package celebration

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"parishledger/internal/domain"
)

// Service is the celebration ledger. The in-memory record set is
// authoritative; the snapshot store only mirrors it.
type Service struct {
	mu      sync.RWMutex
	records []domain.Celebration

	store   SnapshotStore
	key     string
	events  EventSink
	loggerf func(format string, args ...interface{})
	now     func() time.Time
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
func (s *Service) Hydrate(ctx context.Context, fallback []domain.Celebration) {
	var records []domain.Celebration
	if err := s.store.Load(ctx, s.key, &records); err != nil {
		s.loggerf("level=warn msg=celebration snapshot load failed, using seed dataset err=%v", err)
		records = append([]domain.Celebration(nil), fallback...)
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Register inserts a new celebration. The folio must not already exist;
// on any error the ledger is left unchanged.
func (s *Service) Register(ctx context.Context, req RegisterCelebrationRequest) (*domain.Celebration, error) {
	if strings.TrimSpace(req.Folio) == "" ||
		strings.TrimSpace(req.RequesterName) == "" ||
		strings.TrimSpace(req.CelebrationType) == "" {
		return nil, ErrValidation
	}
	if !validMoney(req.TotalCost) || req.TotalCost <= 0 {
		return nil, ErrValidation
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}

	now := s.now()
	payments := make([]domain.Payment, 0, len(req.InitialPayments))
	for _, p := range req.InitialPayments {
		if !validAmount(p.Amount) {
			return nil, ErrValidation
		}
		payments = append(payments, domain.Payment{Amount: p.Amount, Date: now})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.records {
		if c.Folio == req.Folio {
			return nil, ErrDuplicateFolio
		}
	}

	c := domain.Celebration{
		Folio:           req.Folio,
		RequesterName:   req.RequesterName,
		CelebrationType: req.CelebrationType,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		TotalCost:       req.TotalCost,
		Payments:        payments,
	}
	s.records = append(s.records, c)
	s.persist(ctx)

	if s.events != nil {
		s.events.CelebrationRegistered(c.Folio)
	}

	out := clone(c)
	return &out, nil
}

// AddPayment appends one payment to the folio's history. Overpayment is
// allowed; the derived status simply stays paid.
func (s *Service) AddPayment(ctx context.Context, folio string, amount float64) (*domain.Celebration, error) {
	if !validAmount(amount) {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Folio != folio {
			continue
		}
		s.records[i].Payments = append(s.records[i].Payments, domain.Payment{
			Amount: amount,
			Date:   s.now(),
		})
		s.persist(ctx)

		if s.events != nil {
			s.events.PaymentAdded(folio, amount)
		}

		out := clone(s.records[i])
		return &out, nil
	}
	return nil, ErrNotFound
}

// FindByFolio is an exact, case-sensitive lookup.
func (s *Service) FindByFolio(folio string) (*domain.Celebration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.records {
		if c.Folio == folio {
			out := clone(c)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// All returns a copy of the record set in no particular order; callers sort.
func (s *Service) All() []domain.Celebration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Celebration, 0, len(s.records))
	for _, c := range s.records {
		out = append(out, clone(c))
	}
	return out
}

// persist is called with the write lock held.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.key, s.records); err != nil {
		s.loggerf("level=error msg=failed to persist celebration snapshot err=%v", err)
	}
}

func clone(c domain.Celebration) domain.Celebration {
	c.Payments = append([]domain.Payment(nil), c.Payments...)
	return c
}

func validAmount(a float64) bool {
	return validMoney(a) && a > 0
}

func validMoney(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}
