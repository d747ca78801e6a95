package celebration

import "context"

// SnapshotStore persists the full record set. The ledger calls Save after
// every successful mutation and Load once on startup; a failed Save is
// logged, never surfaced.
type SnapshotStore interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
}

// EventSink receives ledger events for the live feed. May be nil.
type EventSink interface {
	CelebrationRegistered(folio string)
	PaymentAdded(folio string, amount float64)
}
