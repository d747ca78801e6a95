package intention

import "context"

// SnapshotStore persists the full record set after each registration.
type SnapshotStore interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
}

// EventSink receives ledger events for the live feed. May be nil.
type EventSink interface {
	IntentionRegistered(id string)
}
