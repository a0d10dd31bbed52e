package parcel

import "time"

// HistoryEntry is one line of a parcel's status ledger. Entries are appended
// in the order their triggering operations execute and are never truncated or
// reordered.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
	Note      string
}
