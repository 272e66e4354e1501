package service

// Locked is the accounting gate: the storefront stops taking bookings once
// the accrued per-booking commission reaches the configured threshold.
//
// The lock is a level-triggered condition derived on every read from the live
// pending count; nothing stores a lock flag. It stays on until settlement
// archives the pending set, which drives the count back to zero. This is the
// single authoritative definition; every caller goes through here.
func Locked(pendingCount, feeCents, thresholdCents int64) bool {
	return pendingCount*feeCents >= thresholdCents
}
