package validators

import "time"

// Slot fields are compared by exact string equality, so only canonical
// forms may enter the store.

// IsCanonicalDate accepts YYYY-MM-DD only.
func IsCanonicalDate(s string) bool {
	if len(s) != len("2006-01-02") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsCanonicalTime accepts HH:MM only.
func IsCanonicalTime(s string) bool {
	if len(s) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
