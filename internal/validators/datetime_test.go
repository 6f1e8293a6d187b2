package validators

import "testing"

func TestIsCanonicalDate(t *testing.T) {
	valid := []string{"2025-08-16", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		if !IsCanonicalDate(s) {
			t.Fatalf("%q must be canonical", s)
		}
	}

	invalid := []string{"", "2025-8-16", "16-08-2025", "2025/08/16", "2025-13-01", "2025-02-30", "2025-08-16T10:30"}
	for _, s := range invalid {
		if IsCanonicalDate(s) {
			t.Fatalf("%q must be rejected", s)
		}
	}
}

func TestIsCanonicalTime(t *testing.T) {
	valid := []string{"00:00", "10:30", "23:59"}
	for _, s := range valid {
		if !IsCanonicalTime(s) {
			t.Fatalf("%q must be canonical", s)
		}
	}

	invalid := []string{"", "9:30", "10:30:00", "24:00", "10h30", "10:61"}
	for _, s := range invalid {
		if IsCanonicalTime(s) {
			t.Fatalf("%q must be rejected", s)
		}
	}
}
