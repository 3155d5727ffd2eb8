package service

import "fmt"

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// normalizeName is the canonical key form for food and plan names:
// lowercase, trimmed, single-spaced, diacritics stripped.
func normalizeName(name string) string {
	return foldName(name)
}
