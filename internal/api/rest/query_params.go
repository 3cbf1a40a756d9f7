package rest

import "strconv"

// parsePositiveInt parses a decimal query value, rejecting zero and
// negative numbers
func parsePositiveInt(raw string) (int, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
