package stringsutil

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitList splits s on sep, trims each element and drops empty ones.
// "1, 2,,3" gives ["1" "2" "3"].
func SplitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return RemoveEmptyStrings(parts)
}
