package gormrepository

import "strings"

func likePattern(search string) string {
	val := strings.TrimSpace(search)
	if val == "" {
		return ""
	}
	return "%" + val + "%"
}
