package utils

import (
	"strconv"
	"strings"
)

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

func ConvertStringToInt(v string) (int, error) {
	if res, err := strconv.Atoi(v); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

// SplitHashtags turns the wire form "techno, berlin,rave" into a trimmed
// list. Empty segments are dropped, duplicates and order are preserved.
func SplitHashtags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
