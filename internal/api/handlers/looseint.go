package handlers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// looseInt accepts a JSON number or a numeric string, as form-driven
// clients send ids and quantities either way. Input without a leading
// integer decodes as 0, which matches no deal and is never a valid quantity.
type looseInt int64

func (n *looseInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	*n = looseInt(leadingInt(s))
	return nil
}

// leadingInt parses the optionally signed run of digits at the start of s.
func leadingInt(s string) int64 {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
