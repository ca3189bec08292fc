package service

import (
	"encoding/json"
	"errors"

	"campaigniq/internal/api/dto"
)

var errNoJSON = errors.New("no JSON value found in model output")

// extractJSON returns the first balanced JSON object or array embedded in
// free-form model text. Models wrap JSON in prose or markdown fences; the
// scanner tolerates both.
func extractJSON(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		open := text[i]
		if open != '{' && open != '[' {
			continue
		}

		closing := byte('}')
		if open == '[' {
			closing = ']'
		}

		depth := 0
		inString := false
		escaped := false
		for j := i; j < len(text); j++ {
			ch := text[j]
			if escaped {
				escaped = false
				continue
			}
			switch {
			case ch == '\\' && inString:
				escaped = true
			case ch == '"':
				inString = !inString
			case inString:
			case ch == open:
				depth++
			case ch == closing:
				depth--
				if depth == 0 {
					return []byte(text[i : j+1]), nil
				}
			}
		}
	}
	return nil, errNoJSON
}

// DecodeStrict parses model text into dest and validates the result.
// Either the whole payload is usable or the caller takes its one
// fallback branch; there is no partial recovery.
func DecodeStrict(text string, dest any) error {
	raw, err := extractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	return dto.Validate.Struct(dest)
}
