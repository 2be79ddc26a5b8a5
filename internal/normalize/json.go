package normalize

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSON parses the document and writes it back without whitespace. Escaped
// characters are decoded and written literally, except quotes, backslashes
// and control characters. When an object repeats a key the last value wins
// at the position of the first occurrence. Numbers are kept as written.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Normalize(text string) (string, error) {
	if !gjson.Valid(text) {
		return "", errInvalidJSON
	}
	out := appendJSONValue(make([]byte, 0, len(text)), gjson.Parse(text))
	return string(out), nil
}

func appendJSONValue(dst []byte, v gjson.Result) []byte {
	switch {
	case v.IsObject():
		var keys []string
		values := make(map[string]gjson.Result)
		v.ForEach(func(key, value gjson.Result) bool {
			if _, seen := values[key.Str]; !seen {
				keys = append(keys, key.Str)
			}
			values[key.Str] = value
			return true
		})
		dst = append(dst, '{')
		for i, key := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, key)
			dst = append(dst, ':')
			dst = appendJSONValue(dst, values[key])
		}
		return append(dst, '}')

	case v.IsArray():
		dst = append(dst, '[')
		first := true
		v.ForEach(func(_, value gjson.Result) bool {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendJSONValue(dst, value)
			return true
		})
		return append(dst, ']')

	case v.Type == gjson.String:
		return appendJSONString(dst, v.Str)

	default:
		return append(dst, v.Raw...)
	}
}

// appendJSONString quotes s, escaping only what JSON requires.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if c < 0x20 {
				dst = append(dst, `\u00`...)
				if c < 0x10 {
					dst = append(dst, '0')
				}
				dst = strconv.AppendUint(dst, uint64(c), 16)
				continue
			}
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
