package markdown

import (
	"strconv"
	"strings"
)

// parseTagAttributes scans the attribute portion of a {% ... %} line.
// Supported forms: key="string" (with \" escapes), key=123, key=1.5,
// key=true/false, key=null, key=bareword, plus the #id and .class
// shorthands. Malformed input yields as many attributes as could be
// read — never an error.
func parseTagAttributes(s string) map[string]any {
	attrs := map[string]any{}
	i := 0
	n := len(s)

	skipSpace := func() {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
	}

	readWord := func() string {
		start := i
		for i < n && (isWordByte(s[i]) || s[i] == '-') {
			i++
		}
		return s[start:i]
	}

	for {
		skipSpace()
		if i >= n {
			break
		}

		switch s[i] {
		case '#':
			i++
			if id := readWord(); id != "" {
				attrs["id"] = id
			}
			continue
		case '.':
			i++
			if class := readWord(); class != "" {
				if prev, ok := attrs["class"].(string); ok && prev != "" {
					attrs["class"] = prev + " " + class
				} else {
					attrs["class"] = class
				}
			}
			continue
		}

		key := readWord()
		if key == "" {
			i++
			continue
		}
		skipSpace()
		if i >= n || s[i] != '=' {
			continue
		}
		i++
		skipSpace()

		value, ok := readValue(s, &i)
		if ok {
			attrs[key] = value
		}
	}

	return attrs
}

func readValue(s string, i *int) (any, bool) {
	n := len(s)
	if *i >= n {
		return nil, false
	}

	if s[*i] == '"' {
		*i++
		var b strings.Builder
		for *i < n {
			c := s[*i]
			if c == '\\' && *i+1 < n {
				*i += 2
				b.WriteByte(s[*i-1])
				continue
			}
			if c == '"' {
				*i++
				return b.String(), true
			}
			b.WriteByte(c)
			*i++
		}
		// Unterminated string: take what we have.
		return b.String(), true
	}

	start := *i
	for *i < n && s[*i] != ' ' && s[*i] != '\t' {
		*i++
	}
	word := s[start:*i]
	if word == "" {
		return nil, false
	}

	switch word {
	case "true":
		return true, true
	case "false":
		return false, true
	case "null":
		return nil, true
	}
	if v, err := strconv.Atoi(word); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(word, 64); err == nil {
		return v, true
	}
	return word, true
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
