package latex

import (
	"errors"
	"strings"
)

var delimiterRemover = strings.NewReplacer(`\[`, "", `\]`, "", `\(`, "", `\)`, "")

var ErrNotRenderable = errors.New("could not render the LaTeX equation")

// ForDisplay removes every display and inline math delimiter and trims the result.
// Delimiters are removed literally, without regard to nesting or balance.
func ForDisplay(snippet string) string {
	return strings.TrimSpace(removeDelimiters(snippet))
}

func removeDelimiters(s string) string {
	// Removing one token can join its neighbours into a new token, e.g. `\\[[`.
	for {
		next := delimiterRemover.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

// CheckRenderable rejects math that a preview renderer would fail on:
// empty input, unbalanced braces and unmatched environments.
func CheckRenderable(math string) error {
	if strings.TrimSpace(math) == "" {
		return ErrNotRenderable
	}

	depth := 0
	for i := 0; i < len(math); i++ {
		switch math[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return ErrNotRenderable
			}
		}
	}
	if depth != 0 {
		return ErrNotRenderable
	}

	var envs []string
	for rest := math; ; {
		i := strings.IndexByte(rest, '\\')
		if i < 0 {
			break
		}
		rest = rest[i:]
		if name, tail, ok := envArg(rest, `\begin`); ok {
			if name == "" {
				return ErrNotRenderable
			}
			envs = append(envs, name)
			rest = tail
			continue
		}
		if name, tail, ok := envArg(rest, `\end`); ok {
			if name == "" || len(envs) == 0 || envs[len(envs)-1] != name {
				return ErrNotRenderable
			}
			envs = envs[:len(envs)-1]
			rest = tail
			continue
		}
		rest = rest[min(2, len(rest)):]
	}
	if len(envs) != 0 {
		return ErrNotRenderable
	}
	return nil
}

// envArg matches the control word cmd at the start of s followed by an
// optional run of spaces and a braced name. ok is false when s does not start
// with cmd as a whole control word; name is empty when the argument is malformed.
func envArg(s, cmd string) (name, rest string, ok bool) {
	after, found := strings.CutPrefix(s, cmd)
	if !found || (after != "" && isLetter(after[0])) {
		return "", s, false
	}
	after = strings.TrimLeft(after, " \t\n\r")
	if !strings.HasPrefix(after, "{") {
		return "", s, true
	}
	name, rest, valid := envName(after[1:])
	if !valid {
		return "", s, true
	}
	return name, rest, true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func envName(s string) (name, rest string, ok bool) {
	i := strings.IndexByte(s, '}')
	if i <= 0 {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}
