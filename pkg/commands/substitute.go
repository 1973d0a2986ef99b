package commands

import "strings"

// Expansion is a command ready for the shell. Deferred lists the
// substitutions the shell will evaluate when the command runs, in order of
// appearance.
type Expansion struct {
	Command  string
	Deferred []string
}

// Expand prepares a command template for execution. The launcher never
// evaluates substitutions itself: the command is returned verbatim and the
// shell resolves $(...), `...`, ${...} and $NAME at spawn time.
func Expand(template string) Expansion {
	return Expansion{
		Command:  template,
		Deferred: scanSubstitutions(template),
	}
}

// scanSubstitutions follows POSIX quoting closely enough to skip literal
// text: nothing inside single quotes, and nothing after a backslash
// outside of them.
func scanSubstitutions(s string) []string {
	var found []string
	inSingle, inDouble := false, false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}

		case c == '\\':
			i++

		case c == '\'' && !inDouble:
			inSingle = true

		case c == '"':
			inDouble = !inDouble

		case c == '`':
			end := strings.IndexByte(s[i+1:], '`')
			if end < 0 {
				return append(found, s[i:])
			}
			found = append(found, s[i:i+end+2])
			i += end + 1

		case c == '$' && i+1 < len(s):
			next := s[i+1]
			switch {
			case next == '(':
				end := matchParen(s, i+1)
				if end < 0 {
					return append(found, s[i:])
				}
				found = append(found, s[i:end+1])
				i = end

			case next == '{':
				end := strings.IndexByte(s[i+2:], '}')
				if end < 0 {
					return append(found, s[i:])
				}
				found = append(found, s[i:i+end+3])
				i += end + 2

			case isNameStart(next):
				j := i + 2
				for j < len(s) && isNameChar(s[j]) {
					j++
				}
				found = append(found, s[i:j])
				i = j - 1
			}
		}
	}

	return found
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
