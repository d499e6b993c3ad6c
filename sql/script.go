package sql

import "strings"

// SplitStatements splits a script into individual statements on semicolons.
// Semicolons inside single-quoted strings, double-quoted identifiers, line
// comments and block comments do not terminate a statement. Fragments that
// hold nothing but whitespace or comments are dropped.
func SplitStatements(script string) []string {
	var statements []string
	var current strings.Builder

	runes := []rune(script)
	i := 0
	for i < len(runes) {
		ch := runes[i]

		switch ch {
		case '\'':
			end := scanQuoted(runes, i, '\'')
			current.WriteString(string(runes[i:end]))
			i = end
			continue

		case '"':
			end := scanQuoted(runes, i, '"')
			current.WriteString(string(runes[i:end]))
			i = end
			continue

		case '-':
			if i+1 < len(runes) && runes[i+1] == '-' {
				end := scanLineComment(runes, i)
				current.WriteString(string(runes[i:end]))
				i = end
				continue
			}

		case '/':
			if i+1 < len(runes) && runes[i+1] == '*' {
				end := scanBlockComment(runes, i)
				current.WriteString(string(runes[i:end]))
				i = end
				continue
			}

		case ';':
			if statement := strings.TrimSpace(current.String()); !isBlank(statement) {
				statements = append(statements, statement)
			}
			current.Reset()
			i++
			continue
		}

		current.WriteRune(ch)
		i++
	}

	if statement := strings.TrimSpace(current.String()); !isBlank(statement) {
		statements = append(statements, statement)
	}

	return statements
}

// Keyword returns the first bare word of a statement, uppercased, with any
// leading whitespace and comments skipped. An empty statement yields "".
func Keyword(statement string) string {
	runes := []rune(statement)
	i := skipBlank(runes, 0)

	start := i
	for i < len(runes) && isWordRune(runes[i]) {
		i++
	}
	return strings.ToUpper(string(runes[start:i]))
}

// IsQuery reports whether a statement produces a result set rather than
// modifying data.
func IsQuery(statement string) bool {
	switch Keyword(statement) {
	case "SELECT", "PRAGMA", "EXPLAIN", "WITH", "VALUES":
		return true
	default:
		return false
	}
}

// scanQuoted returns the index just past a quoted region starting at
// position i. A doubled quote character is an escape, not a terminator.
func scanQuoted(runes []rune, i int, quote rune) int {
	i++ // opening quote
	for i < len(runes) {
		if runes[i] == quote {
			if i+1 < len(runes) && runes[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return i
}

// scanLineComment returns the index just past a -- comment starting at i.
// The trailing newline stays in the statement.
func scanLineComment(runes []rune, i int) int {
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

// scanBlockComment returns the index just past a /* */ comment starting at i.
func scanBlockComment(runes []rune, i int) int {
	i += 2 // opening /*
	for i < len(runes) {
		if runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return i
}

// skipBlank returns the first index at or after i that is neither
// whitespace nor inside a comment.
func skipBlank(runes []rune, i int) int {
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '-' && i+1 < len(runes) && runes[i+1] == '-':
			i = scanLineComment(runes, i)
		case ch == '/' && i+1 < len(runes) && runes[i+1] == '*':
			i = scanBlockComment(runes, i)
		default:
			return i
		}
	}
	return i
}

// isBlank reports whether a fragment holds nothing but whitespace and
// comments.
func isBlank(fragment string) bool {
	runes := []rune(fragment)
	return skipBlank(runes, 0) >= len(runes)
}

func isWordRune(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
