// If you are AI: This file splits command lines into tokens.
// Tokens are separated by white space; double quotes group a token and \" escapes a quote.

package command

import (
	"errors"
	"strings"
	"unicode"
)

// errUnterminated is returned by split for an open quote at end of line.
var errUnterminated = errors.New("unterminated quote")

// tokens is the result of splitting a line.
type tokens struct {
	words []string
	// open is true when the line ends inside a token, so the last word is partial.
	open bool
}

// split tokenizes a command line.
func split(line string) (tokens, error) {
	var (
		out      tokens
		cur      strings.Builder
		inToken  bool
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && inQuotes && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\'):
			i++
			cur.WriteRune(runes[i])
		case r == '"':
			inQuotes = !inQuotes
			inToken = true
		case unicode.IsSpace(r) && !inQuotes:
			if inToken {
				out.words = append(out.words, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		out.words = append(out.words, cur.String())
		out.open = true
	}
	if inQuotes {
		return out, errUnterminated
	}
	return out, nil
}

// quote returns the token text that splits back into word.
func quote(word string) string {
	if word != "" && !strings.ContainsFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\\'
	}) {
		return word
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range word {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// join quotes and joins words into a command line.
func join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = quote(w)
	}
	return strings.Join(quoted, " ")
}
