// If you are AI: This file defines the command variants and the line parser.
// Parsing is purely syntactic; paths are resolved when a command executes.

package command

import (
	"strconv"
	"strings"

	"gsteditor/internal/core/graph"
)

// Kind identifies a command variant.
type Kind uint8

const (
	// KindAddElement adds an element to a container.
	KindAddElement Kind = iota + 1
	// KindAddPad adds a pad to an element from a template.
	KindAddPad
	// KindRemove removes an element or a pad.
	KindRemove
	// KindConnect links two pads.
	KindConnect
	// KindDisconnect unlinks a pad.
	KindDisconnect
	// KindReconnect links two pads, dropping their existing links.
	KindReconnect
	// KindSet sets an element property.
	KindSet
)

var kindNames = map[Kind]string{
	KindAddElement: "add-element",
	KindAddPad:     "add-pad",
	KindRemove:     "remove",
	KindConnect:    "connect",
	KindDisconnect: "disconnect",
	KindReconnect:  "reconnect",
	KindSet:        "set",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one atomic graph mutation.
type Command interface {
	// Kind returns the variant.
	Kind() Kind
	// Execute applies the command. The listener is bound to objects the command creates.
	Execute(g *graph.Graph, l graph.Listener) (graph.Ref, error)
	// String returns the canonical command text.
	String() string
}

// Command keywords. Matching is case insensitive.
const (
	KeywordAdd        = "ADD"
	KeywordRemove     = "REMOVE"
	KeywordConnect    = "CONNECT"
	KeywordDisconnect = "DISCONNECT"
	KeywordReconnect  = "RECONNECT"
	KeywordSet        = "SET"
	KeywordTo         = "TO"
	KeywordUsing      = "USING"
)

// Object types named after ADD and REMOVE.
const (
	ObjectElement = "ELEMENT"
	ObjectPad     = "PAD"
)

// Keywords lists the command keywords in suggestion order.
func Keywords() []string {
	return []string{KeywordAdd, KeywordRemove, KeywordConnect, KeywordDisconnect, KeywordReconnect, KeywordSet}
}

// ObjectTypes lists the object types in suggestion order.
func ObjectTypes() []string {
	return []string{ObjectElement, ObjectPad}
}

// parser turns the arguments following a keyword into a command.
type parser func(line string, args []string) (Command, error)

// parsers maps keywords to argument parsers.
var parsers = map[string]parser{
	KeywordAdd:        parseAdd,
	KeywordRemove:     parseRemove,
	KeywordConnect:    parseConnect,
	KeywordDisconnect: parseDisconnect,
	KeywordReconnect:  parseReconnect,
	KeywordSet:        parseSet,
}

// Parse parses one command line. Errors are *SyntaxError.
func Parse(line string) (Command, error) {
	tok, err := split(line)
	if err != nil {
		return nil, syntaxf(line, "%v", err)
	}
	if len(tok.words) == 0 {
		return nil, syntaxf(line, "empty command")
	}

	keyword := strings.ToUpper(tok.words[0])
	p, ok := parsers[keyword]
	if !ok {
		return nil, syntaxf(line, "unknown command `%s`.", tok.words[0])
	}
	return p(line, tok.words[1:])
}

// is reports whether word is the keyword, ignoring case.
func is(word, keyword string) bool {
	return strings.EqualFold(word, keyword)
}

// objectType parses ELEMENT or PAD.
func objectType(line, word string) (string, error) {
	switch {
	case is(word, ObjectElement):
		return ObjectElement, nil
	case is(word, ObjectPad):
		return ObjectPad, nil
	}
	return "", syntaxf(line, "unknown object type `%s`.", word)
}

// expectCount checks the argument count against the allowed counts.
func expectCount(line string, args []string, allowed ...int) error {
	for _, n := range allowed {
		if len(args) == n {
			return nil
		}
	}
	return syntaxf(line, "invalid arguments count. Expected %s, but %d found.", listCounts(allowed), len(args))
}

// expectKeyword checks that word is the keyword.
func expectKeyword(line, word, keyword string) error {
	if !is(word, keyword) {
		return syntaxf(line, "expected `%s`, but %s found.", strings.ToLower(keyword), word)
	}
	return nil
}

// listCounts renders counts as "2, 3, 4 or 5".
func listCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
