// If you are AI: This file implements completion candidates for partial command lines.
// Suggestions are advisory: any lookup failure yields no candidates.

package command

import (
	"strings"

	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

// Suggest returns completions for the token being typed at the end of line.
// A line ending in white space completes a new token.
func Suggest(line string, g *graph.Graph) []string {
	tok, _ := split(line)
	words, current := tok.words, ""
	if tok.open {
		words, current = words[:len(words)-1], words[len(words)-1]
	}

	var candidates []string
	if len(words) == 0 {
		candidates = Keywords()
	} else {
		candidates = argumentCandidates(strings.ToUpper(words[0]), words[1:], g)
	}
	return filterPrefix(candidates, current)
}

// argumentCandidates returns candidates for the argument following args.
func argumentCandidates(keyword string, args []string, g *graph.Graph) []string {
	switch keyword {
	case KeywordAdd:
		return addCandidates(args, g)
	case KeywordRemove:
		return removeCandidates(args, g)
	case KeywordConnect:
		return pairCandidates(args, g, false)
	case KeywordReconnect:
		return pairCandidates(args, g, true)
	case KeywordDisconnect:
		if len(args) == 0 {
			return g.PadPaths(func(p *graph.Pad) bool { return p.IsLinked() })
		}
	case KeywordSet:
		return setCandidates(args, g)
	}
	return nil
}

// addCandidates completes ADD ELEMENT and ADD PAD.
func addCandidates(args []string, g *graph.Graph) []string {
	if len(args) == 0 {
		return ObjectTypes()
	}
	n := len(args)
	if is(args[0], ObjectElement) {
		switch {
		case n == 1:
			return g.Catalog().Names()
		case n == 2:
			return []string{KeywordTo}
		case n == 3 && is(args[2], KeywordTo), n == 4 && is(args[3], KeywordTo):
			return g.ElementPaths(true)
		case n == 3:
			return []string{KeywordTo}
		}
		return nil
	}
	if !is(args[0], ObjectPad) {
		return nil
	}
	switch n {
	case 1:
		return []string{KeywordTo}
	case 2:
		return g.ElementPaths(false)
	case 3:
		return []string{KeywordUsing}
	case 4:
		return addableTemplates(g, args[2])
	}
	return nil
}

// addableTemplates lists the templates of an element that can produce another pad.
func addableTemplates(g *graph.Graph, path string) []string {
	id, err := g.FindElement(path)
	if err != nil {
		return nil
	}
	n, _ := g.Node(id)
	var names []string
	for _, tpl := range n.Factory().Templates {
		if tpl.Presence != factory.PresenceAlways {
			names = append(names, tpl.Name)
		}
	}
	return names
}

// removeCandidates completes REMOVE.
func removeCandidates(args []string, g *graph.Graph) []string {
	switch {
	case len(args) == 0:
		return ObjectTypes()
	case len(args) == 1 && is(args[0], ObjectElement):
		return g.ElementPaths(false)
	case len(args) == 1 && is(args[0], ObjectPad):
		return g.PadPaths(func(p *graph.Pad) bool { return p.Template().Presence != factory.PresenceAlways })
	}
	return nil
}

// pairCandidates completes CONNECT and RECONNECT, offering only sinks the source can link to.
func pairCandidates(args []string, g *graph.Graph, relink bool) []string {
	switch len(args) {
	case 0:
		return g.PadPaths(func(p *graph.Pad) bool {
			return p.Direction() == factory.DirectionSrc && (relink || !p.IsLinked())
		})
	case 1:
		return []string{KeywordTo}
	case 2:
		src, err := g.FindPad(args[0])
		if err != nil {
			return nil
		}
		return g.PadPaths(func(p *graph.Pad) bool {
			return g.CanLink(src, p.ID(), relink) == nil
		})
	}
	return nil
}

// setCandidates completes SET with element paths, property names and values.
func setCandidates(args []string, g *graph.Graph) []string {
	if len(args) == 0 {
		return g.ElementPaths(false)
	}
	id, err := g.FindElement(args[0])
	if err != nil {
		return nil
	}
	n, _ := g.Node(id)
	switch len(args) {
	case 1:
		names := make([]string, 0, len(n.Factory().Properties))
		for _, p := range n.Factory().Properties {
			names = append(names, p.Name)
		}
		return names
	case 2:
		spec, ok := n.Factory().Property(args[1])
		if !ok {
			return nil
		}
		switch spec.Type {
		case factory.TypeEnum:
			return spec.Choices
		case factory.TypeBool:
			return []string{"true", "false"}
		}
	}
	return nil
}

// filterPrefix keeps candidates starting with prefix, ignoring case.
func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return append([]string(nil), candidates...)
	}
	lower := strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	return out
}
