// If you are AI: This file implements the CONNECT, DISCONNECT and RECONNECT commands.

package command

import "gsteditor/internal/core/graph"

// Connect links a source pad to a sink pad.
type Connect struct {
	Src  string
	Sink string
}

// Kind returns KindConnect.
func (c *Connect) Kind() Kind { return KindConnect }

// Execute links the pads and returns the source pad.
func (c *Connect) Execute(g *graph.Graph, _ graph.Listener) (graph.Ref, error) {
	src, sink, err := findPair(g, c.Src, c.Sink)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	if err := g.Link(src, sink); err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.PadRef(src), nil
}

// String returns "CONNECT <src> TO <sink>".
func (c *Connect) String() string {
	return join(KeywordConnect, c.Src, KeywordTo, c.Sink)
}

// Reconnect links a source pad to a sink pad, first dropping their current links.
type Reconnect struct {
	Src  string
	Sink string
}

// Kind returns KindReconnect.
func (c *Reconnect) Kind() Kind { return KindReconnect }

// Execute relinks the pads and returns the source pad. Nothing changes on failure.
func (c *Reconnect) Execute(g *graph.Graph, _ graph.Listener) (graph.Ref, error) {
	src, sink, err := findPair(g, c.Src, c.Sink)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	if err := g.Relink(src, sink); err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.PadRef(src), nil
}

// String returns "RECONNECT <src> TO <sink>".
func (c *Reconnect) String() string {
	return join(KeywordReconnect, c.Src, KeywordTo, c.Sink)
}

// Disconnect breaks the link of a pad.
type Disconnect struct {
	Pad string
}

// Kind returns KindDisconnect.
func (c *Disconnect) Kind() Kind { return KindDisconnect }

// Execute unlinks the pad from its peer.
func (c *Disconnect) Execute(g *graph.Graph, _ graph.Listener) (graph.Ref, error) {
	pad, err := g.FindPad(c.Pad)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	if err := g.Unlink(pad); err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.PadRef(pad), nil
}

// String returns "DISCONNECT <pad>".
func (c *Disconnect) String() string {
	return join(KeywordDisconnect, c.Pad)
}

// findPair resolves two pad paths.
func findPair(g *graph.Graph, src, sink string) (graph.PadID, graph.PadID, error) {
	a, err := g.FindPad(src)
	if err != nil {
		return graph.NoPad, graph.NoPad, err
	}
	b, err := g.FindPad(sink)
	if err != nil {
		return graph.NoPad, graph.NoPad, err
	}
	return a, b, nil
}

// parseConnect parses <src> TO <sink>.
func parseConnect(line string, args []string) (Command, error) {
	src, sink, err := parsePair(line, args)
	if err != nil {
		return nil, err
	}
	return &Connect{Src: src, Sink: sink}, nil
}

// parseReconnect parses <src> TO <sink>.
func parseReconnect(line string, args []string) (Command, error) {
	src, sink, err := parsePair(line, args)
	if err != nil {
		return nil, err
	}
	return &Reconnect{Src: src, Sink: sink}, nil
}

// parsePair parses the shared "<src> TO <sink>" shape.
func parsePair(line string, args []string) (string, string, error) {
	if err := expectCount(line, args, 3); err != nil {
		return "", "", err
	}
	if err := expectKeyword(line, args[1], KeywordTo); err != nil {
		return "", "", err
	}
	return args[0], args[2], nil
}

// parseDisconnect parses <pad>.
func parseDisconnect(line string, args []string) (Command, error) {
	if err := expectCount(line, args, 1); err != nil {
		return nil, err
	}
	return &Disconnect{Pad: args[0]}, nil
}
