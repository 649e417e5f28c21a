// If you are AI: This file generates a Go program that builds a graph with go-gst.
// The program model is rendered with text/template and formatted with go/format.

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

// Options control Go generation.
type Options struct {
	// Package is the package clause; "main" also emits a main function. Default "main".
	Package string
	// Pipeline is the runtime pipeline name. Default "pipeline".
	Pipeline string
}

// program is the template model.
type program struct {
	Package  string
	Pipeline string
	Main     bool
	Elements []elementDecl
	Links    []linkDecl
}

// elementDecl declares one element variable.
type elementDecl struct {
	Var     string
	Factory string
	Name    string
	Parent  string // variable the element is added to
	Bin     string // bin variable for containers with children, else empty
	Props   []propDecl
}

// propDecl is one non-default property assignment.
type propDecl struct {
	Name string
	Expr string
	Enum bool // set through SetArg by nick
}

// linkDecl is one pad link.
type linkDecl struct {
	Src       string
	Sink      string
	SrcExpr   string
	SinkExpr  string
	SrcVar    string
	SrcPad    string
	Sometimes bool // the source pad only exists at runtime
}

// reserved names the generated code already uses.
var reserved = map[string]bool{
	"pipeline": true, "err": true, "fmt": true, "gst": true, "glib": true,
	"pad": true, "ret": true, "loop": true, "msg": true, "main": true, "Build": true,
}

// Go returns a gofmt'ed Go source file that builds g with go-gst.
func Go(g *graph.Graph, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Pipeline == "" {
		opts.Pipeline = factory.RootFactory
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}

	prog := program{Package: opts.Package, Pipeline: opts.Pipeline, Main: opts.Package == "main"}
	vars := map[graph.NodeID]string{g.Root(): "pipeline"}
	bins := map[graph.NodeID]string{g.Root(): "pipeline"}
	used := map[string]bool{}

	g.Walk(g.Root(), func(n *graph.Node, depth int) bool {
		if n.ID() == g.Root() {
			return true
		}
		v := identifier(g.Path(n.ID()), used)
		vars[n.ID()] = v
		decl := elementDecl{Var: v, Factory: n.Factory().Name, Name: n.Name(), Parent: bins[n.Parent()]}
		if n.IsContainer() && len(n.Children()) > 0 {
			decl.Bin = identifier(v+"Bin", used)
			bins[n.ID()] = decl.Bin
		}
		for _, p := range g.Properties(n.ID()) {
			if !p.Default {
				decl.Props = append(decl.Props, goProperty(p))
			}
		}
		prog.Elements = append(prog.Elements, decl)
		return true
	})

	g.Walk(g.Root(), func(n *graph.Node, depth int) bool {
		for _, id := range n.Pads() {
			p, _ := g.Pad(id)
			if p.IsLinked() && p.Direction() == factory.DirectionSrc {
				prog.Links = append(prog.Links, goLink(g, vars, p))
			}
		}
		return true
	})

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, prog); err != nil {
		return nil, fmt.Errorf("rendering program: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting program: %w", err)
	}
	return src, nil
}

// goProperty renders a property value as a typed Go expression.
func goProperty(p graph.PropertyEntry) propDecl {
	v := p.Value
	d := propDecl{Name: p.Spec.Name}
	switch p.Spec.Type {
	case factory.TypeBool:
		d.Expr = strconv.FormatBool(v.Bool())
	case factory.TypeInt:
		d.Expr = fmt.Sprintf("int(%d)", v.Int())
	case factory.TypeInt64:
		d.Expr = fmt.Sprintf("int64(%d)", v.Int())
	case factory.TypeUint:
		d.Expr = fmt.Sprintf("uint(%d)", v.Uint())
	case factory.TypeUint64:
		d.Expr = fmt.Sprintf("uint64(%d)", v.Uint())
	case factory.TypeFloat:
		d.Expr = fmt.Sprintf("float32(%s)", v.String())
	case factory.TypeDouble:
		d.Expr = fmt.Sprintf("float64(%s)", v.String())
	case factory.TypeEnum:
		d.Expr, d.Enum = strconv.Quote(v.String()), true
	default:
		d.Expr = strconv.Quote(v.String())
	}
	return d
}

// goLink renders the pad expressions of one link.
func goLink(g *graph.Graph, vars map[graph.NodeID]string, src *graph.Pad) linkDecl {
	sink, _ := g.Pad(src.Peer())
	return linkDecl{
		Src:       g.PadPath(src.ID()),
		Sink:      g.PadPath(sink.ID()),
		SrcExpr:   padExpr(vars[src.Node()], src),
		SinkExpr:  padExpr(vars[sink.Node()], sink),
		SrcVar:    vars[src.Node()],
		SrcPad:    src.Name(),
		Sometimes: src.Template().Presence == factory.PresenceSometimes,
	}
}

// padExpr returns the go-gst call that obtains the pad.
func padExpr(v string, p *graph.Pad) string {
	if p.Template().Presence == factory.PresenceRequest {
		return fmt.Sprintf("%s.GetRequestPad(%q)", v, p.Name())
	}
	return fmt.Sprintf("%s.GetStaticPad(%q)", v, p.Name())
}

// identifier turns a path into an unused lowerCamel Go identifier.
func identifier(path string, used map[string]bool) string {
	var b strings.Builder
	upper := false
	for _, r := range path {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		} else if b.Len() == 0 {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	base := b.String()
	if base == "" || !unicode.IsLetter([]rune(base)[0]) {
		base = "el" + base
	}
	if token.IsKeyword(base) || reserved[base] {
		base += "El"
	}
	name := base
	for i := 2; used[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	used[name] = true
	return name
}

var goTemplate = template.Must(template.New("program").Parse(`// Code generated by gsteditor. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{if .Main}}	"os"

	"github.com/go-gst/go-glib/glib"
{{end}}
	"github.com/go-gst/go-gst/gst"
)

// Build creates the {{.Pipeline}} pipeline.
func Build() (*gst.Pipeline, error) {
	gst.Init(nil)

	pipeline, err := gst.NewPipeline({{printf "%q" .Pipeline}})
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}
{{range .Elements}}
	{{.Var}}, err := gst.NewElementWithName({{printf "%q" .Factory}}, {{printf "%q" .Name}})
	if err != nil {
		return nil, fmt.Errorf({{printf "creating %s: %%w" .Name | printf "%q"}}, err)
	}
{{- $el := .Var}}
{{- range .Props}}
{{- if .Enum}}
	{{$el}}.SetArg({{printf "%q" .Name}}, {{.Expr}})
{{- else}}
	if err := {{$el}}.SetProperty({{printf "%q" .Name}}, {{.Expr}}); err != nil {
		return nil, fmt.Errorf({{printf "setting %s: %%w" .Name | printf "%q"}}, err)
	}
{{- end}}
{{- end}}
	if err := {{.Parent}}.Add({{.Var}}); err != nil {
		return nil, err
	}
{{- if .Bin}}
	{{.Bin}} := gst.ToGstBin({{.Var}})
{{- end}}
{{end}}
{{- range .Links}}
{{- if .Sometimes}}
	{{.SrcVar}}.Connect("pad-added", func(_ *gst.Element, pad *gst.Pad) {
		if pad.GetName() == {{printf "%q" .SrcPad}} {
			pad.Link({{.SinkExpr}})
		}
	})
{{- else}}
	if ret := {{.SrcExpr}}.Link({{.SinkExpr}}); ret != gst.PadLinkOK {
		return nil, fmt.Errorf({{printf "linking %s to %s: %%s" .Src .Sink | printf "%q"}}, ret)
	}
{{- end}}
{{- end}}

	return pipeline, nil
}
{{if .Main}}
func main() {
	pipeline, err := Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	loop := glib.NewMainLoop(glib.MainContextDefault(), false)
	pipeline.GetPipelineBus().AddWatch(func(msg *gst.Message) bool {
		switch msg.Type() {
		case gst.MessageEOS:
			loop.Quit()
		case gst.MessageError:
			fmt.Fprintln(os.Stderr, msg.ParseError())
			loop.Quit()
		}
		return true
	})

	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	loop.Run()
	pipeline.SetState(gst.StateNull)
}
{{end}}`))
