package core

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

const TemplateHeader = "X-Exercises-Template"

type RendererOptions struct {
	Env          string
	DebugHeaders bool
}

// Renderer executes the *.html templates found at the root of an fs.FS.
// Reload swaps the parsed set atomically so it can run while requests are served.
type Renderer struct {
	fsys     fs.FS
	opts     RendererOptions
	tmpl     atomic.Pointer[template.Template]
	minifier *minify.M
}

func NewRenderer(fsys fs.FS, opts RendererOptions) (*Renderer, error) {
	r := &Renderer{fsys: fsys, opts: opts}

	if opts.Env == "prod" {
		r.minifier = minify.New()
		r.minifier.Add("text/html", &minhtml.Minifier{
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
			KeepDefaultAttrVals: true,
		})
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Reload() error {
	tmpl, err := template.New("").Funcs(TemplateFuncs(r.opts.Env)).ParseFS(r.fsys, "*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl.Store(tmpl)
	return nil
}

func (r *Renderer) Templates() []string {
	var names []string
	for _, t := range r.tmpl.Load().Templates() {
		if strings.HasSuffix(t.Name(), ".html") {
			names = append(names, t.Name())
		}
	}
	return names
}

// Render writes the named template as a complete HTML response. Nothing is
// written to w if execution fails.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	body, err := r.Execute(name, data)
	if err != nil {
		return err
	}

	if r.opts.DebugHeaders {
		w.Header().Set(TemplateHeader, name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(body)
	return err
}

// Execute returns the rendered page, minified in prod.
func (r *Renderer) Execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Load().ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	if r.minifier == nil {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := r.minifier.Minify("text/html", &out, &buf); err != nil {
		return nil, fmt.Errorf("minify %s: %w", name, err)
	}
	return out.Bytes(), nil
}

func TemplateFuncs(env string) template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["capitalize"] = Capitalize
	funcs["liveReload"] = func() template.HTML {
		return LiveReloadScript(env)
	}
	return funcs
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
