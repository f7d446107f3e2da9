package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer formats step output. The zero value is not usable; call New.
type Renderer struct {
	plain  bool
	wrap   int
	styles Styles
	md     *glamour.TermRenderer
}

// Options configures a Renderer.
type Options struct {
	Plain    bool
	WordWrap int
	Theme    *Theme // nil = DetectTheme
}

// New builds a Renderer. Markdown rendering uses the notty glamour style in
// plain mode.
func New(opts Options) (*Renderer, error) {
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 80
	}
	theme := DetectTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	style := "light"
	switch {
	case opts.Plain:
		style = "notty"
	case theme.IsDark:
		style = "dark"
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Renderer{
		plain:  opts.Plain,
		wrap:   wrap,
		styles: NewStyles(theme),
		md:     md,
	}, nil
}

// Plain reports whether styling is disabled.
func (r *Renderer) Plain() bool {
	return r.plain
}

// Header renders a step banner such as "== 3. access: Element access ==".
func (r *Renderer) Header(id int, slug, title string) string {
	if r.plain {
		return fmt.Sprintf("== %d. %s: %s ==", id, slug, title)
	}
	return r.styles.Header.Render(fmt.Sprintf("%d. %s", id, slug)) + " " + r.styles.Title.Render(title)
}

// KV renders a labelled value line.
func (r *Renderer) KV(label, v string) string {
	if r.plain {
		return label + ": " + v
	}
	return r.styles.Label.Render(label+":") + " " + r.styles.Value.Render(v)
}

// Aside renders commentary that is not program output.
func (r *Renderer) Aside(s string) string {
	if r.plain {
		return "# " + s
	}
	return r.styles.Muted.Render("# " + s)
}

// Failure renders an error line.
func (r *Renderer) Failure(err error) string {
	if r.plain {
		return "error: " + err.Error()
	}
	return r.styles.Error.Render("error: " + err.Error())
}

// Markdown renders a markdown note.
func (r *Renderer) Markdown(src string) (string, error) {
	out, err := r.md.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
