package echoforge

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/noct-ml/echo-forge/pkg/render"
)

// Options is the configuration record the pipeline is called with. The zero
// value is usable; DefaultOptions mirrors the CLI defaults.
type Options struct {
	// BySpeaker segments the document into speaker turns.
	BySpeaker bool

	// JSONL emits one JSON object per turn; requires BySpeaker.
	JSONL bool

	// UserLabel overrides the display label for the user role.
	UserLabel string

	// Markdown enables code-fence reconstruction on sanitized text.
	Markdown bool

	// PrettyMarkdown emits the full themed Markdown document.
	PrettyMarkdown bool

	// MaxWidth soft-wraps non-code prose to this column count; 0 disables.
	MaxWidth int `validate:"min=0"`

	// TOCDepth selects table-of-contents depth: 0=off, 1=title, 2=+Turns,
	// 3=+per-turn links.
	TOCDepth int `validate:"min=0,max=3"`

	// Title is the document heading text.
	Title string

	// Theme selects the Markdown theme style.
	Theme render.Theme `validate:"omitempty,oneof=light dark auto obsidian"`

	// ObsidianLinks rewrites [text](#anchor) links to [[#Heading|text]].
	ObsidianLinks bool

	// NoTOC forces TOCDepth to 0.
	NoTOC bool

	// NoSignature suppresses the footer/attribution blockquote.
	NoSignature bool
}

// DefaultOptions returns the defaults the original tool ships with.
func DefaultOptions() Options {
	return Options{
		Markdown: true,
		Title:    "Chat Transcript",
		Theme:    render.ThemeLight,
	}
}

var validate = validator.New()

// Validate checks option ranges and cross-option requirements.
func (o Options) Validate() error {
	if o.JSONL && !o.BySpeaker {
		return errors.New("jsonl output requires by-speaker segmentation")
	}
	return validate.Struct(o)
}

// normalized resolves option interactions before rendering.
func (o Options) normalized() Options {
	if o.NoTOC {
		o.TOCDepth = 0
	}
	return o
}

// renderConfig maps pipeline options onto document-assembly settings.
func (o Options) renderConfig() render.Config {
	return render.Config{
		UserLabel:     o.UserLabel,
		MaxWidth:      o.MaxWidth,
		TOCDepth:      o.TOCDepth,
		Title:         o.Title,
		Theme:         o.Theme,
		ObsidianLinks: o.ObsidianLinks,
		Signature:     !o.NoSignature,
	}
}
