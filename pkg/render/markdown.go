package render

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/noct-ml/echo-forge/internal/version"
	"github.com/noct-ml/echo-forge/pkg/transcript"
)

// Theme selects the styling block emitted at the top of a pretty document.
type Theme string

const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeAuto     Theme = "auto"
	ThemeObsidian Theme = "obsidian"
)

// Config controls pretty-Markdown document assembly.
type Config struct {
	UserLabel     string
	MaxWidth      int
	TOCDepth      int
	Title         string
	Theme         Theme
	ObsidianLinks bool
	Signature     bool
}

const projectURL = "https://github.com/noct-ml/echo-forge"

const darkStyle = `<style>
body { background-color: #0d1117; color: #c9d1d9; }
code, pre { background-color: #161b22; color: #58a6ff; }
a { color: #58a6ff; }
h1, h2, h3, h4 { color: #e6edf3; }
details > summary { cursor: pointer; }
</style>
`

const autoStyle = `<style>
@media (prefers-color-scheme: dark) {
  body { background-color: #0d1117; color: #c9d1d9; }
  code, pre { background-color: #161b22; color: #58a6ff; }
  a { color: #58a6ff; }
  h1, h2, h3, h4 { color: #e6edf3; }
  details > summary { cursor: pointer; }
}
</style>
`

// obsidianFrontmatter emits the YAML frontmatter block Obsidian uses to pick
// up the dark css class.
func obsidianFrontmatter() string {
	fm, err := yaml.Marshal(struct {
		CSSClass string `yaml:"cssclass"`
	}{CSSClass: "dark-theme"})
	if err != nil {
		return "---\ncssclass: dark-theme\n---\n"
	}
	return "---\n" + string(fm) + "---\n"
}

// FooterSignature is the attribution blockquote appended to Markdown output.
func FooterSignature() string {
	return fmt.Sprintf("\n---\n> Generated by [EchoForge v%s](%s) — \"Forging echoes into clarity.\"\n",
		version.String(), projectURL)
}

func generatorComment() string {
	return fmt.Sprintf("<!-- Generated by EchoForge v%s -->\n", version.String())
}

// PrettyDocument assembles the themed Markdown document for a turn sequence:
// theme block, generator comment, title, optional TOC, per-turn sections,
// long-code collapsing, and the optional footer signature.
func PrettyDocument(turns []transcript.Turn, cfg Config) string {
	var md []string

	switch cfg.Theme {
	case ThemeDark:
		md = append(md, darkStyle)
	case ThemeAuto:
		md = append(md, autoStyle)
	case ThemeObsidian:
		md = append(md, obsidianFrontmatter())
	}

	md = append(md, generatorComment())
	md = append(md, fmt.Sprintf("# %s\n", cfg.Title))

	if cfg.TOCDepth > 0 {
		md = append(md, "## Table of Contents\n")
		if cfg.TOCDepth >= 1 {
			md = append(md, "- "+cfg.tocLink(cfg.Title))
		}
		if cfg.TOCDepth >= 2 {
			md = append(md, "- "+cfg.tocLink("Turns"))
		}
		if cfg.TOCDepth >= 3 {
			for i, t := range turns {
				head := fmt.Sprintf("Turn %03d — %s", i+1, t.Role.DisplayLabel(cfg.UserLabel))
				md = append(md, "  - "+cfg.tocLink(head))
			}
		}
		md = append(md, "")
	}

	if cfg.TOCDepth >= 2 {
		md = append(md, "## Turns", "")
	}

	for i, t := range turns {
		label := t.Role.DisplayLabel(cfg.UserLabel)
		md = append(md, fmt.Sprintf("### Turn %03d — %s", i+1, label), "")

		txt := transcript.StripLabelArtifacts(t.Text)
		if cfg.ObsidianLinks {
			txt = RewriteHeadingLinks(txt)
		}
		if cfg.MaxWidth > 0 {
			txt = WrapNonCode(txt, cfg.MaxWidth)
		}
		md = append(md, txt, "")
	}

	out := strings.TrimSpace(strings.Join(md, "\n")) + "\n"
	out = CollapseLongCode(out)

	if cfg.Signature {
		out += FooterSignature()
	}
	return out
}

// tocLink renders a TOC entry: Obsidian heading links for the obsidian theme,
// a standard link to the computed anchor otherwise.
func (c Config) tocLink(label string) string {
	if c.Theme == ThemeObsidian {
		return fmt.Sprintf("[[#%s|%s]]", label, label)
	}
	return fmt.Sprintf("[%s](#%s)", label, Anchor(label))
}

// collapseThreshold is the largest fenced payload, in lines, rendered inline.
const collapseThreshold = 14

var fencedBlockRE = regexp.MustCompile("(?s)```[^\n]*\n.*?```")

// CollapseLongCode wraps any fenced block whose payload exceeds
// collapseThreshold lines in a <details> disclosure widget summarizing the
// line count and language.
func CollapseLongCode(text string) string {
	return fencedBlockRE.ReplaceAllStringFunc(text, func(fence string) string {
		lines := strings.Split(strings.Trim(fence, "\n"), "\n")
		if len(lines) < 3 {
			return fence
		}
		payload := lines[1 : len(lines)-1]
		if len(payload) <= collapseThreshold {
			return fence
		}
		lang := strings.TrimSpace(strings.TrimPrefix(lines[0], "```"))
		summary := fmt.Sprintf("View %d lines", len(payload))
		if lang != "" {
			summary += " of " + lang
		}
		return fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n</details>\n", summary, fence)
	})
}
