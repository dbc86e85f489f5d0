package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noct-ml/echo-forge/internal/logger"
	"github.com/noct-ml/echo-forge/internal/output"
	"github.com/noct-ml/echo-forge/pkg/echoforge"
	"github.com/noct-ml/echo-forge/pkg/render"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a transcript export into text, JSONL, or Markdown",
	Long: `Convert a saved transcript export (HTML or already-cleaned text)
into clean plain text, a labeled segment stream, or a themed Markdown
document.

Examples:
  # Split into user/assistant turns
  echoforge convert chat.html chat.txt --by-speaker

  # JSONL, one {"role","text"} object per line
  echoforge convert chat.html chat.jsonl --by-speaker --jsonl

  # Themed Markdown with TOC and soft wrapping
  echoforge convert chat.html chat.md --by-speaker --pretty-md \
      --toc-depth 3 --theme auto --max-width 100`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()

	// Segmentation
	flags.Bool("by-speaker", false, "split into user/assistant turns")
	flags.String("user-label", "", `custom label for the "user" role (e.g., "James")`)

	// Output mode
	flags.Bool("jsonl", false, "output JSONL format (with --by-speaker)")
	flags.String("format", "", "segment output format: json, jsonl, yaml (with --by-speaker)")
	flags.Bool("no-markdown", false, "disable Markdown code fence reconstruction")
	flags.Bool("pretty-md", false, "output a Markdown doc with headings/TOC; best with --by-speaker")

	// Markdown document settings
	flags.Int("max-width", 0, "soft-wrap non-code paragraphs to this width (0 = no wrap)")
	flags.Int("toc-depth", 0, "TOC depth (0=off, 1=title, 2=+Turns, 3=+per-turn)")
	flags.String("title", "Chat Transcript", "Markdown document title")
	flags.String("theme", "light", "Markdown theme style: light, dark, auto, obsidian")
	flags.Bool("obsidian-links", false, "rewrite same-file heading links to [[#Heading|text]]")
	flags.Bool("no-toc", false, "suppress the table of contents entirely")
	flags.Bool("no-signature", false, "do not append the Markdown footer signature")

	// Input guard
	flags.String("max-input-size", "0", "max input size (e.g., 512KB, 10MB, 0=unlimited)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	inputPath, outputPath := args[0], args[1]
	flags := cmd.Flags()

	opts := echoforge.DefaultOptions()
	opts.BySpeaker, _ = flags.GetBool("by-speaker")
	opts.JSONL, _ = flags.GetBool("jsonl")
	opts.UserLabel, _ = flags.GetString("user-label")
	opts.PrettyMarkdown, _ = flags.GetBool("pretty-md")
	opts.MaxWidth, _ = flags.GetInt("max-width")
	opts.TOCDepth, _ = flags.GetInt("toc-depth")
	opts.Title, _ = flags.GetString("title")
	opts.ObsidianLinks, _ = flags.GetBool("obsidian-links")
	opts.NoTOC, _ = flags.GetBool("no-toc")
	opts.NoSignature, _ = flags.GetBool("no-signature")

	noMarkdown, _ := flags.GetBool("no-markdown")
	opts.Markdown = !noMarkdown

	theme, _ := flags.GetString("theme")
	opts.Theme = render.Theme(theme)

	if err := opts.Validate(); err != nil {
		return err
	}

	raw, err := readInput(inputPath, cmd)
	if err != nil {
		return err
	}
	log := logger.With("input", inputPath)
	log.Debug("input loaded", "bytes", len(raw))

	format, _ := flags.GetString("format")
	if opts.JSONL && format == "" {
		format = string(output.FormatJSONL)
	}
	if format != "" && !opts.BySpeaker {
		return fmt.Errorf("--format %s requires --by-speaker", format)
	}

	// Full output is assembled in memory and written once.
	var doc []byte
	if format != "" {
		doc, err = renderSegments(raw, opts, output.Format(format))
	} else {
		doc, err = renderDocument(raw, opts, outputPath)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, doc, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logInfo("echoforge wrote: %s", outputPath)
	return nil
}

func renderSegments(raw string, opts echoforge.Options, format output.Format) ([]byte, error) {
	segs, err := echoforge.Segments(raw, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("segments extracted", "count", len(segs))

	var buf bytes.Buffer
	w, err := output.NewWriter(&buf, format)
	if err != nil {
		return nil, err
	}
	if err := w.WriteAll(segs); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDocument(raw string, opts echoforge.Options, outputPath string) ([]byte, error) {
	doc, err := echoforge.Document(raw, opts)
	if err != nil {
		return nil, err
	}
	if !opts.PrettyMarkdown && !opts.NoSignature && echoforge.MarkdownDestination(outputPath, opts) {
		doc += render.FooterSignature()
	}
	return []byte(doc), nil
}

func readInput(path string, cmd *cobra.Command) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	maxSize, _ := cmd.Flags().GetString("max-input-size")
	if maxSize != "" && maxSize != "0" {
		limit, err := humanize.ParseBytes(maxSize)
		if err != nil {
			return "", fmt.Errorf("invalid --max-input-size %q: %w", maxSize, err)
		}
		if uint64(len(data)) > limit {
			return "", fmt.Errorf("input %s is %s, exceeds --max-input-size %s",
				path, humanize.Bytes(uint64(len(data))), maxSize)
		}
	}
	return string(data), nil
}
