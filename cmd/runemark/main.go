// Command runemark renders a markdown document to its serialized
// component tree.
//
// Usage:
//
//	runemark [flags] <file.md>
//
// Flags:
//
//	-theme string    Path to a YAML theme config; applies the identity transform
//	-contract        Emit the theme's structure contract instead of rendering
//	-icons           Inline icon SVGs into the themed output
//	-compact         Emit compact JSON (default is indented)
//	-o string        Write a document envelope to this path instead of stdout
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/runemark/runemark"
	runejson "github.com/runemark/runemark/json"
	"github.com/runemark/runemark/markdown"
	"github.com/runemark/runemark/runes"
	"github.com/runemark/runemark/theme"
)

func main() {
	if err := run(); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		themePath = flag.String("theme", "", "Path to a YAML theme config")
		contract  = flag.Bool("contract", false, "Emit the theme's structure contract instead of rendering")
		icons     = flag.Bool("icons", false, "Inline icon SVGs into the themed output")
		compact   = flag.Bool("compact", false, "Emit compact JSON")
		outPath   = flag.String("o", "", "Write a document envelope to this path instead of stdout")
	)
	flag.Parse()

	var themeCfg *theme.Config
	if *themePath != "" {
		cfg, err := theme.Load(*themePath, log.Default())
		if err != nil {
			return err
		}
		themeCfg = cfg
	}

	if *contract {
		if themeCfg == nil {
			return fmt.Errorf("-contract requires -theme")
		}
		return emit(theme.GenerateContract(themeCfg), *compact)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one input file")
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := markdown.Parse(string(source))
	headings := runemark.ExtractHeadings(doc)

	variables := map[string]any{
		"__source":   string(source),
		"__headings": headings,
	}
	if themeCfg != nil {
		variables["__icons"] = themeCfg.Icons
	}
	cfg := runes.NewConfig(variables)

	tree := any(runemark.Transform(doc.Children, cfg))
	if themeCfg != nil {
		tree = theme.NewTransform(themeCfg)(tree)
		if *icons {
			tree = theme.InlineIcons(tree, theme.NewIconRegistry(themeCfg.Icons))
		}
	}

	serialized := runemark.Serialize(tree)

	if *outPath != "" {
		envelope := runemark.Document{
			Path:        path,
			Theme:       *themePath,
			GeneratedAt: time.Now(),
			Headings:    headings,
			Tree:        serialized,
		}
		if err := runejson.Save(*outPath, envelope); err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		log.Info("document saved", "path", *outPath)
		return nil
	}

	return emit(serialized, *compact)
}

func emit(v any, compact bool) error {
	enc := json.NewEncoder(os.Stdout)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
