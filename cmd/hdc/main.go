package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/html-delta-converter/delta"
	"github.com/rgonek/html-delta-converter/htmlconverter"
	"github.com/rgonek/html-delta-converter/mdconverter"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetLossy    = "lossy"
)

func presetConfig(preset string) (htmlconverter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return htmlconverter.Config{}, nil
	case presetStrict:
		return htmlconverter.Config{
			UnknownTags:    htmlconverter.UnknownError,
			ResolutionMode: htmlconverter.ResolutionStrict,
		}, nil
	case presetLossy:
		return htmlconverter.Config{
			UnknownTags: htmlconverter.UnknownSkip,
		}, nil
	default:
		return htmlconverter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, lossy)", preset)
	}
}

func resolveConfig(preset string, strict bool) (htmlconverter.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return htmlconverter.Config{}, err
	}

	if strict {
		cfg.UnknownTags = htmlconverter.UnknownError
		cfg.ResolutionMode = htmlconverter.ResolutionStrict
	}

	return cfg, nil
}

func main() {
	markdown := flag.Bool("markdown", false, "Treat input as markdown instead of HTML")
	strict := flag.Bool("strict", false, "Return error on unknown tags")
	compact := flag.Bool("compact", false, "Print compact JSON")
	showWarnings := flag.Bool("warnings", false, "Print conversion warnings to stderr")
	preset := flag.String("preset", presetBalanced, "Preset: balanced|strict|lossy")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hdc [options] <input-file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile := args[0]

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	ops, warnings, err := convert(string(data), *markdown, *preset, *strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting file: %v\n", err)
		os.Exit(1)
	}

	if *showWarnings {
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warning.Type, warning.Message)
		}
	}

	var output []byte
	if *compact {
		output, err = json.Marshal(ops)
	} else {
		output, err = json.MarshalIndent(ops, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting delta JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}

func convert(input string, markdown bool, preset string, strict bool) ([]delta.Op, []delta.Warning, error) {
	if markdown {
		conv, err := mdconverter.New(mdconverter.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("invalid config: %w", err)
		}
		result, err := conv.Convert(input)
		if err != nil {
			return nil, nil, err
		}
		return result.Ops, result.Warnings, nil
	}

	cfg, err := resolveConfig(preset, strict)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid preset: %w", err)
	}

	conv, err := htmlconverter.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	result, err := conv.Convert(input)
	if err != nil {
		return nil, nil, err
	}
	return result.Ops, result.Warnings, nil
}
