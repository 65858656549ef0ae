// Command analyze runs the valuation engine over caller-supplied data files.
// It is report-assembly glue: it fetches nothing, loads a JSON input document
// (statements, prices, dividends), runs the analysis, and writes the report
// as JSON, Markdown, or HTML.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"equity_research/pkg/config"
	"equity_research/pkg/core/analysis"
	"equity_research/pkg/core/report"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
)

func main() {
	inputPath := flag.String("input", "", "path to the analysis input JSON file")
	configPath := flag.String("config", "", "optional YAML config file (defaults + env otherwise)")
	format := flag.String("format", "json", "output format: json, markdown, or html")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -input data.json [-config config.yaml] [-format json|markdown|html]")
		os.Exit(2)
	}

	// Environment variables may carry config overrides; a missing .env is fine.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	cfg := config.FromEnv()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fatal(fmt.Errorf("failed to read input: %w", err))
	}
	var input analysis.Input
	if err := json.Unmarshal(data, &input); err != nil {
		fatal(fmt.Errorf("failed to parse input: %w", err))
	}

	result, err := analysis.Run(input, cfg)
	if err != nil {
		fatal(err)
	}

	switch *format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(out))
	case "markdown":
		fmt.Print(report.Markdown(result))
	case "html":
		html, err := report.HTML(result)
		if err != nil {
			fatal(err)
		}
		fmt.Print(html)
	default:
		fatal(fmt.Errorf("unknown format %q", *format))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "analyze:", err)
	os.Exit(1)
}
