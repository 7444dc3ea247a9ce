package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/platewise/reconcile-backend/internal/adapters/extraction"
	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
	"github.com/platewise/reconcile-backend/internal/domain/similarity"
)

func main() {
	var (
		formPath      string
		extractedPath string
		timezone      string
		scorer        string
		asJSON        bool
	)
	flag.StringVar(&formPath, "form", "", "Path to the form record JSON file")
	flag.StringVar(&extractedPath, "extracted", "", "Path to the extraction payload JSON file")
	flag.StringVar(&timezone, "timezone", "UTC", "IANA timezone for folding receipt instants into civil dates")
	flag.StringVar(&scorer, "scorer", "overlap", "Similarity scorer: overlap or levenshtein")
	flag.BoolVar(&asJSON, "json", false, "Print the report as JSON instead of a table")
	flag.Parse()

	if formPath == "" || extractedPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	formData, err := os.ReadFile(formPath)
	if err != nil {
		log.Fatalf("read form file: %v", err)
	}
	var form reconcile.FormRecord
	if err := json.Unmarshal(formData, &form); err != nil {
		log.Fatalf("parse form file: %v", err)
	}

	extractedData, err := os.ReadFile(extractedPath)
	if err != nil {
		log.Fatalf("read extracted file: %v", err)
	}
	extracted, err := extraction.Parse(extractedData)
	if err != nil {
		log.Fatalf("parse extracted file: %v", err)
	}

	tz, err := reconcile.NewTimezoneResolver(timezone)
	if err != nil {
		log.Fatalf("resolve timezone: %v", err)
	}

	engine := reconcile.NewEngine(tz, similarity.New(scorer), reconcile.DefaultConfig())
	report := engine.Reconcile(form, extracted)

	if asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("encode report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	printReport(report)
	if report.MismatchCount > 0 {
		os.Exit(1)
	}
}

func printReport(report reconcile.Report) {
	fmt.Println("RECEIPT RECONCILIATION REPORT")
	fmt.Println(strings.Repeat("=", 60))

	for _, row := range report.Comparisons {
		fmt.Printf("%s %-20s form=%q receipt=%q\n",
			statusMark(row.Status), row.Field, row.FormValue, row.ExtractedValue)
		if row.SuggestedValue != "" {
			fmt.Printf("   %-20s suggest %q\n", "", row.SuggestedValue)
		}
		if row.Similarity != nil {
			fmt.Printf("   %-20s similarity %d%%\n", "", similarity.Percent(*row.Similarity))
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Overall: %s (%d field(s), %d mismatch(es))\n",
		report.Overall, len(report.Comparisons), report.MismatchCount)
}

func statusMark(status reconcile.Status) string {
	switch status {
	case reconcile.StatusMatch:
		return "✅"
	case reconcile.StatusMatchFormatDiffers:
		return "🔶"
	case reconcile.StatusMismatch:
		return "❌"
	default:
		return "⬜"
	}
}
