package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/docmage/docmage"
)

func main() {
	filePath := flag.String("file", "", "Path to a document to analyze")
	text := flag.String("text", "", "Raw text to analyze (alternative to -file)")
	category := flag.String("category", "general", "Document category: medical, legal, financial, or general")
	configPath := flag.String("config", "", "Path to config file (YAML or JSON)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if *filePath == "" && *text == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -file <path> | -text <text> [-category <cat>]")
		os.Exit(2)
	}

	cfg := docmage.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = docmage.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	engine, err := docmage.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer engine.Close()

	ctx := context.Background()

	var analysis *docmage.Analysis
	if *filePath != "" {
		docID, err := engine.AnalyzeFile(ctx, *filePath, *category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		doc, err := engine.GetDocument(ctx, docID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		analysis = &docmage.Analysis{
			Category:   doc.Category,
			Highlights: doc.Highlights,
			Overview:   doc.Overview,
			KeyPoints:  doc.KeyPoints,
			Insights:   doc.Insights,
		}
	} else {
		analysis, err = engine.AnalyzeText(ctx, *text, *category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
