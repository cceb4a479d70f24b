// Command webseg segments a captured page JSON file into bounded-size
// chunk artifacts plus a validation report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/webseg/internal/markup"
	"github.com/dgallion1/webseg/internal/page"
	"github.com/dgallion1/webseg/internal/report"
	"github.com/dgallion1/webseg/internal/segment"
	"github.com/dgallion1/webseg/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	var (
		output     = flag.String("o", "chunks", "output directory")
		maxUnits   = flag.Int("max-units", 50000, "maximum size units per chunk")
		minUnits   = flag.Int("min-units", 50, "minimum size units per section")
		structural = flag.Bool("structural", false, "use the structural (parsed) markup extractor")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: webseg [flags] <page_data.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Error("open page data", "error", err)
		os.Exit(1)
	}
	doc, err := page.Decode(f)
	f.Close()
	if err != nil {
		log.Error("load page data", "error", err)
		os.Exit(1)
	}
	log.Info("page loaded", "url", doc.URL, "width", doc.Width, "height", doc.Height)

	cfg := segment.DefaultConfig()
	cfg.MaxSizeUnits = *maxUnits
	cfg.MinSizeUnits = *minUnits

	var ext markup.SnippetExtractor = markup.ScanExtractor{}
	if *structural {
		ext = markup.TreeExtractor{}
	}
	chunks, rep := segment.SegmentWith(doc, cfg, ext)

	dir := store.Dir{Path: *output}
	if err := dir.WriteChunks(chunks); err != nil {
		log.Error("write chunks", "error", err)
		os.Exit(1)
	}
	if err := dir.WriteReport(rep); err != nil {
		log.Error("write report", "error", err)
		os.Exit(1)
	}

	md := report.Markdown(rep, chunks)
	html, err := report.HTML(md)
	if err != nil {
		log.Warn("render summary", "error", err)
		html = ""
	}
	if err := dir.WriteSummary(md, html); err != nil {
		log.Warn("write summary", "error", err)
	}

	log.Info("segmentation complete",
		"sections", rep.Stats.TotalSections,
		"total_units", rep.Stats.TotalUnits,
		"principles_met", rep.PrinciplesMet,
		"output", *output,
	)
	for _, w := range rep.Warnings {
		log.Warn(w)
	}
	for _, e := range rep.Errors {
		log.Error(e)
	}
	if len(rep.Errors) > 0 {
		os.Exit(1)
	}
}
