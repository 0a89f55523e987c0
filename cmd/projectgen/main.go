// Command projectgen generates a synthetic project-outcome dataset for
// training and demonstrating delivery-risk models.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/CAPChidu/project-risk-predictor/internal/dataset"
	"github.com/CAPChidu/project-risk-predictor/internal/generator"
)

var (
	ProjectCount = flag.Int("projects", 500, "Number of projects to generate")
	Seed         = flag.Uint64("seed", 42, "Seed for the random source")
	OutputPath   = flag.String("output", "project_data.csv", "Output CSV file path")
)

const previewRows = 5

func main() {
	flag.Parse()

	opts := options{
		Projects: *ProjectCount,
		Seed:     *Seed,
		Output:   *OutputPath,
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	runID := uuid.NewString()
	log.Printf("Run %s: generating %s projects (seed %d)",
		runID, humanize.Comma(int64(opts.Projects)), opts.Seed)

	gen := generator.New(opts.Seed)
	bar := progressbar.NewOptions(opts.Projects,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	gen.Progress = func(done, total int) {
		_ = bar.Add(1)
	}

	start := time.Now()
	records, err := gen.Generate(opts.Projects)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	_ = bar.Finish()

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	ds := dataset.New(records)
	if err := ds.WriteFile(opts.Output); err != nil {
		log.Fatalf("Failed to write %s: %v", opts.Output, err)
	}

	log.Printf("Run %s: wrote %s (%s) in %s",
		runID, opts.Output, outputSize(opts.Output), time.Since(start).Round(time.Millisecond))

	fmt.Printf("Generated %d projects\n", ds.Len())
	fmt.Printf("Success rate: %.1f%%\n", ds.SuccessRate()*100)

	fmt.Printf("\nSample projects:\n")
	if err := ds.WritePreview(os.Stdout, previewRows); err != nil {
		log.Fatalf("Failed to render preview: %v", err)
	}

	fmt.Printf("\nFeature statistics:\n")
	if err := ds.WriteDescribe(os.Stdout); err != nil {
		log.Fatalf("Failed to render statistics: %v", err)
	}
}

// outputSize reports the written file's size for the run log line.
func outputSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}
