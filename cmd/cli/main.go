// Command cli runs a race model analysis over a spreadsheet of response
// times and prints the percentile boundary table, optionally writing an
// Excel workbook and a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"gorace/adapters/excel"
	"gorace/app"
	"gorace/domain/racemodel"
	"gorace/internal/config"
	"gorace/internal/report"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}
	cfg := config.Load()

	input := flag.String("input", cfg.Data.File, "dataset file (.xlsx or .csv) with RT and modality columns")
	rtCol := flag.String("rt-column", cfg.Data.RTColumn, "name of the response time column")
	modCol := flag.String("modality-column", cfg.Data.ModalityColumn, "name of the modality column")
	modalities := flag.String("modalities", "", "comma-separated A,B,AB modality labels (default: all, sorted)")
	numPercentiles := flag.Int("percentiles", cfg.Data.NumPercentiles, "number of percentile rows")
	output := flag.String("output", "", "write the result table to this .xlsx file")
	markdownOut := flag.String("report", "", "write a markdown report to this file")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -input data.xlsx [-modalities x,y,z] [-output result.xlsx]")
		os.Exit(2)
	}

	table, err := excel.NewDataReader(*input).WithColumns(*rtCol, *modCol).ReadDataset()
	if err != nil {
		log.Fatalf("failed to read dataset: %v", err)
	}

	var names []string
	if *modalities != "" {
		names = strings.Split(*modalities, ",")
	}

	svc := app.NewAnalysisService(nil)
	analysis, err := svc.RunFromDataset(context.Background(), table,
		names, &racemodel.CompareOptions{NumPercentiles: *numPercentiles})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	printTable(analysis.Table)

	if *output != "" {
		if err := excel.NewResultWriter(analysis.Table, analysis.Profiles).Save(*output); err != nil {
			log.Fatalf("failed to write workbook: %v", err)
		}
		log.Printf("wrote %s", *output)
	}
	if *markdownOut != "" {
		if err := os.WriteFile(*markdownOut, []byte(report.Markdown(analysis)), 0644); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		log.Printf("wrote %s", *markdownOut)
	}
}

func printTable(t *racemodel.Table) {
	fmt.Printf("%8s", "p")
	for _, name := range t.Names {
		fmt.Printf("%12s", name)
	}
	fmt.Println()

	for r := 0; r < t.NumRows(); r++ {
		fmt.Printf("%8.2f", t.Percentiles[r])
		for _, v := range t.Row(r) {
			fmt.Printf("%12.2f", v)
		}
		fmt.Println()
	}
}
