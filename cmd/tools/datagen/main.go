package main

import (
	"flag"
	"log"

	"main/internal/datagen"
	"main/internal/refdata"
)

func main() {
	outputDir := flag.String("output-dir", "input", "Directory to write the input feeds")
	seed := flag.Int64("seed", 1, "RNG seed")
	trades := flag.Int("trades", 10, "Trades per product")
	prices := flag.Int("prices", 1000, "Prices per product")
	books := flag.Int("books", 1000, "Order books per product")
	inquiries := flag.Int("inquiries", 10, "Inquiries per product")
	flag.Parse()

	gen := datagen.NewGenerator(refdata.DefaultCatalog(), *seed)
	if err := gen.WriteAll(*outputDir, *trades, *prices, *books, *inquiries); err != nil {
		log.Fatalf("generate feeds failed: %v", err)
	}
}
