package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// checklayout prints per-page dimensions of a generated sheet, to confirm
// the printer-facing page size matches the configured geometry.
func main() {
	pdfPath := flag.String("file", "", "path to PDF file")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	for i, dim := range dims {
		side := "front"
		if i%2 == 1 {
			side = "back"
		}
		fmt.Printf("Page %d (%s): %.3f x %.3f points\n", i+1, side, dim.Width, dim.Height)
	}
}
