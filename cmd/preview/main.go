package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
)

// preview rasterizes every page of a generated sheet to PNG so the
// front/back cell alignment can be checked side by side before printing.
func main() {
	pdfPath := flag.String("file", "", "path to generated PDF")
	outDir := flag.String("out", "preview", "directory for page PNGs")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	doc, err := fitz.New(*pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %d pages of %s\n", doc.NumPage(), *pdfPath)

	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		img, err := doc.Image(pageNum)
		if err != nil {
			fmt.Printf("Error rendering page %d: %v\n", pageNum+1, err)
			os.Exit(1)
		}

		side := "front"
		if pageNum%2 == 1 {
			side = "back"
		}
		name := fmt.Sprintf("pair%02d_%s.png", pageNum/2+1, side)
		path := filepath.Join(*outDir, name)

		f, err := os.Create(path)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			fmt.Printf("Error encoding %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()
		fmt.Printf("Wrote %s\n", path)
	}
}
