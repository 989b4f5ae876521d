package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// generateSampleExport writes a small dining export in the Hilltop layout,
// both plain and gzip-compressed, for local runs of the importer:
//
//	go run ./scripts/generate_sample_export
//	go run ./cmd/importer -input data/exports/hilltop_export.txt -dry-run
var sampleLines = []string{
	"Cycle 1 Menu",
	"Monday",
	"%%Sizzle%%",
	"Entrees",
	"Grilled Chicken, with rice (8 oz)",
	"Carne Asada, with tortillas (10 oz)",
	"Fried Chicken Sandwich, with slaw",
	"Beans & Rice",
	"Black Beans (6 oz)",
	"Cilantro Lime Rice (6 oz)",
	"Salsas & Condiments",
	"Pico de Gallo",
	"Fresh Guacamole (4 oz)",
	"Tuesday",
	"%%Fuego Grill%%",
	"Entrees",
	"Pork Tamales (2 each)",
	"\"Cheese Enchiladas, with red sauce\"",
	"Desserts",
	"Cinnamon Churro (2 each)",
	"Tres Leches (1 slice)",
	"Beverages",
	"Agua Fresca (16 oz)",
	"Horchata (16 oz)",
	"Menu items are subject to change.",
}

func main() {
	dataDir := "data/exports"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	content := strings.Join(sampleLines, "\n") + "\n"

	plainPath := filepath.Join(dataDir, "hilltop_export.txt")
	if err := os.WriteFile(plainPath, []byte(content), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", plainPath, err)
	}
	fmt.Printf("Created %s with %d lines\n", plainPath, len(sampleLines))

	gzipPath := filepath.Join(dataDir, "hilltop_export.txt.gz")
	if err := writeGzip(gzipPath, content); err != nil {
		log.Fatalf("Failed to write %s: %v", gzipPath, err)
	}
	fmt.Printf("Created %s\n", gzipPath)

	fmt.Println("\nSample export files created successfully!")
	fmt.Println("The export covers two restaurants, category subsections,")
	fmt.Println("quoted lines, day and cycle headers, and a trailing disclaimer.")
}

func writeGzip(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	if _, err := gzipWriter.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
