// main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

func main() {
	outputFile := flag.String("o", "", "Output file path (default: stdout; required for frames)")
	metaFile := flag.String("meta", "", "Optional path for a companion metadata JSON document")
	palettesFile := flag.String("palettes", "", "Optional JSON file with named palette categories")
	seedFlag := flag.String("seed", "", "Seed override (numeric or arbitrary string)")
	frameCount := flag.Int("frames", 10, "Number of frames for the frames format")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <options.json> <format>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <options.json>   Path to the generation options file.")
		fmt.Fprintln(os.Stderr, "  <format>         Output format (svg, html, png, jpg/jpeg, frames).")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	optionsFile := args[0]
	exportFormat := strings.ToLower(args[1])

	supportedFormats := map[string]bool{"svg": true, "html": true, "png": true, "jpg": true, "jpeg": true, "frames": true}
	if !supportedFormats[exportFormat] {
		log.Fatalf("Unsupported export format '%s'. Supported formats: svg, html, png, jpg/jpeg, frames", exportFormat)
	}

	log.Printf("Reading options file: %s", optionsFile)
	optionsBytes, err := os.ReadFile(optionsFile)
	if err != nil {
		log.Fatalf("Error reading options file '%s': %v", optionsFile, err)
	}
	var opts GenerationOptions
	if err := json.Unmarshal(optionsBytes, &opts); err != nil {
		log.Fatalf("Error parsing options JSON '%s': %v", optionsFile, err)
	}
	if *seedFlag != "" {
		opts.Seed = *seedFlag
	}

	paletteTable := loadPaletteTable(*palettesFile)

	// --- Generation ---
	log.Printf("Generating pattern %q...", opts.PatternType)
	art := Generate(opts, paletteTable, time.Now())
	log.Printf("Generated %d elements across %d layer(s) with seed %d.",
		art.Result.TotalElements, len(art.Result.Layers), art.Result.Seed)

	if *metaFile != "" {
		if err := writeMetadata(*metaFile, opts, art.Result); err != nil {
			log.Printf("Warning: could not write metadata to '%s': %v", *metaFile, err)
		} else {
			log.Printf("Metadata saved to: %s", *metaFile)
		}
	}

	// The frames format writes multiple files and manages its own output.
	if exportFormat == "frames" {
		if *outputFile == "" {
			log.Fatalf("The frames format requires -o as an output prefix")
		}
		if err := exportFrames(art, *outputFile, *frameCount); err != nil {
			log.Fatalf("Error exporting frames: %v", err)
		}
		return
	}

	// --- Determine Output Writer ---
	var outputWriter io.Writer = os.Stdout
	var outFile *os.File
	if *outputFile != "" {
		log.Printf("Output directed to file: %s", *outputFile)
		outFile, err = os.Create(*outputFile)
		if err != nil {
			log.Fatalf("Error creating output file '%s': %v", *outputFile, err)
		}
		defer func() {
			if closeErr := outFile.Close(); closeErr != nil {
				log.Printf("Error closing output file '%s': %v", *outputFile, closeErr)
			}
		}()
		outputWriter = outFile
	} else {
		log.Println("Output directed to stdout.")
	}

	var genErr error
	switch exportFormat {
	case "svg":
		_, genErr = io.WriteString(outputWriter, art.Doc)
	case "html":
		_, genErr = io.WriteString(outputWriter, generateHTML(art))
	case "png", "jpg", "jpeg":
		genErr = generateImage(art.Doc, exportFormat, outputWriter)
	}

	if genErr != nil {
		log.Printf("Error generating %s: %v", exportFormat, genErr)
		if outFile != nil {
			log.Printf("Attempting to remove potentially incomplete file: %s", *outputFile)
			if removeErr := os.Remove(*outputFile); removeErr != nil {
				log.Printf("Warning: could not remove output file '%s' after error: %v", *outputFile, removeErr)
			}
		}
		os.Exit(1)
	}
	log.Printf("Successfully generated %s output.", strings.ToUpper(exportFormat))
}

// loadPaletteTable reads an optional external palette table. A missing or
// malformed file is not fatal: the engine's fallback chain covers it.
func loadPaletteTable(path string) map[string][]string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read palettes file '%s': %v", path, err)
		return nil
	}
	var table map[string][]string
	if err := json.Unmarshal(data, &table); err != nil {
		log.Printf("Warning: could not parse palettes file '%s': %v", path, err)
		return nil
	}
	return table
}

// exportFrames renders frameCount animation frames as numbered SVG files.
func exportFrames(art Artwork, prefix string, frameCount int) error {
	if frameCount < 1 {
		frameCount = 1
	}
	o := art.Options
	anim := newAnimator(art.Root, o.animationType)
	anim.Start()
	defer anim.Stop()

	for f := 0; f < frameCount; f++ {
		elapsed := time.Duration(float64(f) / float64(frameCount) * float64(animationCycle))
		frame := anim.Frame(elapsed)
		doc := renderDocument(frame, art.Defs, o.width, o.height, o.backgroundColor)

		name := fmt.Sprintf("%s_%03d.svg", strings.TrimSuffix(prefix, ".svg"), f)
		if err := os.WriteFile(name, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write frame '%s': %w", name, err)
		}
	}
	log.Printf("Wrote %d animation frames.", frameCount)
	return nil
}
