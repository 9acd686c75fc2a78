// Command areal is an interactive diagram editor for laying out facility
// areas and the relationships between them. It edits diagrams in a
// terminal UI and exports them to JSON, SVG or PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"areal/diagram"
	"areal/editor"
	"areal/export"
	"areal/routing"
	"areal/validation"
)

func main() {
	var (
		exportFormat = flag.String("export", "", "Export instead of editing: json, svg, png")
		outputFile   = flag.String("o", "", "Output file for export (default: stdout for text formats)")
		straight     = flag.Bool("straight", false, "Use straight parallel edges instead of curved arcs")
		validate     = flag.Bool("validate", false, "Validate the diagram and exit")
		help         = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [diagram.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A facility-area diagram editor with multi-relationship routing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s plant.json                     # edit in the terminal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export svg plant.json         # write SVG to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export png -o plant.png plant.json\n", os.Args[0])
	}
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	filename := flag.Arg(0)
	d, err := loadDiagram(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		os.Exit(runValidation(d))
	}

	if *exportFormat != "" {
		if err := runExport(d, *exportFormat, *outputFile, *straight); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runEditor(d, filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadDiagram reads a diagram file, or starts an empty diagram when no
// filename is given.
func loadDiagram(filename string) (*diagram.Diagram, error) {
	if filename == "" {
		return &diagram.Diagram{}, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// New file: start empty, save creates it.
			return &diagram.Diagram{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var d diagram.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	diagram.EnsureUniqueEdgeIDs(&d)
	return &d, nil
}

func runValidation(d *diagram.Diagram) int {
	errs := validation.NewValidator().Validate(d)
	if len(errs) == 0 {
		fmt.Println("OK")
		return 0
	}
	exit := 0
	for _, e := range errs {
		fmt.Printf("%s: %s\n", e.Severity, e.Message)
		if e.Severity == validation.Error {
			exit = 1
		}
	}
	return exit
}

func runExport(d *diagram.Diagram, formatName, outputFile string, straight bool) error {
	format, err := export.ParseFormat(strings.ToLower(formatName))
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	if straight {
		switch ex := exporter.(type) {
		case *export.SVGExporter:
			ex.Strategy = routing.StrategyStraight
		case *export.PNGExporter:
			ex.Strategy = routing.StrategyStraight
		}
	}

	data, err := exporter.Export(d)
	if err != nil {
		return fmt.Errorf("%s export failed: %w", exporter.GetFormatName(), err)
	}

	if outputFile == "" {
		if format == export.FormatPNG {
			return fmt.Errorf("PNG export requires -o <file>")
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}

func runEditor(d *diagram.Diagram, filename string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	return editor.New(screen, d, filename).Run()
}
