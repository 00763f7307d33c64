// quotegen exports quote and invoice documents as paginated PDF files.
//
// Usage:
//
//	quotegen export [options] <doc.yaml>
//	quotegen totals <doc.yaml>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	quotegen "github.com/elevateestimator/quotegenerator"
	"github.com/elevateestimator/quotegenerator/internal/document"
	"github.com/elevateestimator/quotegenerator/internal/totals"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		if err := runExport(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "totals":
		if err := runTotals(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`quotegen - quote/invoice PDF export tool

Usage:
  quotegen export [options] <doc.yaml>
  quotegen totals <doc.yaml>

Commands:
  export    Render the document as a paginated US-Letter PDF
  totals    Print the computed money summary as JSON

Export options:
  -o <file>        Write output to file (default: suggested filename)
  -chrome <path>   Path to the Chrome/Chromium executable
  -no-sandbox      Disable the Chrome sandbox (needed when running as root)
  -download        Download a Chromium binary when none is found
  -timeout <dur>   Export timeout, e.g. "90s" (default: 60s)

Examples:
  quotegen export quote.yaml
  quotegen export -o out.pdf -no-sandbox invoice.yaml
  quotegen totals quote.yaml
`)
}

// runExport implements the "export" command.
func runExport(args []string) error {
	var (
		outputFile string
		inputFile  string
		opts       []quotegen.Option
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("-o requires an argument")
			}
			outputFile = args[i]
		case "-chrome":
			i++
			if i >= len(args) {
				return fmt.Errorf("-chrome requires an argument")
			}
			opts = append(opts, quotegen.WithChromePath(args[i]))
		case "-no-sandbox":
			opts = append(opts, quotegen.WithNoSandbox())
		case "-download":
			opts = append(opts, quotegen.WithAutoDownload())
		case "-timeout":
			i++
			if i >= len(args) {
				return fmt.Errorf("-timeout requires an argument")
			}
			d, err := time.ParseDuration(args[i])
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", args[i], err)
			}
			opts = append(opts, quotegen.WithTimeout(d))
		default:
			if strings.HasPrefix(args[i], "-") {
				return fmt.Errorf("unknown option: %s", args[i])
			}
			inputFile = args[i]
		}
	}

	if inputFile == "" {
		return fmt.Errorf("no input file specified")
	}

	doc, err := document.LoadFile(inputFile)
	if err != nil {
		return err
	}

	res, err := quotegen.ExportDocument(context.Background(), doc, opts...)
	if err != nil {
		return err
	}

	if outputFile == "" {
		outputFile = res.Filename()
	}
	if err := res.WriteToFile(outputFile, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outputFile, res.Len())
	return nil
}

// runTotals implements the "totals" command.
func runTotals(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no input file specified")
	}

	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}
	doc.ApplyDefaults(time.Now())

	t := totals.Compute(doc, time.Now())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
