package quotegen_test

import (
	"context"
	"fmt"
	"log"

	quotegen "github.com/elevateestimator/quotegenerator"
	"github.com/elevateestimator/quotegenerator/internal/document"
)

func Example() {
	// Create an exporter (reuses the browser across exports).
	exp, err := quotegen.NewExporter(quotegen.WithNoSandbox())
	if err != nil {
		log.Fatal(err)
	}
	defer exp.Close()

	doc := &document.Document{
		Profile: document.QuoteProfile(),
		Company: document.Company{Name: "Acme Renovations"},
		Client:  document.Client{Name: "Jane Doe"},
		Number:  "Q-1001",
		Items: []document.LineItem{
			{Description: "Kitchen demolition", Quantity: "1", UnitPrice: "1200", Taxable: true},
		},
	}

	res, err := exp.Export(context.Background(), doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Generated %s: %d bytes\n", res.Filename(), res.Len())
}

func Example_fromFile() {
	doc, err := document.LoadFile("quote.yaml")
	if err != nil {
		log.Fatal(err)
	}

	res, err := quotegen.ExportDocument(context.Background(), doc,
		quotegen.WithNoSandbox(),
		quotegen.WithAutoDownload(),
	)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := res.Save("."); err != nil {
		log.Fatal(err)
	}
	fmt.Println("saved", res.Filename())
}
