// Package quotegen exports quotes and invoices as paginated US-Letter
// PDF documents rendered through headless Chrome.
//
// Instead of delegating pagination to the browser's print engine, the
// pipeline rasterizes a fixed-width print clone of the document, plans
// page cuts at the bottom edges of structural blocks (cards, table rows,
// signature areas) so no block is ever bisected, and reassembles the
// bitmap slices into fixed-size pages.
//
// For one-off exports use the package-level helper:
//
//	res, err := quotegen.ExportDocument(ctx, doc)
//
// For repeated exports create an [Exporter], which reuses the browser
// process:
//
//	exp, err := quotegen.NewExporter(quotegen.WithNoSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	res, err := exp.Export(ctx, doc)
//
// Exports are single-flight: while one is running, further calls return
// [ErrExportInFlight] rather than queueing.
//
// A [Result] gives flexible access to the generated PDF:
//
//	res.Bytes()                       // []byte
//	res.Filename()                    // "Jane_Doe_Q-1001.pdf"
//	res.Base64()                      // base64 string (RFC 4648)
//	res.Reader()                      // *bytes.Reader
//	res.WriteTo(w)                    // io.WriterTo
//	res.WriteToFile("out.pdf", 0o644) // write to disk
//	res.Save(dir)                     // dir + suggested filename
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	exp, err := quotegen.NewExporter(quotegen.WithAutoDownload())
package quotegen
