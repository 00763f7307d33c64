package render

import "html/template"

// printTmpl is the print clone. Layout rules worth noting:
//   - the root box is pinned to Letter dimensions in CSS px so
//     rasterization is independent of viewport state;
//   - every structural container carries break-inside: avoid;
//   - the totals grid is a fixed 3-column layout (label / filler /
//     value) so currency values align down the page;
//   - all values are inert text, never form controls.
var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  :root { --brand: #0267b5; --valw: 16ch; }
  * { margin: 0; box-sizing: border-box; }
  body { background: #ffffff; font: 13px/1.45 Inter, ui-sans-serif, system-ui, sans-serif; color: #111827; }
  #page {
    width: {{.PageWidthPx}}px;
    min-height: {{.PageHeightPx}}px;
    margin: 0;
    padding: 36px 40px;
    background: #ffffff;
  }

  .doc-header, .grid-2, .card, .signatures, .table-wrap, .items-table tr,
  .totals-grid, .avoid-break {
    break-inside: avoid; page-break-inside: avoid;
  }
  .card, .signatures { background: #ffffff; }

  .pdf-letterhead { display: grid; grid-template-columns: 160px 1fr; align-items: center; gap: 14px; }
  .pdf-letterhead .pdf-logo { width: 160px; height: auto; object-fit: contain; }
  .pdf-letterhead .pdf-company { font: 800 18px/1.2 Inter, ui-sans-serif, system-ui; color: var(--brand); letter-spacing: .2px; }
  .pdf-letterhead .pdf-contact { display: flex; flex-wrap: wrap; gap: 6px 10px; margin-top: 6px; font: 12px/1.5 Inter, ui-sans-serif, system-ui; color: #374151; }
  .pdf-letterhead .pdf-contact > span { white-space: nowrap; }
  .pdf-letterhead .pdf-contact > span:not(:first-child)::before { content: "•"; margin: 0 8px; color: #9ca3af; }
  .pdf-accent { height: 3px; background: linear-gradient(90deg, #0267b5, rgba(2,103,181,.35)); border-radius: 2px; margin: 8px 0 6px; }

  .doc-title { display: flex; align-items: baseline; justify-content: space-between; margin: 10px 0 6px; }
  .doc-title h1 { font-size: 22px; letter-spacing: .04em; text-transform: uppercase; color: #1f2937; }

  .status-pill { font: 700 11px/1 Inter, ui-sans-serif; padding: 5px 10px; border-radius: 9999px; }
  .status-paid { background: #dcfce7; color: #166534; }
  .status-overdue { background: #fee2e2; color: #991b1b; }
  .status-open { background: #e0f2fe; color: #075985; }

  .meta-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 10px; margin-bottom: 14px; }
  .meta-grid label { display: grid; gap: 4px; font-size: 10px; letter-spacing: .04em; text-transform: uppercase; color: #6b7280; }
  .meta-grid label > span { font-size: 12px; font-weight: 700; color: #111827; }

  .grid-2 { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; margin-bottom: 14px; }
  .card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px 14px; }
  .card h2 { font-size: 11px; letter-spacing: .05em; text-transform: uppercase; color: #6b7280; margin-bottom: 6px; }
  .card .line { margin: 2px 0; }
  .card .strong { font-weight: 700; }

  .table-wrap { width: 100%; overflow: visible; margin-bottom: 14px; }
  .items-table { width: 100%; table-layout: fixed; border-collapse: collapse; }
  .items-table th { font-size: 10px; letter-spacing: .05em; text-transform: uppercase; color: #6b7280; text-align: left; padding: 6px 8px; border-bottom: 2px solid #e5e7eb; }
  .items-table td { padding: 7px 8px; border-bottom: 1px solid #f3f4f6; vertical-align: top; }
  .items-table .num { text-align: right; }
  .items-table .center { text-align: center; }
  .items-table td.line-total span { display: inline-block; min-width: 6ch; text-align: right; white-space: nowrap; }
  .items-table .desc-cell { white-space: pre-wrap; }

  .totals { display: flex; justify-content: flex-end; margin-bottom: 14px; }
  .totals-grid { display: grid; grid-template-columns: auto 1fr var(--valw); gap: 4px 8px; min-width: 300px; }
  .totals-grid .label { color: #374151; }
  .totals-grid .value { text-align: right; white-space: nowrap; }
  .totals-grid .curr { color: #6b7280; }
  .totals-grid .curr-placeholder { visibility: hidden; }
  .totals-grid .strong { font-weight: 800; }

  .signatures { display: grid; grid-template-columns: 1fr 1fr; gap: 28px; margin-top: 28px; }
  .signatures .sig { border-top: 1px solid #9ca3af; padding-top: 6px; font-size: 11px; color: #6b7280; }
</style>
</head>
<body>
<div id="page">
  <header class="doc-header avoid-break">
    <div class="pdf-letterhead avoid-break">
      <div>{{if .LogoURL}}<img class="pdf-logo" src="{{.LogoURL}}" alt="">{{end}}</div>
      <div>
        <div class="pdf-company">{{.CompanyName}}</div>
        <div class="pdf-contact">{{range .Contact}}<span>{{.}}</span>{{end}}</div>
      </div>
    </div>
    <div class="pdf-accent"></div>
    <div class="doc-title">
      <h1>{{.Title}}</h1>
      {{if .StatusText}}<span class="status-pill {{.StatusClass}}">{{.StatusText}}</span>{{end}}
    </div>
    <div class="meta-grid">
      {{range .Meta}}<label>{{.Label}}<span>{{.Value}}</span></label>{{end}}
    </div>
  </header>

  <div class="grid-2">
    <section class="card">
      <h2>Bill To</h2>
      <div class="line strong">{{.ClientName}}</div>
      {{range .ClientLines}}<div class="line">{{.}}</div>{{end}}
    </section>
    <section class="card">
      <h2>Prepared By</h2>
      <div class="line strong">{{.CompanyName}}</div>
      {{range .Contact}}<div class="line">{{.}}</div>{{end}}
    </section>
  </div>

  <div class="table-wrap">
    <table class="items-table" id="items-table">
      <colgroup>
        <col style="width:14%"><col style="width:40%"><col style="width:10%"><col style="width:13%"><col style="width:8%"><col style="width:15%">
      </colgroup>
      <thead>
        <tr>
          <th>Item / SKU</th><th>Description</th><th class="num">Qty</th><th class="num">Price</th><th class="center">Tax</th><th class="num">Line Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr class="item-row avoid-break">
          <td>{{.SKU}}</td>
          <td class="desc-cell">{{.Desc}}</td>
          <td class="num">{{.Qty}}</td>
          <td class="num">{{.Price}}</td>
          <td class="center">{{.TaxMark}}</td>
          <td class="num line-total"><span>{{.LineTotal}}</span></td>
        </tr>{{end}}
      </tbody>
    </table>
  </div>

  <div class="totals avoid-break">
    <div class="totals-grid">
      {{range .Summary}}<div class="label{{if .Strong}} strong{{end}}">{{.Label}}</div><div></div><div class="value{{if .Strong}} strong{{end}}"><span class="curr{{if .CurrIsPlain}} curr-placeholder{{end}}">{{.Curr}}</span><span class="amt">{{.Value}}</span></div>{{end}}
    </div>
  </div>

  {{if .DepositValue}}
  <section class="card avoid-break">
    <h2>{{.DepositLabel}}</h2>
    <div class="line strong">{{.DepositValue}}</div>
  </section>
  {{end}}

  {{if .BalanceValue}}
  <section class="card avoid-break">
    <h2>{{.BalanceLabel}}</h2>
    <div class="line strong">{{.BalanceValue}}</div>
  </section>
  {{end}}

  {{if .Notes}}
  <section class="card avoid-break">
    <h2>Notes</h2>
    <div class="line desc-cell">{{.Notes}}</div>
  </section>
  {{end}}

  <div class="signatures">
    <div class="sig">Authorized Signature</div>
    <div class="sig">Client Signature / Date</div>
  </div>
</div>
</body>
</html>`))
