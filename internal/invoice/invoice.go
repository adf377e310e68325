// Package invoice renders a paid bill as a self-contained HTML document,
// suitable for printing or sharing. Output is deterministic for a given bill.
package invoice

import (
	"bytes"
	"html/template"
	"servicevale/internal/domain/entities"
	"strings"
)

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.BillNumber}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 22px; margin-bottom: 0; }
.meta { color: #666; font-size: 13px; margin-bottom: 18px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 18px; }
td { padding: 6px 4px; border-bottom: 1px solid #eee; font-size: 14px; }
td.label { color: #666; width: 45%; }
.total td { font-weight: bold; border-top: 2px solid #222; }
.section { margin-top: 16px; }
.section h2 { font-size: 15px; margin-bottom: 6px; }
.signature img { max-width: 220px; border: 1px solid #ddd; }
</style>
</head>
<body>
<h1>Service Vale</h1>
<div class="meta">Invoice {{.BillNumber}} &middot; {{.Date}}</div>

<table>
<tr><td class="label">Customer</td><td>{{.CustomerName}}</td></tr>
<tr><td class="label">Contact</td><td>{{.ContactNumber}}</td></tr>
<tr><td class="label">Address</td><td>{{.Address}}</td></tr>
<tr><td class="label">Service</td><td>{{.ServiceType}}</td></tr>
<tr><td class="label">Service Engineer</td><td>{{.ServiceBoyName}}</td></tr>
</table>

<table>
<tr><td class="label">Service Charge</td><td>{{.ServiceCharge}}</td></tr>
<tr><td class="label">Payment Method</td><td>{{.PaymentMethod}}</td></tr>
{{- if .IsCash}}
<tr><td class="label">Cash Given</td><td>{{.CashGiven}}</td></tr>
<tr><td class="label">Change Returned</td><td>{{.Change}}</td></tr>
{{- end}}
<tr class="total"><td class="label">Total Paid</td><td>{{.Total}}</td></tr>
</table>

{{- if .Notes}}
<div class="section">
<h2>Notes</h2>
<p>{{.Notes}}</p>
</div>
{{- end}}
{{- if .Signature}}
<div class="section signature">
<h2>Customer Signature</h2>
<img src="data:image/png;base64,{{.Signature}}" alt="signature">
</div>
{{- end}}
</body>
</html>
`))

type invoiceView struct {
	BillNumber     string
	Date           string
	CustomerName   string
	ContactNumber  string
	Address        string
	ServiceType    string
	ServiceBoyName string
	ServiceCharge  string
	Total          string
	PaymentMethod  string
	IsCash         bool
	CashGiven      string
	Change         string
	Notes          string
	Signature      string
}

// Render produces the HTML invoice for a bill. The notes and signature
// sections are omitted entirely when the bill has neither; the cash rows only
// appear for cash payments.
func Render(b entities.Bill) (string, error) {
	v := invoiceView{
		BillNumber:     b.BillNumber,
		Date:           b.DisplayDate(),
		CustomerName:   b.CustomerName,
		ContactNumber:  b.ContactNumber,
		Address:        b.Address,
		ServiceType:    b.ServiceType,
		ServiceBoyName: b.ServiceBoyName,
		ServiceCharge:  b.ServiceCharge,
		Total:          b.Total,
		PaymentMethod:  strings.ToUpper(string(b.PaymentMethod)),
		IsCash:         b.PaymentMethod == entities.PaymentMethodCash,
		CashGiven:      b.CashGiven,
		Change:         b.Change,
		Notes:          b.Notes,
		Signature:      b.Signature,
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
