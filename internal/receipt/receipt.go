// Package receipt renders the printable PDF ticket for one completed order.
// It is a pure function of the order snapshot; nothing is persisted and every
// checkout produces the document fresh.
package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type Line struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Receipt carries everything the ticket shows. Lines and Total come from the
// cart snapshot taken when checkout began, never from live session state.
type Receipt struct {
	OrderID  uint
	Customer string
	Date     time.Time
	Lines    []Line
	Total    decimal.Decimal
}

// Filename names the download attachment deterministically from the order id.
func Filename(orderID uint) string {
	return fmt.Sprintf("ticket_orden_%d.pdf", orderID)
}

const separator = "------------------------------------------------"

// Render writes the ticket PDF to w: centered title, order header, one block
// per line item with its subtotal, and a right-aligned grand total. Amounts
// are formatted to two decimal places.
func Render(w io.Writer, r Receipt) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "TECHSTORE - Comprobante", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Orden ID: #%d", r.OrderID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Cliente: %s", r.Customer)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", r.Date.Format("2/1/2006, 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, separator, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, l := range r.Lines {
		pdf.CellFormat(0, 6, tr(l.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6,
			fmt.Sprintf("Cant: %d x $%s = $%s", l.Quantity, l.Price.StringFixed(2), l.Subtotal().StringFixed(2)),
			"", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pdf.CellFormat(0, 6, separator, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("TOTAL PAGADO: $%s", r.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
