package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

// OrdersPDF renders the orders report as a one-column PDF listing, one order
// per line, paged automatically.
func OrdersPDF(orders []models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 20, "ByteBite Orders Report")
	pdf.Ln(30)

	pdf.SetFont("Helvetica", "", 10)
	for _, o := range orders {
		line := fmt.Sprintf("#%d: %s - %s - Rs %s",
			o.Id, o.CustomerName, joinLines(o, ", "), Rupees(o.Total))
		pdf.Cell(0, 12, line)
		pdf.Ln(15)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
