package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

// OrdersCSV renders the orders report with the same columns as the admin
// panel export.
func OrdersCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Order ID", "Customer", "Type", "Items", "Total", "Date"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, o := range orders {
		record := []string{
			strconv.Itoa(o.Id),
			o.CustomerName,
			customerType(o),
			joinLines(o, "; "),
			Rupees(o.Total),
			o.PlacedAt.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
