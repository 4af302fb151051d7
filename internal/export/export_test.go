package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/export"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

func TestRupees(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{7023, "70.23"},
		{23726, "237.26"},
		{-150, "-1.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, export.Rupees(tt.paise), "paise=%d", tt.paise)
	}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{
			Id:           7,
			CustomerName: "Akash",
			Teacher:      false,
			Lines: []models.OrderLine{
				{FoodId: 1, Name: "Burger", UnitPrice: 7023, Quantity: 2},
				{FoodId: 2, Name: "Coffee", UnitPrice: 7020, Quantity: 1},
			},
			Total:    21066,
			PlacedAt: time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
		},
		{
			Id:           8,
			CustomerName: "Priya",
			Teacher:      true,
			Lines: []models.OrderLine{
				{FoodId: 3, Name: "Pizza", UnitPrice: 23726, Quantity: 1},
			},
			Total:    23726,
			PlacedAt: time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC),
		},
	}
}

func TestOrdersCSV(t *testing.T) {
	data, err := export.OrdersCSV(sampleOrders())
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{"Order ID", "Customer", "Type", "Items", "Total", "Date"}, records[0])
	assert.Equal(t, []string{"7", "Akash", "Student", "Burgerx2; Coffeex1", "210.66", "30-08-2026 12:30"}, records[1])
	assert.Equal(t, []string{"8", "Priya", "Teacher", "Pizzax1", "237.26", "30-08-2026 13:00"}, records[2])
}

func TestOrdersCSV_Empty(t *testing.T) {
	data, err := export.OrdersCSV(nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOrdersPDF(t *testing.T) {
	data, err := export.OrdersPDF(sampleOrders())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestOrdersPDF_Empty(t *testing.T) {
	data, err := export.OrdersPDF(nil)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
