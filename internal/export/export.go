package export

import (
	"fmt"
	"strings"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

const dateLayout = "02-01-2006 15:04"

// Rupees renders a paise amount as a decimal rupee string.
func Rupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

func customerType(o models.Order) string {
	if o.Teacher {
		return "Teacher"
	}
	return "Student"
}

func joinLines(o models.Order, sep string) string {
	parts := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		parts = append(parts, fmt.Sprintf("%sx%d", line.Name, line.Quantity))
	}
	return strings.Join(parts, sep)
}
