package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fintrack/internal/models"
)

var expenseHeader = []string{"ID", "Date", "Category", "Amount", "Currency", "Month", "Year", "Created At"}

// ExpensesCSV writes one row per expense under a fixed header.
func ExpensesCSV(expenses []models.Expense, currency string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(expenseHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		e := &expenses[i]
		row := []string{
			e.ID,
			e.Date.String(),
			string(e.Category),
			e.Amount.StringFixed(2),
			currency,
			strconv.Itoa(e.Month),
			strconv.Itoa(e.Year),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
