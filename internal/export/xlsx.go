package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

const (
	defaultSheet  = "Sheet1"
	monthlySheet  = "Monthly"
	expensesSheet = "Expenses"
)

// MonthlyWorkbook builds a workbook with the twelve-month series on one
// sheet and the underlying expenses of that year on another.
func MonthlyWorkbook(series report.Series, expenses []models.Expense, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, monthlySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(expensesSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeMonthly(f, series, currency, header); err != nil {
		return nil, err
	}
	if err := writeExpenses(f, expenses, currency, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMonthly(f *excelize.File, series report.Series, currency string, header int) error {
	headings := []interface{}{
		"Month",
		"Salary (" + currency + ")",
		"Expenses (" + currency + ")",
		"Savings (" + currency + ")",
		"Savings Rate (%)",
	}
	if err := writeRow(f, monthlySheet, 1, headings); err != nil {
		return err
	}
	if err := f.SetCellStyle(monthlySheet, "A1", "E1", header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, m := range series {
		row := []interface{}{
			m.Name,
			m.Salary.InexactFloat64(),
			m.Expenses.InexactFloat64(),
			m.Savings.InexactFloat64(),
			m.SavingsRate.Round(2).InexactFloat64(),
		}
		if err := writeRow(f, monthlySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(monthlySheet, "A", "E", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func writeExpenses(f *excelize.File, expenses []models.Expense, currency string, header int) error {
	headings := []interface{}{"Date", "Category", "Amount (" + currency + ")"}
	if err := writeRow(f, expensesSheet, 1, headings); err != nil {
		return err
	}
	if err := f.SetCellStyle(expensesSheet, "A1", "C1", header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i := range expenses {
		e := &expenses[i]
		row := []interface{}{e.Date.String(), string(e.Category), e.Amount.InexactFloat64()}
		if err := writeRow(f, expensesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(expensesSheet, "A", "C", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNo, sheet, err)
	}
	return nil
}
