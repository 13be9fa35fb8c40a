// Package ingest reads the employee compensation workbook uploaded by the
// operator and yields validated sheet rows.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"payslipgen/internal/domain/payslip"
)

var (
	ErrNoWorksheet = errors.New("workbook has no worksheet")
	ErrEmptySheet  = errors.New("sheet must contain a header row and at least one data row")
	ErrNoValidRows = errors.New("no valid employee rows found; ensure Full Name is present for every employee")
)

// requiredColumns is the exact header contract of the upload. Order in the
// sheet does not matter; names must match.
var requiredColumns = []string{
	"Month", "Full Name", "CNIC Number", "Designation", "Date Of Joining",
	"Gross Salary", "Bonus / Commission", "Increment", "Reimbursment Amount",
	"Compensation", "Adjustments", "Absents Deduction", "Lates Deduction",
	"Other Deductions", "Payroll Tax Deduction",
}

// Parse reads the first worksheet of an xlsx stream. Rows without a Full
// Name are skipped; missing required columns, an empty sheet, or a sheet
// with no usable row fail the whole parse.
func Parse(r io.Reader) ([]payslip.EmployeeInput, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	headers := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headers[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := headers[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing expected columns: %s", strings.Join(missing, ", "))
	}

	var inputs []payslip.EmployeeInput
	for _, row := range rows[1:] {
		get := func(col string) string { return cell(row, headers[col]) }
		input := payslip.EmployeeInput{
			Month:               get("Month"),
			FullName:            get("Full Name"),
			CNICNumber:          get("CNIC Number"),
			Designation:         get("Designation"),
			DateOfJoining:       normalizeDate(get("Date Of Joining")),
			GrossSalary:         get("Gross Salary"),
			BonusCommission:     get("Bonus / Commission"),
			Increment:           get("Increment"),
			ReimbursmentAmount:  get("Reimbursment Amount"),
			Compensation:        get("Compensation"),
			Adjustments:         get("Adjustments"),
			AbsentsDeduction:    get("Absents Deduction"),
			LatesDeduction:      get("Lates Deduction"),
			OtherDeductions:     get("Other Deductions"),
			PayrollTaxDeduction: get("Payroll Tax Deduction"),
		}
		if input.FullName == "" {
			continue
		}
		inputs = append(inputs, input)
	}
	if len(inputs) == 0 {
		return nil, ErrNoValidRows
	}
	return inputs, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Renderings excelize produces for date-typed cells. Slash-separated
// forms are left alone: they are how operators already type DD/MM/YYYY.
var dateLayouts = []string{
	"01-02-06",
	"1-2-06",
	"2006-01-02",
}

// normalizeDate converts Excel date serials and excelize's date-cell
// renderings to DD/MM/YYYY. Values that look like neither pass through
// untouched.
func normalizeDate(value string) string {
	if value == "" {
		return value
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// Keep a realistic serial range so plain years are not treated
		// as date serials.
		if serial >= 20000 && serial <= 80000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format("02/01/2006")
			}
		}
		return value
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}
