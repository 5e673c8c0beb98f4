package reports

import (
	"fmt"
	"io"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SummaryRow is one metric/value pair for the executive summary; the
// paginated-document sink renders these verbatim.
type SummaryRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// BuildExecutiveSummary flattens the headline business figures into display
// rows.
func BuildExecutiveSummary(state models.AppState) []SummaryRow {
	summary := SummarizeOrders(state.Orders)

	totalExpenses := decimal.Zero
	for _, expense := range state.Expenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
	}

	return []SummaryRow{
		{Metric: "Total Orders", Value: fmt.Sprint(len(state.Orders))},
		{Metric: "Revenue", Value: utils.FormatCurrency(summary.Revenue)},
		{Metric: "COGS", Value: utils.FormatCurrency(summary.Cost)},
		{Metric: "Gross Profit", Value: utils.FormatCurrency(summary.GrossProfit)},
		{Metric: "Expenses", Value: utils.FormatCurrency(totalExpenses)},
		{Metric: "GST Collected", Value: utils.FormatCurrency(summary.Gst)},
	}
}

// BuildWorkbook flattens the whole state into one workbook: Orders,
// RawMaterials, FinishedGoods, Invoices, Expenses, and a Summary sheet with
// the executive figures plus low-stock finished goods.
func BuildWorkbook(state models.AppState) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeOrdersSheet(f, state); err != nil {
		return nil, err
	}
	if err := writeInventorySheets(f, state); err != nil {
		return nil, err
	}
	if err := writeFinanceSheets(f, state); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, state); err != nil {
		return nil, err
	}

	// default sheet left over from NewFile
	f.DeleteSheet("Sheet1")
	return f, nil
}

// ExportWorkbook writes the workbook to a file on disk.
func ExportWorkbook(state models.AppState, filename string) error {
	f, err := BuildWorkbook(state)
	if err != nil {
		return err
	}
	return f.SaveAs(filename)
}

// WriteWorkbook streams the workbook to w.
func WriteWorkbook(state models.AppState, w io.Writer) error {
	f, err := BuildWorkbook(state)
	if err != nil {
		return err
	}
	return f.Write(w)
}

func writeOrdersSheet(f *excelize.File, state models.AppState) error {
	sheet := "Orders"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	setHeaderRow(f, sheet, "OrderNumber", "CustomerId", "Status", "CreatedAt", "Revenue", "Gst", "Total")
	for i, order := range state.Orders {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), order.OrderNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), order.CustomerID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(order.Status))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), order.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), order.Revenue().InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), order.GstAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), order.TotalAmount.InexactFloat64())
	}
	return nil
}

func writeInventorySheets(f *excelize.File, state models.AppState) error {
	sheet := "RawMaterials"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeaderRow(f, sheet, "Id", "Name", "Quantity", "ReorderLevel", "LastUpdated")
	for i, rm := range state.Inventory.RawMaterials {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rm.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rm.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rm.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rm.ReorderLevel)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), rm.LastUpdated.Format("2006-01-02"))
	}

	sheet = "FinishedGoods"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeaderRow(f, sheet, "Id", "ProductId", "BatchCode", "Quantity", "ReorderLevel", "MfgDate", "ExpiryDate")
	for i, fg := range state.Inventory.FinishedGoods {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fg.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fg.ProductID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fg.BatchCode)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fg.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), fg.ReorderLevel)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), fg.MfgDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), fg.ExpiryDate.Format("2006-01-02"))
	}
	return nil
}

func writeFinanceSheets(f *excelize.File, state models.AppState) error {
	sheet := "Invoices"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeaderRow(f, sheet, "InvoiceNumber", "OrderId", "IssuedOn", "Amount", "Gst", "PaymentStatus")
	for i, inv := range state.Invoices {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), inv.InvoiceNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inv.OrderID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), inv.IssuedOn.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), inv.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), inv.GstAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(inv.PaymentStatus))
	}

	sheet = "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeaderRow(f, sheet, "Date", "Category", "Description", "Amount", "PaidTo")
	for i, expense := range state.Expenses {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(expense.Category))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), expense.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), expense.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), expense.PaidTo)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, state models.AppState) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	setHeaderRow(f, sheet, "Metric", "Value")
	rows := BuildExecutiveSummary(state)
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r.Metric)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r.Value)
	}

	names := make(map[string]string, len(state.Products))
	for _, p := range state.Products {
		names[p.ID] = p.Name
	}

	start := len(rows) + 4
	f.SetCellValue(sheet, fmt.Sprintf("A%d", start), "Low Stock Finished Goods")
	setRow(f, sheet, start+1, "Batch", "Product", "Quantity", "ReorderLevel")
	for i, fg := range LowStockFinishedGoods(state.Inventory.FinishedGoods) {
		row := start + 2 + i
		name, ok := names[fg.ProductID]
		if !ok {
			name = fg.ProductID
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fg.BatchCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fg.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fg.ReorderLevel)
	}
	return nil
}

func setHeaderRow(f *excelize.File, sheet string, headings ...string) {
	setRow(f, sheet, 1, headings...)
}

func setRow(f *excelize.File, sheet string, row int, values ...string) {
	col := 'A'
	for _, v := range values {
		f.SetCellValue(sheet, fmt.Sprintf("%c%d", col, row), v)
		col++
	}
}
