package services

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// Sheet names in the orders workbook.
const (
	OrdersSheet = "Orders"
	ItemsSheet  = "Items"
)

// Row is one record keyed by column key.
type Row map[string]interface{}

// Column describes one spreadsheet column. Format, when set, converts the
// raw row value for display.
type Column struct {
	Key    string
	Label  string
	Width  float64
	Format func(row Row) interface{}
}

// Value returns the display value of the column for row.
func (c Column) Value(row Row) interface{} {
	if c.Format != nil {
		return c.Format(row)
	}
	return row[c.Key]
}

func moneyColumn(key, label string) Column {
	return Column{
		Key:   key,
		Label: label,
		Width: 14,
		Format: func(row Row) interface{} {
			cents, _ := row[key].(int64)
			currency, _ := row["currency"].(string)
			return helpers.FormatMoney(cents, currency)
		},
	}
}

// OrderColumns are the columns of the Orders sheet.
var OrderColumns = []Column{
	{Key: "order_number", Label: "Order", Width: 22},
	{Key: "created_at", Label: "Placed", Width: 20},
	{Key: "status", Label: "Status", Width: 12},
	{Key: "customer_name", Label: "Customer", Width: 24},
	{Key: "customer_email", Label: "Email", Width: 28},
	{Key: "customer_phone", Label: "Phone", Width: 16},
	{Key: "city", Label: "City", Width: 14},
	{Key: "country", Label: "Country", Width: 10},
	{Key: "payment_method", Label: "Payment", Width: 18},
	{Key: "currency", Label: "Currency", Width: 10},
	{Key: "items", Label: "Items", Width: 8},
	moneyColumn("subtotal_cents", "Subtotal"),
	moneyColumn("shipping_cents", "Shipping"),
	moneyColumn("total_cents", "Total"),
	{Key: "notes", Label: "Notes", Width: 30},
}

// ItemColumns are the columns of the Items sheet.
var ItemColumns = []Column{
	{Key: "order_number", Label: "Order", Width: 22},
	{Key: "product_name", Label: "Product", Width: 28},
	{Key: "quantity", Label: "Qty", Width: 8},
	{Key: "currency", Label: "Currency", Width: 10},
	moneyColumn("unit_price_cents", "Unit price"),
	moneyColumn("line_total_cents", "Line total"),
}

// OrderRow flattens an order for export.
func OrderRow(o business.OrderDetails) Row {
	var quantity int64
	for _, item := range o.Items {
		quantity += int64(item.Quantity)
	}
	return Row{
		"order_number":   o.Order.OrderNumber,
		"created_at":     o.Order.CreatedAt.Time.UTC().Format("2006-01-02 15:04"),
		"status":         o.Order.Status,
		"customer_name":  o.Order.CustomerName,
		"customer_email": o.Order.CustomerEmail,
		"customer_phone": o.Order.CustomerPhone,
		"city":           o.Order.City,
		"country":        o.Order.Country,
		"payment_method": o.Order.PaymentMethod,
		"currency":       o.Order.Currency,
		"items":          quantity,
		"subtotal_cents": o.Order.SubtotalCents,
		"shipping_cents": o.Order.ShippingCents,
		"total_cents":    o.Order.TotalCents,
		"notes":          helpers.TextOrEmpty(o.Order.Notes),
	}
}

// ItemRows flattens the line items of an order for export.
func ItemRows(o business.OrderDetails) []Row {
	rows := make([]Row, 0, len(o.Items))
	for _, item := range o.Items {
		rows = append(rows, Row{
			"order_number":     o.Order.OrderNumber,
			"product_name":     item.ProductName,
			"quantity":         int64(item.Quantity),
			"currency":         o.Order.Currency,
			"unit_price_cents": item.UnitPriceCents,
			"line_total_cents": item.LineTotalCents,
		})
	}
	return rows
}

// ExportService builds XLSX exports for the admin dashboard
type ExportService struct {
	orders interfaces.OrderService
}

// NewExportService creates a new export service
func NewExportService(orders interfaces.OrderService) *ExportService {
	return &ExportService{orders: orders}
}

// ExportOrders returns an XLSX workbook of the orders placed in [From, To).
func (s *ExportService) ExportOrders(ctx context.Context, p params.ExportOrdersParams) ([]byte, error) {
	orders, err := s.orders.ListOrdersForExport(ctx, p)
	if err != nil {
		return nil, err
	}

	orderRows := make([]Row, 0, len(orders))
	var itemRows []Row
	for _, o := range orders {
		orderRows = append(orderRows, OrderRow(o))
		itemRows = append(itemRows, ItemRows(o)...)
	}

	data, err := BuildWorkbook(
		Sheet{Name: OrdersSheet, Columns: OrderColumns, Rows: orderRows},
		Sheet{Name: ItemsSheet, Columns: ItemColumns, Rows: itemRows},
	)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Orders exported",
		zap.Time("from", p.From),
		zap.Time("to", p.To),
		zap.Int("orders", len(orders)),
		zap.Int("bytes", len(data)))

	return data, nil
}

// Sheet is one worksheet of an export.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// BuildWorkbook writes sheets in order into a new workbook. The first sheet
// replaces the default one.
func BuildWorkbook(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, errors.New("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"16A34A"}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, errors.Wrapf(err, "failed to name sheet %s", sheet.Name)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, errors.Wrapf(err, "failed to add sheet %s", sheet.Name)
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return nil, errors.Wrapf(err, "failed to write sheet %s", sheet.Name)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	if len(sheet.Columns) == 0 {
		return fmt.Errorf("sheet %s has no columns", sheet.Name)
	}

	header := make([]interface{}, len(sheet.Columns))
	for i, col := range sheet.Columns {
		header[i] = col.Label
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(sheet.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, col := range sheet.Columns {
		if col.Width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, col.Width); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		values := make([]interface{}, len(sheet.Columns))
		for i, col := range sheet.Columns {
			values[i] = col.Value(row)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}

	return nil
}
