package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/model"
	"github.com/gyeongmo89/samsip/internal/repository"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Entry-sheet column layout (0-indexed, row 1 is the header).
const (
	colDate = iota
	colSupplier
	colItem
	colPrice
	colUnit
	colQuantity
	colTotal
	colPaymentCycle
	colPaymentMethod
	colClient
	colNotes
)

type ImportService interface {
	// Import parses an .xlsx upload into orders. All rows of one file commit
	// in a single transaction; a storage failure rolls back the whole file.
	Import(ctx context.Context, filename string, data []byte) (*dto.ImportResponse, error)
	// Template renders the blank order entry sheet users fill in and upload.
	Template() ([]byte, error)
}

type importService struct {
	orders   repository.OrderRepository
	resolver *Resolver
	now      func() time.Time
}

func NewImportService(orders repository.OrderRepository, resolver *Resolver) ImportService {
	return &importService{orders: orders, resolver: resolver, now: time.Now}
}

func (s *importService) Import(ctx context.Context, filename string, data []byte) (*dto.ImportResponse, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".xlsx" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if len(rows) < 2 {
		return &dto.ImportResponse{Imported: 0}, nil
	}

	imported := 0
	err = runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		batch := make([]*model.Order, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if isBlankRow(row) {
				continue
			}
			order, err := s.rowToOrder(ctx, tx, row)
			if err != nil {
				return err
			}
			batch = append(batch, order)
		}
		if err := s.orders.CreateBatch(ctx, tx, batch); err != nil {
			return err
		}
		imported = len(batch)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	return &dto.ImportResponse{Imported: imported}, nil
}

// rowToOrder coerces one data row and resolves its references inside the
// import transaction, so a supplier created for an earlier row of the same
// file is found — not duplicated — by later rows.
func (s *importService) rowToOrder(ctx context.Context, tx *gorm.DB, row []string) (*model.Order, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	// A new supplier's contact is deliberately left empty: the client column
	// is the ordering client, not the supplier's phone number.
	supplierID, err := s.resolver.Supplier(ctx, tx, cell(colSupplier), nil)
	if err != nil {
		return nil, err
	}
	price := coerceDecimal(cell(colPrice))
	itemID, err := s.resolver.Item(ctx, tx, cell(colItem), &price)
	if err != nil {
		return nil, err
	}
	unitID, err := s.resolver.Unit(ctx, tx, cell(colUnit))
	if err != nil {
		return nil, err
	}

	date := coerceDate(cell(colDate), s.now())
	var notes *string
	if n := cell(colNotes); n != "" {
		notes = &n
	}

	return &model.Order{
		SupplierID:    supplierID,
		ItemID:        itemID,
		UnitID:        unitID,
		Quantity:      coerceDecimal(cell(colQuantity)),
		Price:         price,
		Total:         coerceDecimal(cell(colTotal)),
		PaymentCycle:  cell(colPaymentCycle),
		PaymentMethod: defaultPaymentMethod(cell(colPaymentMethod)),
		Client:        cell(colClient),
		Notes:         notes,
		Date:          &date,
	}, nil
}

// ─── Entry template ──────────────────────────────────────────────────────────

var templateColumns = []struct {
	header  string
	width   float64
	example string
}{
	{"Date", 14, "2024-01-01"},
	{"Supplier", 15, "Acme Foods"},
	{"Item", 20, "Flour 20kg"},
	{"Unit Price", 10, "12500"},
	{"Unit", 8, "bag"},
	{"Quantity", 8, "3"},
	{"Total", 12, "=D2*F2"},
	{"Payment Cycle", 25, "monthly"},
	{"Payment Method", 18, model.DefaultPaymentMethod},
	{"Client", 15, "010-0000-0000"},
	{"Notes", 30, "VAT excluded"},
}

func (s *importService) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range templateColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, name+"1", col.header); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, name+"2", col.example); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(templateColumns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", boldStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
