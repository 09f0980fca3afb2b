package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// Service produces XLSX bytes for draft exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportDraftsXLSX returns an XLSX workbook (as bytes) for the given drafts.
func (s *Service) ExportDraftsXLSX(drafts []*draft.Draft) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Store",
		"Category",
		"Total",
		"Payment",
		"Status",
		"Items",
		"Image Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range drafts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.TransactionDate)
		write(2, d.StoreName)
		write(3, d.Category)
		write(4, d.Total)
		write(5, d.Payment)
		write(6, string(d.ValidationStatus))
		write(7, itemSummary(d.Items))
		write(8, d.ImagePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 24) // store
	_ = f.SetColWidth(sheet, "C", "C", 12) // category
	_ = f.SetColWidth(sheet, "D", "E", 12) // total/payment
	_ = f.SetColWidth(sheet, "G", "G", 48) // items
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(drafts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func itemSummary(items []draft.Item) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s x%d", it.Name, it.Quantity)
		if len(out) > 140 {
			return out[:140] + "..."
		}
	}
	return out
}
