// Package export renders finalized quiz reports as downloadable artifacts.
// The workbook layout mirrors the classroom handout: a summary sheet with the
// headline numbers and a detail sheet with one row per question.
package export

import (
	"fmt"
	"io"

	"scratch-quiz/internal/config"
	"scratch-quiz/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	reportTitle = "Scratch 小考題 - 測驗結果"

	correctMark   = "✓"
	incorrectMark = "✗"
)

// ReportWriter renders an ExportRecord into a downloadable file.
type ReportWriter interface {
	Write(record *domain.ExportRecord, out io.Writer) error
	Filename(record *domain.ExportRecord) string
}

// XLSXWriter writes a two-sheet Excel workbook.
type XLSXWriter struct {
	cfg config.ExportConfig
}

// NewXLSXWriter creates a new XLSXWriter instance
func NewXLSXWriter(cfg config.ExportConfig) *XLSXWriter {
	return &XLSXWriter{cfg: cfg}
}

// Filename returns the suggested download name, date-stamped for uniqueness.
func (w *XLSXWriter) Filename(record *domain.ExportRecord) string {
	return fmt.Sprintf("%s_%s.xlsx", w.cfg.FilenamePrefix, record.Date.Format("2006-01-02"))
}

// Write renders the record into out as an xlsx workbook.
func (w *XLSXWriter) Write(record *domain.ExportRecord, out io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummarySheet(f, record); err != nil {
		return domain.NewInternalError("failed to write summary sheet", err)
	}
	if err := w.writeDetailSheet(f, record); err != nil {
		return domain.NewInternalError("failed to write detail sheet", err)
	}

	if err := f.Write(out); err != nil {
		return domain.NewInternalError("failed to write workbook", err)
	}
	return nil
}

func (w *XLSXWriter) writeSummarySheet(f *excelize.File, record *domain.ExportRecord) error {
	sheet := w.cfg.SummarySheet
	// A new workbook starts with a single default sheet; reuse it.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	summaryRows := [][]interface{}{
		{reportTitle},
		{},
		{"測驗日期", record.Date.Format("2006/01/02 15:04:05")},
		{"總分", fmt.Sprintf("%d / %d", record.TotalScore, record.MaxScore)},
		{"答對題數", fmt.Sprintf("%d / %d", record.CorrectCount, record.TotalQuestions)},
		{"正確率", fmt.Sprintf("%.1f%%", record.Accuracy*100)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 15); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 30)
}

func (w *XLSXWriter) writeDetailSheet(f *excelize.File, record *domain.ExportRecord) error {
	sheet := w.cfg.DetailSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"題號", "題目", "你的答案", "正確答案", "是否正確", "類別"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range record.Rows {
		mark := incorrectMark
		if row.IsCorrect {
			mark = correctMark
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.Index,
			row.QuestionText,
			row.UserAnswerText,
			row.CorrectAnswerText,
			mark,
			string(row.Category),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	widths := []float64{6, 50, 25, 25, 10, 15}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
