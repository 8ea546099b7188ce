package export

import (
	"bytes"
	"testing"
	"time"

	"scratch-quiz/internal/config"
	"scratch-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testExportConfig() config.ExportConfig {
	return config.ExportConfig{
		FilenamePrefix: "Scratch測驗結果",
		SummarySheet:   "測驗摘要",
		DetailSheet:    "詳細答案",
	}
}

func testRecord() *domain.ExportRecord {
	return &domain.ExportRecord{
		Date:           time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC),
		TotalScore:     20,
		MaxScore:       30,
		CorrectCount:   2,
		TotalQuestions: 3,
		Accuracy:       20.0 / 30.0,
		Rows: []domain.ExportRow{
			{Index: 1, QuestionText: "第一題", UserAnswerText: "甲", CorrectAnswerText: "甲", IsCorrect: true, Category: domain.CategoryEvents},
			{Index: 2, QuestionText: "第二題", UserAnswerText: "乙", CorrectAnswerText: "丙", IsCorrect: false, Category: domain.CategoryLooks},
			{Index: 3, QuestionText: "第三題", UserAnswerText: domain.UnansweredMarker, CorrectAnswerText: "丁", IsCorrect: false, Category: domain.CategoryControl},
		},
	}
}

func TestXLSXWriter_Filename(t *testing.T) {
	writer := NewXLSXWriter(testExportConfig())
	assert.Equal(t, "Scratch測驗結果_2026-08-28.xlsx", writer.Filename(testRecord()))
}

func TestXLSXWriter_Write(t *testing.T) {
	writer := NewXLSXWriter(testExportConfig())

	var buf bytes.Buffer
	require.NoError(t, writer.Write(testRecord(), &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"測驗摘要", "詳細答案"}, f.GetSheetList())

	// Summary sheet
	title, err := f.GetCellValue("測驗摘要", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Scratch 小考題 - 測驗結果", title)

	score, err := f.GetCellValue("測驗摘要", "B4")
	require.NoError(t, err)
	assert.Equal(t, "20 / 30", score)

	correct, err := f.GetCellValue("測驗摘要", "B5")
	require.NoError(t, err)
	assert.Equal(t, "2 / 3", correct)

	accuracy, err := f.GetCellValue("測驗摘要", "B6")
	require.NoError(t, err)
	assert.Equal(t, "66.7%", accuracy)

	// Detail sheet header and rows
	header, err := f.GetCellValue("詳細答案", "A1")
	require.NoError(t, err)
	assert.Equal(t, "題號", header)

	questionText, err := f.GetCellValue("詳細答案", "B2")
	require.NoError(t, err)
	assert.Equal(t, "第一題", questionText)

	mark, err := f.GetCellValue("詳細答案", "E2")
	require.NoError(t, err)
	assert.Equal(t, "✓", mark)

	wrongMark, err := f.GetCellValue("詳細答案", "E3")
	require.NoError(t, err)
	assert.Equal(t, "✗", wrongMark)

	unanswered, err := f.GetCellValue("詳細答案", "C4")
	require.NoError(t, err)
	assert.Equal(t, domain.UnansweredMarker, unanswered)

	category, err := f.GetCellValue("詳細答案", "F3")
	require.NoError(t, err)
	assert.Equal(t, "Looks", category)
}
