package handler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tutorhub/internal/model"
)

// tutorExportHeader is the column layout of the admin xlsx download.
var tutorExportHeader = []string{
	"ID",
	"Full Name",
	"University",
	"Department",
	"Session",
	"Subjects",
	"Mode",
	"Hourly Rate",
	"Areas",
	"Verification",
	"Rating",
	"Rating Count",
}

// GenerateTutorExport renders the tutor list into an xlsx workbook.
func GenerateTutorExport(tutors []model.TutorProfile) ([]byte, error) {
	f := excelize.NewFile()

	const sheetName = "Tutors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	for col, title := range tutorExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, t := range tutors {
		rate := ""
		if t.HourlyRate != nil {
			rate = fmt.Sprintf("%.0f", *t.HourlyRate)
		}
		rating := ""
		if t.RatingAvg != nil {
			rating = fmt.Sprintf("%.1f", *t.RatingAvg)
		}
		values := []any{
			t.ID,
			t.FullName,
			t.University,
			t.Department,
			t.Session,
			strings.Join(t.Subjects, ", "),
			string(t.Mode),
			rate,
			strings.Join(t.Areas, ", "),
			string(t.Verify),
			rating,
			t.RatingCount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
