package batch

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteReport renders the batch summary as an XLSX workbook at path: one row
// per file, plus a candidate sheet when the batch was ranked.
func (p *Processor) WriteReport(path string, summary *Summary) error {
	f := excelize.NewFile()
	const sheet = "Batch"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		p.logger.Debug("could not drop default sheet", "error", err)
	}

	headers := []string{"File", "Status", "Requires OCR", "Output", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range summary.Results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		status := "ok"
		if r.Error != "" {
			status = "failed"
		}
		write(1, r.Path)
		write(2, status)
		write(3, r.RequiresOCR)
		write(4, r.OutputPath)
		write(5, r.Error)
		row++
	}

	summaryRow := row + 1
	totals := fmt.Sprintf("total=%d succeeded=%d failed=%d requires_ocr=%d",
		summary.Total, summary.Succeeded, summary.Failed, summary.RequiresOCR)
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	_ = f.SetCellValue(sheet, cell, totals)

	_ = f.SetColWidth(sheet, "A", "A", 48)
	_ = f.SetColWidth(sheet, "D", "D", 48)
	_ = f.SetColWidth(sheet, "E", "E", 40)

	if len(summary.Ranked) > 0 {
		if err := writeCandidateSheet(f, summary); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	p.logger.Info("batch report written", "path", path, "rows", len(summary.Results))
	return nil
}

func writeCandidateSheet(f *excelize.File, summary *Summary) error {
	const sheet = "Candidates"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Rank", "File", "Total Fit", "Skills", "Experience", "Education", "Shortlisted"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range summary.Ranked {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, c.Rank)
		write(2, c.Filename)
		if c.FitScores != nil {
			write(3, c.FitScores.TotalFit)
			write(4, c.FitScores.SkillsMatch)
			write(5, c.FitScores.ExperienceRelevance)
			write(6, c.FitScores.EducationMatch)
		}
		if c.Shortlisted != nil {
			write(7, *c.Shortlisted)
		}
		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 40)
	return nil
}
