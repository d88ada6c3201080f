// Package exporter renders segmented election reports as formatted
// spreadsheets.
//
// ExcelWriter implements the pipeline's Renderer interface: one
// workbook per report with a bold bordered header row, zebra striping
// on alternating data rows, right-aligned thousands-separated numbers,
// and, for reports that fold identity columns, a rich-text name cell
// combining the bold padded candidate name with party and status runs.
//
// Example usage:
//
//	writer := exporter.NewExcelWriter()
//	err := writer.Render(ctx, report, "比例代表候補者得票順.xlsx")
package exporter
