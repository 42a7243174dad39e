package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/lionfit/gym-management-backend/internal/service"
)

// ============================================
// Summary Report (PDF)
// ============================================

// RenderSummary renders the monthly summary as a one-page PDF: a title,
// the generation date, and the four headline figures of the dashboard.
func RenderSummary(stats *service.Stats, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Gym Summary Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Gym Summary Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 8, "Generated on "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	writeLine(pdf, "Total members", fmt.Sprintf("%d", stats.TotalMembers))
	writeLine(pdf, "Active members", fmt.Sprintf("%d", stats.ActiveMembers))
	writeLine(pdf, "Inactive members", fmt.Sprintf("%d", stats.InactiveMembers))
	writeLine(pdf, "Monthly revenue", stats.MonthlyRevenue.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render summary report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(90, 10, label, "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, value, "B", 1, "R", false, 0, "")
}
