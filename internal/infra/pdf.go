package infra

// pdf.go — balance statement generation using go-pdf/fpdf.
// Produces an A4 statement with the collaborator header, the current signed
// balance, and a table of time entries (date, type, worked, overtime, delta).
// The output file is saved to storagePath/extrato_{badge}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateStatementPDF writes a balance statement for a collaborator.
// storagePath is created if needed; the absolute file path is returned.
func GenerateStatementPDF(collab *model.Collaborator, entries []model.TimeEntry, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("extrato_%s.pdf", collab.BadgeNumber)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Banco de Horas - Extrato", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, collab.FullName, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Cracha: %s", collab.BadgeNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Balance ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, fmt.Sprintf("Saldo atual: %s h", collab.BalanceHours.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Entry table ──────────────────────────────────────────────────────────
	colW := []float64{30, 32, 30, 30, 30}
	headers := []string{"Data", "Tipo", "Trabalhadas", "Extras", "Saldo"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		pdf.CellFormat(colW[0], 6, e.Date.Format("02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 6, e.EntryType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 6, e.HoursWorked.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 6, e.OvertimeHours.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 6, e.BalanceHours.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
