package payroll

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont        = "Helvetica"
	pdfLineHeight  = 7.0
	pdfLabelWidth  = 110.0
	pdfValueWidth  = 0.0
	pdfSectionFill = 230
)

//go:generate mockgen -source=payslip_pdf.go -destination=mock/payslip_renderer_mock.go -package=mock
type PayslipRenderer interface {
	Render(doc PayslipDocument) ([]byte, error)
}

type pdfRenderer struct{}

func NewPDFRenderer() PayslipRenderer {
	return pdfRenderer{}
}

// Render draws doc onto a single A4 page using the core Helvetica font.
func (pdfRenderer) Render(doc PayslipDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(doc.OrganizationName, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 9, tr(doc.OrganizationName), "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(0, 6, tr(doc.OrganizationAddress), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 9, tr(doc.Title), "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, row := range doc.Identity {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.CellFormat(45, pdfLineHeight, tr(row.Label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		pdf.CellFormat(0, pdfLineHeight, tr(row.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFillColor(pdfSectionFill, pdfSectionFill, pdfSectionFill)
	for _, section := range doc.Sections {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.CellFormat(0, pdfLineHeight+1, tr(section.Title), "1", 1, "L", true, 0, "")
		for _, row := range section.Rows {
			style := ""
			if row.Emphasized {
				style = "B"
			}
			pdf.SetFont(pdfFont, style, 10)
			pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(row.Label), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(pdfValueWidth, pdfLineHeight, tr(row.Value), "RB", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.Ln(6)
	pdf.SetFont(pdfFont, "I", 9)
	pdf.CellFormat(0, 5, tr(doc.FooterNote), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(doc.GeneratedOn), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
