// Package render lays a calculated payslip out on a fixed A4 page and
// encodes it as a PDF data URI.
package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"payslipgen/internal/domain/payslip"
	"payslipgen/internal/platform/assets"
)

// Page geometry and type constants, all in millimeters on an A4 page.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 15.0
	contentWidth = pageWidth - 2*margin

	fontSizeTitle         = 22.0
	fontSizeSubtitle      = 9.0
	fontSizeSectionHeader = 11.0
	fontSizeNormal        = 9.0
	fontSizeSmall         = 8.0
	fontSizeTableHeader   = 8.0

	lineHeightNormal = 6.0
	lineHeightSmall  = 4.5
	sectionSpacing   = 7.0
	itemSpacing      = 3.5
	tableHeaderGap   = 2.5

	logoWidth         = 35.0
	defaultLogoHeight = 15.0

	labelColumnWidth = 28.0
	footerBottomGap  = 15.0

	// Point-to-millimeter conversion used for baseline offsets.
	scaleFactor = 72.0 / 25.4
)

type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{48, 71, 94}
	colorDark      = rgb{0, 0, 0}
	colorMuted     = rgb{100, 100, 100}
	colorBorder    = rgb{200, 200, 200}
	colorWhite     = rgb{255, 255, 255}
	colorCardEdge  = rgb{230, 230, 230}
	colorCardLabel = rgb{150, 150, 150}
	colorPanelFill = rgb{235, 242, 252}
	colorPanelEdge = rgb{200, 220, 245}
	colorWordLabel = rgb{40, 86, 182}
)

// LogoFetcher loads the company logo image. Any failure is non-fatal to
// rendering.
type LogoFetcher interface {
	Fetch(ctx context.Context, url string) (assets.Logo, error)
}

// Engine renders payslips onto single fixed pages. The vertical cursor
// only ever advances; content taller than the page overflows the printable
// area silently.
type Engine struct {
	logos LogoFetcher
}

func New(logos LogoFetcher) *Engine {
	return &Engine{logos: logos}
}

// Render draws the six payslip sections in order and returns the page as
// a base64 PDF data URI.
func (e *Engine) Render(ctx context.Context, slip payslip.Payslip) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", fontSizeNormal)

	y := margin
	y = e.drawHeader(ctx, pdf, slip, y)
	y = drawParties(pdf, slip, y)
	y = drawTable(pdf, "Earnings", slip.Currency, earningsItems(slip.Employee), y)
	y += sectionSpacing
	y = drawTable(pdf, "Deductions", slip.Currency, deductionItems(slip.Employee), y)
	y += sectionSpacing * 1.5
	y = drawSummary(pdf, slip, y)
	y = drawPaymentDetails(pdf, slip, y)
	drawFooter(pdf, slip, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("encode pdf: %w", err)
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

type lineItem struct {
	label  string
	amount string
}

// Item order mirrors the printed breakdown and is significant.
func earningsItems(e payslip.EmployeeInput) []lineItem {
	return []lineItem{
		{"Gross Salary", formatRaw(e.GrossSalary)},
		{"Bonus / Commission", formatRaw(e.BonusCommission)},
		{"Reimbursement", formatRaw(e.ReimbursmentAmount)},
		{"Increment", formatRaw(e.Increment)},
		{"Compensation", formatRaw(e.Compensation)},
		{"Adjustments", formatRaw(e.Adjustments)},
	}
}

func deductionItems(e payslip.EmployeeInput) []lineItem {
	return []lineItem{
		{"Absents Deduction", formatRaw(e.AbsentsDeduction)},
		{"Lates Deduction", formatRaw(e.LatesDeduction)},
		{"Payroll Tax Deduction", formatRaw(e.PayrollTaxDeduction)},
		{"Other Deductions", formatRaw(e.OtherDeductions)},
	}
}

func formatRaw(amount string) string {
	return payslip.FormatAmount(payslip.ParseAmount(amount))
}

// baseline vertically centers text of the given point size within a line.
func baseline(fontSize float64) float64 {
	return fontSize / scaleFactor / 2.5
}

func setTextColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

func setDrawColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetDrawColor(c.r, c.g, c.b)
}

func setFillColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func (e *Engine) drawHeader(ctx context.Context, pdf *gofpdf.Fpdf, slip payslip.Payslip, y float64) float64 {
	titleY := y + 7
	pdf.SetFont("Helvetica", "B", fontSizeTitle)
	setTextColor(pdf, colorPrimary)
	pdf.Text(margin, titleY, "Payslip")

	pdf.SetFont("Helvetica", "", fontSizeSubtitle)
	setTextColor(pdf, colorMuted)
	subY := titleY + lineHeightNormal + itemSpacing/2
	pdf.Text(margin, subY, "Pay Date : "+slip.PayDate)
	pdf.Text(margin, subY+lineHeightSmall, "Pay Period : "+strings.ToUpper(slip.PayPeriod))
	textHeight := subY + lineHeightSmall - y

	logoHeight := defaultLogoHeight
	if e.logos != nil && slip.LogoURL != "" {
		if logo, err := e.logos.Fetch(ctx, slip.LogoURL); err != nil {
			slog.Warn("payslip logo unavailable, rendering without it", "url", slip.LogoURL, "err", err)
		} else {
			logoHeight = float64(logo.Height) * logoWidth / float64(logo.Width)
			imageType := strings.ToUpper(logo.Format)
			if imageType == "JPEG" {
				imageType = "JPG"
			}
			opts := gofpdf.ImageOptions{ImageType: imageType}
			pdf.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(logo.Data))
			pdf.ImageOptions("company-logo", pageWidth-margin-logoWidth, y, logoWidth, logoHeight, false, opts, 0, "")
		}
	}

	setTextColor(pdf, colorDark)
	return y + math.Max(logoHeight, textHeight) + sectionSpacing*1.5
}

func drawParties(pdf *gofpdf.Fpdf, slip payslip.Payslip, y float64) float64 {
	leftY := y
	pdf.SetFont("Helvetica", "B", fontSizeSectionHeader)
	setTextColor(pdf, colorPrimary)
	pdf.Text(margin, leftY, "Employee Details")
	leftY += lineHeightNormal * 1.5

	leftY = drawLabeled(pdf, "Name:", slip.Employee.FullName, margin, leftY)
	leftY = drawLabeled(pdf, "CNIC:", slip.Employee.CNICNumber, margin, leftY)
	leftY = drawLabeled(pdf, "Designation:", slip.Employee.Designation, margin, leftY)
	leftY = drawLabeled(pdf, "DOJ:", slip.Employee.DateOfJoining, margin, leftY)

	rightY := y
	rightX := pageWidth - margin
	pdf.SetFont("Helvetica", "B", fontSizeSectionHeader)
	setTextColor(pdf, colorPrimary)
	textRight(pdf, rightX, rightY, "Employer Details")
	rightY += lineHeightNormal * 1.5

	setTextColor(pdf, colorDark)
	pdf.SetFont("Helvetica", "B", fontSizeNormal)
	textRight(pdf, rightX, rightY, slip.EmployerName)
	rightY += lineHeightNormal

	pdf.SetFont("Helvetica", "", fontSizeNormal)
	addressLines := pdf.SplitText(slip.EmployerAddress, contentWidth*0.45)
	for i, line := range addressLines {
		textRight(pdf, rightX, rightY+float64(i)*lineHeightSmall, line)
	}
	rightY += float64(len(addressLines)) * lineHeightSmall
	if len(addressLines) > 1 {
		rightY += itemSpacing / 2
	}
	textRight(pdf, rightX, rightY, "Phone & WhatsApp: "+slip.EmployerPhone)

	return math.Max(leftY, rightY) + sectionSpacing*1.5
}

func drawLabeled(pdf *gofpdf.Fpdf, label, value string, x, y float64) float64 {
	textY := y + lineHeightNormal/2 - baseline(fontSizeNormal)
	pdf.SetFont("Helvetica", "B", fontSizeNormal)
	setTextColor(pdf, colorDark)
	pdf.Text(x, textY, label)
	pdf.SetFont("Helvetica", "", fontSizeNormal)
	pdf.Text(x+labelColumnWidth, textY, value)
	return y + lineHeightNormal
}

func drawTable(pdf *gofpdf.Fpdf, title, currency string, items []lineItem, y float64) float64 {
	headerY := y + lineHeightNormal/2 - baseline(fontSizeSectionHeader)
	pdf.SetFont("Helvetica", "B", fontSizeSectionHeader)
	setTextColor(pdf, colorPrimary)
	pdf.Text(margin, headerY, title)
	y += lineHeightNormal * 1.2

	columnY := y + lineHeightSmall/2 - baseline(fontSizeTableHeader)
	pdf.SetFont("Helvetica", "", fontSizeTableHeader)
	setTextColor(pdf, colorMuted)
	pdf.Text(margin, columnY, "Description")
	textRight(pdf, pageWidth-margin, columnY, "Amount ("+currency+")")
	y += tableHeaderGap

	setDrawColor(pdf, colorBorder)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += itemSpacing * 1.5

	pdf.SetFont("Helvetica", "", fontSizeNormal)
	setTextColor(pdf, colorDark)
	for _, item := range items {
		// Every line item renders, zero or not.
		itemY := y + lineHeightNormal/2 - baseline(fontSizeNormal)
		pdf.Text(margin, itemY, item.label)
		textRight(pdf, pageWidth-margin, itemY, item.amount)
		y += lineHeightNormal
		setDrawColor(pdf, colorBorder)
		pdf.SetLineWidth(0.1)
		pdf.Line(margin, y-itemSpacing/1.5, pageWidth-margin, y-itemSpacing/1.5)
	}
	return y
}

func drawSummary(pdf *gofpdf.Fpdf, slip payslip.Payslip, y float64) float64 {
	const (
		padX       = 5.0
		padY       = 5.0
		panelH     = 40.0
		cardHeight = 14.0
	)

	setFillColor(pdf, colorPanelFill)
	setDrawColor(pdf, colorPanelEdge)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(margin, y, contentWidth, panelH, 3, "1234", "FD")

	cardWidth := contentWidth/2 - padX*1.5
	cardY := y + padY

	setFillColor(pdf, colorWhite)
	setDrawColor(pdf, colorCardEdge)
	pdf.RoundedRect(margin+padX, cardY, cardWidth, cardHeight, 2, "1234", "FD")
	setTextColor(pdf, colorCardLabel)
	pdf.SetFont("Helvetica", "B", fontSizeSmall)
	pdf.Text(margin+padX*2, cardY+4, "TOTAL EARNINGS")
	setTextColor(pdf, colorDark)
	pdf.SetFont("Helvetica", "", fontSizeNormal)
	pdf.Text(margin+padX*2, cardY+9, slip.Currency)
	pdf.SetFont("Helvetica", "B", fontSizeNormal)
	textRight(pdf, margin+cardWidth, cardY+9, payslip.FormatAmount(slip.TotalEarnings))

	setFillColor(pdf, colorWhite)
	setDrawColor(pdf, colorCardEdge)
	pdf.RoundedRect(margin+cardWidth+padX*2, cardY, cardWidth, cardHeight, 2, "1234", "FD")
	setTextColor(pdf, colorCardLabel)
	pdf.SetFont("Helvetica", "B", fontSizeSmall)
	pdf.Text(margin+cardWidth+padX*3, cardY+4, "TOTAL DEDUCTIONS")
	setTextColor(pdf, colorDark)
	pdf.SetFont("Helvetica", "", fontSizeNormal)
	pdf.Text(margin+cardWidth+padX*3, cardY+9, slip.Currency)
	pdf.SetFont("Helvetica", "B", fontSizeNormal)
	textRight(pdf, margin+cardWidth*2+padX, cardY+9, payslip.FormatAmount(slip.TotalDeductions))

	setDrawColor(pdf, colorPanelEdge)
	pdf.SetLineWidth(0.3)
	pdf.Line(margin+padX, cardY+cardHeight+3, pageWidth-margin-padX, cardY+cardHeight+3)

	netY := cardY + cardHeight + 6
	setFillColor(pdf, colorPrimary)
	setDrawColor(pdf, colorPrimary)
	pdf.RoundedRect(margin+padX, netY, contentWidth-padX*2, 10, 2, "1234", "FD")
	setTextColor(pdf, colorWhite)
	pdf.SetFont("Helvetica", "B", fontSizeNormal)
	pdf.Text(margin+padX*2, netY+6, "NET PAYABLE")
	pdf.SetFontSize(fontSizeNormal + 1)
	textRight(pdf, pageWidth-margin-padX*2, netY+6, slip.Currency+" "+payslip.FormatAmount(slip.NetPayable))

	wordsY := netY + 12
	setFillColor(pdf, colorWhite)
	setDrawColor(pdf, colorCardEdge)
	pdf.RoundedRect(margin+padX, wordsY, contentWidth-padX*2, 10, 2, "1234", "FD")
	setTextColor(pdf, colorWordLabel)
	pdf.SetFont("Helvetica", "B", fontSizeSmall)
	pdf.Text(margin+padX*2, wordsY+4, "AMOUNT IN WORDS")
	setTextColor(pdf, colorDark)
	pdf.SetFont("Helvetica", "", fontSizeNormal)
	pdf.Text(margin+padX*2, wordsY+8, slip.NetPayableInWords)

	return wordsY + 12 + sectionSpacing*1.5
}

func drawPaymentDetails(pdf *gofpdf.Fpdf, slip payslip.Payslip, y float64) float64 {
	titleY := y + lineHeightNormal/2 - baseline(fontSizeSectionHeader)
	pdf.SetFont("Helvetica", "B", fontSizeSectionHeader)
	setTextColor(pdf, colorPrimary)
	pdf.Text(margin, titleY, "Payment Details:")
	y += lineHeightNormal * 1.5

	textY := y + lineHeightNormal/2 - baseline(fontSizeNormal)
	pdf.SetFont("Helvetica", "", fontSizeNormal)
	setTextColor(pdf, colorDark)
	pdf.Text(margin, textY, slip.PaymentDetails)
	return y + lineHeightNormal + sectionSpacing
}

// drawFooter pins the note near the page bottom when content is short;
// long content pushes it further down instead of overlapping.
func drawFooter(pdf *gofpdf.Fpdf, slip payslip.Payslip, y float64) float64 {
	footerY := math.Max(y, pageHeight-footerBottomGap-margin)

	setDrawColor(pdf, colorBorder)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, footerY-6, pageWidth-margin, footerY-6)

	pdf.SetFont("Helvetica", "I", fontSizeSmall)
	setTextColor(pdf, colorMuted)
	noteWidth := pdf.GetStringWidth(slip.FooterNote)
	pdf.Text(margin+(contentWidth-noteWidth)/2, footerY, slip.FooterNote)
	return footerY
}
