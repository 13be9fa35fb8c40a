package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"

	"payslipgen/internal/domain/payslip"
	"payslipgen/internal/platform/assets"
)

func testSlip(t *testing.T) payslip.Payslip {
	t.Helper()
	employer := payslip.Employer{
		Name:     payslip.DefaultEmployerName,
		Address:  payslip.DefaultEmployerAddress,
		Phone:    payslip.DefaultEmployerPhone,
		Currency: payslip.DefaultCurrency,
	}
	slip, err := payslip.Calculate(payslip.EmployeeInput{
		Month:            "January 2025",
		FullName:         "Jane Doe",
		CNICNumber:       "42101-1234567-1",
		Designation:      "Engineer",
		DateOfJoining:    "01/03/2020",
		GrossSalary:      "50000.75",
		BonusCommission:  "2000",
		AbsentsDeduction: "5000.25",
	}, employer, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return slip
}

func decodePDF(t *testing.T, doc string) []byte {
	t.Helper()
	const prefix = "data:application/pdf;base64,"
	if !strings.HasPrefix(doc, prefix) {
		t.Fatalf("document is not a PDF data URI: %.40s", doc)
	}
	raw, err := base64.StdEncoding.DecodeString(doc[len(prefix):])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return raw
}

func TestRenderProducesPDF(t *testing.T) {
	doc, err := New(nil).Render(context.Background(), testSlip(t))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	raw := decodePDF(t, doc)
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("payload does not look like a PDF: %.8s", raw)
	}
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string) (assets.Logo, error) {
	return assets.Logo{}, errors.New("network down")
}

func TestRenderSurvivesLogoFailure(t *testing.T) {
	slip := testSlip(t)
	slip.LogoURL = "https://example.com/Logo.jpg"

	doc, err := New(failingFetcher{}).Render(context.Background(), slip)
	if err != nil {
		t.Fatalf("expected logo failure to be non-fatal, got %v", err)
	}
	decodePDF(t, doc)
}

type pngFetcher struct{ data []byte }

func (f pngFetcher) Fetch(context.Context, string) (assets.Logo, error) {
	return assets.Logo{Data: f.data, Format: "png", Width: 300, Height: 100}, nil
}

func TestRenderWithLogo(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 300, 100))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	slip := testSlip(t)
	slip.LogoURL = "assets/Logo.png"

	doc, err := New(pngFetcher{data: buf.Bytes()}).Render(context.Background(), slip)
	if err != nil {
		t.Fatalf("render with logo failed: %v", err)
	}
	decodePDF(t, doc)
}

func TestCursorAdvancesMonotonically(t *testing.T) {
	slip := testSlip(t)
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", fontSizeNormal)

	engine := New(nil)
	y := margin
	positions := []float64{y}

	y = engine.drawHeader(context.Background(), pdf, slip, y)
	positions = append(positions, y)
	y = drawParties(pdf, slip, y)
	positions = append(positions, y)
	y = drawTable(pdf, "Earnings", slip.Currency, earningsItems(slip.Employee), y)
	positions = append(positions, y)
	y = drawTable(pdf, "Deductions", slip.Currency, deductionItems(slip.Employee), y)
	positions = append(positions, y)
	y = drawSummary(pdf, slip, y)
	positions = append(positions, y)
	y = drawPaymentDetails(pdf, slip, y)
	positions = append(positions, y)
	y = drawFooter(pdf, slip, y)
	positions = append(positions, y)

	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Fatalf("cursor moved upward at step %d: %.2f -> %.2f", i, positions[i-1], positions[i])
		}
	}
}

func TestFooterPinnedForShortContent(t *testing.T) {
	slip := testSlip(t)
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", fontSizeNormal)

	footerY := drawFooter(pdf, slip, 100)
	want := pageHeight - footerBottomGap - margin
	if footerY != want {
		t.Fatalf("expected footer pinned at %.1f, got %.1f", want, footerY)
	}

	// Content past the pin point pushes the footer down instead.
	if got := drawFooter(pdf, slip, want+20); got != want+20 {
		t.Fatalf("expected footer to follow long content at %.1f, got %.1f", want+20, got)
	}
}
