package receipt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/payment"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/currency"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
	"go.uber.org/zap"
)

// Page dimensions in points (1 point = 1/72 inch): 8.5in x 3.625in.
const (
	pageWidth  = 8.5 * 72
	pageHeight = 3.625 * 72
)

const (
	headerFont = 14
	titleFont  = 11
	itemFont   = 10
	valueFont  = 12
)

// Renderer draws payment receipts.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a receipt renderer.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// Render draws the given ledger record onto a single receipt page and writes
// it to outputDir as payment_<MM-DD-YYYY>.pdf, named for the run date. It
// returns the path of the written file.
func (r *Renderer) Render(record payment.Record, runDate time.Time, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating receipts directory %s: %v", outputDir, err)
	}
	outputPath := filepath.Join(outputDir,
		fmt.Sprintf("payment_%s.pdf", runDate.Format(constants.InputDateLayout)))

	method, err := ClassifyReference(record.Reference)
	if errors.Is(err, ErrUnknownPaymentReference) {
		r.logger.Warn("unknown payment method",
			zap.String("op", "receipt.Render"),
			zap.String("reference", record.Reference),
		)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	page := canvas{pdf: pdf}
	page.drawHeader()
	page.drawPaymentSummary(record)
	page.drawMethodRow(method)
	page.drawInformationBox(record)
	page.drawSignatureLine()
	page.drawFooter()

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("writing receipt %s: %v", outputPath, err)
	}

	r.logger.Info("receipt exported",
		zap.String("op", "receipt.Render"),
		zap.String("path", outputPath),
	)
	return outputPath, nil
}

// canvas wraps the PDF page with the receipt template's bottom-left origin;
// the template's coordinates are kept verbatim and converted to the PDF's
// top-left origin at draw time.
type canvas struct {
	pdf *fpdf.Fpdf
}

func (c *canvas) text(x, y float64, s string) {
	c.pdf.Text(x, pageHeight-y, s)
}

func (c *canvas) line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, pageHeight-y1, x2, pageHeight-y2)
}

func (c *canvas) setFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *canvas) width(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

func (c *canvas) drawHeader() {
	const height = 225.0
	c.setFont("B", headerFont)
	c.text(72, height, "Payment Receipt")
	c.pdf.SetLineWidth(0.5)
	c.line(36, height-6, 576, height-6)
	c.line(36, height+14, 576, height+14)
}

// drawPaymentSummary draws the left-hand label/value column: payment number,
// due date, date received, and amount paid.
func (c *canvas) drawPaymentSummary(record payment.Record) {
	items := []struct {
		height float64
		label  string
		value  string
	}{
		{height: 171, label: "Payment Number:", value: fmt.Sprintf("%d", record.Number)},
		{height: 153, label: "Payment Due:", value: datetime.FormatLongDate(record.DueDate)},
		{height: 135, label: "Date Received:", value: datetime.FormatLongDate(record.ReceivedDate)},
		{height: 117, label: "Amount Paid:", value: currency.Format(record.ReceivedAmount)},
	}

	const indent = 72.0
	for _, item := range items {
		c.setFont("B", titleFont)
		c.text(indent, item.height, item.label)
		labelWidth := c.width(item.label)
		c.setFont("", valueFont)
		c.text(indent+labelWidth+4, item.height, item.value)
	}
}

func (c *canvas) drawMethodRow(method Method) {
	const (
		indent = 72.0
		height = 99.0
	)

	c.setFont("B", titleFont)
	c.text(indent, height, "Payment Method:")
	labelWidth := c.width("Payment Method:")

	var row string
	switch method {
	case MethodCheck:
		row = "  Check [X]   ACH [  ]   Cash [  ]"
	case MethodACH:
		row = "  Check [  ]   ACH [X]   Cash [  ]"
	case MethodCash:
		row = "  Check [  ]   ACH [  ]   Cash [X]"
	default:
		row = "  Check [  ]   ACH [  ]   Cash [  ]"
	}
	c.setFont("", itemFont)
	c.text(indent+labelWidth, height, row)
}

// drawInformationBox draws the right-hand itemized box: principal, interest,
// fees, total due, amount paid, and any extra principal payment.
func (c *canvas) drawInformationBox(record payment.Record) {
	const (
		rightEdge = 556.0
		top       = 189.0
		rowStep   = 18.0
	)
	title := "              Payment Information              "

	c.setFont("B", titleFont)
	titleWidth := c.width(title)
	left := rightEdge - titleWidth
	c.text(left, top, title)
	c.pdf.SetLineWidth(0.5)
	c.line(left, top-4, rightEdge, top-4)

	totalDue := record.PrincipalDue + record.InterestDue
	rows := []struct {
		label     string
		value     string
		underline bool // rule under the value
		overline  bool // rule above the value
	}{
		{label: "Principal:", value: currency.Format(record.PrincipalDue)},
		{label: "Interest:", value: currency.Format(record.InterestDue)},
		{label: "Fees:", value: currency.Format(record.LateFee)},
		{label: "Total Due:", value: currency.Format(totalDue), overline: true},
		{label: "Paid:", value: "- " + currency.Format(record.ReceivedAmount), underline: true},
	}

	c.setFont("", itemFont)
	for i, row := range rows {
		height := top - float64(i+1)*rowStep
		c.text(left+6, height, row.label)
		valueWidth := c.width(row.value)
		c.text(rightEdge-6-valueWidth, height, row.value)
		if row.overline {
			c.line(rightEdge-9-valueWidth, height+13, rightEdge-3, height+13)
		}
		if row.underline {
			c.line(rightEdge-9-valueWidth, height-6, rightEdge-3, height-6)
		}
	}

	extraHeight := top - 6*rowStep
	c.text(left+6, extraHeight, "Extra Principal Payment:")
	extra := record.ReceivedAmount - record.PrincipalDue - record.InterestDue
	if extra > 0 {
		value := currency.Format(extra)
		c.text(rightEdge-6-c.width(value), extraHeight, value)
	}
}

func (c *canvas) drawSignatureLine() {
	const (
		indent = 72.0
		height = 54.0
	)
	c.setFont("B", titleFont)
	c.text(indent, height, "Received By:")
	labelWidth := c.width("Received By:")
	c.line(indent+2+labelWidth, height-2, indent+labelWidth+175, height-2)
}

func (c *canvas) drawFooter() {
	c.pdf.SetLineWidth(0.5)
	c.line(36, 36, 576, 36)
}
