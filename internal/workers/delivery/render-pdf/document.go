// internal/workers/delivery/render-pdf/document.go
package renderpdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"creative-brief/internal/models"
)

type rgb struct{ r, g, b int }

var (
	colorNavy       = rgb{0x00, 0x33, 0x66}
	colorCyan       = rgb{0x00, 0xBF, 0xFF}
	colorDarkNavy   = rgb{0x00, 0x22, 0x44}
	colorLightCyan  = rgb{0x66, 0xD9, 0xFF}
	colorLightGray  = rgb{0xF7, 0xF9, 0xFC}
	colorMediumGray = rgb{0x6B, 0x72, 0x80}
	colorDarkGray   = rgb{0x37, 0x41, 0x51}
)

const (
	pageMargin = 18.0
	lineHeight = 5.5
	labelWidth = 45.0
	fontFamily = "Helvetica"
)

// document wraps one fpdf page flow in the brief's house style.
type document struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	brand string
	width float64
}

func newDocument(brand string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(brand+" Creative Brief", true)
	pdf.SetCreator(brand+" Creative Intelligence Platform", true)

	pageW, _ := pdf.GetPageSize()
	d := &document{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		brand: brand,
		width: pageW - 2*pageMargin,
	}
	pdf.SetFooterFunc(d.pageNumber)
	pdf.AddPage()
	return d
}

func (d *document) text(s string) string {
	return d.tr(sanitize(s))
}

func (d *document) textColor(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }
func (d *document) fillColor(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *document) drawColor(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }

func (d *document) rule(c rgb, width float64) {
	d.drawColor(c)
	d.pdf.SetLineWidth(width)
	y := d.pdf.GetY()
	d.pdf.Line(pageMargin, y, pageMargin+d.width, y)
}

func (d *document) pageNumber() {
	d.pdf.SetY(-12)
	d.pdf.SetFont(fontFamily, "", 8)
	d.textColor(colorMediumGray)
	d.pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", d.pdf.PageNo()), "", 0, "C", false, 0, "")
}

func (d *document) header() {
	d.pdf.SetFont(fontFamily, "B", 11)
	d.textColor(colorNavy)
	d.pdf.CellFormat(0, 8, d.text(d.brand+" | Creative Intelligence Platform"), "", 1, "L", false, 0, "")
	d.rule(colorCyan, 0.8)
	d.pdf.Ln(6)
}

func (d *document) title(company string) {
	d.pdf.SetFont(fontFamily, "B", 22)
	d.textColor(colorNavy)
	d.pdf.MultiCell(0, 10, d.text(company), "", "C", false)
	d.pdf.SetFont(fontFamily, "B", 16)
	d.textColor(colorCyan)
	d.pdf.CellFormat(0, 9, "CREATIVE BRIEF", "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
}

// table draws label/value rows with a navy label column.
func (d *document) table(rows [][2]string) {
	d.drawColor(colorLightCyan)
	d.pdf.SetLineWidth(0.2)
	for _, row := range rows {
		d.fillColor(colorNavy)
		d.textColor(rgb{0xFF, 0xFF, 0xFF})
		d.pdf.SetFont(fontFamily, "B", 9)
		d.pdf.CellFormat(labelWidth, 7, d.text(row[0]), "1", 0, "L", true, 0, "")

		d.fillColor(colorLightGray)
		d.textColor(colorDarkGray)
		d.pdf.SetFont(fontFamily, "", 9)
		d.pdf.CellFormat(d.width-labelWidth, 7, d.text(row[1]), "1", 1, "L", true, 0, "")
	}
	d.pdf.Ln(6)
}

func (d *document) projectTable(company string, now time.Time) {
	d.table([][2]string{
		{"PROJECT", company},
		{"DATE", now.Format("January 2, 2006")},
		{"VERSION", "v1.0 - AI Generated"},
		{"PLATFORM", d.brand + " Agentic AI System"},
	})
}

func (d *document) section(b block) {
	d.pdf.SetFont(fontFamily, "B", 12)
	d.textColor(colorDarkNavy)
	d.pdf.MultiCell(0, 7, d.text(strings.ToUpper(b.Title)), "", "L", false)
	d.rule(colorCyan, 1.0)
	d.pdf.Ln(3)

	d.textColor(colorDarkGray)
	for _, line := range b.Lines {
		for _, r := range line {
			style := ""
			if r.Bold {
				style = "B"
			}
			d.pdf.SetFont(fontFamily, style, 10)
			d.pdf.Write(lineHeight, d.tr(sanitizeRun(r.Text)))
		}
		d.pdf.Ln(lineHeight)
	}

	d.pdf.Ln(3)
	d.rule(colorLightCyan, 0.3)
	d.pdf.Ln(5)
}

func (d *document) heading(text string) {
	d.pdf.SetFont(fontFamily, "B", 13)
	d.textColor(colorNavy)
	d.pdf.CellFormat(0, 8, d.text(text), "", 1, "L", false, 0, "")
	d.rule(colorCyan, 1.0)
	d.pdf.Ln(4)
}

// researchInsights summarises the research record. Rows without data are
// skipped; nothing is drawn when every row is empty.
func (d *document) researchInsights(r *models.ResearchRecord) {
	if r == nil {
		return
	}
	var rows [][2]string

	var names []string
	for i, c := range r.CompetitorAnalysis.TopCompetitors {
		if i == 3 {
			break
		}
		names = append(names, c.Name)
	}
	if len(names) > 0 {
		rows = append(rows, [2]string{"COMPETITORS", strings.Join(names, ", ")})
	}
	if growth := r.MarketTrends.IndustryTrends.GrowthRate; growth != "" && growth != "N/A" {
		rows = append(rows, [2]string{"GROWTH", growth})
	}
	if topics := firstN(r.MarketTrends.IndustryTrends.HotTopics, 3); len(topics) > 0 {
		rows = append(rows, [2]string{"TRENDS", strings.Join(topics, ", ")})
	}
	if channels := firstN(r.AudienceInsights.ChannelPreferences.PrimaryChannels, 3); len(channels) > 0 {
		rows = append(rows, [2]string{"CHANNELS", strings.Join(channels, ", ")})
	}
	if len(rows) == 0 {
		return
	}

	d.heading("RESEARCH INSIGHTS")
	d.table(rows)
}

func (d *document) footer(researchTime string, now time.Time) {
	d.heading("DOCUMENT INFORMATION")
	d.table([][2]string{
		{"GENERATED BY", d.brand + " Creative Intelligence Platform"},
		{"AI AGENTS", "Competitor Research • Market Trends • Audience Analysis • Brief Generation"},
		{"RESEARCH TIME", researchTime + " seconds"},
		{"DATE", now.Format("02/01/2006 at 15:04:05")},
	})

	d.pdf.SetFont(fontFamily, "I", 9)
	d.textColor(colorMediumGray)
	d.pdf.CellFormat(0, 6, d.text(d.brand+" | Empowering Business with AI"), "", 1, "C", false, 0, "")
}

func (d *document) write(w io.Writer) error {
	return d.pdf.Output(w)
}

func (d *document) writeFile(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
