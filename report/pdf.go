package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const utf8Family = "report"

// Writer renders reports as A4 PDFs. With an empty FontFile only the built-in
// Latin-1 fonts are available and names outside that range are replaced.
type Writer struct {
	FontFile string
}

type doc struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	utf8   bool
}

func (w Writer) newDoc() *doc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	d := &doc{pdf: pdf, family: "Helvetica", tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if w.FontFile != "" {
		pdf.AddUTF8Font(utf8Family, "", w.FontFile)
		pdf.AddUTF8Font(utf8Family, "B", w.FontFile)
		d.family = utf8Family
		d.tr = func(s string) string { return s }
		d.utf8 = true
	}
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	return d
}

// text prepares s for the current font, or returns fallback when the built-in
// fonts cannot show it.
func (d *doc) text(s, fallback string) string {
	if !d.utf8 && !latin1(s) {
		s = fallback
	}
	return d.tr(s)
}

func latin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

func (d *doc) heading(size float64, s string) {
	d.pdf.SetFont(d.family, "B", size)
	d.pdf.CellFormat(0, size*0.6, d.tr(s), "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
}

func (d *doc) row(label, value string) {
	d.pdf.SetFont(d.family, "", 12)
	d.pdf.CellFormat(80, 8, d.tr(label), "B", 0, "L", false, 0, "")
	d.pdf.SetFont(d.family, "B", 12)
	d.pdf.CellFormat(0, 8, value, "B", 1, "R", false, 0, "")
}

func (d *doc) output(out io.Writer) error {
	if err := d.pdf.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteReport renders the mission report.
func (w Writer) WriteReport(out io.Writer, r Report) error {
	d := w.newDoc()
	pdf := d.pdf

	d.heading(24, "Prism Team Mission Report")
	pdf.SetFont(d.family, "", 12)
	pdf.CellFormat(0, 7, d.text(fmt.Sprintf("%s and %s", r.Player, r.NPC), "You and your friend"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFillColor(238, 242, 255)
	pdf.SetFont(d.family, "B", 40)
	pdf.CellFormat(0, 22, r.Grade, "", 1, "C", true, 0, "")
	pdf.SetFont(d.family, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Prism score: %d", r.PrismScore), "", 1, "C", true, 0, "")
	pdf.Ln(6)

	d.row("Understanding", fmt.Sprint(r.Stats.Understanding))
	d.row("Trust", fmt.Sprint(r.Stats.Trust))
	d.row("Communication", fmt.Sprint(r.Stats.Communication))
	d.row("Patience", fmt.Sprint(r.Stats.Patience))
	pdf.Ln(4)
	d.row("Times you waited", fmt.Sprint(r.Waiting))
	d.row("Tool accuracy", fmt.Sprintf("%d%%", r.Accuracy))
	d.row("Tools used", fmt.Sprint(r.ToolsUsed))

	if len(r.Badges) > 0 {
		pdf.Ln(6)
		d.heading(14, "Badges")
		names := make([]string, 0, len(r.Badges))
		for _, b := range r.Badges {
			names = append(names, b.Name)
		}
		pdf.SetFont(d.family, "", 12)
		pdf.MultiCell(0, 7, d.tr(strings.Join(names, "  /  ")), "", "C", false)
	}

	if r.Journal != "" {
		pdf.Ln(6)
		d.heading(14, "Reflection journal")
		pdf.SetFont(d.family, "", 11)
		pdf.MultiCell(0, 6, d.text(r.Journal, "(written in a language this font cannot show)"), "1", "L", false)
	}

	pdf.SetY(-30)
	pdf.SetFont(d.family, "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued %s  No. %s", r.IssuedAt.Format("2006-01-02"), r.Serial), "", 1, "C", false, 0, "")
	return d.output(out)
}

// WriteCertificate renders the low track certificate.
func (w Writer) WriteCertificate(out io.Writer, c Certificate) error {
	d := w.newDoc()
	pdf := d.pdf

	pdf.SetDrawColor(134, 239, 172)
	pdf.SetLineWidth(2)
	pdf.Rect(10, 10, 190, 277, "D")
	pdf.Ln(30)

	d.heading(28, "Sprout Agent Certificate")
	pdf.Ln(10)
	pdf.SetFont(d.family, "B", 20)
	pdf.CellFormat(0, 12, d.text(c.Player, "Sprout Agent"), "", 1, "C", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont(d.family, "", 14)
	pdf.MultiCell(0, 8, d.text(
		fmt.Sprintf("You made friends with %s by asking first, waiting together and saying it simply.", c.NPC),
		"You made friends by asking first, waiting together and saying it simply.",
	), "", "C", false)
	pdf.Ln(8)
	pdf.CellFormat(0, 8, fmt.Sprintf("Hearts collected: %d", c.Hearts), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, d.tr("Today I feel: "+c.Sticker.Label), "", 1, "C", false, 0, "")

	pdf.SetY(-40)
	pdf.SetFont(d.family, "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued %s  No. %s", c.IssuedAt.Format("2006-01-02"), c.Serial), "", 1, "C", false, 0, "")
	return d.output(out)
}
