// Package report renders a printable one-page PDF record of a run: the
// character sheet, equipment, potions and the latest battle journal.
package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	fontSize  = 10
	titleSize = 18
	lineH     = 14.0
	barW      = 220.0
	barH      = 10.0
	// maxJournal caps the journal lines printed on the page.
	maxJournal = 30
)

// Sheet is everything printed on the report.
type Sheet struct {
	Title      string
	Name       string
	Level      int
	HP, MaxHP  int
	XP, MaxXP  int
	Attack     int
	Defense    int
	Gold       int
	Potions    int
	Weapon     string
	Armor      string
	Encounters int
	Stage      int
	Highscore  int
	Outcome    string
	Journal    []string
}

// Generate returns the PDF bytes for s.
func Generate(s Sheet) ([]byte, error) {
	title := s.Title
	if title == "" {
		title = "Battle Record"
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, false)
	pdf.AddPage()

	// Parchment
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)

	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin+20, margin+20)
	pdf.CellFormat(pageW-2*margin-40, 22, title, "", 1, "C", false, 0, "")

	name := s.Name
	if name == "" {
		name = "Hero"
	}
	pdf.SetFont("Helvetica", "I", fontSize)
	pdf.SetX(margin + 20)
	pdf.CellFormat(pageW-2*margin-40, lineH, fmt.Sprintf("%s, level %d", name, s.Level), "", 1, "C", false, 0, "")

	y := float64(margin + 80)
	y = section(pdf, y, "Character")
	y = bar(pdf, y, "HP", s.HP, s.MaxHP, [3]int{180, 40, 40})
	y = bar(pdf, y, "XP", s.XP, s.MaxXP, [3]int{60, 110, 180})
	y = rows(pdf, y, [][2]string{
		{"Attack", fmt.Sprint(s.Attack)},
		{"Defense", fmt.Sprint(s.Defense)},
		{"Gold", fmt.Sprint(s.Gold)},
	})

	y = section(pdf, y+8, "Pack")
	y = rows(pdf, y, [][2]string{
		{"Potions", fmt.Sprint(s.Potions)},
		{"Weapon", orNone(s.Weapon)},
		{"Armor", orNone(s.Armor)},
	})

	y = section(pdf, y+8, "Progress")
	progress := [][2]string{
		{"Encounters won", fmt.Sprint(s.Encounters)},
		{"Enemy level", fmt.Sprint(s.Stage)},
		{"Highscore", fmt.Sprintf("level %d", s.Highscore)},
	}
	if s.Outcome != "" {
		progress = append(progress, [2]string{"Last battle", s.Outcome})
	}
	y = rows(pdf, y, progress)

	y = section(pdf, y+8, "Journal")
	lines := s.Journal
	if len(lines) > maxJournal {
		lines = lines[len(lines)-maxJournal:]
	}
	pdf.SetFont("Courier", "", fontSize-1)
	if len(lines) == 0 {
		pdf.SetXY(margin+30, y)
		pdf.CellFormat(0, lineH, "(nothing yet)", "", 0, "L", false, 0, "")
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, l := range lines {
		if y > pageH-margin-30 {
			break
		}
		pdf.SetXY(margin+30, y)
		pdf.CellFormat(pageW-2*margin-60, lineH-2, tr(l), "", 0, "L", false, 0, "")
		y += lineH - 2
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// section prints a heading with a rule under it and returns the next y.
func section(pdf *gofpdf.Fpdf, y float64, label string) float64 {
	pdf.SetFont("Helvetica", "B", fontSize+2)
	pdf.SetXY(margin+20, y)
	pdf.CellFormat(0, lineH, label, "", 0, "L", false, 0, "")
	pdf.SetLineWidth(0.8)
	pdf.Line(margin+20, y+lineH+2, pageW-margin-20, y+lineH+2)
	return y + lineH + 8
}

func rows(pdf *gofpdf.Fpdf, y float64, kv [][2]string) float64 {
	for _, r := range kv {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(margin+30, y)
		pdf.CellFormat(120, lineH, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.CellFormat(0, lineH, r[1], "", 0, "L", false, 0, "")
		y += lineH
	}
	return y
}

// bar draws a labelled gauge for cur out of maxV.
func bar(pdf *gofpdf.Fpdf, y float64, label string, cur, maxV int, rgb [3]int) float64 {
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin+30, y)
	pdf.CellFormat(120, lineH, label, "", 0, "L", false, 0, "")

	x := float64(margin + 150)
	frac := 0.0
	if maxV > 0 {
		frac = math.Max(0, math.Min(1, float64(cur)/float64(maxV)))
	}
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	if frac > 0 {
		pdf.Rect(x, y+2, barW*frac, barH, "F")
	}
	pdf.SetLineWidth(0.8)
	pdf.Rect(x, y+2, barW, barH, "D")
	pdf.SetXY(x+barW+8, y)
	pdf.CellFormat(0, lineH, fmt.Sprintf("%d / %d", cur, maxV), "", 0, "L", false, 0, "")
	return y + lineH + 4
}

// drawWavyBorder draws a tattered black edge around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
}

// wavyRectPoints returns polygon points for a rectangle with sinusoidal
// wobble on each side, closing back at (x, y).
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+1)
	edge := func(x0, y0, dx, dy, fx, fy float64, from int) {
		for i := from; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, gofpdf.PointType{
				X: x0 + t*dx + amp*math.Sin(float64(i)*fx),
				Y: y0 + t*dy + amp*math.Cos(float64(i)*fy),
			})
		}
	}
	edge(x, y, w, 0, 0.7, 0.5, 0)
	edge(x+w, y, 0, h, 0.6, 0.4, 1)
	edge(x+w, y+h, -w, 0, 0.8, 0.3, 1)
	edge(x, y+h, 0, -h, 0.5, 0.6, 1)
	return pts
}
