package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	furnace "Smeltline/internal/calc/furnace"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

type Handler struct {
	Sessions *furnace.Store
}

type row struct {
	Item  string
	Value string
	Unit  string
}

// designRows flattens the session into the design-sheet line items.
func designRows(s furnace.Snapshot) []row {
	rnd := s.Rounded
	cond := s.Inputs.Conductor
	return []row{
		{"Transformer capacity", fmt.Sprintf("%.1f", s.Inputs.CapacityMVA), "MVA"},
		{"Primary voltage U1", fmt.Sprintf("%.0f", s.Inputs.PrimaryKV), "kV"},
		{"Primary current I1", fmt.Sprintf("%.1f", rnd.PrimaryA), "A"},
		{"Secondary voltage U2", fmt.Sprintf("%.0f", rnd.SecondaryV), "V"},
		{"Secondary current I2", fmt.Sprintf("%.0f", rnd.SecondaryA), "A"},
		{"Electrode diameter De", fmt.Sprintf("%.0f", rnd.ElectrodeMM), "mm"},
		{"Pole circle diameter Dc", fmt.Sprintf("%.0f", rnd.PoleCircleMM), "mm"},
		{"Hearth inner diameter Di", fmt.Sprintf("%.0f", rnd.HearthDiaMM), "mm"},
		{"Hearth depth Hh", fmt.Sprintf("%.0f", rnd.HearthDepMM), "mm"},
		{"Shell inner diameter", fmt.Sprintf("%.0f", rnd.ShellDiaMM), "mm"},
		{"Shell height", fmt.Sprintf("%.0f", rnd.ShellHMM), "mm"},
		{"Lining thickness", fmt.Sprintf("%.0f", s.Inputs.LiningMM), "mm"},
		{"Copper tiles", fmt.Sprintf("%d per phase", cond.TilesPerPhase), "-"},
		{"Copper tubes", fmt.Sprintf("%d per phase", cond.TubesPerPhase()),
			fmt.Sprintf("D%.0fx%.1f", cond.TubeDiaMM, cond.TubeWallMM)},
	}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (furnace.Snapshot, Input, bool) {
	uid, ok := r.Context().Value("userID").(int)
	if !ok || uid == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return furnace.Snapshot{}, Input{}, false
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return furnace.Snapshot{}, Input{}, false
	}
	snap, err := h.Sessions.Snapshot(uid)
	if err != nil {
		http.Error(w, "No finalized design in session", http.StatusNotFound)
		return furnace.Snapshot{}, Input{}, false
	}
	if input.Title == "" {
		input.Title = "Furnace Design Sheet"
	}
	return snap, input, true
}

func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	snap, input, ok := h.session(w, r)
	if !ok {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("State: %s", snap.State))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Unit", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, rw := range designRows(snap) {
		pdf.CellFormat(90, 7, rw.Item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, rw.Value, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, rw.Unit, "1", 1, "L", false, 0, "")
	}
	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"design.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GenerateXLSX(w http.ResponseWriter, r *http.Request) {
	snap, input, ok := h.session(w, r)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", input.Title)
	f.SetCellValue(sheet, "A2", "Project")
	f.SetCellValue(sheet, "B2", input.Project)
	f.SetCellValue(sheet, "A3", "Item")
	f.SetCellValue(sheet, "B3", "Value")
	f.SetCellValue(sheet, "C3", "Unit")
	for i, rw := range designRows(snap) {
		line := i + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", line), rw.Item)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", line), rw.Value)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", line), rw.Unit)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"design.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
