package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	furnace "Smeltline/internal/calc/furnace"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type FurnaceImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []furnace.Design `json:"results"`
}

// Furnace sizes one furnace per spreadsheet row. Bad rows are skipped and
// counted, not fatal; a sheet full of field data is rarely clean.
func (h *Handler) Furnace(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var out FurnaceImportResult
	for i := 1; i < len(rows); i++ {
		req, err := parseFurnaceRow(rows[i])
		if err != nil {
			logrus.WithFields(logrus.Fields{"row": i + 1, "err": err}).Warn("import: row skipped")
			out.Skipped++
			continue
		}
		c, err := furnace.ResolveCoefficients(req)
		if err != nil {
			logrus.WithFields(logrus.Fields{"row": i + 1, "err": err}).Warn("import: row skipped")
			out.Skipped++
			continue
		}
		res, err := furnace.Size(req.Input, c)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// expected columns: preset, capacity_mva, primary_kv, lining_mm
func parseFurnaceRow(row []string) (furnace.SessionRequest, error) {
	if len(row) < 4 {
		return furnace.SessionRequest{}, fmt.Errorf("bad row")
	}
	capacity, err := toFloat(row[1])
	if err != nil {
		return furnace.SessionRequest{}, err
	}
	primary, err := toFloat(row[2])
	if err != nil {
		return furnace.SessionRequest{}, err
	}
	lining, err := toFloat(row[3])
	if err != nil {
		return furnace.SessionRequest{}, err
	}
	return furnace.SessionRequest{
		Preset: strings.TrimSpace(row[0]),
		Input: furnace.Input{
			CapacityMVA: capacity,
			PrimaryKV:   primary,
			LiningMM:    lining,
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
}
