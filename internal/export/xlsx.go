package export

import (
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Resumen"
	SheetDays    = "Dias"
	SheetFoods   = "Alimentos"
	SheetMeals   = "Comidas"
)

// WeeklyReportWorkbook lays a weekly report out over four sheets.
func WeeklyReportWorkbook(r *service.WeeklyReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, name := range []string{SheetDays, SheetFoods, SheetMeals} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummarySheet(f, r, headerStyle); err != nil {
		return nil, err
	}
	if err := writeDaysSheet(f, r, headerStyle); err != nil {
		return nil, err
	}
	if err := writeFoodsSheet(f, r, headerStyle); err != nil {
		return nil, err
	}
	if err := writeMealsSheet(f, r, headerStyle); err != nil {
		return nil, err
	}
	return f, nil
}

func WriteWeeklyReportXLSX(r *service.WeeklyReport, path string) error {
	f, err := WeeklyReportWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *service.WeeklyReport, headerStyle int) error {
	sheet := SheetSummary
	phase := "Sin fase activa"
	if r.Phase != nil {
		phase = r.Phase.Name
	}
	rows := [][]interface{}{
		{"Campo", "Valor"},
		{"Período", r.FromDate + " a " + r.ToDate},
		{"Usuario", r.User.Name},
		{"Peso actual (kg)", r.User.BodyWeight},
		{"Fase", phase},
		{"Objetivo calorías", r.Targets.Calories},
		{"Objetivo proteína (g)", r.Targets.Protein},
		{"Objetivo grasa (g)", r.Targets.Fat},
		{"Objetivo carbohidratos (g)", r.Targets.Carbs},
		{"Días con registros", r.DaysWithData},
		{"Promedio calorías", r.AvgCalories},
		{"Promedio proteína (g)", r.AvgProtein},
		{"Promedio grasa (g)", r.AvgFat},
		{"Promedio carbohidratos (g)", r.AvgCarbs},
		{"Días adherentes", r.AdherenceDays},
		{"Peso inicio (kg)", r.Weight.Start},
		{"Peso fin (kg)", r.Weight.End},
		{"Cambio de peso (kg)", r.Weight.Change},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	row := len(rows) + 2
	if err := f.SetCellValue(sheet, cell("A", row), "Análisis"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell("A", row), cell("B", row), headerStyle); err != nil {
		return err
	}
	for _, in := range r.Analysis {
		row++
		if err := f.SetSheetRow(sheet, cell("A", row), &[]interface{}{string(in.Level), in.Message}); err != nil {
			return fmt.Errorf("write analysis row: %w", err)
		}
	}

	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 80)
}

func writeDaysSheet(f *excelize.File, r *service.WeeklyReport, headerStyle int) error {
	sheet := SheetDays
	rows := [][]interface{}{{"Fecha", "Día", "Calorías", "Proteína (g)", "Grasa (g)", "Carbohidratos (g)", "Registros", "Adherente"}}
	for _, d := range r.Days {
		adherent := "no"
		if d.Adherent {
			adherent = "sí"
		}
		rows = append(rows, []interface{}{d.Date, d.Weekday, d.Totals.Calories, d.Totals.Protein, d.Totals.Fat, d.Totals.Carbs, d.HasData, adherent})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "H", 16)
}

func writeFoodsSheet(f *excelize.File, r *service.WeeklyReport, headerStyle int) error {
	sheet := SheetFoods
	rows := [][]interface{}{{"Alimento", "Veces", "Calorías medias", "Proteína media (g)", "Grasa media (g)", "Carbohidratos medios (g)"}}
	for _, food := range r.TopFoods {
		rows = append(rows, []interface{}{food.Name, food.Count, food.AvgCalories, food.AvgProtein, food.AvgFat, food.AvgCarbs})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "F", 20)
}

func writeMealsSheet(f *excelize.File, r *service.WeeklyReport, headerStyle int) error {
	sheet := SheetMeals
	rows := [][]interface{}{{"Comida", "Días", "Calorías medias", "Proteína media (g)", "Grasa media (g)", "Carbohidratos medios (g)", "% del día"}}
	for _, m := range r.Meals {
		rows = append(rows, []interface{}{service.SlotName(m.Slot), m.Days, m.AvgCalories, m.AvgProtein, m.AvgFat, m.AvgCarbs, m.SharePct})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "G", 18)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		values := row
		if err := f.SetSheetRow(sheet, cell("A", i+1), &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
