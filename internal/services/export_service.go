package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
)

// ExportService renders a prospect's analysis as downloadable reports.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) ExportCSV(ctx context.Context, details *models.ProspectDetails) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	// Header
	_ = writer.Write([]string{"Report Prospect", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Azienda", details.Basic.CompanyName})
	_ = writer.Write([]string{"Website", details.Basic.Website})
	_ = writer.Write([]string{"Settore", details.Basic.Industry})
	_ = writer.Write([]string{"Stato", details.Basic.Status})
	_ = writer.Write([]string{""})

	if business := details.BusinessInfo; business != nil {
		_ = writer.Write([]string{"Stime Business"})
		_ = writer.Write([]string{"Metrica", "Valore"})
		_ = writer.Write([]string{"Visite Mensili", fmt.Sprintf("%d", business.EstimatedMonthlyVisits)})
		_ = writer.Write([]string{"Ordini Stimati", fmt.Sprintf("%d", business.MonthlyOrders)})
		_ = writer.Write([]string{"Spedizioni Stimate", fmt.Sprintf("%d", business.MonthlyShipments)})
		_ = writer.Write([]string{"Fatturato Stimato", fmt.Sprintf("%.2f", business.EstimatedMonthlyRevenue)})
		_ = writer.Write([]string{"Tasso di Conversione", fmt.Sprintf("%.2f%%", business.ConversionRate)})
		_ = writer.Write([]string{""})
	}

	if analysis := details.Analysis; analysis != nil && analysis.Profile != nil {
		_ = writer.Write([]string{"Mercati Principali"})
		_ = writer.Write([]string{"Paese", "Quota", "Visite Stimate"})
		for _, country := range analysis.Profile.Countries {
			_ = writer.Write([]string{
				country.Name,
				fmt.Sprintf("%d%%", country.SharePercent),
				fmt.Sprintf("%d", country.EstimatedVisits),
			})
		}
		_ = writer.Write([]string{""})

		_ = writer.Write([]string{"Osservazioni"})
		for _, insight := range analysis.Insights {
			_ = writer.Write([]string{insight.Kind, insight.Priority, insight.Message})
		}
	}

	writer.Flush()

	filename := fmt.Sprintf("prospect_%s_%s.csv", details.Basic.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, details *models.ProspectDetails) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Prospect"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", details.Basic.CompanyName)
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(sheet, "A2", details.Basic.Website)
	_ = f.SetCellValue(sheet, "A3", details.Basic.Industry)
	_ = f.SetCellValue(sheet, "B3", details.Basic.Status)

	row := 5
	if business := details.BusinessInfo; business != nil {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Stime Business")
		row++
		cells := [][2]any{
			{"Visite Mensili", business.EstimatedMonthlyVisits},
			{"Ordini Stimati", business.MonthlyOrders},
			{"Spedizioni Stimate", business.MonthlyShipments},
			{"Fatturato Stimato", business.EstimatedMonthlyRevenue},
			{"Tasso di Conversione", fmt.Sprintf("%.2f%%", business.ConversionRate)},
			{"Valore Medio Ordine", business.AverageOrderValue},
		}
		for _, cell := range cells {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cell[0])
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cell[1])
			row++
		}
		row++
	}

	if analysis := details.Analysis; analysis != nil && analysis.Profile != nil {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Mercati Principali")
		row++
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Paese")
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Quota %")
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Visite Stimate")
		row++
		for _, country := range analysis.Profile.Countries {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), country.Name)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), country.SharePercent)
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), country.EstimatedVisits)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("prospect_%s_%s.xlsx", details.Basic.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, details *models.ProspectDetails) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, details.Basic.CompanyName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, "Website:")
	pdf.Cell(40, 10, details.Basic.Website)
	pdf.Ln(6)
	pdf.Cell(60, 10, "Settore:")
	pdf.Cell(40, 10, details.Basic.Industry)
	pdf.Ln(6)
	pdf.Cell(60, 10, "Stato:")
	pdf.Cell(40, 10, details.Basic.Status)
	pdf.Ln(12)

	if business := details.BusinessInfo; business != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Stime Business")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(60, 10, "Visite Mensili:")
		pdf.Cell(40, 10, fmt.Sprintf("%d", business.EstimatedMonthlyVisits))
		pdf.Ln(6)
		pdf.Cell(60, 10, "Ordini Stimati:")
		pdf.Cell(40, 10, fmt.Sprintf("%d", business.MonthlyOrders))
		pdf.Ln(6)
		pdf.Cell(60, 10, "Spedizioni Stimate:")
		pdf.Cell(40, 10, fmt.Sprintf("%d", business.MonthlyShipments))
		pdf.Ln(6)
		pdf.Cell(60, 10, "Fatturato Stimato:")
		pdf.Cell(40, 10, fmt.Sprintf("%.2f EUR", business.EstimatedMonthlyRevenue))
		pdf.Ln(12)
	}

	if analysis := details.Analysis; analysis != nil && analysis.Profile != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Mercati Principali")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, country := range analysis.Profile.Countries {
			pdf.Cell(60, 10, country.Name+":")
			pdf.Cell(40, 10, fmt.Sprintf("%d%% (%d visite)", country.SharePercent, country.EstimatedVisits))
			pdf.Ln(6)
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("prospect_%s_%s.pdf", details.Basic.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
