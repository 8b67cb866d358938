package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	exportapimodels "volonterka-backend/models/api/export"
)

// Generate рендерить вивантаження постранично: набір на сторінку,
// заголовок, опис і таблиця плоским текстом з роздільником "|".
func Generate(doc exportapimodels.Document) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("Generate panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	for _, ds := range doc.Datasets {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(190, 8, ds.Label, "", "L", false)
		if ds.Description != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(190, 6, ds.Description, "", "L", false)
		}
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.MultiCell(190, 5, headerLine(ds), "", "L", false)
		pdf.SetFont("Arial", "", 9)
		for _, row := range ds.Rows {
			pdf.MultiCell(190, 5, rowLine(ds, row), "", "L", false)
		}
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headerLine(ds exportapimodels.Dataset) string {
	labels := make([]string, 0, len(ds.Columns))
	for _, column := range ds.Columns {
		labels = append(labels, column.Label)
	}
	return strings.Join(labels, " | ")
}

func rowLine(ds exportapimodels.Dataset, row exportapimodels.Row) string {
	values := make([]string, 0, len(ds.Columns))
	for _, column := range ds.Columns {
		values = append(values, exportapimodels.FormatValue(row[column.Key]))
	}
	return strings.Join(values, " | ")
}
