package export

import (
	"bytes"
	"encoding/csv"

	exportapimodels "volonterka-backend/models/api/export"
)

// datasetCsv рендерить один набір: рядок заголовків з підписів колонок,
// далі по рядку на запис. Лапки та коми екрануються за RFC 4180.
func datasetCsv(ds exportapimodels.Dataset) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := make([]string, 0, len(ds.Columns))
	for _, column := range ds.Columns {
		header = append(header, column.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for idx, column := range ds.Columns {
			record[idx] = exportapimodels.FormatValue(row[column.Key])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// documentCsv збирає всі набори в один файл: секція на набір,
// перед таблицею йде рядок з назвою набору, секції розділені порожнім рядком.
func documentCsv(doc exportapimodels.Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	for idx, ds := range doc.Datasets {
		if idx > 0 {
			buf.WriteString("\n")
		}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{ds.Label}); err != nil {
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		body, err := datasetCsv(ds)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	return buf.Bytes(), nil
}
