package docxexport

import (
	"bytes"

	"github.com/fumiama/go-docx"
	"github.com/pkg/errors"

	exportapimodels "volonterka-backend/models/api/export"
)

// Generate формує документ: секція на набір з заголовком, описом
// та таблицею (рядок заголовків плюс рядок на запис).
func Generate(doc exportapimodels.Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	for _, ds := range doc.Datasets {
		w.AddParagraph().AddText(ds.Label).Size("28")
		if ds.Description != "" {
			w.AddParagraph().AddText(ds.Description).Size("20")
		}
		table := w.AddTable(len(ds.Rows)+1, len(ds.Columns), 8500, nil)
		for idx, column := range ds.Columns {
			table.TableRows[0].TableCells[idx].AddParagraph().AddText(column.Label)
		}
		for rowIdx, row := range ds.Rows {
			for colIdx, column := range ds.Columns {
				value := exportapimodels.FormatValue(row[column.Key])
				table.TableRows[rowIdx+1].TableCells[colIdx].AddParagraph().AddText(value)
			}
		}
		w.AddParagraph()
	}
	buf := new(bytes.Buffer)
	if _, err := w.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "помилка запису документа")
	}
	return buf.Bytes(), nil
}
