package xlsxexport

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	exportapimodels "volonterka-backend/models/api/export"
)

// Generate формує книгу: аркуш на набір, на аркуші рядок з назвою,
// рядок з описом, заголовки колонок і дані.
func Generate(doc exportapimodels.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("помилка закриття файлу")
		}
	}()
	for idx, ds := range doc.Datasets {
		sheet := ds.Label
		if idx == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, errors.Wrapf(err, "помилка створення аркуша %s", sheet)
			}
		}
		if err := writeDataset(f, sheet, ds); err != nil {
			return nil, errors.Wrapf(err, "помилка формування аркуша %s", sheet)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDataset(f *excelize.File, sheet string, ds exportapimodels.Dataset) error {
	row := 0
	row, err := writeTitle(f, sheet, row, ds.Label)
	if err != nil {
		return err
	}
	if ds.Description != "" {
		row++
		if err = writeColumn(f, sheet, 1, row, ds.Description); err != nil {
			return err
		}
	}
	headers := make([]string, 0, len(ds.Columns))
	for _, column := range ds.Columns {
		headers = append(headers, column.Label)
	}
	row, err = writeHeader(f, sheet, row, headers)
	if err != nil {
		return err
	}
	if len(ds.Rows) == 0 {
		return nil
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(ds.Rows)); err != nil {
		return err
	}
	for _, record := range ds.Rows {
		row++
		for idx, column := range ds.Columns {
			value := exportapimodels.FormatValue(record[column.Key])
			if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}
