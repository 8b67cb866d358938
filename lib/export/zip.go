package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	exportapimodels "volonterka-backend/models/api/export"
)

type zipSummary struct {
	GeneratedAt string                           `json:"generatedAt"`
	Datasets    []exportapimodels.DatasetSummary `json:"datasets"`
}

type zipDatasetPayload struct {
	GeneratedAt string                   `json:"generatedAt"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Columns     []exportapimodels.Column `json:"columns"`
	Rows        []exportapimodels.Row    `json:"rows"`
	Meta        map[string]interface{}   `json:"meta"`
}

// buildZip пакує вивантаження в архів: summary.json у корені,
// для кожного набору каталог з data.json та data.csv.
func buildZip(doc exportapimodels.Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	archive := zip.NewWriter(buf)
	generatedAt := doc.GeneratedAt.Format("2006-01-02T15:04:05.000Z")

	summary := zipSummary{GeneratedAt: generatedAt}
	for _, ds := range doc.Datasets {
		summary.Datasets = append(summary.Datasets, exportapimodels.DatasetSummary{
			Key:   ds.Key,
			Label: ds.Label,
			Rows:  len(ds.Rows),
			Meta:  ds.Meta,
		})
	}
	if err := writeZipJson(archive, "summary.json", summary); err != nil {
		return nil, err
	}

	for _, ds := range doc.Datasets {
		payload := zipDatasetPayload{
			GeneratedAt: generatedAt,
			Label:       ds.Label,
			Description: ds.Description,
			Columns:     ds.Columns,
			Rows:        ds.Rows,
			Meta:        ds.Meta,
		}
		if err := writeZipJson(archive, ds.Key+"/data.json", payload); err != nil {
			return nil, err
		}
		body, err := datasetCsv(ds)
		if err != nil {
			return nil, errors.Wrapf(err, "помилка формування csv для набору %s", ds.Key)
		}
		if err := writeZipEntry(archive, ds.Key+"/data.csv", body); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, errors.Wrap(err, "помилка закриття архіву")
	}
	return buf.Bytes(), nil
}

func writeZipJson(archive *zip.Writer, name string, payload interface{}) error {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "помилка серіалізації %s", name)
	}
	return writeZipEntry(archive, name, body)
}

func writeZipEntry(archive *zip.Writer, name string, body []byte) error {
	w, err := archive.Create(name)
	if err != nil {
		return errors.Wrapf(err, "помилка створення запису %s", name)
	}
	if _, err := w.Write(body); err != nil {
		return errors.Wrapf(err, "помилка запису %s", name)
	}
	return nil
}
