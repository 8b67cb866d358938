package exportapimodels

import (
	"fmt"
	"time"
)

// Dataset - плоска проєкція даних фонду, що будується на момент експорту.
// Не зберігається і не кешується.
type Dataset struct {
	Key         string                 `json:"key"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Columns     []Column               `json:"columns"`
	Rows        []Row                  `json:"rows"`
	Meta        map[string]interface{} `json:"meta"`
}

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Row map[string]interface{}

type Document struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Datasets    []Dataset `json:"datasets"`
}

type DatasetSummary struct {
	Key   string                 `json:"key"`
	Label string                 `json:"label"`
	Rows  int                    `json:"rows"`
	Meta  map[string]interface{} `json:"meta"`
}

// FormatValue приводить значення комірки до тексту однаково для всіх форматів:
// booleans - локалізовані так/ні, дати - ISO-8601, відсутні значення - порожній рядок.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "так"
		}
		return "ні"
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
