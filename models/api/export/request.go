package exportapimodels

import (
	"encoding/json"
	"strings"
)

type Format string

const (
	FormatZip  Format = "zip"
	FormatJson Format = "json"
	FormatCsv  Format = "csv"
	FormatXlsx Format = "xlsx"
	FormatDocx Format = "docx"
	FormatPdf  Format = "pdf"
)

func (f Format) Valid() bool {
	switch f {
	case FormatZip, FormatJson, FormatCsv, FormatXlsx, FormatDocx, FormatPdf:
		return true
	}
	return false
}

type Request struct {
	Datasets Selection `json:"datasets"`
	Format   Format    `json:"format"`
}

// Selection приймає як масив ключів, так і рядок з комами ("donations,users")
// чи сентінел "all".
type Selection []string

func (s *Selection) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*s = strings.Split(value, ",")
	return nil
}
