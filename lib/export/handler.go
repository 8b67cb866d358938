package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	contentstore "volonterka-backend/lib/content/store"
	donationstore "volonterka-backend/lib/donation/store"
	docxexport "volonterka-backend/lib/export/docx"
	pdfexport "volonterka-backend/lib/export/pdf"
	xlsxexport "volonterka-backend/lib/export/xlsx"
	feedbackstore "volonterka-backend/lib/feedback/store"
	fundraisingstore "volonterka-backend/lib/fundraising/store"
	reviewstore "volonterka-backend/lib/review/store"
	userstore "volonterka-backend/lib/users/store"
	vehiclestore "volonterka-backend/lib/vehicle/store"
	volunteerstore "volonterka-backend/lib/volunteer/store"
	withdrawalstore "volonterka-backend/lib/withdrawal/store"
	exportapimodels "volonterka-backend/models/api/export"
)

type Provider interface {
	Export(req exportapimodels.Request) (*File, error)
}

var Instance Provider

// File - готове вивантаження з ім'ям та типом вмісту для віддачі клієнту.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

func NewHandler() {
	Instance = newImpl(
		donationstore.NewInstance(db.DB),
		withdrawalstore.NewInstance(db.DB),
		userstore.NewInstance(db.DB),
		volunteerstore.NewInstance(db.DB),
		vehiclestore.NewInstance(db.DB),
		fundraisingstore.NewInstance(db.DB),
		contentstore.NewInstance(db.DB),
		reviewstore.NewInstance(db.DB),
		feedbackstore.NewInstance(db.DB),
	)
}

type impl struct {
	donations   donationstore.Provider
	withdrawals withdrawalstore.Provider
	users       userstore.Provider
	volunteers  volunteerstore.Provider
	vehicles    vehiclestore.Provider
	fundraising fundraisingstore.Provider
	content     contentstore.Provider
	reviews     reviewstore.Provider
	feedback    feedbackstore.Provider

	builders map[string]func() (exportapimodels.Dataset, error)
}

func newImpl(
	donations donationstore.Provider,
	withdrawals withdrawalstore.Provider,
	users userstore.Provider,
	volunteers volunteerstore.Provider,
	vehicles vehiclestore.Provider,
	fundraising fundraisingstore.Provider,
	content contentstore.Provider,
	reviews reviewstore.Provider,
	feedback feedbackstore.Provider,
) *impl {
	i := &impl{
		donations:   donations,
		withdrawals: withdrawals,
		users:       users,
		volunteers:  volunteers,
		vehicles:    vehicles,
		fundraising: fundraising,
		content:     content,
		reviews:     reviews,
		feedback:    feedback,
	}
	i.builders = map[string]func() (exportapimodels.Dataset, error){
		DatasetOverview:    i.buildOverview,
		DatasetDonations:   i.buildDonations,
		DatasetWithdrawals: i.buildWithdrawals,
		DatasetUsers:       i.buildUsers,
		DatasetVolunteers:  i.buildVolunteers,
		DatasetVehicles:    i.buildVehicles,
		DatasetFundraising: i.buildFundraising,
		DatasetContent:     i.buildContent,
		DatasetCommunity:   i.buildCommunity,
	}
	return i
}

// NormalizeSelection зводить запитані ключі до канонічного вигляду:
// обрізає пробіли, знижує регістр, відкидає невідомі, прибирає дублікати.
// Сентінел "all" розгортається в повний перелік. Результат завжди в
// канонічному порядку наборів.
func NormalizeSelection(requested []string) []string {
	seen := map[string]bool{}
	for _, item := range requested {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			continue
		}
		if key == "all" {
			return append([]string{}, datasetOrder...)
		}
		seen[key] = true
	}
	result := []string{}
	for _, key := range datasetOrder {
		if seen[key] {
			result = append(result, key)
		}
	}
	return result
}

// BuildDatasets будує набори за переліком ключів, порожній перелік
// означає всі. Побудова лише читає сховище і нічого не змінює.
func (i *impl) BuildDatasets(keys []string) ([]exportapimodels.Dataset, error) {
	if len(keys) == 0 {
		keys = datasetOrder
	}
	result := make([]exportapimodels.Dataset, 0, len(keys))
	for _, key := range datasetOrder {
		if !containsKey(keys, key) {
			continue
		}
		builder, ok := i.builders[key]
		if !ok {
			continue
		}
		ds, err := builder()
		if err != nil {
			return nil, errors.Wrapf(err, "помилка формування набору %s", key)
		}
		result = append(result, ds)
	}
	return result, nil
}

func containsKey(keys []string, key string) bool {
	for _, item := range keys {
		if item == key {
			return true
		}
	}
	return false
}

func (i *impl) Export(req exportapimodels.Request) (*File, error) {
	if !req.Format.Valid() {
		return nil, ErrUnknownFormat
	}
	selection := NormalizeSelection(req.Datasets)
	if len(selection) == 0 {
		return nil, ErrInvalidSelection
	}
	datasets, err := i.BuildDatasets(selection)
	if err != nil {
		log.WithError(err).Error("Помилка побудови наборів даних для експорту")
		return nil, err
	}
	doc := exportapimodels.Document{
		GeneratedAt: time.Now().UTC(),
		Datasets:    datasets,
	}
	body, contentType, err := serialize(doc, req.Format)
	if err != nil {
		log.WithError(err).
			WithField("format", req.Format).
			Error("Помилка серіалізації експорту")
		return nil, err
	}
	return &File{
		Name:        Filename("report", req.Format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func serialize(doc exportapimodels.Document, format exportapimodels.Format) (body []byte, contentType string, err error) {
	switch format {
	case exportapimodels.FormatZip:
		body, err = buildZip(doc)
		return body, "application/zip", err
	case exportapimodels.FormatJson:
		body, err = json.MarshalIndent(doc, "", "  ")
		return body, "application/json", err
	case exportapimodels.FormatCsv:
		body, err = documentCsv(doc)
		return body, "text/csv; charset=utf-8", err
	case exportapimodels.FormatXlsx:
		body, err = xlsxexport.Generate(doc)
		return body, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case exportapimodels.FormatDocx:
		body, err = docxexport.Generate(doc)
		return body, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", err
	case exportapimodels.FormatPdf:
		body, err = pdfexport.Generate(doc)
		return body, "application/pdf", err
	}
	return nil, "", ErrUnknownFormat
}

// Filename складає ім'я файлу вивантаження: фіксований префікс, призначення
// та мітка часу з секундною точністю без двокрапок.
func Filename(suffix string, format exportapimodels.Format) string {
	stamp := time.Now().UTC().Format("2006-01-02-15-04-05")
	return fmt.Sprintf("volonterka-%s-%s.%s", suffix, stamp, format)
}
