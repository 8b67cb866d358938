package donation

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	donationstore "volonterka-backend/lib/donation/store"
	donationapimodels "volonterka-backend/models/api/donation"
	dbmodels "volonterka-backend/models/db"
)

var ErrDonationNotFound = errors.New("донат не знайдено")

type Provider interface {
	Create(req donationapimodels.DonationRequest) (id string, err error)
	Update(id string, req donationapimodels.DonationRequest) error
	Delete(id string) error
	List() ([]donationapimodels.DonationView, error)
	ListPublic(limit int) ([]donationapimodels.PublicDonationView, error)
	SetVisibility(id string, public bool) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: donationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store donationstore.Provider
}

func (i impl) Create(req donationapimodels.DonationRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.Donation{
		DonorName: req.DonorName,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Message:   req.Message,
		Public:    req.Public,
	})
	if err != nil {
		log.WithError(err).Error("Помилка створення доната")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, req donationapimodels.DonationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDonationNotFound
	}
	return i.store.Update(id, map[string]interface{}{
		"DonorName": req.DonorName,
		"Amount":    req.Amount,
		"Currency":  req.Currency,
		"Message":   req.Message,
		"Public":    req.Public,
	})
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDonationNotFound
	}
	return i.store.Delete(id)
}

func (i impl) List() ([]donationapimodels.DonationView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання списку донатів")
		return nil, err
	}
	result := make([]donationapimodels.DonationView, 0, len(list))
	for _, rec := range list {
		result = append(result, donationapimodels.DonationConvert(rec))
	}
	return result, nil
}

func (i impl) ListPublic(limit int) ([]donationapimodels.PublicDonationView, error) {
	list, err := i.store.ListPublic(limit)
	if err != nil {
		log.WithError(err).Error("Помилка отримання публічних донатів")
		return nil, err
	}
	result := make([]donationapimodels.PublicDonationView, 0, len(list))
	for _, rec := range list {
		result = append(result, donationapimodels.PublicDonationConvert(rec))
	}
	return result, nil
}

func (i impl) SetVisibility(id string, public bool) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDonationNotFound
	}
	return i.store.Update(id, map[string]interface{}{"Public": public})
}
