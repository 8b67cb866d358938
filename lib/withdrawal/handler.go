package withdrawal

import (
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	withdrawalstore "volonterka-backend/lib/withdrawal/store"
	withdrawalapimodels "volonterka-backend/models/api/withdrawal"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(req withdrawalapimodels.WithdrawalRequest, createdBy string) (id string, err error)
	List() ([]withdrawalapimodels.WithdrawalView, error)
	ListRecent(limit int) ([]withdrawalapimodels.WithdrawalView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: withdrawalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store withdrawalstore.Provider
}

func (i impl) Create(req withdrawalapimodels.WithdrawalRequest, createdBy string) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Withdrawal{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if createdBy != "" {
		rec.CreatedBy = &createdBy
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Помилка створення витрати")
		return "", err
	}
	log.
		WithField("withdrawal_id", id).
		WithField("amount", req.Amount).
		Info("Зафіксовано витрату")
	return id, nil
}

func (i impl) List() ([]withdrawalapimodels.WithdrawalView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання списку витрат")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListRecent(limit int) ([]withdrawalapimodels.WithdrawalView, error) {
	list, err := i.store.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.Withdrawal) []withdrawalapimodels.WithdrawalView {
	result := make([]withdrawalapimodels.WithdrawalView, 0, len(list))
	for _, rec := range list {
		result = append(result, withdrawalapimodels.WithdrawalConvert(rec))
	}
	return result
}
