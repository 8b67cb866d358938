package review

import (
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	reviewstore "volonterka-backend/lib/review/store"
	reviewapimodels "volonterka-backend/models/api/review"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Submit(req reviewapimodels.ReviewRequest, userID *string) (id string, err error)
	List() ([]reviewapimodels.ReviewView, error)
	ListPublic(limit int) ([]reviewapimodels.ReviewView, error)
	SetVisibility(id string, visible bool) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: reviewstore.NewInstance(db.DB),
	}
}

type impl struct {
	store reviewstore.Provider
}

// Submit зберігає відгук прихованим, публікує його адміністратор.
func (i impl) Submit(req reviewapimodels.ReviewRequest, userID *string) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.DonorReview{
		UserID:     userID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Message:    req.Message,
		Public:     false,
	})
	if err != nil {
		log.WithError(err).Error("Помилка збереження відгуку")
		return "", err
	}
	return id, nil
}

func (i impl) List() ([]reviewapimodels.ReviewView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання відгуків")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListPublic(limit int) ([]reviewapimodels.ReviewView, error) {
	list, err := i.store.ListPublic(limit)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) SetVisibility(id string, visible bool) error {
	return i.store.SetVisibility(id, visible)
}

func convertList(list []dbmodels.DonorReview) []reviewapimodels.ReviewView {
	result := make([]reviewapimodels.ReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, reviewapimodels.ReviewConvert(rec))
	}
	return result
}
