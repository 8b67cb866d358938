package volunteer

import (
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	volunteerstore "volonterka-backend/lib/volunteer/store"
	volunteerapimodels "volonterka-backend/models/api/volunteer"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(req volunteerapimodels.VolunteerRequest) (id string, err error)
	List() ([]volunteerapimodels.VolunteerView, error)
	ListRecent(limit int) ([]volunteerapimodels.VolunteerView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: volunteerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store volunteerstore.Provider
}

func (i impl) Create(req volunteerapimodels.VolunteerRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.Volunteer{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Region:   req.Region,
		Skills:   req.Skills,
		Comment:  req.Comment,
	})
	if err != nil {
		log.WithError(err).Error("Помилка збереження анкети волонтера")
		return "", err
	}
	return id, nil
}

func (i impl) List() ([]volunteerapimodels.VolunteerView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання анкет волонтерів")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListRecent(limit int) ([]volunteerapimodels.VolunteerView, error) {
	list, err := i.store.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.Volunteer) []volunteerapimodels.VolunteerView {
	result := make([]volunteerapimodels.VolunteerView, 0, len(list))
	for _, rec := range list {
		result = append(result, volunteerapimodels.VolunteerConvert(rec))
	}
	return result
}
