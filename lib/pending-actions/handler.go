package pendingactions

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"volonterka-backend/config"
	"volonterka-backend/db"
	donationstore "volonterka-backend/lib/donation/store"
	pendingstore "volonterka-backend/lib/pending-actions/store"
	"volonterka-backend/lib/smtp"
	volunteerstore "volonterka-backend/lib/volunteer/store"
	pendingapimodels "volonterka-backend/models/api/pending"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Queue(userID *string, payload dbmodels.PendingPayload, source string) (id string, err error)
	Approve(id, adminID string) (entityID string, err error)
	Reject(id, adminID, notes string) error
	Revert(id string) error
	GetByID(id string) (*pendingapimodels.ActionView, error)
	List() ([]pendingapimodels.ActionView, error)
	CountPending() (int64, error)
}

var Instance Provider

// entityOps - пара операцій матеріалізації/відкату для одного типу заявки.
// Реєстр по типах - точка розширення для нових видів заявок.
type entityOps struct {
	apply    func(tx *gorm.DB, payload dbmodels.PendingPayload) (entityID string, err error)
	rollback func(tx *gorm.DB, entityID string) error
}

var knownEntityTypes = []dbmodels.PendingEntityType{
	dbmodels.PendingEntityDonation,
	dbmodels.PendingEntityVolunteer,
}

// номер телефону: необов'язковий плюс та 10-15 цифр
var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

func NewHandler() {
	ops := map[dbmodels.PendingEntityType]entityOps{
		dbmodels.PendingEntityDonation: {
			apply: func(tx *gorm.DB, payload dbmodels.PendingPayload) (string, error) {
				p := payload.Donation
				return donationstore.NewInstance(tx).Create(dbmodels.Donation{
					DonorName: p.DonorName,
					Amount:    p.Amount,
					Currency:  p.Currency,
					Message:   p.Message,
					Public:    false,
				})
			},
			rollback: func(tx *gorm.DB, entityID string) error {
				return donationstore.NewInstance(tx).Delete(entityID)
			},
		},
		dbmodels.PendingEntityVolunteer: {
			apply: func(tx *gorm.DB, payload dbmodels.PendingPayload) (string, error) {
				p := payload.Volunteer
				return volunteerstore.NewInstance(tx).Create(dbmodels.Volunteer{
					FullName: p.FullName,
					Phone:    p.Phone,
					Email:    p.Email,
					Region:   p.Region,
					Skills:   p.Skills,
					Comment:  p.Comment,
				})
			},
			rollback: func(tx *gorm.DB, entityID string) error {
				return volunteerstore.NewInstance(tx).Delete(entityID)
			},
		},
	}
	for _, entityType := range knownEntityTypes {
		if _, ok := ops[entityType]; !ok {
			log.Fatalf("для типу заявки %s не зареєстровано операції apply/rollback", entityType)
		}
	}
	Instance = impl{
		store:       pendingstore.NewInstance(db.DB),
		ops:         ops,
		validate:    newValidator(),
		notify:      smtp.Instance,
		fundMailbox: config.Conf.Smtp.FundMailbox,
	}
}

type impl struct {
	store       pendingstore.Provider
	ops         map[dbmodels.PendingEntityType]entityOps
	validate    *validator.Validate
	notify      smtp.Provider
	fundMailbox string
}

func (i impl) Queue(userID *string, payload dbmodels.PendingPayload, source string) (id string, err error) {
	entityType, ok := payload.EntityType()
	if !ok {
		return "", ErrUnsupportedEntity
	}
	if _, registered := i.ops[entityType]; !registered {
		return "", ErrUnsupportedEntity
	}
	// неповна заявка відхиляється одразу, а не при підтвердженні,
	// щоб відправник міг виправити дані
	if err := i.validatePayload(entityType, payload); err != nil {
		return "", err
	}
	rec := dbmodels.PendingAction{
		UserID:     userID,
		EntityType: entityType,
		Action:     dbmodels.PendingActionCreate,
		Status:     dbmodels.PendingStatusPending,
		Payload:    payload,
		Source:     source,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Помилка збереження заявки в журналі модерації")
		return "", errors.Wrap(err, "помилка збереження заявки")
	}
	log.
		WithField("action_id", id).
		WithField("entity_type", entityType).
		Info("Заявку поставлено в чергу модерації")
	i.notifyQueued(id, entityType)
	return id, nil
}

// лист модераторам інформаційний, його збій не впливає на заявку
func (i impl) notifyQueued(id string, entityType dbmodels.PendingEntityType) {
	if i.notify == nil || i.fundMailbox == "" {
		return
	}
	subject := "Нова заявка на модерацію"
	message := fmt.Sprintf("Надійшла нова заявка типу %q (id %s). Перегляньте її в адмін-панелі.", entityType, id)
	if err := i.notify.SendEMail(i.fundMailbox, subject, message); err != nil {
		log.WithError(err).WithField("action_id", id).Warn("Не вдалося надіслати сповіщення про нову заявку")
	}
}

func (i impl) Approve(id, adminID string) (entityID string, err error) {
	err = i.store.Transaction(func(tx *gorm.DB) error {
		rec, err := i.store.GetForUpdate(tx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrActionNotFound
		}
		if rec.Status == dbmodels.PendingStatusApproved {
			return ErrAlreadyApproved
		}
		ops, ok := i.ops[rec.EntityType]
		if !ok {
			return ErrUnsupportedEntity
		}
		if err := i.validatePayload(rec.EntityType, rec.Payload); err != nil {
			return err
		}
		// повторне підтвердження після часткової обробки не створює дубліката
		if rec.ProcessedEntityID != nil && *rec.ProcessedEntityID != "" {
			entityID = *rec.ProcessedEntityID
		} else {
			entityID, err = ops.apply(tx, rec.Payload)
			if err != nil {
				return errors.Wrap(err, "помилка виконання заявки")
			}
		}
		now := time.Now()
		return i.store.Update(tx, id, map[string]interface{}{
			"Status":            dbmodels.PendingStatusApproved,
			"ProcessedAt":       &now,
			"ProcessedBy":       &adminID,
			"ProcessedEntityID": &entityID,
			"ResolutionNotes":   nil,
		})
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("action_id", id).
		WithField("entity_id", entityID).
		WithField("admin_id", adminID).
		Info("Заявку підтверджено")
	return entityID, nil
}

func (i impl) Reject(id, adminID, notes string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrActionNotFound
	}
	// відхилення не матеріалізує сутність, тому повторне відхилення
	// чи відхилення підтвердженої заявки просто перезаписує резолюцію
	now := time.Now()
	updMap := map[string]interface{}{
		"Status":      dbmodels.PendingStatusRejected,
		"ProcessedAt": &now,
		"ProcessedBy": &adminID,
	}
	if notes != "" {
		updMap["ResolutionNotes"] = &notes
	} else {
		updMap["ResolutionNotes"] = nil
	}
	if err := i.store.Update(nil, id, updMap); err != nil {
		return err
	}
	log.
		WithField("action_id", id).
		WithField("admin_id", adminID).
		Info("Заявку відхилено")
	return nil
}

func (i impl) Revert(id string) error {
	err := i.store.Transaction(func(tx *gorm.DB) error {
		rec, err := i.store.GetForUpdate(tx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrActionNotFound
		}
		if rec.Status == dbmodels.PendingStatusPending {
			return nil
		}
		if rec.Status == dbmodels.PendingStatusApproved && rec.ProcessedEntityID != nil && *rec.ProcessedEntityID != "" {
			ops, ok := i.ops[rec.EntityType]
			if !ok {
				return ErrUnsupportedEntity
			}
			if err := ops.rollback(tx, *rec.ProcessedEntityID); err != nil {
				return errors.Wrap(err, "помилка відкату заявки")
			}
		}
		return i.store.Update(tx, id, map[string]interface{}{
			"Status":            dbmodels.PendingStatusPending,
			"ProcessedAt":       nil,
			"ProcessedBy":       nil,
			"ProcessedEntityID": nil,
			"ResolutionNotes":   nil,
		})
	})
	if err != nil {
		return err
	}
	log.
		WithField("action_id", id).
		Info("Заявку повернено на розгляд")
	return nil
}

func (i impl) validatePayload(entityType dbmodels.PendingEntityType, payload dbmodels.PendingPayload) error {
	payloadType, ok := payload.EntityType()
	if !ok || payloadType != entityType {
		return ErrInvalidPayload
	}
	var target interface{}
	switch entityType {
	case dbmodels.PendingEntityDonation:
		target = payload.Donation
	case dbmodels.PendingEntityVolunteer:
		target = payload.Volunteer
	default:
		return ErrUnsupportedEntity
	}
	if err := i.validate.Struct(target); err != nil {
		log.WithError(err).Warn("Заявка не пройшла перевірку схеми")
		return ErrInvalidPayload
	}
	return nil
}

func (i impl) GetByID(id string) (*pendingapimodels.ActionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrActionNotFound
	}
	view := pendingapimodels.ActionConvert(*rec)
	return &view, nil
}

func (i impl) List() ([]pendingapimodels.ActionView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання журналу модерації")
		return nil, err
	}
	result := make([]pendingapimodels.ActionView, 0, len(list))
	for _, rec := range list {
		result = append(result, pendingapimodels.ActionConvert(rec))
	}
	return result, nil
}

func (i impl) CountPending() (int64, error) {
	return i.store.CountByStatus(dbmodels.PendingStatusPending)
}
