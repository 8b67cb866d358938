package feedback

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/config"
	"volonterka-backend/db"
	feedbackstore "volonterka-backend/lib/feedback/store"
	"volonterka-backend/lib/smtp"
	"volonterka-backend/models"
	feedbackapimodels "volonterka-backend/models/api/feedback"
	dbmodels "volonterka-backend/models/db"
)

var ErrFeedbackNotFound = errors.New("звернення не знайдено")

type Provider interface {
	Submit(req feedbackapimodels.FeedbackRequest) (id string, err error)
	List(filter feedbackapimodels.ListFilter) (list []feedbackapimodels.FeedbackView, rowCount int64, err error)
	UpdateStatus(id string, req feedbackapimodels.StatusUpdateRequest, handledBy string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       feedbackstore.NewInstance(db.DB),
		notify:      smtp.Instance,
		fundMailbox: config.Conf.Smtp.FundMailbox,
	}
}

type impl struct {
	store       feedbackstore.Provider
	notify      smtp.Provider
	fundMailbox string
}

func (i impl) Submit(req feedbackapimodels.FeedbackRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.VolunteerFeedback{
		SenderName: req.SenderName,
		Contact:    req.Contact,
		Message:    req.Message,
		Channel:    req.Channel,
		Status:     models.FeedbackStatusNew,
	})
	if err != nil {
		log.WithError(err).Error("Помилка збереження звернення")
		return "", err
	}
	i.notifyReceived(id, req.SenderName)
	return id, nil
}

// лист інформаційний, його збій не впливає на звернення
func (i impl) notifyReceived(id, senderName string) {
	if i.notify == nil || i.fundMailbox == "" {
		return
	}
	subject := "Нове звернення волонтера"
	message := fmt.Sprintf("Надійшло нове звернення від %q (id %s). Перегляньте його в адмін-панелі.", senderName, id)
	if err := i.notify.SendEMail(i.fundMailbox, subject, message); err != nil {
		log.WithError(err).WithField("feedback_id", id).Warn("Не вдалося надіслати сповіщення про звернення")
	}
}

func (i impl) List(filter feedbackapimodels.ListFilter) (list []feedbackapimodels.FeedbackView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	records, rowCount, err := i.store.ListPaginated(filter.Status, page, limit)
	if err != nil {
		log.WithError(err).Error("Помилка отримання звернень")
		return nil, 0, err
	}
	list = make([]feedbackapimodels.FeedbackView, 0, len(records))
	for _, rec := range records {
		list = append(list, feedbackapimodels.FeedbackConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) UpdateStatus(id string, req feedbackapimodels.StatusUpdateRequest, handledBy string) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrFeedbackNotFound
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"Status":          models.FeedbackStatus(req.Status),
		"HandledBy":       &handledBy,
		"HandledAt":       &now,
		"ResolutionNotes": req.Notes,
	}
	return i.store.Update(id, updMap)
}
