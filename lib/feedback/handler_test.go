package feedback

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"volonterka-backend/models"
	feedbackapimodels "volonterka-backend/models/api/feedback"
	dbmodels "volonterka-backend/models/db"
)

type fakeFeedbackStore struct {
	seq     int
	records map[string]*dbmodels.VolunteerFeedback
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{records: map[string]*dbmodels.VolunteerFeedback{}}
}

func (f *fakeFeedbackStore) Create(rec dbmodels.VolunteerFeedback) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("fb-%d", f.seq)
	f.records[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeFeedbackStore) GetByID(id string) (*dbmodels.VolunteerFeedback, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeFeedbackStore) List() ([]dbmodels.VolunteerFeedback, error) {
	list := make([]dbmodels.VolunteerFeedback, 0, len(f.records))
	for _, rec := range f.records {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeFeedbackStore) ListPaginated(status string, page, limit int) ([]dbmodels.VolunteerFeedback, int64, error) {
	list, _ := f.List()
	return list, int64(len(list)), nil
}

func (f *fakeFeedbackStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.records[id]
	if !ok {
		return nil
	}
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.FeedbackStatus)
		case "ResolutionNotes":
			rec.ResolutionNotes = value.(string)
		}
	}
	return nil
}

type fakeNotifier struct {
	sent    []string
	sendErr error
}

func (f *fakeNotifier) SendEMail(to, subject, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to)
	return nil
}

func newFeedbackHandler() (impl, *fakeFeedbackStore, *fakeNotifier) {
	store := newFakeFeedbackStore()
	notifier := &fakeNotifier{}
	handler := impl{
		store:       store,
		notify:      notifier,
		fundMailbox: "fund@volonterka.ua",
	}
	return handler, store, notifier
}

func TestSubmitStoresNewFeedback(t *testing.T) {
	handler, store, _ := newFeedbackHandler()

	id, err := handler.Submit(feedbackapimodels.FeedbackRequest{
		SenderName: "Марія Коваль",
		Contact:    "maria@example.com",
		Message:    "Потрібна допомога з логістикою на сході",
	})
	require.NoError(t, err)

	rec := store.records[id]
	require.NotNil(t, rec)
	require.Equal(t, models.FeedbackStatusNew, rec.Status)
}

func TestSubmitNotifiesFundMailbox(t *testing.T) {
	handler, _, notifier := newFeedbackHandler()

	_, err := handler.Submit(feedbackapimodels.FeedbackRequest{
		SenderName: "Марія Коваль",
		Message:    "Потрібна допомога з логістикою на сході",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"fund@volonterka.ua"}, notifier.sent)
}

func TestSubmitSucceedsWhenNotificationFails(t *testing.T) {
	handler, store, notifier := newFeedbackHandler()
	notifier.sendErr = errors.New("smtp недоступний")

	id, err := handler.Submit(feedbackapimodels.FeedbackRequest{
		SenderName: "Марія Коваль",
		Message:    "Потрібна допомога з логістикою на сході",
	})
	require.NoError(t, err)
	require.NotNil(t, store.records[id])
}
