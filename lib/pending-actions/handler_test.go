package pendingactions

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type fakeStore struct {
	seq     int
	records map[string]*dbmodels.PendingAction
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*dbmodels.PendingAction{}}
}

func (f *fakeStore) Create(rec dbmodels.PendingAction) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("act-%d", f.seq)
	rec.CreatedAt = time.Now()
	f.records[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.PendingActionView, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &dbmodels.PendingActionView{PendingAction: *rec}, nil
}

func (f *fakeStore) GetForUpdate(_ *gorm.DB, id string) (*dbmodels.PendingAction, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStore) List() ([]dbmodels.PendingActionView, error) {
	list := make([]dbmodels.PendingActionView, 0, len(f.records))
	for _, rec := range f.records {
		list = append(list, dbmodels.PendingActionView{PendingAction: *rec})
	}
	return list, nil
}

func (f *fakeStore) CountByStatus(status dbmodels.PendingStatus) (int64, error) {
	var total int64
	for _, rec := range f.records {
		if rec.Status == status {
			total++
		}
	}
	return total, nil
}

func (f *fakeStore) Update(_ *gorm.DB, id string, updMap map[string]interface{}) error {
	rec, ok := f.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(dbmodels.PendingStatus)
		case "ProcessedAt":
			if value == nil {
				rec.ProcessedAt = nil
			} else {
				rec.ProcessedAt = value.(*time.Time)
			}
		case "ProcessedBy":
			if value == nil {
				rec.ProcessedBy = nil
			} else {
				rec.ProcessedBy = value.(*string)
			}
		case "ProcessedEntityID":
			if value == nil {
				rec.ProcessedEntityID = nil
			} else {
				rec.ProcessedEntityID = value.(*string)
			}
		case "ResolutionNotes":
			if value == nil {
				rec.ResolutionNotes = nil
			} else {
				rec.ResolutionNotes = value.(*string)
			}
		}
	}
	return nil
}

func (f *fakeStore) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type opsRecorder struct {
	seq        int
	applied    []string
	rolledBack []string
	applyErr   error
}

func (r *opsRecorder) ops() map[dbmodels.PendingEntityType]entityOps {
	apply := func(_ *gorm.DB, _ dbmodels.PendingPayload) (string, error) {
		if r.applyErr != nil {
			return "", r.applyErr
		}
		r.seq++
		id := fmt.Sprintf("entity-%d", r.seq)
		r.applied = append(r.applied, id)
		return id, nil
	}
	rollback := func(_ *gorm.DB, entityID string) error {
		r.rolledBack = append(r.rolledBack, entityID)
		return nil
	}
	return map[dbmodels.PendingEntityType]entityOps{
		dbmodels.PendingEntityDonation:  {apply: apply, rollback: rollback},
		dbmodels.PendingEntityVolunteer: {apply: apply, rollback: rollback},
	}
}

func newTestHandler() (impl, *fakeStore, *opsRecorder) {
	store := newFakeStore()
	recorder := &opsRecorder{}
	handler := impl{
		store:    store,
		ops:      recorder.ops(),
		validate: newValidator(),
	}
	return handler, store, recorder
}

func donationPayload(amount int64) dbmodels.PendingPayload {
	return dbmodels.PendingPayload{
		Donation: &dbmodels.DonationPayload{
			DonorName: "Олена Шевченко",
			Amount:    amount,
			Currency:  "UAH",
		},
	}
}

func TestQueueStoresPendingAction(t *testing.T) {
	handler, store, _ := newTestHandler()

	userID := "user-1"
	id, err := handler.Queue(&userID, donationPayload(500), "site")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec := store.records[id]
	require.NotNil(t, rec)
	require.Equal(t, dbmodels.PendingStatusPending, rec.Status)
	require.Equal(t, dbmodels.PendingEntityDonation, rec.EntityType)
	require.Equal(t, dbmodels.PendingActionCreate, rec.Action)
	require.Nil(t, rec.ProcessedEntityID)
}

func TestQueueRejectsEmptyPayload(t *testing.T) {
	handler, _, _ := newTestHandler()

	_, err := handler.Queue(nil, dbmodels.PendingPayload{}, "site")
	require.ErrorIs(t, err, ErrUnsupportedEntity)
}

func TestQueueRejectsInvalidPayload(t *testing.T) {
	handler, store, _ := newTestHandler()

	// сума нижче мінімальної, заявка не потрапляє в чергу
	_, err := handler.Queue(nil, donationPayload(1), "site")
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Empty(t, store.records)

	_, err = handler.Queue(nil, dbmodels.PendingPayload{
		Volunteer: &dbmodels.VolunteerPayload{
			FullName: "Іван Петренко",
			Phone:    "12345",
		},
	}, "site")
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Empty(t, store.records)
}

func TestQueueAndApproveLocalPhoneFormat(t *testing.T) {
	handler, store, recorder := newTestHandler()

	// номер без міжнародного префікса приймається і підтверджується
	id, err := handler.Queue(nil, dbmodels.PendingPayload{
		Volunteer: &dbmodels.VolunteerPayload{
			FullName: "Іван Петренко",
			Phone:    "0671234567",
		},
	}, "site")
	require.NoError(t, err)

	entityID, err := handler.Approve(id, "admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, entityID)
	require.Len(t, recorder.applied, 1)
	require.Equal(t, dbmodels.PendingStatusApproved, store.records[id].Status)
}

func TestApproveMaterializesEntity(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)

	entityID, err := handler.Approve(id, "admin-1")
	require.NoError(t, err)
	require.Len(t, recorder.applied, 1)
	require.Equal(t, recorder.applied[0], entityID)

	rec := store.records[id]
	require.Equal(t, dbmodels.PendingStatusApproved, rec.Status)
	require.NotNil(t, rec.ProcessedAt)
	require.NotNil(t, rec.ProcessedBy)
	require.Equal(t, "admin-1", *rec.ProcessedBy)
	require.NotNil(t, rec.ProcessedEntityID)
	require.Equal(t, entityID, *rec.ProcessedEntityID)
}

func TestApproveTwiceFails(t *testing.T) {
	handler, _, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)

	_, err = handler.Approve(id, "admin-1")
	require.NoError(t, err)

	_, err = handler.Approve(id, "admin-1")
	require.ErrorIs(t, err, ErrAlreadyApproved)
	require.Len(t, recorder.applied, 1)
}

func TestApproveReusesExistingEntityID(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)
	existing := "entity-earlier"
	store.records[id].ProcessedEntityID = &existing

	entityID, err := handler.Approve(id, "admin-1")
	require.NoError(t, err)
	require.Equal(t, existing, entityID)
	require.Empty(t, recorder.applied)
}

func TestApproveInvalidPayloadKeepsPending(t *testing.T) {
	handler, store, recorder := newTestHandler()

	// рядок, збережений до посилення правил, відхиляється схемою
	// при підтвердженні та залишається на розгляді
	id, err := store.Create(dbmodels.PendingAction{
		EntityType: dbmodels.PendingEntityDonation,
		Action:     dbmodels.PendingActionCreate,
		Status:     dbmodels.PendingStatusPending,
		Payload:    donationPayload(1),
	})
	require.NoError(t, err)

	_, err = handler.Approve(id, "admin-1")
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Empty(t, recorder.applied)
	require.Equal(t, dbmodels.PendingStatusPending, store.records[id].Status)
}

func TestApproveNotFound(t *testing.T) {
	handler, _, _ := newTestHandler()

	_, err := handler.Approve("missing", "admin-1")
	require.ErrorIs(t, err, ErrActionNotFound)
}

func TestRejectSetsResolution(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)

	err = handler.Reject(id, "admin-1", "підозріла заявка")
	require.NoError(t, err)
	require.Empty(t, recorder.applied)

	rec := store.records[id]
	require.Equal(t, dbmodels.PendingStatusRejected, rec.Status)
	require.NotNil(t, rec.ResolutionNotes)
	require.Equal(t, "підозріла заявка", *rec.ResolutionNotes)
	require.NotNil(t, rec.ProcessedAt)
}

func TestRevertApprovedRollsBackEntity(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)
	entityID, err := handler.Approve(id, "admin-1")
	require.NoError(t, err)

	err = handler.Revert(id)
	require.NoError(t, err)
	require.Equal(t, []string{entityID}, recorder.rolledBack)

	rec := store.records[id]
	require.Equal(t, dbmodels.PendingStatusPending, rec.Status)
	require.Nil(t, rec.ProcessedAt)
	require.Nil(t, rec.ProcessedBy)
	require.Nil(t, rec.ProcessedEntityID)
	require.Nil(t, rec.ResolutionNotes)
}

func TestRevertPendingIsNoop(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)

	err = handler.Revert(id)
	require.NoError(t, err)
	require.Empty(t, recorder.rolledBack)
	require.Equal(t, dbmodels.PendingStatusPending, store.records[id].Status)
}

func TestRevertRejectedResetsWithoutRollback(t *testing.T) {
	handler, store, recorder := newTestHandler()

	id, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)
	require.NoError(t, handler.Reject(id, "admin-1", "дублікат"))

	err = handler.Revert(id)
	require.NoError(t, err)
	require.Empty(t, recorder.rolledBack)

	rec := store.records[id]
	require.Equal(t, dbmodels.PendingStatusPending, rec.Status)
	require.Nil(t, rec.ResolutionNotes)
	require.Nil(t, rec.ProcessedAt)
}

func TestRevertNotFound(t *testing.T) {
	handler, _, _ := newTestHandler()

	require.ErrorIs(t, handler.Revert("missing"), ErrActionNotFound)
}

func TestCountPending(t *testing.T) {
	handler, _, _ := newTestHandler()

	first, err := handler.Queue(nil, donationPayload(500), "site")
	require.NoError(t, err)
	_, err = handler.Queue(nil, donationPayload(700), "site")
	require.NoError(t, err)

	total, err := handler.CountPending()
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	_, err = handler.Approve(first, "admin-1")
	require.NoError(t, err)

	total, err = handler.CountPending()
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
