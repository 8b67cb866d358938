package users

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"volonterka-backend/config"
	authutils "volonterka-backend/lib/utils/auth-utils"
	"volonterka-backend/models"
	authapimodels "volonterka-backend/models/api/auth"
	userapimodels "volonterka-backend/models/api/user"
	dbmodels "volonterka-backend/models/db"
)

func init() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 7200
	config.Conf = conf
}

type fakeUserStore struct {
	seq   int
	users map[string]*dbmodels.User
	audit []dbmodels.UserAuditRecord
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*dbmodels.User{}}
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.users[id]
	if !ok {
		return nil
	}
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.UserStatus)
		case "Role":
			rec.Role = value.(models.UserRole)
		case "Notes":
			rec.Notes = value.(string)
		}
	}
	return nil
}

func (f *fakeUserStore) ListApplicants() ([]dbmodels.User, error) {
	return f.filter(func(rec dbmodels.User) bool {
		return rec.Role == models.UserRoleDonor &&
			(rec.Status == models.UserStatusPending || rec.Status == models.UserStatusRejected)
	}), nil
}

func (f *fakeUserStore) ListApprovedDonors() ([]dbmodels.User, error) {
	return f.filter(func(rec dbmodels.User) bool {
		return rec.Role == models.UserRoleDonor && rec.Status == models.UserStatusApproved
	}), nil
}

func (f *fakeUserStore) ListAdministrators() ([]dbmodels.User, error) {
	return f.filter(func(rec dbmodels.User) bool {
		return rec.Role == models.UserRoleAdmin
	}), nil
}

func (f *fakeUserStore) filter(keep func(dbmodels.User) bool) []dbmodels.User {
	list := []dbmodels.User{}
	for _, rec := range f.users {
		if keep(*rec) {
			list = append(list, *rec)
		}
	}
	return list
}

func (f *fakeUserStore) CreateAudit(rec dbmodels.UserAuditRecord) error {
	f.audit = append(f.audit, rec)
	return nil
}

func newTestHandler() (impl, *fakeUserStore) {
	store := newFakeUserStore()
	return impl{store: store, validate: validator.New()}, store
}

func seedUser(store *fakeUserStore, email, password string, role models.UserRole, status models.UserStatus) string {
	hash, _ := authutils.HashPassword(password)
	id, _ := store.Create(dbmodels.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		FullName:     "Тестовий користувач",
	})
	return id
}

func TestRegisterCreatesPendingDonor(t *testing.T) {
	handler, store := newTestHandler()

	id, err := handler.Register(authapimodels.RegisterRequest{
		Email:    "donor@example.com",
		Password: "password123",
		FullName: "Оксана Мельник",
	})
	require.NoError(t, err)

	rec := store.users[id]
	require.NotNil(t, rec)
	require.Equal(t, models.UserRoleDonor, rec.Role)
	require.Equal(t, models.UserStatusPending, rec.Status)
	require.NotEqual(t, "password123", rec.PasswordHash)

	require.Len(t, store.audit, 1)
	require.Equal(t, "registration_submitted", store.audit[0].Action)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)

	_, err := handler.Register(authapimodels.RegisterRequest{
		Email:    "donor@example.com",
		Password: "password123",
		FullName: "Оксана Мельник",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginSuccess(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)

	response, err := handler.Login("donor@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, response.AccessToken)
	require.NotEmpty(t, response.RefreshToken)
}

func TestLoginBadPassword(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)

	_, err := handler.Login("donor@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = handler.Login("missing@example.com", "password123")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginStatusGates(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "pending@example.com", "password123", models.UserRoleDonor, models.UserStatusPending)
	seedUser(store, "banned@example.com", "password123", models.UserRoleDonor, models.UserStatusBanned)
	seedUser(store, "rejected@example.com", "password123", models.UserRoleDonor, models.UserStatusRejected)

	_, err := handler.Login("pending@example.com", "password123")
	require.ErrorIs(t, err, ErrNotApproved)

	_, err = handler.Login("banned@example.com", "password123")
	require.ErrorIs(t, err, ErrBanned)

	_, err = handler.Login("rejected@example.com", "password123")
	require.ErrorIs(t, err, ErrRestricted)
}

func TestLoginAdminRequiresRole(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)
	seedUser(store, "admin@example.com", "password123", models.UserRoleAdmin, models.UserStatusApproved)

	_, err := handler.LoginAdmin("donor@example.com", "password123")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = handler.LoginAdmin("admin@example.com", "password123")
	require.NoError(t, err)
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	handler, store := newTestHandler()
	seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)

	first, err := handler.Login("donor@example.com", "password123")
	require.NoError(t, err)

	refreshed, err := handler.Refresh(first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.NotEmpty(t, refreshed.RefreshToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	handler, _ := newTestHandler()

	_, err := handler.Refresh("not-a-token")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestRefreshRequiresApprovedUser(t *testing.T) {
	handler, store := newTestHandler()
	id := seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusApproved)

	first, err := handler.Login("donor@example.com", "password123")
	require.NoError(t, err)

	store.users[id].Status = models.UserStatusBanned
	_, err = handler.Refresh(first.RefreshToken)
	require.ErrorIs(t, err, ErrRestricted)
}

func TestUpdateStatusApprove(t *testing.T) {
	handler, store := newTestHandler()
	id := seedUser(store, "donor@example.com", "password123", models.UserRoleDonor, models.UserStatusPending)

	err := handler.UpdateStatus(id, userapimodels.StatusUpdateRequest{
		Status: "approved",
		Notes:  "документи перевірено",
	}, "admin-1")
	require.NoError(t, err)

	require.Equal(t, models.UserStatusApproved, store.users[id].Status)
	require.Len(t, store.audit, 1)
	require.Equal(t, "status_approved", store.audit[0].Action)
	require.NotNil(t, store.audit[0].PerformedBy)
	require.Equal(t, "admin-1", *store.audit[0].PerformedBy)
}

func TestUpdateStatusUnknownUser(t *testing.T) {
	handler, _ := newTestHandler()

	err := handler.UpdateStatus("missing", userapimodels.StatusUpdateRequest{Status: "approved"}, "admin-1")
	require.ErrorIs(t, err, ErrUserNotFound)
}
