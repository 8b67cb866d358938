package users

import (
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	authutils "volonterka-backend/lib/utils/auth-utils"
	userstore "volonterka-backend/lib/users/store"
	"volonterka-backend/models"
	authapimodels "volonterka-backend/models/api/auth"
	userapimodels "volonterka-backend/models/api/user"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Login(email, password string) (authapimodels.JWTResponse, error)
	LoginAdmin(email, password string) (authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (authapimodels.JWTResponse, error)
	Register(req authapimodels.RegisterRequest) (id string, err error)
	GetByID(id string) (*userapimodels.UserView, error)
	UpdateStatus(id string, req userapimodels.StatusUpdateRequest, performedBy string) error
	UpdateProofPath(id, proofPath string) error
	ListApplicants() ([]userapimodels.UserView, error)
	ListApprovedDonors() ([]userapimodels.UserView, error)
	ListAdministrators() ([]userapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    userstore.NewInstance(db.DB),
		validate: validator.New(),
	}
}

type impl struct {
	store    userstore.Provider
	validate *validator.Validate
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	return i.login(email, password, "")
}

func (i impl) LoginAdmin(email, password string) (authapimodels.JWTResponse, error) {
	return i.login(email, password, models.UserRoleAdmin)
}

func (i impl) login(email, password string, requireRole models.UserRole) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("Помилка пошуку користувача за поштою")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("користувача з такою поштою не знайдено")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		logger.Debug("користувач не пройшов перевірку пароля")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if requireRole != "" && user.Role != requireRole {
		return authapimodels.JWTResponse{}, ErrForbidden
	}
	if user.Status != models.UserStatusApproved {
		switch user.Status {
		case models.UserStatusPending:
			return authapimodels.JWTResponse{}, ErrNotApproved
		case models.UserStatusBanned:
			return authapimodels.JWTResponse{}, ErrBanned
		default:
			return authapimodels.JWTResponse{}, ErrRestricted
		}
	}
	accessToken, err := authutils.GetToken(user.ID, user.FullName, user.Role)
	if err != nil {
		logger.WithError(err).Error("Помилка генерації JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.FullName)
	if err != nil {
		logger.WithError(err).Error("Помилка генерації refresh-токена")
		return authapimodels.JWTResponse{}, err
	}
	if err = i.store.Update(user.ID, map[string]interface{}{"LastLoginAt": time.Now()}); err != nil {
		logger.WithError(err).Error("Помилка оновлення дати останнього входу")
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Помилка пошуку користувача")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if user.Status != models.UserStatusApproved {
		return authapimodels.JWTResponse{}, ErrRestricted
	}
	accessToken, err := authutils.GetToken(user.ID, user.FullName, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	newRefresh, err := authutils.GetRefreshToken(user.ID, user.FullName)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

func (i impl) Register(req authapimodels.RegisterRequest) (id string, err error) {
	logger := log.WithField("email", req.Email)
	if err = i.validate.Struct(req); err != nil {
		return "", err
	}
	existing, err := i.store.FindByEmail(req.Email)
	if err != nil {
		logger.WithError(err).Error("Помилка пошуку користувача за поштою")
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}
	passwordHash, err := authutils.HashPassword(req.Password)
	if err != nil {
		logger.WithError(err).Error("Помилка хешування пароля")
		return "", err
	}
	id, err = i.store.Create(dbmodels.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleDonor,
		Status:       models.UserStatusPending,
		FullName:     req.FullName,
		Phone:        req.Phone,
		ProofPath:    req.ProofPath,
		CreatedVia:   "self-service",
	})
	if err != nil {
		logger.WithError(err).Error("Помилка створення користувача")
		return "", err
	}
	if err := i.store.CreateAudit(dbmodels.UserAuditRecord{
		UserID:  id,
		Action:  "registration_submitted",
		Details: dbmodels.UserAuditDetails{"email": req.Email},
	}); err != nil {
		logger.WithError(err).Error("Помилка запису в журнал аудиту")
	}
	logger.WithField("user_id", id).Info("Зареєстровано нову заявку донатора")
	return id, nil
}

func (i impl) GetByID(id string) (*userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}
	view := userapimodels.UserConvert(*rec)
	return &view, nil
}

func (i impl) UpdateStatus(id string, req userapimodels.StatusUpdateRequest, performedBy string) error {
	logger := log.WithField("user_id", id)
	if err := req.Validate(); err != nil {
		return err
	}
	user, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("Помилка пошуку користувача")
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	status := models.UserStatus(req.Status)
	updMap := map[string]interface{}{
		"Status": status,
	}
	now := time.Now()
	switch status {
	case models.UserStatusApproved:
		updMap["ApprovedAt"] = &now
		updMap["BannedAt"] = nil
	case models.UserStatusBanned:
		updMap["BannedAt"] = &now
	}
	if req.Notes != "" {
		updMap["Notes"] = req.Notes
	}
	if req.Role != "" {
		updMap["Role"] = models.UserRole(req.Role)
	}
	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("Помилка оновлення статусу користувача")
		return err
	}
	details := dbmodels.UserAuditDetails{"status": req.Status}
	if req.Notes != "" {
		details["notes"] = req.Notes
	}
	if req.Role != "" {
		details["role"] = req.Role
	}
	if err := i.store.CreateAudit(dbmodels.UserAuditRecord{
		UserID:      id,
		Action:      "status_" + req.Status,
		Details:     details,
		PerformedBy: &performedBy,
	}); err != nil {
		logger.WithError(err).Error("Помилка запису в журнал аудиту")
	}
	logger.WithField("status", req.Status).Info("Статус користувача оновлено")
	return nil
}

func (i impl) UpdateProofPath(id, proofPath string) error {
	if err := i.store.Update(id, map[string]interface{}{"ProofPath": proofPath}); err != nil {
		return err
	}
	if err := i.store.CreateAudit(dbmodels.UserAuditRecord{
		UserID:  id,
		Action:  "proof_updated",
		Details: dbmodels.UserAuditDetails{"proof_path": proofPath},
	}); err != nil {
		log.WithError(err).WithField("user_id", id).Error("Помилка запису в журнал аудиту")
	}
	return nil
}

func (i impl) ListApplicants() ([]userapimodels.UserView, error) {
	list, err := i.store.ListApplicants()
	if err != nil {
		return nil, err
	}
	return convertUsers(list), nil
}

func (i impl) ListApprovedDonors() ([]userapimodels.UserView, error) {
	list, err := i.store.ListApprovedDonors()
	if err != nil {
		return nil, err
	}
	return convertUsers(list), nil
}

func (i impl) ListAdministrators() ([]userapimodels.UserView, error) {
	list, err := i.store.ListAdministrators()
	if err != nil {
		return nil, err
	}
	return convertUsers(list), nil
}

func convertUsers(list []dbmodels.User) []userapimodels.UserView {
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result
}
