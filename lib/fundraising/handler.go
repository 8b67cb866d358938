package fundraising

import (
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	donationstore "volonterka-backend/lib/donation/store"
	fundraisingstore "volonterka-backend/lib/fundraising/store"
	withdrawalstore "volonterka-backend/lib/withdrawal/store"
	fundraisingapimodels "volonterka-backend/models/api/fundraising"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	GetTotals() (fundraisingapimodels.Totals, error)
	GetActiveGoal() (*fundraisingapimodels.GoalView, error)
	ListGoals() ([]fundraisingapimodels.GoalView, error)
	CreateGoal(req fundraisingapimodels.GoalRequest) (id string, err error)
	UpdateGoal(id string, req fundraisingapimodels.GoalRequest) error
	DeleteGoal(id string) error
	ListBankAccounts() ([]fundraisingapimodels.BankAccountView, error)
	CreateBankAccount(req fundraisingapimodels.BankAccountRequest) (id string, err error)
	UpdateBankAccount(id string, req fundraisingapimodels.BankAccountRequest) error
	DeleteBankAccount(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       fundraisingstore.NewInstance(db.DB),
		donations:   donationstore.NewInstance(db.DB),
		withdrawals: withdrawalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       fundraisingstore.Provider
	donations   donationstore.Provider
	withdrawals withdrawalstore.Provider
}

func (i impl) GetTotals() (fundraisingapimodels.Totals, error) {
	totalRaised, err := i.donations.SumAmount()
	if err != nil {
		log.WithError(err).Error("Помилка підрахунку зібраних коштів")
		return fundraisingapimodels.Totals{}, err
	}
	totalWithdrawn, err := i.withdrawals.SumAmount()
	if err != nil {
		log.WithError(err).Error("Помилка підрахунку витрат")
		return fundraisingapimodels.Totals{}, err
	}
	return fundraisingapimodels.Totals{
		TotalRaised:    totalRaised,
		TotalWithdrawn: totalWithdrawn,
		Balance:        totalRaised - totalWithdrawn,
	}, nil
}

func (i impl) GetActiveGoal() (*fundraisingapimodels.GoalView, error) {
	rec, err := i.store.GetActiveGoal()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := fundraisingapimodels.GoalConvert(*rec)
	return &view, nil
}

func (i impl) ListGoals() ([]fundraisingapimodels.GoalView, error) {
	list, err := i.store.ListGoals()
	if err != nil {
		return nil, err
	}
	result := make([]fundraisingapimodels.GoalView, 0, len(list))
	for _, rec := range list {
		result = append(result, fundraisingapimodels.GoalConvert(rec))
	}
	return result, nil
}

func (i impl) CreateGoal(req fundraisingapimodels.GoalRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	return i.store.CreateGoal(dbmodels.FundraisingGoal{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Status:       dbmodels.GoalStatus(req.Status),
	})
}

func (i impl) UpdateGoal(id string, req fundraisingapimodels.GoalRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return i.store.UpdateGoal(id, map[string]interface{}{
		"Title":        req.Title,
		"Description":  req.Description,
		"TargetAmount": req.TargetAmount,
		"Status":       dbmodels.GoalStatus(req.Status),
	})
}

func (i impl) DeleteGoal(id string) error {
	return i.store.DeleteGoal(id)
}

func (i impl) ListBankAccounts() ([]fundraisingapimodels.BankAccountView, error) {
	list, err := i.store.ListBankAccounts()
	if err != nil {
		return nil, err
	}
	result := make([]fundraisingapimodels.BankAccountView, 0, len(list))
	for _, rec := range list {
		result = append(result, fundraisingapimodels.BankAccountConvert(rec))
	}
	return result, nil
}

func (i impl) CreateBankAccount(req fundraisingapimodels.BankAccountRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	return i.store.CreateBankAccount(dbmodels.BankAccount{
		Label:     req.Label,
		Recipient: req.Recipient,
		Iban:      req.Iban,
		Edrpou:    req.Edrpou,
		Purpose:   req.Purpose,
	})
}

func (i impl) UpdateBankAccount(id string, req fundraisingapimodels.BankAccountRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return i.store.UpdateBankAccount(id, map[string]interface{}{
		"Label":     req.Label,
		"Recipient": req.Recipient,
		"Iban":      req.Iban,
		"Edrpou":    req.Edrpou,
		"Purpose":   req.Purpose,
	})
}

func (i impl) DeleteBankAccount(id string) error {
	return i.store.DeleteBankAccount(id)
}
