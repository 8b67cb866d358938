package export

import (
	"fmt"
	"strings"

	exportapimodels "volonterka-backend/models/api/export"
	dbmodels "volonterka-backend/models/db"
)

const (
	DatasetOverview    = "overview"
	DatasetDonations   = "donations"
	DatasetWithdrawals = "withdrawals"
	DatasetUsers       = "users"
	DatasetVolunteers  = "volunteers"
	DatasetVehicles    = "vehicles"
	DatasetFundraising = "fundraising"
	DatasetContent     = "content"
	DatasetCommunity   = "community"
)

// канонічний порядок наборів, вивід завжди сортується за ним
var datasetOrder = []string{
	DatasetOverview,
	DatasetDonations,
	DatasetWithdrawals,
	DatasetUsers,
	DatasetVolunteers,
	DatasetVehicles,
	DatasetFundraising,
	DatasetContent,
	DatasetCommunity,
}

type datasetMeta struct {
	label       string
	description string
}

var datasetLabels = map[string]datasetMeta{
	DatasetOverview: {
		label:       "Фінансовий огляд",
		description: "Зведені показники фонду станом на момент вивантаження.",
	},
	DatasetDonations: {
		label:       "Донати",
		description: "Усі зафіксовані донати з інформацією про публічність та повідомлення.",
	},
	DatasetWithdrawals: {
		label:       "Витрати",
		description: "Всі витрати із зазначенням автора та описом.",
	},
	DatasetUsers: {
		label:       "Користувачі",
		description: "Адміністратори, підтверджені донатори та заявки, що очікують модерації.",
	},
	DatasetVolunteers: {
		label:       "Волонтери",
		description: "Заявки від волонтерів з контактними даними та регіоном.",
	},
	DatasetVehicles: {
		label:       "Автопарк",
		description: "Стан автівок фонду зі статусами та категоріями.",
	},
	DatasetFundraising: {
		label:       "Фандрейзинг",
		description: "Цілі зборів та банківські реквізити.",
	},
	DatasetContent: {
		label:       "Контент",
		description: "Публікації, медіа-згадки та документи.",
	},
	DatasetCommunity: {
		label:       "Відгуки та фідбек",
		description: "Коментарі донаторів і волонтерів.",
	},
}

func yesNo(value bool) string {
	if value {
		return "так"
	}
	return "ні"
}

func (i impl) newDataset(key string, columns []exportapimodels.Column) exportapimodels.Dataset {
	meta := datasetLabels[key]
	return exportapimodels.Dataset{
		Key:         key,
		Label:       meta.label,
		Description: meta.description,
		Columns:     columns,
		Rows:        []exportapimodels.Row{},
		Meta:        map[string]interface{}{},
	}
}

func (i impl) buildOverview() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetOverview, []exportapimodels.Column{
		{Key: "totalRaised", Label: "Зібрано (₴)"},
		{Key: "totalWithdrawn", Label: "Використано (₴)"},
		{Key: "balance", Label: "Баланс (₴)"},
		{Key: "activeGoalTitle", Label: "Активна ціль"},
		{Key: "activeGoalTarget", Label: "Мета (₴)"},
	})
	totalRaised, err := i.donations.SumAmount()
	if err != nil {
		return ds, err
	}
	totalWithdrawn, err := i.withdrawals.SumAmount()
	if err != nil {
		return ds, err
	}
	activeGoal, err := i.fundraising.GetActiveGoal()
	if err != nil {
		return ds, err
	}
	row := exportapimodels.Row{
		"totalRaised":      totalRaised,
		"totalWithdrawn":   totalWithdrawn,
		"balance":          totalRaised - totalWithdrawn,
		"activeGoalTitle":  nil,
		"activeGoalTarget": nil,
	}
	if activeGoal != nil {
		row["activeGoalTitle"] = activeGoal.Title
		row["activeGoalTarget"] = activeGoal.TargetAmount
	}
	ds.Rows = append(ds.Rows, row)
	ds.Meta["totals"] = map[string]int64{
		"totalRaised":    totalRaised,
		"totalWithdrawn": totalWithdrawn,
		"balance":        totalRaised - totalWithdrawn,
	}
	ds.Meta["activeGoal"] = activeGoal
	return ds, nil
}

func (i impl) buildDonations() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetDonations, []exportapimodels.Column{
		{Key: "id", Label: "ID"},
		{Key: "donor_name", Label: "Ім'я донатора"},
		{Key: "amount", Label: "Сума"},
		{Key: "currency", Label: "Валюта"},
		{Key: "public", Label: "Публічний"},
		{Key: "message", Label: "Повідомлення"},
		{Key: "created_at", Label: "Створено"},
	})
	list, err := i.donations.List()
	if err != nil {
		return ds, err
	}
	var totalAmount int64
	for _, rec := range list {
		totalAmount += rec.Amount
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"id":         rec.ID,
			"donor_name": rec.DonorName,
			"amount":     rec.Amount,
			"currency":   rec.Currency,
			"public":     yesNo(rec.Public),
			"message":    rec.Message,
			"created_at": rec.CreatedAt,
		})
	}
	ds.Meta["count"] = len(list)
	ds.Meta["totalAmount"] = totalAmount
	return ds, nil
}

func (i impl) buildWithdrawals() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetWithdrawals, []exportapimodels.Column{
		{Key: "id", Label: "ID"},
		{Key: "amount", Label: "Сума"},
		{Key: "description", Label: "Призначення"},
		{Key: "created_by", Label: "ID автора"},
		{Key: "created_at", Label: "Створено"},
	})
	list, err := i.withdrawals.List()
	if err != nil {
		return ds, err
	}
	var totalAmount int64
	for _, rec := range list {
		totalAmount += rec.Amount
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"id":          rec.ID,
			"amount":      rec.Amount,
			"description": rec.Description,
			"created_by":  rec.CreatedBy,
			"created_at":  rec.CreatedAt,
		})
	}
	ds.Meta["count"] = len(list)
	ds.Meta["totalAmount"] = totalAmount
	return ds, nil
}

func (i impl) buildUsers() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetUsers, []exportapimodels.Column{
		{Key: "id", Label: "ID"},
		{Key: "email", Label: "Email"},
		{Key: "full_name", Label: "Ім'я"},
		{Key: "phone", Label: "Телефон"},
		{Key: "role", Label: "Роль"},
		{Key: "status", Label: "Статус"},
		{Key: "approved_at", Label: "Підтверджено"},
		{Key: "last_login_at", Label: "Останній вхід"},
	})
	admins, err := i.users.ListAdministrators()
	if err != nil {
		return ds, err
	}
	donors, err := i.users.ListApprovedDonors()
	if err != nil {
		return ds, err
	}
	applicants, err := i.users.ListApplicants()
	if err != nil {
		return ds, err
	}
	appendUser := func(rec dbmodels.User) {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"id":            rec.ID,
			"email":         rec.Email,
			"full_name":     rec.FullName,
			"phone":         rec.Phone,
			"role":          string(rec.Role),
			"status":        string(rec.Status),
			"approved_at":   rec.ApprovedAt,
			"last_login_at": rec.LastLoginAt,
		})
	}
	for _, rec := range admins {
		appendUser(rec)
	}
	for _, rec := range donors {
		appendUser(rec)
	}
	for _, rec := range applicants {
		appendUser(rec)
	}
	ds.Meta["admins"] = len(admins)
	ds.Meta["donors"] = len(donors)
	ds.Meta["applicants"] = len(applicants)
	return ds, nil
}

func (i impl) buildVolunteers() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetVolunteers, []exportapimodels.Column{
		{Key: "id", Label: "ID"},
		{Key: "full_name", Label: "ПІБ"},
		{Key: "phone", Label: "Телефон"},
		{Key: "email", Label: "Email"},
		{Key: "region", Label: "Регіон"},
		{Key: "skills", Label: "Навички"},
		{Key: "comment", Label: "Коментар"},
		{Key: "created_at", Label: "Створено"},
	})
	list, err := i.volunteers.List()
	if err != nil {
		return ds, err
	}
	for _, rec := range list {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"id":         rec.ID,
			"full_name":  rec.FullName,
			"phone":      rec.Phone,
			"email":      rec.Email,
			"region":     rec.Region,
			"skills":     rec.Skills,
			"comment":    rec.Comment,
			"created_at": rec.CreatedAt,
		})
	}
	ds.Meta["count"] = len(list)
	return ds, nil
}

func (i impl) buildVehicles() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetVehicles, []exportapimodels.Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Назва"},
		{Key: "status", Label: "Статус"},
		{Key: "category", Label: "Категорія"},
		{Key: "description", Label: "Опис"},
		{Key: "image_path", Label: "Зображення"},
	})
	list, err := i.vehicles.List()
	if err != nil {
		return ds, err
	}
	for _, rec := range list {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"id":          rec.ID,
			"name":        rec.Name,
			"status":      string(rec.Status),
			"category":    rec.Category,
			"description": rec.Description,
			"image_path":  rec.ImagePath,
		})
	}
	ds.Meta["count"] = len(list)
	return ds, nil
}

func (i impl) buildFundraising() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetFundraising, []exportapimodels.Column{
		{Key: "entity", Label: "Тип"},
		{Key: "title", Label: "Назва/Отримувач"},
		{Key: "details", Label: "Деталі"},
		{Key: "status", Label: "Статус"},
		{Key: "updated_at", Label: "Оновлено"},
	})
	goals, err := i.fundraising.ListGoals()
	if err != nil {
		return ds, err
	}
	accounts, err := i.fundraising.ListBankAccounts()
	if err != nil {
		return ds, err
	}
	for _, goal := range goals {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":     "goal",
			"title":      goal.Title,
			"details":    strings.TrimSpace(fmt.Sprintf("target: %d₴ | %s", goal.TargetAmount, goal.Description)),
			"status":     string(goal.Status),
			"updated_at": goal.UpdatedAt,
		})
	}
	for _, account := range accounts {
		details := []string{
			"recipient: " + account.Recipient,
			"iban: " + account.Iban,
		}
		if account.Purpose != "" {
			details = append(details, "purpose: "+account.Purpose)
		}
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":     "bank_account",
			"title":      account.Label,
			"details":    strings.Join(details, " | "),
			"status":     account.Edrpou,
			"updated_at": account.UpdatedAt,
		})
	}
	ds.Meta["goals"] = len(goals)
	ds.Meta["bankAccounts"] = len(accounts)
	return ds, nil
}

func (i impl) buildContent() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetContent, []exportapimodels.Column{
		{Key: "entity", Label: "Тип"},
		{Key: "title", Label: "Заголовок"},
		{Key: "summary", Label: "Опис"},
		{Key: "url", Label: "Посилання/Файл"},
		{Key: "status", Label: "Статус/Тип"},
		{Key: "published_at", Label: "Опубліковано"},
	})
	articles, err := i.content.ListArticles()
	if err != nil {
		return ds, err
	}
	media, err := i.content.ListMediaLinks()
	if err != nil {
		return ds, err
	}
	documents, err := i.content.ListDocuments()
	if err != nil {
		return ds, err
	}
	for _, rec := range articles {
		status := "чернетка"
		if rec.Body != "" {
			status = "готово"
		}
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":       "article",
			"title":        rec.Title,
			"summary":      rec.Excerpt,
			"url":          rec.CoverImage,
			"status":       status,
			"published_at": rec.PublishedAt,
		})
	}
	for _, rec := range media {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":       "media",
			"title":        rec.Title,
			"summary":      rec.Summary,
			"url":          rec.Url,
			"status":       rec.ImagePath,
			"published_at": "",
		})
	}
	for _, rec := range documents {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":       "document",
			"title":        rec.Title,
			"summary":      rec.Description,
			"url":          rec.FilePath,
			"status":       rec.FileType,
			"published_at": "",
		})
	}
	ds.Meta["articles"] = len(articles)
	ds.Meta["media"] = len(media)
	ds.Meta["documents"] = len(documents)
	return ds, nil
}

func (i impl) buildCommunity() (exportapimodels.Dataset, error) {
	ds := i.newDataset(DatasetCommunity, []exportapimodels.Column{
		{Key: "entity", Label: "Тип"},
		{Key: "author", Label: "Автор"},
		{Key: "rating", Label: "Оцінка"},
		{Key: "message", Label: "Повідомлення"},
		{Key: "public", Label: "Публічний"},
		{Key: "created_at", Label: "Створено"},
	})
	reviews, err := i.reviews.List()
	if err != nil {
		return ds, err
	}
	feedback, err := i.feedback.List()
	if err != nil {
		return ds, err
	}
	for _, rec := range reviews {
		rating := ""
		if rec.Rating != nil {
			rating = fmt.Sprintf("%d", *rec.Rating)
		}
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":     "review",
			"author":     rec.AuthorName,
			"rating":     rating,
			"message":    rec.Message,
			"public":     yesNo(rec.Public),
			"created_at": rec.CreatedAt,
		})
	}
	for _, rec := range feedback {
		ds.Rows = append(ds.Rows, exportapimodels.Row{
			"entity":     "feedback",
			"author":     rec.SenderName,
			"rating":     "",
			"message":    rec.Message,
			"public":     rec.Channel,
			"created_at": rec.CreatedAt,
		})
	}
	ds.Meta["reviews"] = len(reviews)
	ds.Meta["feedback"] = len(feedback)
	return ds, nil
}
