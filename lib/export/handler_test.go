package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	exportapimodels "volonterka-backend/models/api/export"
	dbmodels "volonterka-backend/models/db"
)

type fakeDonationStore struct {
	list []dbmodels.Donation
}

func (f *fakeDonationStore) Create(rec dbmodels.Donation) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeDonationStore) GetByID(id string) (*dbmodels.Donation, error) { return nil, nil }

func (f *fakeDonationStore) Update(string, map[string]interface{}) error { return nil }

func (f *fakeDonationStore) Delete(string) error { return nil }

func (f *fakeDonationStore) List() ([]dbmodels.Donation, error) { return f.list, nil }

func (f *fakeDonationStore) ListPublic(int) ([]dbmodels.Donation, error) { return f.list, nil }

func (f *fakeDonationStore) ListRecent(int) ([]dbmodels.Donation, error) { return f.list, nil }

func (f *fakeDonationStore) SumAmount() (int64, error) {
	var total int64
	for _, rec := range f.list {
		total += rec.Amount
	}
	return total, nil
}

type fakeWithdrawalStore struct {
	list []dbmodels.Withdrawal
}

func (f *fakeWithdrawalStore) Create(rec dbmodels.Withdrawal) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeWithdrawalStore) List() ([]dbmodels.Withdrawal, error) { return f.list, nil }

func (f *fakeWithdrawalStore) ListRecent(int) ([]dbmodels.Withdrawal, error) { return f.list, nil }

func (f *fakeWithdrawalStore) SumAmount() (int64, error) {
	var total int64
	for _, rec := range f.list {
		total += rec.Amount
	}
	return total, nil
}

type fakeFundraisingStore struct {
	goals    []dbmodels.FundraisingGoal
	accounts []dbmodels.BankAccount
}

func (f *fakeFundraisingStore) ListGoals() ([]dbmodels.FundraisingGoal, error) {
	return f.goals, nil
}

func (f *fakeFundraisingStore) GetActiveGoal() (*dbmodels.FundraisingGoal, error) {
	for idx := range f.goals {
		if f.goals[idx].Status == dbmodels.GoalStatusActive {
			return &f.goals[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeFundraisingStore) CreateGoal(rec dbmodels.FundraisingGoal) (string, error) {
	f.goals = append(f.goals, rec)
	return rec.ID, nil
}

func (f *fakeFundraisingStore) UpdateGoal(string, map[string]interface{}) error { return nil }

func (f *fakeFundraisingStore) DeleteGoal(string) error { return nil }

func (f *fakeFundraisingStore) ListBankAccounts() ([]dbmodels.BankAccount, error) {
	return f.accounts, nil
}

func (f *fakeFundraisingStore) CreateBankAccount(rec dbmodels.BankAccount) (string, error) {
	return rec.ID, nil
}

func (f *fakeFundraisingStore) UpdateBankAccount(string, map[string]interface{}) error { return nil }

func (f *fakeFundraisingStore) DeleteBankAccount(string) error { return nil }

func newFinanceHandler() *impl {
	donations := &fakeDonationStore{}
	for idx, amount := range []int64{200, 300, 1000} {
		donations.list = append(donations.list, dbmodels.Donation{
			BaseModel: dbmodels.BaseModel{
				ID:        fmt.Sprintf("don-%d", idx+1),
				CreatedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			},
			DonorName: "Петро Коваль",
			Amount:    amount,
			Currency:  "UAH",
			Public:    true,
		})
	}
	fundraising := &fakeFundraisingStore{
		goals: []dbmodels.FundraisingGoal{
			{
				BaseModel:    dbmodels.BaseModel{ID: "goal-1"},
				Title:        "Пікап для евакуації",
				TargetAmount: 1200000,
				Status:       dbmodels.GoalStatusActive,
			},
		},
	}
	return newImpl(donations, &fakeWithdrawalStore{}, nil, nil, nil, fundraising, nil, nil, nil)
}

func TestNormalizeSelection(t *testing.T) {
	require.Equal(t, datasetOrder, NormalizeSelection([]string{"ALL"}))
	require.Equal(t, datasetOrder, NormalizeSelection([]string{"donations", "all"}))
	require.Equal(t,
		[]string{"donations", "users"},
		NormalizeSelection([]string{" Users ", "DONATIONS", "bogus", "donations", ""}))
	require.Empty(t, NormalizeSelection([]string{"bogus", "  "}))
	require.Empty(t, NormalizeSelection(nil))
}

func TestBuildDatasetsCanonicalOrder(t *testing.T) {
	handler := newFinanceHandler()

	datasets, err := handler.BuildDatasets([]string{"donations", "overview"})
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	require.Equal(t, DatasetOverview, datasets[0].Key)
	require.Equal(t, DatasetDonations, datasets[1].Key)
}

func TestBuildOverviewTotals(t *testing.T) {
	handler := newFinanceHandler()

	datasets, err := handler.BuildDatasets([]string{"overview"})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	row := datasets[0].Rows[0]
	require.EqualValues(t, 1500, row["totalRaised"])
	require.EqualValues(t, 0, row["totalWithdrawn"])
	require.EqualValues(t, 1500, row["balance"])
	require.Equal(t, "Пікап для евакуації", row["activeGoalTitle"])
}

func TestBuildDonationsMetaMatchesRows(t *testing.T) {
	handler := newFinanceHandler()

	datasets, err := handler.BuildDatasets([]string{"donations"})
	require.NoError(t, err)
	ds := datasets[0]
	require.Equal(t, len(ds.Rows), ds.Meta["count"])
	require.EqualValues(t, 1500, ds.Meta["totalAmount"])
	require.Equal(t, "так", ds.Rows[0]["public"])
}

func TestExportInvalidSelection(t *testing.T) {
	handler := newFinanceHandler()

	_, err := handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{},
		Format:   exportapimodels.FormatJson,
	})
	require.ErrorIs(t, err, ErrInvalidSelection)

	_, err = handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{"bogus"},
		Format:   exportapimodels.FormatJson,
	})
	require.ErrorIs(t, err, ErrInvalidSelection)
}

func TestExportUnknownFormat(t *testing.T) {
	handler := newFinanceHandler()

	_, err := handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{"all"},
		Format:   exportapimodels.Format("txt"),
	})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportJson(t *testing.T) {
	handler := newFinanceHandler()

	file, err := handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{"overview", "donations"},
		Format:   exportapimodels.FormatJson,
	})
	require.NoError(t, err)
	require.Equal(t, "application/json", file.ContentType)

	var doc struct {
		GeneratedAt time.Time `json:"generatedAt"`
		Datasets    []struct {
			Key   string                   `json:"key"`
			Label string                   `json:"label"`
			Rows  []map[string]interface{} `json:"rows"`
		} `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(file.Body, &doc))
	require.False(t, doc.GeneratedAt.IsZero())
	require.Len(t, doc.Datasets, 2)
	require.Equal(t, "Фінансовий огляд", doc.Datasets[0].Label)
	require.EqualValues(t, 1500, doc.Datasets[0].Rows[0]["totalRaised"])
	require.Len(t, doc.Datasets[1].Rows, 3)
}

func TestDatasetCsvQuoting(t *testing.T) {
	donations := &fakeDonationStore{list: []dbmodels.Donation{
		{
			BaseModel: dbmodels.BaseModel{ID: "don-1"},
			DonorName: `Фонд "Разом"`,
			Amount:    500,
			Currency:  "UAH",
			Message:   "на авто, терміново",
		},
	}}
	handler := newImpl(donations, &fakeWithdrawalStore{}, nil, nil, nil, &fakeFundraisingStore{}, nil, nil, nil)

	datasets, err := handler.BuildDatasets([]string{"donations"})
	require.NoError(t, err)
	body, err := datasetCsv(datasets[0])
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Ім'я донатора", records[0][1])
	require.Equal(t, `Фонд "Разом"`, records[1][1])
	require.Equal(t, "на авто, терміново", records[1][5])
}

func TestExportZipLayout(t *testing.T) {
	handler := newFinanceHandler()

	file, err := handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{"donations"},
		Format:   exportapimodels.FormatZip,
	})
	require.NoError(t, err)
	require.Equal(t, "application/zip", file.ContentType)

	reader, err := zip.NewReader(bytes.NewReader(file.Body), int64(len(file.Body)))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, entry := range reader.File {
		names[entry.Name] = true
	}
	require.True(t, names["summary.json"])
	require.True(t, names["donations/data.json"])
	require.True(t, names["donations/data.csv"])

	summaryFile, err := reader.Open("summary.json")
	require.NoError(t, err)
	defer summaryFile.Close()
	var summary zipSummary
	require.NoError(t, json.NewDecoder(summaryFile).Decode(&summary))
	require.Len(t, summary.Datasets, 1)
	require.Equal(t, "donations", summary.Datasets[0].Key)
	require.Equal(t, 3, summary.Datasets[0].Rows)
}

func TestExportXlsx(t *testing.T) {
	handler := newFinanceHandler()

	file, err := handler.Export(exportapimodels.Request{
		Datasets: exportapimodels.Selection{"donations"},
		Format:   exportapimodels.FormatXlsx,
	})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer book.Close()

	require.Equal(t, []string{"Донати"}, book.GetSheetList())
	header, err := book.GetCellValue("Донати", "A3")
	require.NoError(t, err)
	require.Equal(t, "ID", header)
	amount, err := book.GetCellValue("Донати", "C4")
	require.NoError(t, err)
	require.Equal(t, "200", amount)
}

func TestFilename(t *testing.T) {
	name := Filename("report", exportapimodels.FormatZip)
	require.Regexp(t, regexp.MustCompile(`^volonterka-report-\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}\.zip$`), name)
}
