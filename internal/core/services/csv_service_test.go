package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CSVServiceTestSuite struct {
	suite.Suite
	env     *serviceEnv
	service portssvc.CSVSvcFacade
}

func (suite *CSVServiceTestSuite) SetupTest() {
	suite.env = newServiceEnv(fixtureProfile())
	suite.service = services.NewCSVService(suite.env.profile, suite.env.audit)
}

func (suite *CSVServiceTestSuite) TestExportCSV() {
	ctx := context.Background()

	filename, data, err := suite.service.ExportCSV(ctx)

	suite.Require().NoError(err)
	suite.Contains(filename, "transactions_")
	suite.True(strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	suite.Require().Len(lines, 5, "header plus four fixture rows")
	suite.Equal("Date,Description,Category,Amount,Currency", lines[0])
	suite.Equal("2025-03-15,Rent,Housing,1500,USD", lines[1])

	suite.Equal(domain.AuditDataExport, suite.env.lastAuditAction())
}

func (suite *CSVServiceTestSuite) TestImportCSV() {
	ctx := context.Background()

	payload := strings.Join([]string{
		"Date,Description,Category,Amount,Currency",
		"2025-03-10,Coffee,Food,4.50,USD",
		"2025-03-11,Book,,12.00",
	}, "\n")

	result, err := suite.service.ImportCSV(ctx, []byte(payload))

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Empty(result.Issues)

	profile, err := suite.env.profile.GetProfile(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(profile.Expenses, 6)

	// Imported rows are prepended, file order preserved.
	suite.Equal("Coffee", profile.Expenses[0].Description)
	suite.NotEmpty(profile.Expenses[0].TransactionID)
	suite.Equal("Book", profile.Expenses[1].Description)
	// A blank category falls back rather than failing the row.
	suite.Equal(domain.FallbackCategory, profile.Expenses[1].Category)
	suite.Equal("Rent", profile.Expenses[2].Description)

	suite.Equal(domain.AuditDataImport, suite.env.lastAuditAction())
}

func (suite *CSVServiceTestSuite) TestImportCSV_WithoutHeader() {
	result, err := suite.service.ImportCSV(context.Background(),
		[]byte("2025-03-10,Coffee,Food,4.50,USD\n"))

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
}

func (suite *CSVServiceTestSuite) TestImportCSV_BadRowsDroppedWithDiagnostics() {
	payload := strings.Join([]string{
		"Date,Description,Category,Amount,Currency",
		"2025-03-10,Coffee,Food,4.50",
		"not-a-date,Mystery,Food,10",
		"2025-03-11,Refund,Food,-5",
		"2025-03-12,Short row",
		"2025-03-13,Snack,Food,abc",
	}, "\n")

	result, err := suite.service.ImportCSV(context.Background(), []byte(payload))

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Require().Len(result.Issues, 4)

	// Line numbers are 1-based positions in the uploaded file.
	suite.Equal(3, result.Issues[0].Line)
	suite.Contains(result.Issues[0].Reason, "invalid date")
	suite.Equal(4, result.Issues[1].Line)
	suite.Contains(result.Issues[1].Reason, "negative")
	suite.Equal(5, result.Issues[2].Line)
	suite.Contains(result.Issues[2].Reason, "4 fields")
	suite.Equal(6, result.Issues[3].Line)
	suite.Contains(result.Issues[3].Reason, "invalid amount")
}

func (suite *CSVServiceTestSuite) TestRoundTrip_QuotedFields() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Expenses = append([]domain.Transaction{
			fixtureTxn(`Dinner, drinks and "dessert"`, "82.50", "Food", "2025-03-14"),
		}, p.Expenses...)
		return nil
	})
	suite.Require().NoError(err)

	_, data, err := suite.service.ExportCSV(ctx)
	suite.Require().NoError(err)
	suite.Contains(string(data), `"Dinner, drinks and ""dessert"""`)

	// Import into a fresh profile and make sure the field survives intact.
	fresh := newServiceEnv(fixtureProfile())
	freshCSV := services.NewCSVService(fresh.profile, fresh.audit)

	result, err := freshCSV.ImportCSV(ctx, data)
	suite.Require().NoError(err)
	suite.Equal(5, result.Imported)

	profile, err := fresh.profile.GetProfile(ctx)
	suite.Require().NoError(err)
	suite.Equal(`Dinner, drinks and "dessert"`, profile.Expenses[0].Description)
	suite.True(decimal.RequireFromString("82.5").Equal(profile.Expenses[0].Amount))
}

func (suite *CSVServiceTestSuite) TestImportCSV_UppercasesCurrency() {
	ctx := context.Background()

	result, err := suite.service.ImportCSV(ctx, []byte("2025-03-10,Metro ticket,Transport,2.10,eur\n"))

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)

	profile, err := suite.env.profile.GetProfile(ctx)
	suite.Require().NoError(err)
	suite.Equal("EUR", profile.Expenses[0].CurrencyCode)
}

func TestCSVServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CSVServiceTestSuite))
}
