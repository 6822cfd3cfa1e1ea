package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockTransactionRepository
	mockRates   *MockRateService
	currentTime time.Time
	service     portssvc.ImportSvcFacade
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockRates = new(MockRateService)
	suite.currentTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewImportServiceWithClock(
		suite.mockRepo,
		suite.mockRates,
		func() time.Time { return suite.currentTime },
	)
}

func (suite *ImportServiceTestSuite) expectRates(rates map[string]float64) {
	suite.mockRates.On("GetRates", mock.Anything).
		Return(&domain.RateSnapshot{Rates: rates, FetchedAt: suite.currentTime}, nil).Once()
}

func csvRow(row int, date, description, amount, currency string) domain.RawRow {
	return domain.RawRow{
		Row:         row,
		Date:        date,
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Source:      domain.SourceCSV,
	}
}

// --- Test Cases ---

func (suite *ImportServiceTestSuite) TestImportBatch_AllRowsValid() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "25-12-2023", "Coffee", "10", "USD"),
		csvRow(2, "26-12-2023", "Lunch", "20", "EUR"),
	}

	suite.expectRates(map[string]float64{"USD": 83.12, "EUR": 90.5})
	suite.mockRepo.On("SaveTransactionsBatch", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 &&
			txns[0].TransactionDate.Format("2006-01-02") == "2023-12-25" &&
			txns[1].Currency == "EUR"
	})).Return(2, nil).Once()

	result, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Empty(result.Errors)
	suite.False(result.Rejected())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportBatch_OneBadRowRejectsWholeBatch() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "25-12-2023", "Coffee", "10", "USD"),
		csvRow(2, "26-12-2023", "Lunch", "20", "USD"),
		csvRow(3, "27-12-2023", "Dinner", "30", "XYZ"),
		csvRow(4, "28-12-2023", "Snack", "5", "USD"),
		csvRow(5, "29-12-2023", "Taxi", "15", "USD"),
	}

	suite.expectRates(map[string]float64{"USD": 83.12})

	result, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().NoError(err)
	suite.True(result.Rejected())
	suite.Zero(result.Imported)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(3, result.Errors[0].Row)
	suite.Equal(domain.ReasonUnsupportedCurrency, result.Errors[0].Reason)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactionsBatch", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportBatch_CollectsAllRowErrors() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "", "Coffee", "10", "USD"),
		csvRow(2, "26-12-2023", "Lunch", "20", "USD"),
		csvRow(3, "bad-date", "Dinner", "30", "USD"),
	}

	suite.expectRates(map[string]float64{"USD": 83.12})

	result, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().NoError(err)
	suite.Require().Len(result.Errors, 2)
	suite.Equal(1, result.Errors[0].Row)
	suite.Equal(domain.ReasonMissingField, result.Errors[0].Reason)
	suite.Equal(3, result.Errors[1].Row)
	suite.Equal(domain.ReasonInvalidDateFormat, result.Errors[1].Reason)
}

func (suite *ImportServiceTestSuite) TestImportBatch_SingleSnapshotPerBatch() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "25-12-2023", "Coffee", "10", "USD"),
		csvRow(2, "26-12-2023", "Lunch", "20", "USD"),
		csvRow(3, "27-12-2023", "Dinner", "30", "USD"),
	}

	// A single .Once() expectation: a second GetRates call would fail the suite.
	suite.expectRates(map[string]float64{"USD": 83.12})
	suite.mockRepo.On("SaveTransactionsBatch", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Return(3, nil).Once()

	_, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().NoError(err)
	suite.mockRates.AssertNumberOfCalls(suite.T(), "GetRates", 1)
}

func (suite *ImportServiceTestSuite) TestImportBatch_RateFetchFailure() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "25-12-2023", "Coffee", "10", "USD"),
	}

	suite.mockRates.On("GetRates", mock.Anything).Return(nil, apperrors.ErrRateFetch).Once()

	result, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrRateFetch)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactionsBatch", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportBatch_PersistenceFailure() {
	ctx := context.Background()
	rows := []domain.RawRow{
		csvRow(1, "25-12-2023", "Coffee", "10", "USD"),
		csvRow(2, "26-12-2023", "Lunch", "20", "USD"),
	}

	suite.expectRates(map[string]float64{"USD": 83.12})
	suite.mockRepo.On("SaveTransactionsBatch", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Return(0, assert.AnError).Once()

	result, err := suite.service.ImportBatch(ctx, rows)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportBatch_EmptyBatch() {
	ctx := context.Background()

	result, err := suite.service.ImportBatch(ctx, nil)

	suite.Require().NoError(err)
	suite.Zero(result.Imported)
	suite.Empty(result.Errors)
	suite.mockRates.AssertNotCalled(suite.T(), "GetRates", mock.Anything)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
