package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	repo    *memAuditRepo
	service portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.repo = &memAuditRepo{}
	suite.service = services.NewAuditService(suite.repo)
}

func (suite *AuditServiceTestSuite) TestRecord_NewestFirst() {
	ctx := context.Background()

	suite.Require().NoError(suite.service.Record(ctx, domain.AuditExpenseAdded, "first"))
	suite.Require().NoError(suite.service.Record(ctx, domain.AuditExpenseDeleted, "second"))

	entries, err := suite.service.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(domain.AuditExpenseDeleted, entries[0].Action)
	suite.Equal("second", entries[0].Details)
	suite.Equal(domain.AuditExpenseAdded, entries[1].Action)
	suite.False(entries[0].Timestamp.IsZero())
}

func (suite *AuditServiceTestSuite) TestRecord_CapEvictsOldest() {
	ctx := context.Background()

	for i := 0; i < domain.MaxAuditEntries+10; i++ {
		err := suite.service.Record(ctx, domain.AuditExpenseAdded, fmt.Sprintf("entry %d", i))
		suite.Require().NoError(err)
	}

	entries, err := suite.service.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, domain.MaxAuditEntries)

	// The newest entry is first; the ten oldest have been evicted.
	suite.Equal(fmt.Sprintf("entry %d", domain.MaxAuditEntries+9), entries[0].Details)
	suite.Equal("entry 10", entries[domain.MaxAuditEntries-1].Details)
}

func (suite *AuditServiceTestSuite) TestClear() {
	ctx := context.Background()

	suite.Require().NoError(suite.service.Record(ctx, domain.AuditProfileReset, ""))
	suite.Require().NoError(suite.service.Clear(ctx))

	entries, err := suite.service.List(ctx)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
