package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/mocks"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage/memory"
	"github.com/tesouraclub/tesoura-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// BillingCutoff tests

func (s *ServiceSuite) TestBillingCutoffMonthStartingSaturday() {
	// June 2024 starts on a Saturday; Sundays fall on the 2nd and 9th
	cutoff := BillingCutoff("2024-06")
	s.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), cutoff)
}

func (s *ServiceSuite) TestBillingCutoffMonthStartingSunday() {
	// September 2024 starts on a Sunday; the 1st counts as the first Sunday
	cutoff := BillingCutoff("2024-09")
	s.Equal(time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC), cutoff)
}

func (s *ServiceSuite) TestBillingCutoffMidweekStart() {
	// February 2024 starts on a Thursday; Sundays fall on the 4th and 11th
	cutoff := BillingCutoff("2024-02")
	s.Equal(time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), cutoff)
}

// Status tests

func (s *ServiceSuite) TestStatusPendingBeforeCutoff() {
	status, err := s.service.Status(s.ctx, "2024-06-09", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentPending, status)
}

func (s *ServiceSuite) TestStatusOverdueFromCutoffWithoutPayment() {
	// The cutoff Monday itself already demands payment
	status, err := s.service.Status(s.ctx, "2024-06-10", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentOverdue, status)

	status, err = s.service.Status(s.ctx, "2024-06-16", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentOverdue, status)
}

func (s *ServiceSuite) TestStatusPaidAfterRecording() {
	_, err := s.service.RecordPayment(s.ctx, "2024-06", "alice", 50)
	s.Require().NoError(err)

	status, err := s.service.Status(s.ctx, "2024-06-16", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentPaid, status)
}

func (s *ServiceSuite) TestStatusScopedToPeriod() {
	_, err := s.service.RecordPayment(s.ctx, "2024-05", "alice", 50)
	s.Require().NoError(err)

	// May's payment does not cover June
	status, err := s.service.Status(s.ctx, "2024-06-16", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentOverdue, status)
}

func (s *ServiceSuite) TestStatusCaseInsensitiveHandle() {
	_, err := s.service.RecordPayment(s.ctx, "2024-06", "Alice", 50)
	s.Require().NoError(err)

	status, err := s.service.Status(s.ctx, "2024-06-16", "alice")
	s.Require().NoError(err)
	s.Equal(model.PaymentPaid, status)
}

// StatusMap tests

func (s *ServiceSuite) TestStatusMapResolvesAllHandles() {
	_, _ = s.service.RecordPayment(s.ctx, "2024-06", "alice", 50)

	statuses, err := s.service.StatusMap(s.ctx, "2024-06-16", []model.Handle{"Alice", "bob"})
	s.Require().NoError(err)
	s.Equal(model.PaymentPaid, statuses["alice"])
	s.Equal(model.PaymentOverdue, statuses["bob"])
}

// RecordPayment tests

func (s *ServiceSuite) TestRecordPaymentStampsClock() {
	record, err := s.service.RecordPayment(s.ctx, "2024-06", "alice", 50)
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), record.PaidAt)
	s.Equal(50, record.Amount)
}

func (s *ServiceSuite) TestRecordPaymentRejectsBadHandle() {
	_, err := s.service.RecordPayment(s.ctx, "2024-06", "two words", 50)
	s.ErrorIs(err, model.ErrInvalidHandle)
}

func (s *ServiceSuite) TestRecordPaymentOverwrites() {
	_, _ = s.service.RecordPayment(s.ctx, "2024-06", "alice", 50)
	_, err := s.service.RecordPayment(s.ctx, "2024-06", "alice", 60)
	s.Require().NoError(err)

	records, err := s.service.ListPayments(s.ctx, "2024-06")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(60, records[0].Amount)
}

func (s *ServiceSuite) TestListPayments() {
	_, _ = s.service.RecordPayment(s.ctx, "2024-06", "bob", 50)
	_, _ = s.service.RecordPayment(s.ctx, "2024-06", "alice", 50)
	_, _ = s.service.RecordPayment(s.ctx, "2024-07", "alice", 50)

	records, err := s.service.ListPayments(s.ctx, "2024-06")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(model.Handle("alice"), records[0].Handle)
	s.Equal(model.Handle("bob"), records[1].Handle)
}
