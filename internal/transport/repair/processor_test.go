package repair

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/repair/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.processor = NewProcessor(s.mockService, logger).
		SetLimitPerIteration(10).
		SetRepairWorkers(2).
		SetInterval(10 * time.Millisecond)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProcessorTestSuite) TestProcessNoPending() {
	s.mockService.EXPECT().PendingFanOuts(gomock.Any(), uint(10)).Return(nil, nil)

	n, err := s.processor.process(s.T().Context())
	s.Require().ErrorIs(err, ErrNoPending)
	s.Zero(n)
}

func (s *ProcessorTestSuite) TestProcessProduceError() {
	s.mockService.EXPECT().PendingFanOuts(gomock.Any(), uint(10)).Return(nil, domain.ErrUnknown)

	_, err := s.processor.process(s.T().Context())
	s.Require().ErrorIs(err, domain.ErrUnknown)
}

func (s *ProcessorTestSuite) TestProcessRepairsEveryInvestment() {
	pending := []domain.Investment{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	s.mockService.EXPECT().PendingFanOuts(gomock.Any(), uint(10)).Return(pending, nil)

	for _, inv := range pending {
		s.mockService.EXPECT().RepairFanOut(gomock.Any(), inv.ID).Return([]domain.Commission{{ID: 1}}, nil)
	}

	n, err := s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *ProcessorTestSuite) TestProcessCountsOnlyRepaired() {
	ok := domain.Investment{ID: uuid.New()}
	broken := domain.Investment{ID: uuid.New()}
	s.mockService.EXPECT().PendingFanOuts(gomock.Any(), uint(10)).Return([]domain.Investment{ok, broken}, nil)
	s.mockService.EXPECT().RepairFanOut(gomock.Any(), ok.ID).Return(nil, nil)
	s.mockService.EXPECT().RepairFanOut(gomock.Any(), broken.ID).
		Return(nil, domain.NewFanOutError(broken.ID, 3, errors.New("deadlock")))

	n, err := s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *ProcessorTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())

	var calls atomic.Int32
	s.mockService.EXPECT().PendingFanOuts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uint) ([]domain.Investment, error) {
			if calls.Add(1) >= 2 {
				cancel()
			}
			return nil, nil
		}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("processor did not stop")
	}
}
