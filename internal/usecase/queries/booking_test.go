//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cleansched/internal/infra"
	"cleansched/internal/usecase/queries"
	"cleansched/tests/common/builder"
	queriesmock "cleansched/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx context.Context

	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockBookingReadStore

	q queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.q = queries.NewBookingQueries(s.mockReadStore)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	b := builder.NewBookingBuilder()

	s.Run("owner reads own booking", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil)

		view, err := s.q.GetByID(s.ctx, b.ID, b.UserID, "user")

		s.Require().NoError(err)
		s.Equal(b.ID, view.ID)
	})

	s.Run("admin reads any booking", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil)

		_, err := s.q.GetByID(s.ctx, b.ID, uuid.New(), queries.RoleAdmin)

		s.NoError(err)
	})

	s.Run("other user is denied", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil)

		_, err := s.q.GetByID(s.ctx, b.ID, uuid.New(), "user")

		s.ErrorIs(err, queries.ErrBookingAccess)
	})

	s.Run("missing booking maps to not found", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.q.GetByID(s.ctx, b.ID, b.UserID, "user")

		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestList() {
	s.Run("normalizes page defaults before delegating", func() {
		s.mockReadStore.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.BookingListFilter) (*queries.BookingPage, error) {
				s.Equal(1, filter.Page)
				s.Equal(queries.DefaultPageSize, filter.PageSize)
				return &queries.BookingPage{Page: filter.Page, PageSize: filter.PageSize}, nil
			})

		_, err := s.q.List(s.ctx, queries.BookingListFilter{Page: 0, PageSize: 0})
		s.NoError(err)
	})

	s.Run("caps oversized page size", func() {
		s.mockReadStore.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.BookingListFilter) (*queries.BookingPage, error) {
				s.Equal(queries.MaxPageSize, filter.PageSize)
				return &queries.BookingPage{}, nil
			})

		_, err := s.q.List(s.ctx, queries.BookingListFilter{Page: 2, PageSize: 500})
		s.NoError(err)
	})
}

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied", 0, 0, 1, queries.DefaultPageSize},
		{"negative page resets", -3, 10, 1, 10},
		{"oversized page size capped", 1, 1000, 1, queries.MaxPageSize},
		{"valid values pass through", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := queries.ValidatePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}
