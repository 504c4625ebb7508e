//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"cleansched/internal/domain/user"
	"cleansched/internal/handler/api"
	resdto "cleansched/internal/handler/dto/response"
	"cleansched/internal/usecase/commands"
	"cleansched/internal/usecase/queries"
	"cleansched/tests/common/builder"
	"cleansched/tests/common/httptest"
	"cleansched/tests/common/testutil"
	commandsmock "cleansched/tests/mock/commands"
	queriesmock "cleansched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleUser

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeactivateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success returns 201 with id", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
			Return(&commands.CreateBookingResult{BookingID: bookingID}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(bookingID, resp.ID)
	})

	s.Run("unauthenticated returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("missing required field returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("cleaning_date", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("domain validation failure returns 422", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, commands.ErrDomainValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success returns updated snapshot", func() {
		snap := b.With(func(bb *builder.BookingBuilder) {
			bb.BookingStatus = "served"
		}).BuildSnapshot()
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(snap, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")

		var resp resdto.BookingSnapshotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("served", resp.BookingStatus)
	})

	s.Run("invalid uuid returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("empty patch returns 400", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(nil, commands.ErrEmptyPatch)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No updatable field")
	})

	s.Run("not owned returns 403", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(nil, commands.ErrBookingNotOwned)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another user")
	})

	s.Run("ineligible booking returns 404", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(nil, commands.ErrBookingNotEligible)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No active booking found")
	})

	s.Run("invalid transition returns 409", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(nil, commands.ErrInvalidTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "current state")
	})

	s.Run("store failure returns 500", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.actorID, "user").
			Return(nil, errors.New("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success returns 204", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, "user").
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("served booking returns 409", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, "user").
			Return(commands.ErrInvalidTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()

	s.Run("success returns booking view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.actorID, "user").
			Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal(b.UserEmail, resp.UserEmail)
	})

	s.Run("not found returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.actorID, "user").
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("foreign booking returns 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.actorID, "user").
			Return(nil, queries.ErrBookingAccess)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("non-admin is pinned to own bookings", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.BookingListFilter) (*queries.BookingPage, error) {
				s.Require().NotNil(filter.UserID)
				s.Equal(s.actorID, *filter.UserID)
				return &queries.BookingPage{
					TotalRecords: 1,
					Page:         1,
					PageSize:     20,
					Items:        []*queries.BookingListItem{item},
				}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(1), resp.TotalRecords)
		s.Len(resp.Data, 1)
	})

	s.Run("admin sees all users", func() {
		s.actorRole = user.RoleAdmin
		defer func() { s.actorRole = user.RoleUser }()

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.BookingListFilter) (*queries.BookingPage, error) {
				s.Nil(filter.UserID)
				return &queries.BookingPage{Page: 1, PageSize: 20, Items: []*queries.BookingListItem{}}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid status filter returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=unknown", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query parameters")
	})
}

// ================================================================================
// TestDeactivateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeactivateBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success returns 204", func() {
		s.mockCommands.EXPECT().DeactivateBooking(gomock.Any(), bookingID).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("already inactive returns 404", func() {
		s.mockCommands.EXPECT().DeactivateBooking(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotEligible)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
