//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/handler/api"
	resdto "weekend-booking/internal/handler/dto/response"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"
	"weekend-booking/tests/common/builder"
	"weekend-booking/tests/common/httptest"
	"weekend-booking/tests/common/testutil"
	commandsmock "weekend-booking/tests/mock/commands"
	queriesmock "weekend-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockAvailability)

	s.router.GET("/bookings/availability", s.handler.GetAvailability)
	s.router.POST("/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	url := "/bookings/availability"
	sunday := calendar.MustParseDate("2025-06-15")

	s.Run("success: returns value/display pairs per date", func() {
		s.mockAvailability.EXPECT().PublicAvailability(gomock.Any()).
			Return([]*queries.AvailabilityDay{{
				Date:           sunday,
				DisplayDate:    sunday.Display(),
				AvailableSlots: []slot.TimeSlot{slot.Afternoon, slot.Evening},
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.AvailabilityDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2025-06-15", body[0].Date)
		s.Equal("Sunday, June 15, 2025", body[0].DisplayDate)
		s.Equal([]resdto.SlotOption{
			{Value: "2 pm - 4 pm", Display: "2 pm - 4 pm"},
			{Value: "5 pm - 7 pm", Display: "5 pm - 7 pm"},
		}, body[0].AvailableSlots)
	})

	s.Run("success: empty window is an empty array", func() {
		s.mockAvailability.EXPECT().PublicAvailability(gomock.Any()).
			Return([]*queries.AvailabilityDay{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 500 hides storage failure", func() {
		s.mockAvailability.EXPECT().PublicAvailability(gomock.Any()).
			Return(nil, errors.New("pool exhausted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "internal_error")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with pending status", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody.ToDomain()).
			Return(&commands.CreateBookingResult{
				ID:       id,
				Status:   appointment.StatusPending,
				Date:     b.Date,
				TimeSlot: b.TimeSlot,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal("10 am - 12 pm", body.TimeSlot)
		s.Equal(resdto.BookingSubmittedMessage, body.Message)
	})

	s.Run("success: missing fields reach the guard instead of failing binding", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req appointment.Request) (*commands.CreateBookingResult, error) {
				s.Empty(req.Phone)
				return nil, appointment.ErrMissingField
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("phone", nil)), "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "missing_field")
	})

	s.Run("error: guard reasons map to status codes", func() {
		cases := []struct {
			err        error
			wantStatus int
			wantCode   string
		}{
			{slot.ErrInvalidSlot, http.StatusBadRequest, "invalid_slot"},
			{calendar.ErrNotWeekend, http.StatusBadRequest, "not_weekend"},
			{calendar.ErrPastDate, http.StatusBadRequest, "past_date"},
			{appointment.ErrSlotDisabled, http.StatusConflict, "slot_disabled"},
			{appointment.ErrDuplicateCustomerDay, http.StatusConflict, "duplicate_customer_day"},
			{appointment.ErrSlotTaken, http.StatusConflict, "slot_taken"},
		}
		for _, tc := range cases {
			s.Run(tc.wantCode, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_request")
	})
}
