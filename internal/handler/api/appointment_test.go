//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/recurrence"
	"groombook/internal/handler/api"
	reqdto "groombook/internal/handler/dto/request"
	resdto "groombook/internal/handler/dto/response"
	"groombook/internal/pkg/errs"
	"groombook/internal/usecase/commands"
	"groombook/internal/usecase/queries"
	"groombook/tests/common/builder"
	"groombook/tests/common/httptest"
	"groombook/tests/common/testutil"
	commandsmock "groombook/tests/mock/commands"
	queriesmock "groombook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// mockAuth stands in for RequireAuth: any bearer token authenticates as tenantID.
func mockAuth(tenantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("tenant_id", tenantID)
		c.Set("user_role", "staff")
		c.Next()
	}
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	tenantID     uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.tenantID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	h := api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/appointments", mockAuth(s.tenantID))
	g.POST("", h.Book)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.ChangeStatus)
	g.POST("/:id/payment/toggle", h.TogglePayment)
	g.DELETE("/:id", h.Delete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func validBookRequest() reqdto.BookAppointmentRequest {
	petID := uuid.New()
	return reqdto.BookAppointmentRequest{
		CustomerID: uuid.New(),
		PetID:      &petID,
		ServiceIDs: []uuid.UUID{uuid.New()},
		Date:       "2025-06-10",
		Time:       "10:00",
	}
}

// ================================================================================
// TestBook
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"
	reqBody := validBookRequest()
	booked := builder.NewAppointmentBuilder().BuildDomain()
	result := &commands.BookResult{Appointments: []appointment.Appointment{booked}}

	validation := []testCaseAppointment{
		{name: "missing field: customer_id", mutate: testutil.Field("customer_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: service_ids", mutate: testutil.Field("service_ids", nil), expectCode: http.StatusBadRequest},
		{name: "empty service_ids", mutate: testutil.Field("service_ids", []string{}), expectCode: http.StatusBadRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		{name: "duration boundary invalid (0)", mutate: testutil.Field("duration_minutes", 0), expectCode: http.StatusBadRequest},
		{name: "duration boundary OK (1)", mutate: testutil.Field("duration_minutes", 1), expectCode: http.StatusCreated},
		{name: "notes length OK (2000 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "notes length invalid (2001 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		{name: "malformed customer_id", mutate: testutil.Field("customer_id", "abc"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with the created occurrences", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.tenantID, reqBody.ToCommand()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Nil(body.SeriesID)
		s.Equal(1, body.Count)
		s.Require().Len(body.Appointments, 1)
		s.Equal(booked.ID, body.Appointments[0].ID)
		s.Equal("scheduled", body.Appointments[0].Status)
		s.Equal("unpaid", body.Appointments[0].PaymentStatus)
		s.False(body.Appointments[0].CanDelete)
	})

	s.Run("success: recurrence fields reach the command lowercased", func() {
		req := validBookRequest()
		req.Recurrence = &reqdto.RecurrenceRequest{Enabled: true, Frequency: "Weekly", EndMode: "AFTER", OccurrenceCount: 4}

		seriesID := uuid.New()
		s.mockCommands.EXPECT().Book(gomock.Any(), s.tenantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, cmd commands.BookRequest) (*commands.BookResult, error) {
				s.Equal(recurrence.Rule{
					Enabled:         true,
					Frequency:       recurrence.FrequencyWeekly,
					EndMode:         recurrence.EndAfter,
					OccurrenceCount: 4,
				}, cmd.Recurrence)
				return &commands.BookResult{SeriesID: &seriesID, Appointments: []appointment.Appointment{booked, booked}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "bearer-token")

		var body resdto.BookAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(&seriesID, body.SeriesID)
		s.Equal(2, body.Count)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"recurrence validation", &recurrence.ValidationError{Field: "untilDate", Cause: recurrence.ErrUntilBeforeStart}, http.StatusBadRequest, "Invalid recurrence"},
			{"customer not found", commands.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
			{"service not found", commands.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
			{"pet not owned", commands.ErrPetNotOwned, http.StatusBadRequest, "Pet does not belong"},
			{"missing services", appointment.ErrMissingServices, http.StatusBadRequest, "service"},
			{"database failure", errs.Mark(errors.New("boom"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	view := &queries.AppointmentView{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CustomerName:  "Ana Silva",
		ServiceIDs:    []uuid.UUID{uuid.New()},
		Date:          "2025-06-11",
		Time:          "09:00",
		Status:        "cancelled",
		PaymentStatus: "unpaid",
	}

	s.Run("success: defaults to upcoming", func() {
		s.mockQueries.EXPECT().ListBucket(gomock.Any(), s.tenantID, queries.ListBucketParams{Bucket: appointment.ModeUpcoming}).
			Return([]*queries.AppointmentView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "bearer-token")

		var body resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("upcoming", body.Bucket)
		s.Require().Len(body.Appointments, 1)
		s.Equal("Ana Silva", body.Appointments[0].CustomerName)
		s.True(body.Appointments[0].CanDelete)
	})

	s.Run("success: bucket, pending filter and range", func() {
		s.mockQueries.EXPECT().ListBucket(gomock.Any(), s.tenantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p queries.ListBucketParams) ([]*queries.AppointmentView, error) {
				s.Equal(appointment.ModeUnpaid, p.Bucket)
				s.True(p.PendingOnly)
				s.Require().NotNil(p.From)
				s.Equal("2025-06-01", p.From.String())
				s.Nil(p.To)
				return []*queries.AppointmentView{}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?bucket=Unpaid&pendingOnly=true&from=2025-06-01", nil, "bearer-token")

		var body resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("unpaid", body.Bucket)
		s.Empty(body.Appointments)
	})

	s.Run("error: unknown bucket", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?bucket=overdue", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown bucket")
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?to=2025-02-30", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

// ================================================================================
// TestGet / TestChangeStatus / TestTogglePayment / TestDelete
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.tenantID, id).
			Return(&queries.AppointmentView{ID: id, Status: "scheduled", PaymentStatus: "paid"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+id.String(), nil, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("paid", body.PaymentStatus)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.tenantID, id).Return(nil, queries.ErrAppointmentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *AppointmentHandlerTestSuite) TestChangeStatus() {
	current := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed).BuildDomain()
	url := "/appointments/" + current.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.tenantID, current.ID, "confirmed").Return(&current, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown status", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.tenantID, current.ID, "archived").
			Return(nil, appointment.ErrInvalidStatus)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment status")
	})
}

func (s *AppointmentHandlerTestSuite) TestTogglePayment() {
	current := builder.NewAppointmentBuilder().Paid().BuildDomain()
	url := "/appointments/" + current.ID.String() + "/payment/toggle"

	s.Run("success", func() {
		s.mockCommands.EXPECT().TogglePayment(gomock.Any(), s.tenantID, current.ID).Return(&current, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.PaymentStatus)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().TogglePayment(gomock.Any(), s.tenantID, current.ID).Return(nil, commands.ErrAppointmentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/appointments/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.tenantID, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when not cancelled", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.tenantID, id).Return(appointment.ErrInvalidState)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Only cancelled")
	})
}
