//go:build e2e

package appointment_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	reqdto "groombook/internal/handler/dto/request"
	resdto "groombook/internal/handler/dto/response"
	"groombook/tests/common/authtest"
	"groombook/tests/common/dbtest"
	"groombook/tests/common/httptest"
	"groombook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const appointmentsURL = "/api/appointments"

type AppointmentSuite struct {
	e2e.SharedSuite
}

func (s *AppointmentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AppointmentSuite))
}

type tenantFixture struct {
	tenantID   uuid.UUID
	customerID uuid.UUID
	petID      uuid.UUID
	bathID     uuid.UUID
	trimID     uuid.UUID
	token      string
}

func (s *AppointmentSuite) newTenant(t *testing.T, name string) tenantFixture {
	t.Helper()
	tenantID := dbtest.CreateTenant(t, s.DB, name)
	customerID := dbtest.CreateCustomer(t, s.DB, tenantID, "Ana Silva", "(11) 99988-7766")
	return tenantFixture{
		tenantID:   tenantID,
		customerID: customerID,
		petID:      dbtest.CreatePet(t, s.DB, tenantID, customerID, "Bobi", "Poodle"),
		bathID:     dbtest.CreateService(t, s.DB, tenantID, "Bath", 40),
		trimID:     dbtest.CreateService(t, s.DB, tenantID, "Trim", 20),
		token:      authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, tenantID),
	}
}

func (f tenantFixture) bookRequest(date string) reqdto.BookAppointmentRequest {
	petID := f.petID
	return reqdto.BookAppointmentRequest{
		CustomerID: f.customerID,
		PetID:      &petID,
		ServiceIDs: []uuid.UUID{f.bathID, f.trimID},
		Date:       date,
		Time:       "10:00",
	}
}

func (s *AppointmentSuite) book(t *testing.T, f tenantFixture, req reqdto.BookAppointmentRequest) resdto.BookAppointmentResponse {
	t.Helper()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, f.token)
	var body resdto.BookAppointmentResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
	return body
}

func (s *AppointmentSuite) list(t *testing.T, f tenantFixture, query string) []string {
	t.Helper()
	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+query, nil, f.token)
	var body resdto.AppointmentListResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	dates := make([]string, 0, len(body.Appointments))
	for _, a := range body.Appointments {
		dates = append(dates, a.Date)
	}
	return dates
}

// =============================================================================
// Booking
// =============================================================================

func (s *AppointmentSuite) TestBook() {
	s.Run("single booking sums service durations", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")

		body := s.book(t, f, f.bookRequest("2099-03-10"))

		require.Nil(t, body.SeriesID)
		require.Equal(t, 1, body.Count)
		a := body.Appointments[0]
		require.Equal(t, 60, a.DurationMinutes)
		require.Equal(t, "scheduled", a.Status)
		require.Equal(t, "unpaid", a.PaymentStatus)
		require.Equal(t, []uuid.UUID{f.bathID, f.trimID}, a.ServiceIDs)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"/"+a.ID.String(), nil, f.token)
		var got resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		require.Equal(t, "2099-03-10", got.Date)
		require.Equal(t, "10:00", got.Time)
		require.Equal(t, "Ana Silva", got.CustomerName)
		require.NotNil(t, got.PetName)
		require.Equal(t, "Bobi", *got.PetName)
		require.Equal(t, []uuid.UUID{f.bathID, f.trimID}, got.ServiceIDs)
	})

	s.Run("monthly series is stored atomically with one series id", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		req := f.bookRequest("2099-01-31")
		req.Recurrence = &reqdto.RecurrenceRequest{Enabled: true, Frequency: "monthly", EndMode: "after", OccurrenceCount: 4}

		body := s.book(t, f, req)

		require.NotNil(t, body.SeriesID)
		require.Equal(t, 4, body.Count)

		var stored int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments WHERE series_id = $1", *body.SeriesID).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 4, stored)

		want := []string{"2099-01-31", "2099-02-28", "2099-03-31", "2099-04-30"}
		if diff := cmp.Diff(want, s.list(t, f, "")); diff != "" {
			t.Errorf("upcoming dates mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("an unknown service aborts the whole series", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		req := f.bookRequest("2099-01-01")
		req.ServiceIDs = []uuid.UUID{f.bathID, uuid.New()}
		req.Recurrence = &reqdto.RecurrenceRequest{Enabled: true, Frequency: "weekly", EndMode: "after", OccurrenceCount: 3}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, f.token)

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Service not found")
		require.Empty(t, s.list(t, f, ""))
	})

	s.Run("pet of another customer is rejected", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		otherCustomer := dbtest.CreateCustomer(t, s.DB, f.tenantID, "Bruno Costa", "")
		otherPet := dbtest.CreatePet(t, s.DB, f.tenantID, otherCustomer, "Thor", "Border Collie")
		req := f.bookRequest("2099-01-01")
		req.PetID = &otherPet

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, f.token)

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Pet does not belong")
	})

	s.Run("invalid recurrence reports the field", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		req := f.bookRequest("2099-01-10")
		req.Recurrence = &reqdto.RecurrenceRequest{Enabled: true, Frequency: "weekly", EndMode: "on", UntilDate: "2099-01-01"}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, f.token)

		body := httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid recurrence")
		require.Equal(t, "untilDate", body.Detail["field"])
	})
}

// =============================================================================
// Buckets and tenant isolation
// =============================================================================

func (s *AppointmentSuite) TestListBuckets() {
	s.Run("past, upcoming and unpaid", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		s.book(t, f, f.bookRequest("2099-05-01"))
		past := s.book(t, f, f.bookRequest("2001-05-01")).Appointments[0]
		paid := s.book(t, f, f.bookRequest("2001-04-01")).Appointments[0]

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/payment/toggle", appointmentsURL, paid.ID), nil, f.token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		require.Equal(t, []string{"2099-05-01"}, s.list(t, f, "?bucket=upcoming"))
		require.Equal(t, []string{"2001-04-01", "2001-05-01"}, s.list(t, f, "?bucket=past"))
		require.Equal(t, []string{past.Date}, s.list(t, f, "?bucket=unpaid"))
		require.Equal(t, []string{"2001-05-01"}, s.list(t, f, "?bucket=past&from=2001-04-15"))
	})

	s.Run("another tenant sees nothing", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		other := s.newTenant(t, "Other Spa")
		booked := s.book(t, f, f.bookRequest("2099-05-01")).Appointments[0]

		require.Empty(t, s.list(t, other, ""))

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"/"+booked.ID.String(), nil, other.token)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Appointment not found")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, f.bookRequest("2099-05-02"), other.token)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("requests without a valid token are rejected", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, f.tenantID)
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// Lifecycle
// =============================================================================

func (s *AppointmentSuite) TestLifecycle() {
	s.Run("only cancelled appointments can be deleted", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		a := s.book(t, f, f.bookRequest("2099-06-01")).Appointments[0]
		itemURL := appointmentsURL + "/" + a.ID.String()

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, itemURL, nil, f.token)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Only cancelled")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL+"/status", map[string]string{"status": "cancelled"}, f.token)
		var updated resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &updated)
		require.Equal(t, "cancelled", updated.Status)
		require.True(t, updated.CanDelete)

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, itemURL, nil, f.token)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, itemURL, nil, f.token)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")
	})

	s.Run("completed can move back to scheduled", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		a := s.book(t, f, f.bookRequest("2099-06-01")).Appointments[0]
		statusURL := appointmentsURL + "/" + a.ID.String() + "/status"

		for _, status := range []string{"completed", "scheduled"} {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, map[string]string{"status": status}, f.token)
			var body resdto.AppointmentResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			require.Equal(t, status, body.Status)
		}
	})

	s.Run("payment toggles back and forth", func() {
		t := s.T()
		f := s.newTenant(t, "Pet Spa")
		a := s.book(t, f, f.bookRequest("2099-06-01")).Appointments[0]
		toggleURL := appointmentsURL + "/" + a.ID.String() + "/payment/toggle"

		for _, want := range []string{"paid", "unpaid"} {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, toggleURL, nil, f.token)
			var body resdto.AppointmentResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			require.Equal(t, want, body.PaymentStatus)
		}
	})
}
