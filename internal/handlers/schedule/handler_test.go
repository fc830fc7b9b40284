package schedule_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"meetslot/config"
	jwtMocks "meetslot/infras/jwt/mocks"
	otelMocks "meetslot/infras/otel/mocks"
	"meetslot/internal/domains/schedule/mocks"
	"meetslot/internal/domains/schedule/model/dto"
	"meetslot/internal/handlers/schedule"
	"meetslot/permissions"
	"meetslot/shared/failure"
	"meetslot/transport/http/middleware"
	"meetslot/transport/http/response"
)

func newRouter(t *testing.T, svc *mocks.MockSchedule) http.Handler {
	t.Helper()

	perms, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/api/admin/booked-slots","method":"DELETE","roles":["admin"]}]}`))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = "ops-key"

	ctrl := gomock.NewController(t)
	auth := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otelMocks.NewOtel(), perms, cfg)

	handler := schedule.New(svc, auth, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Route("/api", handler.Router)

	return r
}

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(s *mocks.MockSchedule)
		code      int
		reason    string
	}{
		{
			name:  "available",
			query: "?date=2025-09-08&time=2:00%20PM",
			setupMock: func(s *mocks.MockSchedule) {
				s.EXPECT().CheckAvailability(gomock.Any(), "2025-09-08", "2:00 PM").
					Return(dto.AvailabilityResponse{Available: true, Time: "14:00"}, nil)
			},
			code: http.StatusOK,
		},
		{
			name:   "missing time",
			query:  "?date=2025-09-08",
			code:   http.StatusBadRequest,
			reason: failure.ReasonValidation,
		},
		{
			name:   "malformed date",
			query:  "?date=08-09-2025&time=10:00",
			code:   http.StatusBadRequest,
			reason: failure.ReasonInvalidDateFormat,
		},
		{
			name:  "bad time from service",
			query: "?date=2025-09-08&time=noon",
			setupMock: func(s *mocks.MockSchedule) {
				s.EXPECT().CheckAvailability(gomock.Any(), "2025-09-08", "noon").
					Return(dto.AvailabilityResponse{}, failure.Rejected(failure.ReasonInvalidTimeFormat, "Invalid time format"))
			},
			code:   http.StatusBadRequest,
			reason: failure.ReasonInvalidTimeFormat,
		},
		{
			name:  "store error is masked",
			query: "?date=2025-09-08&time=10:00",
			setupMock: func(s *mocks.MockSchedule) {
				s.EXPECT().CheckAvailability(gomock.Any(), "2025-09-08", "10:00").
					Return(dto.AvailabilityResponse{}, errors.New("dial tcp: refused"))
			},
			code:   http.StatusInternalServerError,
			reason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockSchedule(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/check-availability"+tt.query, nil)

			newRouter(t, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)

			if tt.reason != "" {
				var body response.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.reason, body.Reason)
				assert.NotContains(t, body.Error, "dial tcp")

				return
			}

			var body dto.AvailabilityResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Available)
			assert.Equal(t, "14:00", body.Time)
		})
	}
}

func TestHandler_AvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchedule(ctrl)

	svc.EXPECT().EnumerateSlots(gomock.Any(), "2025-09-08").Return(dto.SlotsResponse{
		Date:           "2025-09-08",
		TotalSlots:     18,
		AvailableSlots: 18,
		Slots:          []dto.TimeSlotResponse{{Time: "09:00", Available: true}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/available-slots?date=2025-09-08", nil)

	newRouter(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 18, body.TotalSlots)
	assert.Len(t, body.Slots, 1)
}

func TestHandler_AvailableSlots_MissingDate(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/available-slots", nil)

	newRouter(t, mocks.NewMockSchedule(ctrl)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_BookedSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchedule(ctrl)

	res := dto.BookedSlotsResponse{}
	res.FromTimes("2025-09-08", []string{"10:00"})

	svc.EXPECT().BookedSlots(gomock.Any(), "2025-09-08").Return(res, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booked-slots?date=2025-09-08", nil)

	newRouter(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.BookedSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.BookedSlots, 1)
	assert.Equal(t, "10:00 AM", body.BookedSlots[0].DisplayTime)
}

func TestHandler_ReleaseSlot(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		setupMock func(s *mocks.MockSchedule)
		code      int
	}{
		{
			name: "no credentials",
			code: http.StatusUnauthorized,
		},
		{
			name:   "released with api key",
			apiKey: "ops-key",
			setupMock: func(s *mocks.MockSchedule) {
				s.EXPECT().Release(gomock.Any(), "2025-09-08", "10:00").
					Return(dto.ReleaseResponse{Success: true, Date: "2025-09-08", Time: "10:00"}, nil)
			},
			code: http.StatusOK,
		},
		{
			name:   "slot not booked",
			apiKey: "ops-key",
			setupMock: func(s *mocks.MockSchedule) {
				s.EXPECT().Release(gomock.Any(), "2025-09-08", "10:00").
					Return(dto.ReleaseResponse{}, failure.NotFound("slot not found"))
			},
			code: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockSchedule(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/admin/booked-slots?date=2025-09-08&time=10:00", nil)

			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}

			newRouter(t, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
