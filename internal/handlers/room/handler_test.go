package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/infras/otel/mocks"
	bookingDto "hotel/internal/domains/booking/model/dto"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*roomMocks.MockRoomService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoomService(ctrl)

	handler := room.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_GetRooms(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "all rooms",
			target: "/api/rooms",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().GetAll(gomock.Any(), "").Return([]dto.RoomResponse{{ID: 1, Name: "Deluxe King Room", Amenities: []string{}}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":[{"id":1,"name":"Deluxe King Room","description":"","price":"","category":"","maxGuests":0,"amenities":[],"imageUrl":"","available":false}]}`,
		},
		{
			name:   "by category",
			target: "/api/rooms?category=family",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().GetAll(gomock.Any(), "family").Return([]dto.RoomResponse{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestHandler_GetRoomByID(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name:   "found",
			target: "/api/rooms/4",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Get(gomock.Any(), int64(4)).Return(dto.RoomResponse{ID: 4, Name: "Presidential Suite"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/rooms/999",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Get(gomock.Any(), int64(999)).Return(dto.RoomResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "non numeric id",
			target:    "/api/rooms/abc",
			setupMock: func(*roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetRoomBookings(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetBookings(gomock.Any(), int64(1)).Return([]bookingDto.BookingResponse{{ID: 1, RoomID: 1, TotalPrice: "897.00"}}, nil)

	recorder := serve(router, http.MethodGet, "/api/rooms/1/bookings", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalPrice":"897.00"`)
}

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"checkIn":"2024-06-01","checkOut":"2024-06-04","guests":5,"rooms":1}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					CheckAvailability(gomock.Any(), dto.AvailabilityRequest{CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 5, Rooms: 1}).
					Return([]dto.RoomResponse{{ID: 4, Name: "Presidential Suite"}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing guests",
			body:      `{"checkIn":"2024-06-01","checkOut":"2024-06-04","rooms":1}`,
			setupMock: func(*roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"checkIn":`,
			setupMock: func(*roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inverted stay rejected by service",
			body: `{"checkIn":"2024-06-04","checkOut":"2024-06-01","guests":2,"rooms":1}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
					Return(nil, failure.BadRequestFromString("checkOut must be after checkIn"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodPost, "/api/availability", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
