package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/infras/otel/mocks"
	contactMocks "hotel/internal/domains/contact/mocks"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/handlers/contact"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateContact(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *contactMocks.MockContactService)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","subject":"Parking","message":"Is there valet parking?"}`,
			setupMock: func(svc *contactMocks.MockContactService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ContactResponse{ID: 1, FirstName: "Grace"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing message",
			body:      `{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","subject":"Parking"}`,
			setupMock: func(*contactMocks.MockContactService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := contactMocks.NewMockContactService(ctrl)
			tt.setupMock(svc)

			handler := contact.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/api", handler.Router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := contactMocks.NewMockContactService(ctrl)
	svc.EXPECT().GetAll(gomock.Any()).Return([]dto.ContactResponse{}, nil)

	handler := contact.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}
