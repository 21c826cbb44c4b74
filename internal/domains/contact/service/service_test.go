package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	contactMocks "hotel/internal/domains/contact/mocks"
	"hotel/internal/domains/contact/model"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/domains/contact/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	svc := service.New(mockRepo, mockPublisher, mocks.NewOtel())

	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateContactRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Subject:   "Late checkout",
		Message:   "Is a 2pm checkout possible?",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), req.ToModel()).
					Return(model.Contact{ID: 1, FirstName: "Grace", CreatedAt: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)}, nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Contact{}, errors.New("store unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			contact, err := svc.Create(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), contact.ID)
			assert.Equal(t, "2024-05-20T00:00:00Z", contact.CreatedAt)
			assert.Nil(t, contact.Phone)
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	svc := service.New(mockRepo, kafkaMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Contact{{ID: 1}, {ID: 2, Phone: "555"}}, nil)

	contacts, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "555", *contacts[1].Phone)
}
