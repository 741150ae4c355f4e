package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	managerA = session.New("5", session.RoleManager, time.Now())
	customer = session.New("6", session.RoleCustomer, time.Now())
)

func TestRoomService_ViewRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHotelRepo, mockOtel)

	rooms := gRepo.Result{
		Columns: []string{"roomnumber", "price", "availability"},
		Rows:    [][]string{{"0", "80", "Available"}, {"1", "95", "Booked"}},
	}

	tests := []struct {
		name      string
		req       dto.ViewRoomsRequest
		setupMock func()
		want      gRepo.Result
		wantErr   bool
	}{
		{
			name: "rooms of the hotel",
			req:  dto.ViewRoomsRequest{HotelID: 2, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			setupMock: func() {
				mockRepo.EXPECT().Availability(gomock.Any(), 2, "2024-05-01").Return(rooms, nil)
			},
			want: rooms,
		},
		{
			name:      "missing date",
			req:       dto.ViewRoomsRequest{HotelID: 2},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  dto.ViewRoomsRequest{HotelID: 2, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			setupMock: func() {
				mockRepo.EXPECT().Availability(gomock.Any(), 2, "2024-05-01").Return(gRepo.Result{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ViewRooms(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestRoomService_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, hotelMocks.NewMockHotel(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), repository.FilterByRoom(2, 101)).Return(true, nil)

	exists, err := svc.Exists(context.Background(), 2, 101)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHotelRepo, mockOtel)

	req := dto.UpdateRoomRequest{HotelID: 2, RoomNumber: 101, Price: 150, ImageURL: "https://img.example.com/101.png"}

	tests := []struct {
		name      string
		sess      *session.Session
		req       dto.UpdateRoomRequest
		setupMock func()
		wantErr   error
		wantMsg   string
	}{
		{
			name: "owner updates room",
			sess: managerA,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), repository.FilterByRoom(2, 101)).Return(true, nil)
				mockRepo.EXPECT().
					UpdateWithLog(gomock.Any(), 2, 101, map[string]any{"price": 150, "imageURL": "https://img.example.com/101.png"}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int, _ map[string]any, entry model.UpdateLog) error {
						assert.Equal(t, "5", entry.ManagerID)
						assert.Equal(t, 2, entry.HotelID)
						assert.Equal(t, 101, entry.RoomNumber)
						assert.False(t, entry.UpdatedOn.IsZero())

						return nil
					})
			},
		},
		{
			// No UpdateWithLog expectation: a call would fail the test.
			name: "hotel of another manager",
			sess: managerA,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(false, nil)
			},
			wantErr: failure.NotHotelManagerError,
		},
		{
			name:      "customer",
			sess:      customer,
			req:       req,
			setupMock: func() {},
			wantErr:   failure.ManagerOnlyError,
		},
		{
			name: "room not found",
			sess: managerA,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantMsg: "Room not found.",
		},
		{
			name:      "negative price",
			sess:      managerA,
			req:       dto.UpdateRoomRequest{HotelID: 2, RoomNumber: 101, Price: -1},
			setupMock: func() {},
			wantMsg:   "Price must be greater than or equal to 0",
		},
		{
			name: "store error",
			sess: managerA,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().UpdateWithLog(gomock.Any(), 2, 101, gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantMsg: "failed to update room: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.sess, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_RecentUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, hotelMocks.NewMockHotel(ctrl), mocks.NewOtel())

	updates := gRepo.Result{
		Columns: []string{"managerid", "hotelid", "roomnumber", "updatedon"},
		Rows:    [][]string{{"5", "2", "101", "2024-05-01 09:30:00"}},
	}

	t.Run("manager", func(t *testing.T) {
		mockRepo.EXPECT().RecentUpdates(gomock.Any(), "5", 5).Return(updates, nil)

		res, err := svc.RecentUpdates(context.Background(), managerA)

		require.NoError(t, err)
		assert.Equal(t, updates, res)
	})

	t.Run("customer", func(t *testing.T) {
		_, err := svc.RecentUpdates(context.Background(), customer)

		assert.ErrorIs(t, err, failure.ManagerOnlyError)
	})
}
