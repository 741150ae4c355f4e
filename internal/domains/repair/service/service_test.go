package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	repairMocks "hotel/internal/domains/repair/mocks"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	manager  = session.New("5", session.RoleManager, time.Now())
	customer = session.New("6", session.RoleCustomer, time.Now())
)

func TestRepairService_Place(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repairMocks.NewMockRepair(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, mockOtel)

	today := timezone.Today()
	req := dto.RepairRequest{HotelID: 2, RoomNumber: 14, CompanyID: 9, Date: today}

	valid := func() {
		mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
		mockRoomRepo.EXPECT().Exist(gomock.Any(), roomRepo.FilterByRoom(2, 14)).Return(true, nil)
		mockRepo.EXPECT().CompanyExists(gomock.Any(), 9).Return(true, nil)
	}

	tests := []struct {
		name      string
		sess      *session.Session
		req       dto.RepairRequest
		setupMock func()
		wantID    int
		wantErr   error
		wantMsg   string
	}{
		{
			name: "today",
			sess: manager,
			req:  req,
			setupMock: func() {
				valid()
				mockRepo.EXPECT().
					Place(gomock.Any(), model.Repair{CompanyID: 9, HotelID: 2, RoomNumber: 14, RepairDate: today.Format("2006-01-02")}, "5").
					Return(31, nil)
			},
			wantID: 31,
		},
		{
			name: "next week",
			sess: manager,
			req:  dto.RepairRequest{HotelID: 2, RoomNumber: 14, CompanyID: 9, Date: today.AddDate(0, 0, 7)},
			setupMock: func() {
				valid()
				mockRepo.EXPECT().Place(gomock.Any(), gomock.Any(), "5").Return(32, nil)
			},
			wantID: 32,
		},
		{
			name: "yesterday",
			sess: manager,
			req:  dto.RepairRequest{HotelID: 2, RoomNumber: 14, CompanyID: 9, Date: today.AddDate(0, 0, -1)},
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
			},
			wantMsg: "Date must not be in the past",
		},
		{
			name: "unknown company",
			sess: manager,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().CompanyExists(gomock.Any(), 9).Return(false, nil)
			},
			wantMsg: "Company not found.",
		},
		{
			name: "unknown room",
			sess: manager,
			req:  req,
			setupMock: func() {
				mockHotelRepo.EXPECT().IsManagedBy(gomock.Any(), 2, "5").Return(true, nil)
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantMsg: "Room not found.",
		},
		{
			name: "hotel of another manager",
			sess: manager,
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
			name: "store error",
			sess: manager,
			req:  req,
			setupMock: func() {
				valid()
				mockRepo.EXPECT().Place(gomock.Any(), gomock.Any(), "5").Return(0, errors.New("database error"))
			},
			wantMsg: "failed to place repair request: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Place(context.Background(), tt.sess, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, res.RepairID)
			}
		})
	}
}

func TestRepairService_CompanyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repairMocks.NewMockRepair(ctrl)
	svc := service.New(mockRepo, roomMocks.NewMockRoom(ctrl), hotelMocks.NewMockHotel(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().CompanyExists(gomock.Any(), 9).Return(true, nil)

	exists, err := svc.CompanyExists(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, exists)

	mockRepo.EXPECT().CompanyExists(gomock.Any(), 8).Return(false, errors.New("database error"))

	_, err = svc.CompanyExists(context.Background(), 8)

	assert.EqualError(t, err, "failed to check if company exists: database error")
}

func TestRepairService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repairMocks.NewMockRepair(ctrl)
	svc := service.New(mockRepo, roomMocks.NewMockRoom(ctrl), hotelMocks.NewMockHotel(ctrl), mocks.NewOtel())

	history := gRepo.Result{
		Columns: []string{"companyid", "hotelid", "roomnumber", "repairdate"},
		Rows:    [][]string{{"9", "2", "14", "2024-05-01"}},
	}

	t.Run("manager", func(t *testing.T) {
		mockRepo.EXPECT().History(gomock.Any(), "5").Return(history, nil)

		res, err := svc.History(context.Background(), manager)

		require.NoError(t, err)
		assert.Equal(t, history, res)
	})

	t.Run("customer", func(t *testing.T) {
		_, err := svc.History(context.Background(), customer)

		assert.ErrorIs(t, err, failure.ManagerOnlyError)
	})
}
