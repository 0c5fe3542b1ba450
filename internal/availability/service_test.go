package availability

import (
	"context"
	"errors"
	"testing"

	"fitconnect/internal/schedule"
	"fitconnect/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository. Modify runs fn
// against the record given to Return.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByTrainer(ctx context.Context, trainerID string) ([]Availability, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Availability), args.Error(1)
}

func (m *MockRepository) FindByTrainerAndDay(ctx context.Context, trainerID string, day schedule.Weekday) (*Availability, error) {
	args := m.Called(ctx, trainerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Availability), args.Error(1)
}

func (m *MockRepository) Modify(ctx context.Context, trainerID string, day schedule.Weekday, fn func(a *Availability) error) (*Availability, error) {
	args := m.Called(ctx, trainerID, day)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	record := args.Get(0).(*Availability)
	if err := fn(record); err != nil {
		return nil, err
	}
	return record, nil
}

func slot(start, end string) schedule.TimeSlot {
	return schedule.TimeSlot{StartTime: start, EndTime: end}
}

func TestService_AddSlot(t *testing.T) {
	tests := []struct {
		name        string
		day         schedule.Weekday
		slot        schedule.TimeSlot
		setupMock   func(*MockRepository)
		expectedErr error
	}{
		{
			name: "successful add",
			day:  schedule.Monday,
			slot: slot("10:00", "11:00"),
			setupMock: func(m *MockRepository) {
				m.On("Modify", mock.Anything, "t1", schedule.Monday).Return(&Availability{
					TrainerID: "t1",
					DayOfWeek: schedule.Monday,
					TimeSlots: []schedule.TimeSlot{slot("09:00", "10:00")},
				}, nil)
			},
		},
		{
			name: "overlapping slot",
			day:  schedule.Monday,
			slot: slot("09:30", "10:30"),
			setupMock: func(m *MockRepository) {
				m.On("Modify", mock.Anything, "t1", schedule.Monday).Return(&Availability{
					TrainerID: "t1",
					DayOfWeek: schedule.Monday,
					TimeSlots: []schedule.TimeSlot{slot("09:00", "10:00")},
				}, nil)
			},
			expectedErr: ErrSlotOverlap,
		},
		{
			name:        "end before start",
			day:         schedule.Monday,
			slot:        slot("11:00", "10:00"),
			setupMock:   func(m *MockRepository) {},
			expectedErr: schedule.ErrEndBeforeStart,
		},
		{
			name:        "invalid day",
			day:         schedule.Weekday("FUNDAY"),
			slot:        slot("09:00", "10:00"),
			setupMock:   func(m *MockRepository) {},
			expectedErr: schedule.ErrInvalidWeekday,
		},
		{
			name: "storage failure",
			day:  schedule.Tuesday,
			slot: slot("09:00", "10:00"),
			setupMock: func(m *MockRepository) {
				m.On("Modify", mock.Anything, "t1", schedule.Tuesday).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo)
			record, err := service.AddSlot(context.Background(), "t1", tt.day, tt.slot)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				assert.Len(t, record.TimeSlots, 2)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_RemoveSlot(t *testing.T) {
	t.Run("removes by index", func(t *testing.T) {
		mockRepo := new(MockRepository)
		record := &Availability{TimeSlots: []schedule.TimeSlot{slot("09:00", "10:00"), slot("11:00", "12:00")}}
		mockRepo.On("Modify", mock.Anything, "t1", schedule.Monday).Return(record, nil)

		err := NewService(mockRepo).RemoveSlot(context.Background(), "t1", schedule.Monday, 0)

		require.NoError(t, err)
		assert.Equal(t, []schedule.TimeSlot{slot("11:00", "12:00")}, record.TimeSlots)
	})

	t.Run("index out of range", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Modify", mock.Anything, "t1", schedule.Monday).Return(&Availability{
			TimeSlots: []schedule.TimeSlot{slot("09:00", "10:00")},
		}, nil)

		err := NewService(mockRepo).RemoveSlot(context.Background(), "t1", schedule.Monday, 3)
		assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
	})

	t.Run("no record for the day", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Modify", mock.Anything, "t1", schedule.Sunday).Return(&Availability{}, nil)

		err := NewService(mockRepo).RemoveSlot(context.Background(), "t1", schedule.Sunday, 0)
		assert.ErrorIs(t, err, ErrAvailabilityMissing)
	})
}

func TestService_WeeklySchedule(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListByTrainer", mock.Anything, "t1").Return([]Availability{
		{DayOfWeek: schedule.Wednesday, TimeSlots: []schedule.TimeSlot{slot("18:00", "19:00")}},
		{DayOfWeek: schedule.Monday, TimeSlots: []schedule.TimeSlot{slot("09:00", "10:00")}},
	}, nil)

	week, err := NewService(mockRepo).WeeklySchedule(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, schedule.Monday, week[0].DayOfWeek)
	assert.Len(t, week[0].TimeSlots, 1)
	assert.Empty(t, week[1].TimeSlots)
	assert.Equal(t, "18:00", week[2].TimeSlots[0].StartTime)
	assert.Equal(t, schedule.Sunday, week[6].DayOfWeek)
}

func TestService_SlotsForDayWithoutRecord(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindByTrainerAndDay", mock.Anything, "t1", schedule.Saturday).Return(nil, nil)

	slots, err := NewService(mockRepo).SlotsForDay(context.Background(), "t1", schedule.Saturday)

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

// Backed by the real store: a rejected overlap must not change what is stored.
func TestService_OverlapScenario(t *testing.T) {
	store := storage.NewMemoryStore()
	service := NewService(NewRepository(store))
	ctx := context.Background()

	_, err := service.AddSlot(ctx, "t1", schedule.Monday, slot("09:00", "10:00"))
	require.NoError(t, err)

	before, version, err := store.Get(ctx, storage.KeyAvailability)
	require.NoError(t, err)

	_, err = service.AddSlot(ctx, "t1", schedule.Monday, slot("09:30", "10:30"))
	assert.ErrorIs(t, err, ErrSlotOverlap)

	after, afterVersion, err := store.Get(ctx, storage.KeyAvailability)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, version, afterVersion)

	record, err := service.AddSlot(ctx, "t1", schedule.Monday, slot("10:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, []schedule.TimeSlot{slot("09:00", "10:00"), slot("10:00", "11:00")}, record.TimeSlots)

	slots, err := service.SlotsForDay(ctx, "t1", schedule.Monday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestService_RemoveLastSlotDeletesDay(t *testing.T) {
	service := NewService(NewRepository(storage.NewMemoryStore()))
	ctx := context.Background()

	_, err := service.AddSlot(ctx, "t1", schedule.Thursday, slot("07:00", "08:00"))
	require.NoError(t, err)

	require.NoError(t, service.RemoveSlot(ctx, "t1", schedule.Thursday, 0))

	err = service.RemoveSlot(ctx, "t1", schedule.Thursday, 0)
	assert.ErrorIs(t, err, ErrAvailabilityMissing)
}
