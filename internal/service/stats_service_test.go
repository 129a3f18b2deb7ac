package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billun/internal/model"
)

func TestStatsService_Overview(t *testing.T) {
	users := new(MockUserRepository)
	materiels := new(MockMaterielRepository)
	anomalies := new(MockAnomalieRepository)
	users.On("Count", mock.Anything).Return(int64(4), nil)
	materiels.On("Count", mock.Anything).Return(int64(10), nil)
	anomalies.On("Count", mock.Anything).Return(int64(2), nil)

	overview, err := NewStatsService(users, materiels, anomalies).Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &Overview{MaterielsTotal: 10, AnomaliesTotal: 2, UsersTotal: 4}, overview)
}

func TestStatsService_Overview_Error(t *testing.T) {
	materiels := new(MockMaterielRepository)
	materiels.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := NewStatsService(new(MockUserRepository), materiels, new(MockAnomalieRepository)).Overview(context.Background())

	assert.Error(t, err)
}

func TestStatsService_UserBreakdown(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Count", mock.Anything).Return(int64(5), nil)
	users.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(2), nil)

	breakdown, err := NewStatsService(users, new(MockMaterielRepository), new(MockAnomalieRepository)).UserBreakdown(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &UserBreakdown{Total: 5, Admins: 2, Users: 3}, breakdown)
	users.AssertExpectations(t)
}

func TestContactService_SendAPKLink(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendAPKLink", mock.Anything, "a@billun.com", "https://dl.billun.app/app.apk").Return(nil)

	service := NewContactService(sender)
	service.ReceiveMessage(context.Background(), map[string]interface{}{"message": "bonjour"})

	require.NoError(t, service.SendAPKLink(context.Background(), "a@billun.com", "https://dl.billun.app/app.apk"))
	sender.AssertExpectations(t)
}
