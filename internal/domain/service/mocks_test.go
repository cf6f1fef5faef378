package service

import (
	"context"
	"hue-controller/internal/domain/model"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockLightPort struct {
	mock.Mock
}

func (m *MockLightPort) GetLights(ctx context.Context) ([]*model.Light, error) {
	args := m.Called(ctx)
	lights, _ := args.Get(0).([]*model.Light)
	return lights, args.Error(1)
}

func (m *MockLightPort) SetLightState(ctx context.Context, light *model.Light, update model.StateUpdate) error {
	args := m.Called(ctx, light, update)
	return args.Error(0)
}

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Get(ctx context.Context) (*model.Credentials, error) {
	args := m.Called(ctx)
	creds, _ := args.Get(0).(*model.Credentials)
	return creds, args.Error(1)
}

func (m *MockCredentialRepository) Save(ctx context.Context, credentials *model.Credentials) error {
	args := m.Called(ctx, credentials)
	return args.Error(0)
}

type MockBridgeLocator struct {
	mock.Mock
}

func (m *MockBridgeLocator) Locate(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	hosts, _ := args.Get(0).([]string)
	return hosts, args.Error(1)
}

type MockBridgePairer struct {
	mock.Mock
}

func (m *MockBridgePairer) Pair(ctx context.Context, host string) (string, error) {
	args := m.Called(ctx, host)
	return args.String(0), args.Error(1)
}

func testLights(bri int) []*model.Light {
	return []*model.Light{
		{ID: "1", Name: "Desk", State: &model.LightState{On: false, Brightness: 10}},
		{ID: "2", Name: "Computer", State: &model.LightState{On: false, Brightness: bri}},
		{ID: "3", Name: "Hallway", State: &model.LightState{On: true, Brightness: 254}},
	}
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newTestController(t *testing.T, lights []*model.Light) (*Controller, *MockLightPort, *observer.ObservedLogs) {
	t.Helper()
	logger, logs := observedLogger()
	port := new(MockLightPort)
	port.On("GetLights", mock.Anything).Return(lights, nil)
	port.On("SetLightState", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	c, err := NewController(context.Background(), port, model.DefaultReferenceLight, logger)
	require.NoError(t, err)
	return c, port, logs
}
