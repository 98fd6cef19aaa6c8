package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/inbound"
	apperrors "github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Recommend(ctx context.Context, text string) (*inbound.Recommendation, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.Recommendation), args.Error(1)
}

func (m *mockService) UpdatePreference(ctx context.Context, mood mood.Mood, food string) error {
	return m.Called(ctx, mood, food).Error(0)
}

func (m *mockService) SetLocation(ctx context.Context, location string) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockService) ToggleWeather(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) Profile(ctx context.Context) (*inbound.ProfileView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.ProfileView), args.Error(1)
}

func (m *mockService) LogRequest(ctx context.Context, payload map[string]any) error {
	return m.Called(ctx, payload).Error(0)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRecommendSuccess(t *testing.T) {
	svc := &mockService{}
	svc.On("LogRequest", mock.Anything, mock.Anything).Return(nil)
	svc.On("Recommend", mock.Anything, "feeling happy").Return(&inbound.Recommendation{
		Mood:     mood.Analysis{Mood: mood.MoodHappy, Intensity: 0.7},
		Foods:    []string{"a", "b", "c"},
		Weather:  &weather.Snapshot{Source: weather.SourceSeasonalFallback},
		Location: "London",
	}, nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"text":"feeling happy"}`))

	h.Recommend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	svc.AssertExpectations(t)
}

func TestRecommendAuditFailureDoesNotBlock(t *testing.T) {
	svc := &mockService{}
	svc.On("LogRequest", mock.Anything, mock.Anything).Return(apperrors.NewPersistenceError("append", nil))
	svc.On("Recommend", mock.Anything, "hungry").Return(&inbound.Recommendation{
		Foods: []string{"a", "b", "c"},
	}, nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"text":"hungry"}`))

	h.Recommend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendRejectsMalformedBody(t *testing.T) {
	svc := &mockService{}
	h := NewAPIHandlers(svc, zap.NewNop())

	for _, body := range []string{`not json`, `{}`, `{"text":""}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))

		h.Recommend(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, string(apperrors.CodeValidationFailed), resp.Error.Code)
	}
	svc.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
}

func TestRecommendTranslatesServiceError(t *testing.T) {
	svc := &mockService{}
	svc.On("LogRequest", mock.Anything, mock.Anything).Return(nil)
	svc.On("Recommend", mock.Anything, mock.Anything).Return(nil, apperrors.NewClassifierUnavailableError(nil))

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"text":"hmm"}`))

	h.Recommend(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.CodeClassifierUnavailable), resp.Error.Code)
}

func TestUpdatePreference(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdatePreference", mock.Anything, mood.MoodHappy, "pizza").Return(nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/preferences", strings.NewReader(`{"mood":"happy","food":"pizza"}`))

	h.UpdatePreference(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateLocationRejectsShortLocation(t *testing.T) {
	svc := &mockService{}
	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/location", strings.NewReader(`{"location":"x"}`))

	h.UpdateLocation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SetLocation", mock.Anything, mock.Anything)
}

func TestToggleWeather(t *testing.T) {
	svc := &mockService{}
	svc.On("ToggleWeather", mock.Anything).Return(false, nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/weather/toggle", nil)

	h.ToggleWeather(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["weather_enabled"])
}

func TestGetProfile(t *testing.T) {
	svc := &mockService{}
	svc.On("Profile", mock.Anything).Return(&inbound.ProfileView{
		Location:       "Tokyo",
		WeatherEnabled: true,
		Preferences:    map[string][]string{"happy": {"sushi"}},
	}, nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)

	h.GetProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tokyo", data["location"])
}

func TestLogRequestEndpoint(t *testing.T) {
	svc := &mockService{}
	svc.On("LogRequest", mock.Anything, map[string]any{"note": "hi"}).Return(nil)

	h := NewAPIHandlers(svc, zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audit", strings.NewReader(`{"note":"hi"}`))

	h.LogRequest(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	h := NewAPIHandlers(&mockService{}, zap.NewNop())
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
