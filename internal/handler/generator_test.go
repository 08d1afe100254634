package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// MockGeneratorService implements handler.GeneratorService for testing
type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.GenerateResponse), args.Error(1)
}

func (m *MockGeneratorService) Strength(req model.GenerateRequest) (model.StrengthResponse, error) {
	args := m.Called(req)
	return args.Get(0).(model.StrengthResponse), args.Error(1)
}

func (m *MockGeneratorService) Stats(ctx context.Context) (model.StatsResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.StatsResponse), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestHandleGenerate_ValidRequest_Returns200(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)

	want := model.GenerateRequest{Length: 12, Symbols: boolPtr(false)}
	svc.On("Generate", mock.Anything, want).Return(model.GenerateResponse{
		Password: "Ab3dEf6hIj9L",
		Length:   12,
		Strength: "strong",
		Color:    "#0f0",
		Score:    4,
	}, nil)

	body := `{"length": 12, "symbols": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ab3dEf6hIj9L", resp.Password)
	assert.Equal(t, "strong", resp.Strength)
	assert.Equal(t, "#0f0", resp.Color)

	svc.AssertExpectations(t)
}

func TestHandleGenerate_EmptyBodyUsesDefaults(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)

	svc.On("Generate", mock.Anything, model.GenerateRequest{}).
		Return(model.GenerateResponse{Password: "x", Length: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", http.NoBody)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleGenerate_ValidationErrors_Return400(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "invalid length", err: crypto.ErrInvalidLength},
		{name: "no classes", err: crypto.ErrNoCharacterTypes},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockGeneratorService)
			h := handler.NewGeneratorHandler(svc)
			svc.On("Generate", mock.Anything, mock.Anything).Return(model.GenerateResponse{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(`{}`))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.err.Error()+`"}`, rec.Body.String())
		})
	}
}

func TestHandleGenerate_UnexpectedError_Returns500(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)
	svc.On("Generate", mock.Anything, mock.Anything).Return(model.GenerateResponse{}, errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHandleGenerate_MalformedJSON_Returns400(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(`{"length":`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHandleGenerate_OversizedBody_Returns413(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)

	body := `{"length": 10, "pad": "` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHandleStrength_Returns200(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)

	want := model.GenerateRequest{Length: 6, Uppercase: boolPtr(true), Lowercase: boolPtr(false)}
	svc.On("Strength", want).Return(model.StrengthResponse{Length: 6, Strength: "medium", Color: "#ff0"}, nil)

	body := `{"length": 6, "uppercase": true, "lowercase": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.HandleStrength(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"length":6,"strength":"medium","color":"#ff0"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandleStrength_InvalidLength_Returns400(t *testing.T) {
	svc := new(MockGeneratorService)
	h := handler.NewGeneratorHandler(svc)
	svc.On("Strength", mock.Anything).Return(model.StrengthResponse{}, crypto.ErrInvalidLength)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", bytes.NewBufferString(`{"length": 99}`))
	rec := httptest.NewRecorder()

	h.HandleStrength(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStats(t *testing.T) {
	testCases := []struct {
		name       string
		resp       model.StatsResponse
		err        error
		wantStatus int
	}{
		{
			name:       "available",
			resp:       model.StatsResponse{Total: 3, ByStrength: map[string]int64{"weak": 1, "medium": 0, "strong": 2}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no database",
			err:        service.ErrStatsUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "query failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockGeneratorService)
			h := handler.NewGeneratorHandler(svc)
			svc.On("Stats", mock.Anything).Return(tc.resp, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			rec := httptest.NewRecorder()

			h.HandleStats(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var resp model.StatsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.resp, resp)
			}
		})
	}
}
