package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/internal/mock"
	"github.com/amorags/notepad/internal/service"
	"github.com/amorags/notepad/internal/utils"
	"github.com/amorags/notepad/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockNoteService) {
	t.Helper()
	mockAuth := mock.NewMockAuthService(ctrl)
	mockNotes := mock.NewMockNoteService(ctrl)

	h := NewHandler(&service.Services{
		AuthService: mockAuth,
		NoteService: mockNotes,
	}, logger.NewLogger("test"))

	return h, mockAuth, mockNotes
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no token", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwdw=="},
		{"empty token", "Bearer "},
		{"too many parts", "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			req.Header.Set("Authorization", tt.header)

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Authenticate(gomock.Any(), "expired-token").
		Return(models.User{}, service.ErrTokenIsExpiredOrInvalid)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer expired-token")

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	authedUser := models.User{UserID: 1, Email: "john@example.com"}
	mockAuth.EXPECT().
		Authenticate(gomock.Any(), "valid-token").
		Return(authedUser, nil)

	var seenUser models.User
	var seenOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, seenOK = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seenOK)
	assert.Equal(t, authedUser, seenUser)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = getTokenFromAuthHeader("abc123")
	assert.True(t, errors.Is(err, ErrInvalidAuthorizationHeader))

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.True(t, errors.Is(err, ErrEmptyToken))
}
