package delivery_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	authdelivery "clipstream-backend/internal/auth/delivery"
	"clipstream-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRegisterRouter(stub *authUsecaseStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := authdelivery.NewAuthHandler(stub, 3600)
	r.POST("/register", handler.Register)
	return r
}

func multipartRegisterBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("fullname", "Ada Lovelace"))
	require.NoError(t, w.WriteField("username", "ada"))
	require.NoError(t, w.WriteField("email", "ada@x.com"))
	require.NoError(t, w.WriteField("password", "p@ss1234"))

	part, err := w.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestRegisterRemovesStagedFilesOnFailure(t *testing.T) {
	stub := &authUsecaseStub{registerErr: apperrors.ErrDuplicateIdentity}
	r := newRegisterRouter(stub)

	body, contentType := multipartRegisterBody(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.NotEmpty(t, stub.registeredAvatar)

	// The staged avatar must not outlive the failed registration.
	_, err := os.Stat(stub.registeredAvatar)
	require.True(t, os.IsNotExist(err))
}

func TestRegisterStagesAvatarForUpload(t *testing.T) {
	stub := &authUsecaseStub{}
	r := newRegisterRouter(stub)

	body, contentType := multipartRegisterBody(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, stub.registeredAvatar)
	require.Empty(t, stub.registeredCover)

	// The stubbed usecase never uploads, so clear the staged file itself.
	os.Remove(stub.registeredAvatar)
}
