//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	authadapter "github.com/Shrinila/productify-backend/internal/adapter/auth"
	dbadapter "github.com/Shrinila/productify-backend/internal/adapter/db"
	httpadapter "github.com/Shrinila/productify-backend/internal/adapter/http"
	"github.com/Shrinila/productify-backend/internal/adapter/http/dto"
	"github.com/Shrinila/productify-backend/internal/adapter/http/handlers"
	appservice "github.com/Shrinila/productify-backend/internal/app/service"
)

type AuthIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestAuthIntegrationSuite(t *testing.T) {
	suite.Run(t, new(AuthIntegrationSuite))
}

func (s *AuthIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	hasher := authadapter.NewBcryptHasher(4)
	tokens := authadapter.NewTokenManager("integration-secret", time.Hour)

	accountRepository := dbadapter.NewAccountRepository(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	accountService := appservice.NewAccountService(accountRepository, hasher, tokens)
	taskService := appservice.NewTaskService(taskRepository)

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB)
	authHandler := handlers.NewAuthHandler(accountService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(router, healthHandler, authHandler, taskHandler, tokens, false)

	s.router = router
}

func (s *AuthIntegrationSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthIntegrationSuite) TestSignupThenLogin() {
	rec := s.postJSON("/signup", `{"name":"Ann","email":"ann@x.com","password":"pw1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var signup dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &signup))
	s.Require().True(signup.Success)

	rec = s.postJSON("/login", `{"email":"ann@x.com","password":"pw1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var login dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().True(login.Success)
	s.Require().NotNil(login.User)
	s.Require().Equal("Ann", login.User.Name)
	s.Require().Equal("ann@x.com", login.User.Email)
	s.Require().NotEmpty(login.User.ID)
	s.Require().NotEmpty(login.Token)
	// The stored credential never leaves the server.
	s.Require().NotContains(rec.Body.String(), "pw1")
	s.Require().NotContains(rec.Body.String(), "$2a$")
}

func (s *AuthIntegrationSuite) TestSignupDuplicateEmailKeepsExistingAccount() {
	rec := s.postJSON("/signup", `{"name":"Ann","email":"ann@x.com","password":"pw1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.postJSON("/signup", `{"name":"Impostor","email":"ann@x.com","password":"other"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var dup dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dup))
	s.Require().False(dup.Success)
	s.Require().Equal("Email already exists", dup.Message)

	// The first credentials still log in; the collision changed nothing.
	rec = s.postJSON("/login", `{"email":"ann@x.com","password":"pw1"}`)
	var login dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().True(login.Success)
	s.Require().Equal("Ann", login.User.Name)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM accounts WHERE email = ?", "ann@x.com"))
	s.Require().Equal(1, count)
}

func (s *AuthIntegrationSuite) TestLoginUnknownEmail() {
	rec := s.postJSON("/login", `{"email":"ghost@x.com","password":"pw1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().False(got.Success)
	s.Require().Equal("User not found", got.Message)
}

func (s *AuthIntegrationSuite) TestLoginWrongPassword() {
	rec := s.postJSON("/signup", `{"name":"Ann","email":"ann@x.com","password":"pw1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.postJSON("/login", `{"email":"ann@x.com","password":"wrong"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().False(got.Success)
	s.Require().Equal("Incorrect password", got.Message)
}
