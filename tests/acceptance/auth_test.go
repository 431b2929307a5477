package acceptance

import (
	"fmt"
	"net/http"

	"github.com/prperemyshlev/localmaps-api/internal/dto"
)

func (s *Suite) register(username, email, password string) dto.AuthResponse {
	var resp dto.AuthResponse
	status := s.request(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, "", &resp)
	s.Require().Equal(http.StatusOK, status)
	return resp
}

func (s *Suite) TestRegister_Success() {
	resp := s.register("alice", "alice@example.com", "secret1")

	s.True(resp.Success)
	s.Len(resp.Token, 43)
	s.NotEmpty(resp.User.ID)
	s.Equal("alice", resp.User.Username)
	s.Equal("alice@example.com", resp.User.Email)
}

func (s *Suite) TestRegister_Duplicate() {
	s.register("alice", "alice@example.com", "secret1")

	var errResp dto.ErrorResponse
	status := s.request(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret2",
	}, "", &errResp)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("Username or email already exists", errResp.Message)

	status = s.request(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "secret2",
	}, "", nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *Suite) TestRegister_InvalidEmail() {
	status := s.request(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "invalid-email",
		Password: "secret1",
	}, "", nil)

	s.Equal(http.StatusBadRequest, status)
}

func (s *Suite) TestLogin_Success() {
	registered := s.register("alice", "alice@example.com", "secret1")

	var resp dto.AuthResponse
	status := s.request(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: "alice",
		Password: "secret1",
	}, "", &resp)

	s.Equal(http.StatusOK, status)
	s.NotEqual(registered.Token, resp.Token)
	s.Equal(registered.User.ID, resp.User.ID)
}

func (s *Suite) TestLogin_FailuresLookTheSame() {
	s.register("alice", "alice@example.com", "secret1")

	var wrongPassword, unknownUser dto.ErrorResponse
	status1 := s.request(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "alice", Password: "nope"}, "", &wrongPassword)
	status2 := s.request(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "mallory", Password: "secret1"}, "", &unknownUser)

	s.Equal(http.StatusUnauthorized, status1)
	s.Equal(http.StatusUnauthorized, status2)
	s.Equal(wrongPassword, unknownUser)
}

func (s *Suite) TestGetMe() {
	registered := s.register("alice", "alice@example.com", "secret1")

	var resp dto.UserResponse
	status := s.request(http.MethodGet, "/api/auth/me", nil, registered.Token, &resp)

	s.Equal(http.StatusOK, status)
	s.Equal(registered.User, resp.User)

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/auth/me", nil, "", nil))
	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/auth/me", nil, "invalid-token", nil))
}

func (s *Suite) TestLogout_InvalidatesOnlyThatSession() {
	first := s.register("alice", "alice@example.com", "secret1")

	var second dto.AuthResponse
	s.request(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "alice", Password: "secret1"}, "", &second)

	s.Equal(http.StatusOK, s.request(http.MethodPost, "/api/auth/logout", nil, first.Token, nil))
	s.Equal(http.StatusOK, s.request(http.MethodPost, "/api/auth/logout", nil, first.Token, nil))

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/auth/me", nil, first.Token, nil))
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/api/auth/me", nil, second.Token, nil))
}

func (s *Suite) TestSession_Expired() {
	registered := s.register("alice", "alice@example.com", "secret1")

	_, err := s.Postgres.DB.Exec(`UPDATE sessions SET expires_at = NOW() - INTERVAL '1 second' WHERE token = $1`, registered.Token)
	s.Require().NoError(err)

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/auth/me", nil, registered.Token, nil))
}

func (s *Suite) TestRegister_ConcurrentSameUsername() {
	const n = 8

	counts := s.sendConcurrently(n, http.MethodPost, "/api/auth/register", func(i int) any {
		return dto.RegisterRequest{
			Username: "alice",
			Email:    fmt.Sprintf("alice%d@example.com", i),
			Password: "secret1",
		}
	}, "")

	s.Equal(1, counts[http.StatusOK])
	s.Equal(n-1, counts[http.StatusBadRequest])

	var users int
	s.Require().NoError(s.Postgres.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE username = 'alice'`).Scan(&users))
	s.Equal(1, users)
}

func (s *Suite) TestDeleteUser_CascadesToSessionsAndFavorites() {
	registered := s.register("alice", "alice@example.com", "secret1")
	s.Require().Equal(http.StatusOK, s.request(http.MethodPost, "/api/auth/favorites", favoriteBody("X", "Cafe"), registered.Token, nil))
	s.Require().Equal(http.StatusOK, s.request(http.MethodPost, "/api/auth/favorites", favoriteBody("Y", "Bar"), registered.Token, nil))

	_, err := s.Postgres.DB.Exec(`DELETE FROM users WHERE id = $1`, registered.User.ID)
	s.Require().NoError(err)

	var sessions, favorites int
	s.Require().NoError(s.Postgres.DB.QueryRow(`SELECT COUNT(*) FROM sessions WHERE user_id = $1`, registered.User.ID).Scan(&sessions))
	s.Require().NoError(s.Postgres.DB.QueryRow(`SELECT COUNT(*) FROM favorites WHERE user_id = $1`, registered.User.ID).Scan(&favorites))
	s.Zero(sessions)
	s.Zero(favorites)

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/auth/me", nil, registered.Token, nil))
}
