package acceptance

import (
	"io"
	"net/http"
	"strings"

	"github.com/prperemyshlev/localmaps-api/internal/dto"
)

func (s *Suite) TestHealthEndpoint() {
	var resp dto.HealthResponse
	status := s.request(http.MethodGet, "/api/health", nil, "", &resp)

	s.Equal(http.StatusOK, status)
	s.Equal("ok", resp.Status)
	s.Equal("Server is running", resp.Message)
	s.True(resp.GoogleMapsAPIConfigured)
	s.True(resp.GeminiAPIConfigured)
	s.Equal("up", resp.Database)
	s.Equal("up", resp.Cache)
}

func (s *Suite) TestMetricsEndpoint() {
	s.request(http.MethodPost, "/api/search", searchBody("coffee"), "", nil)

	resp, err := http.Get(s.BaseURL + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	buf := new(strings.Builder)
	_, err = io.Copy(buf, resp.Body)
	s.Require().NoError(err)
	s.Contains(buf.String(), "classifier_outcomes_total")
}
