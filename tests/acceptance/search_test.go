package acceptance

import (
	"net/http"

	"github.com/prperemyshlev/localmaps-api/internal/dto"
)

func searchBody(query string) map[string]any {
	return map[string]any{
		"query":    query,
		"location": map[string]any{"lat": 40.7128, "lng": -74.006},
	}
}

func (s *Suite) TestSearch_FiltersWithClassifier() {
	var resp dto.SearchResponse
	status := s.request(http.MethodPost, "/api/search", searchBody("coffee"), "", &resp)

	s.Equal(http.StatusOK, status)
	s.Equal(2, resp.Total)
	s.Equal("p0", resp.Places[0].ID())
	s.Equal("p2", resp.Places[1].ID())
}

func (s *Suite) TestSearch_ClassifierSelectsNothing() {
	s.Gemini.reply.Store("None of these qualify.")

	var resp dto.SearchResponse
	s.Equal(http.StatusOK, s.request(http.MethodPost, "/api/search", searchBody("coffee"), "", &resp))
	s.Equal(3, resp.Total)
}

func (s *Suite) TestSearch_ZeroResults() {
	var resp dto.SearchResponse
	s.Equal(http.StatusOK, s.request(http.MethodPost, "/api/search", searchBody("nothing here"), "", &resp))
	s.True(resp.Success)
	s.Equal(0, resp.Total)
	s.NotNil(resp.Places)
}

func (s *Suite) TestSearch_BlankQuery() {
	var errResp dto.ErrorResponse
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, "/api/search", searchBody("   "), "", &errResp))
	s.Equal("Query cannot be empty", errResp.Message)
}

func (s *Suite) TestSearch_ProviderStatusError() {
	var errResp dto.ErrorResponse
	s.Equal(http.StatusInternalServerError, s.request(http.MethodPost, "/api/search", searchBody("denied"), "", &errResp))
	s.Contains(errResp.Message, "Failed to search for places: ")
	s.Contains(errResp.Message, "REQUEST_DENIED")
}

func (s *Suite) TestPlaceDetails_Cached() {
	var first, second map[string]any
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/api/place/p0", nil, "", &first))
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/api/place/p0", nil, "", &second))

	s.Equal(first, second)
	s.Equal("OK", first["status"])
	s.EqualValues(1, s.Places.detailsCalls.Load())
}
