package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
)

// Summary is the reduced view of a place sent to the model. ID is the
// position in the original result list and is how replies are mapped back.
type Summary struct {
	ID               int      `json:"id"`
	Name             any      `json:"name"`
	Address          any      `json:"address"`
	Types            []string `json:"types"`
	Rating           any      `json:"rating"`
	UserRatingsTotal any      `json:"user_ratings_total"`
}

// Summarize builds one Summary per place, keeping positional ids
func Summarize(places []domain.Place) []Summary {
	summaries := make([]Summary, len(places))
	for i, p := range places {
		summaries[i] = Summary{
			ID:               i,
			Name:             p["name"],
			Address:          p["formatted_address"],
			Types:            p.Types(),
			Rating:           p["rating"],
			UserRatingsTotal: p["user_ratings_total"],
		}
	}
	return summaries
}

const promptTemplate = `You are an expert at identifying small businesses vs chains/franchises.

Given this list of places for the search %q, identify which ones are likely SMALL, LOCAL, INDEPENDENT businesses (not chains or franchises).

Places:
%s

Return ONLY a JSON array of the IDs (just the numbers) of places that are small businesses. Consider:
- Local, independent establishments are small businesses
- Chain restaurants, franchises, big box stores are NOT small businesses
- Family-owned shops, local cafes, independent stores ARE small businesses
- Well-known national/international brands are NOT small businesses

Return format: [0, 2, 5] (just the array of ID numbers that are small businesses)
Return ONLY the array, no other text.`

// BuildPrompt renders the classification prompt for the given summaries
func BuildPrompt(summaries []Summary, query string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summaries); err != nil {
		return "", fmt.Errorf("failed to encode place summaries: %w", err)
	}
	return fmt.Sprintf(promptTemplate, query, bytes.TrimRight(buf.Bytes(), "\n")), nil
}
