package cartola

import (
	"fmt"
	"strings"
)

const DefaultBaseURL = "https://api.cartolafc.globo.com/"

type Resource string

const (
	ResourceMarketStatus     Resource = "market-status"
	ResourceMarketHighlights Resource = "market-highlights"
	ResourceRounds           Resource = "rounds"
	ResourceMatches          Resource = "matches"
	ResourcePlayers          Resource = "players"
	ResourceClubs            Resource = "clubs"
	ResourcePlayerStatus     Resource = "player-status"
	ResourceRoundPartial     Resource = "round-partial"
)

var resourcePaths = map[Resource]string{
	ResourceMarketStatus:     "mercado/status",
	ResourceMarketHighlights: "mercado/destaques",
	ResourceRounds:           "rodadas",
	ResourceMatches:          "partidas",
	ResourcePlayers:          "atletas/mercado",
	ResourceClubs:            "clubes/mercado",
	ResourcePlayerStatus:     "atletas/status",
	ResourceRoundPartial:     "atletas/pontuados",
}

// Endpoints maps each resource to its fully qualified URL. It is built once
// by NewClient and never changes afterwards.
type Endpoints struct {
	urls map[Resource]string
}

func newEndpoints(baseURL string) Endpoints {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base := strings.TrimSuffix(baseURL, "/") + "/"

	urls := make(map[Resource]string, len(resourcePaths))
	for r, path := range resourcePaths {
		urls[r] = base + path
	}
	return Endpoints{urls: urls}
}

// URL returns the endpoint for r, or "" for an unknown resource.
func (e Endpoints) URL(r Resource) string {
	return e.urls[r]
}

// MatchesForRound returns the matches endpoint of a specific round.
func (e Endpoints) MatchesForRound(round int) string {
	return fmt.Sprintf("%s/%d", e.urls[ResourceMatches], round)
}

// All returns a copy of the registry.
func (e Endpoints) All() map[Resource]string {
	out := make(map[Resource]string, len(e.urls))
	for r, u := range e.urls {
		out[r] = u
	}
	return out
}
