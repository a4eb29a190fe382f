package models

import "encoding/json"

// Payload is a JSON object as returned by the Cartola API.
type Payload map[string]any

func (p Payload) Float(key string) float64 {
	return toFloat(p[key])
}

func (p Payload) Int(key string) int {
	return int(toFloat(p[key]))
}

func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

func (p Payload) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Map returns the nested object stored under key, or nil.
func (p Payload) Map(key string) Payload {
	switch v := p[key].(type) {
	case map[string]any:
		return Payload(v)
	case Payload:
		return v
	}
	return nil
}

// List returns the nested array stored under key, or nil.
func (p Payload) List(key string) []any {
	l, _ := p[key].([]any)
	return l
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}

// Round is one entry of the rodadas endpoint.
type Round Payload

func (r Round) ID() int {
	return Payload(r).Int("rodada_id")
}

func (r Round) Start() string {
	return Payload(r).String("inicio")
}

func (r Round) End() string {
	return Payload(r).String("fim")
}

// Player is one entry of the atletas collection of the market.
type Player Payload

func (p Player) ID() int {
	return Payload(p).Int("atleta_id")
}

func (p Player) Nickname() string {
	return Payload(p).String("apelido")
}

func (p Player) Price() float64 {
	return Payload(p).Float("preco_num")
}

func (p Player) Average() float64 {
	return Payload(p).Float("media_num")
}

func (p Player) ClubID() int {
	return Payload(p).Int("clube_id")
}

func (p Player) PositionID() int {
	return Payload(p).Int("posicao_id")
}

func (p Player) StatusID() int {
	return Payload(p).Int("status_id")
}

// PlayersFromList converts a decoded JSON array into players, skipping
// anything that is not an object.
func PlayersFromList(list []any) []Player {
	players := make([]Player, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			players = append(players, Player(m))
		}
	}
	return players
}
