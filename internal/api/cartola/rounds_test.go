package cartola

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/omarshaarawi/cartolabot/internal/testutils"
)

func TestGetRounds(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	tests := map[string]struct {
		round    int
		wantIDs  []int
		wantWarn bool
	}{
		"no round":          {round: 0, wantIDs: []int{1, 2, 3}},
		"first round":       {round: 1, wantIDs: []int{1}},
		"second round":      {round: 2, wantIDs: []int{2}},
		"last round":        {round: 3, wantIDs: []int{3}},
		"past the last":     {round: 5, wantIDs: []int{1, 2, 3}, wantWarn: true},
		"one past the last": {round: 4, wantIDs: []int{1, 2, 3}, wantWarn: true},
		"negative round":    {round: -1, wantIDs: []int{1, 2, 3}, wantWarn: true},
		"very negative":     {round: -40, wantIDs: []int{1, 2, 3}, wantWarn: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			c := newTestClient(fake.URL(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

			rounds, err := c.GetRounds(context.Background(), tc.round)
			if err != nil {
				t.Fatalf("error should have been nil, was: %v", err)
			}

			ids := make([]int, len(rounds))
			for i, r := range rounds {
				ids[i] = r.ID()
			}
			if !reflect.DeepEqual(ids, tc.wantIDs) {
				t.Errorf("expected rounds %v, got %v", tc.wantIDs, ids)
			}

			warned := strings.Contains(buf.String(), "level=WARN")
			if warned != tc.wantWarn {
				t.Errorf("expected warning=%v, log was: %q", tc.wantWarn, buf.String())
			}
		})
	}
}

// Zero is the "no round" value, so it must behave exactly like asking for
// every round.
func TestGetRounds_zeroIsAllRounds(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	var buf bytes.Buffer
	c := newTestClient(fake.URL(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	zero, err := c.GetRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(zero) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(zero))
	}
	if buf.Len() != 0 {
		t.Errorf("round 0 should not log, got: %q", buf.String())
	}
}

func TestGetRounds_selectsPosition(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	c := newTestClient(fake.URL())

	all, err := c.GetRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	for r := 1; r <= len(all); r++ {
		got, err := c.GetRounds(context.Background(), r)
		if err != nil {
			t.Fatalf("round %d: error should have been nil, was: %v", r, err)
		}
		if len(got) != 1 {
			t.Fatalf("round %d: expected a single round, got %d", r, len(got))
		}
		if !reflect.DeepEqual(got[0], all[r-1]) {
			t.Errorf("round %d: expected %v, got %v", r, all[r-1], got[0])
		}
	}

	if got := all[1]; got.Start() != "2024-04-16 19:00:00" || got.End() != "2024-04-18 21:30:00" {
		t.Errorf("unexpected start/end for round 2: %s %s", got.Start(), got.End())
	}
}

func TestGetRounds_outOfRangeMatchesAll(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	c := newTestClient(fake.URL())

	all, err := c.GetRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	for _, r := range []int{4, 5, 100, -1, -3} {
		got, err := c.GetRounds(context.Background(), r)
		if err != nil {
			t.Fatalf("round %d: error should have been nil, was: %v", r, err)
		}
		if !reflect.DeepEqual(got, all) {
			t.Errorf("round %d: expected the full list, got %v", r, got)
		}
	}
}

func TestGetRounds_upstreamError(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()
	fake.SetStatus("/rodadas", http.StatusServiceUnavailable)

	c := newTestClient(fake.URL())

	rounds, err := c.GetRounds(context.Background(), 2)
	if rounds != nil {
		t.Errorf("rounds should have been nil")
	}
	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected a 503 UpstreamError, got: %v", err)
	}
}

func TestGetRoundMatches(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	tests := map[string]struct {
		round     int
		wantPath  string
		wantRound int
	}{
		"next round":   {round: 0, wantPath: "/partidas", wantRound: 3},
		"first round":  {round: 1, wantPath: "/partidas/1", wantRound: 1},
		"second round": {round: 2, wantPath: "/partidas/2", wantRound: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(fake.URL())
			before := fake.Hits(tc.wantPath)

			matches, err := c.GetRoundMatches(context.Background(), tc.round)
			if err != nil {
				t.Fatalf("error should have been nil, was: %v", err)
			}
			if matches.Int("rodada") != tc.wantRound {
				t.Errorf("expected round %d, got %d", tc.wantRound, matches.Int("rodada"))
			}
			if len(matches.List("partidas")) != 2 {
				t.Errorf("expected 2 matches, got %d", len(matches.List("partidas")))
			}
			if fake.Hits(tc.wantPath) != before+1 {
				t.Errorf("expected a request to %s", tc.wantPath)
			}
		})
	}
}

func TestGetRoundMatches_unknownRound(t *testing.T) {
	fake := testutils.NewFakeCartolaServer()
	defer fake.Close()

	c := newTestClient(fake.URL())

	for _, r := range []int{39, -2} {
		matches, err := c.GetRoundMatches(context.Background(), r)
		if matches != nil {
			t.Errorf("round %d: matches should have been nil", r)
		}
		var upstream *UpstreamError
		if !errors.As(err, &upstream) || upstream.StatusCode != http.StatusNotFound {
			t.Errorf("round %d: expected a 404 UpstreamError, got: %v", r, err)
		}
	}
}
