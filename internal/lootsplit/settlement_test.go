package lootsplit

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func party(total int64, balances ...int64) SessionData {
	s := SessionData{TotalBalance: total}
	for i, b := range balances {
		s.Players = append(s.Players, PlayerSession{Name: fmt.Sprintf("p%d", i), Balance: b})
	}
	return s
}

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name       string
		session    SessionData
		individual int64
		transfers  []Transfer
	}{
		{
			name:       "one payer one receiver",
			session:    party(0, 300, 0, -300),
			individual: 0,
			transfers:  []Transfer{{From: "p0", To: "p2", Amount: 300}},
		},
		{
			name:       "already balanced",
			session:    party(200, 100, 100),
			individual: 100,
			transfers:  []Transfer{},
		},
		{
			name:       "single player",
			session:    party(1234, 1234),
			individual: 1234,
			transfers:  []Transfer{},
		},
		{
			name:       "payer split across receivers largest first",
			session:    party(0, 10, -3, -7),
			individual: 0,
			transfers: []Transfer{
				{From: "p0", To: "p2", Amount: 7},
				{From: "p0", To: "p1", Amount: 3},
			},
		},
		{
			name:       "remainder is dust",
			session:    party(10, 10, 0, 0),
			individual: 3,
			transfers: []Transfer{
				{From: "p0", To: "p1", Amount: 3},
				{From: "p0", To: "p2", Amount: 3},
			},
		},
		{
			name:       "negative total truncates toward zero",
			session:    party(-7, -1, -6),
			individual: -3,
			transfers:  []Transfer{{From: "p0", To: "p1", Amount: 2}},
		},
		{
			name:       "equal amounts keep player order",
			session:    party(0, 50, 50, -50, -50),
			individual: 0,
			transfers: []Transfer{
				{From: "p0", To: "p2", Amount: 50},
				{From: "p1", To: "p3", Amount: 50},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSplit(tt.session)
			assert.Equal(t, tt.individual, got.IndividualBalance)
			if diff := cmp.Diff(tt.transfers, got.Transfers); diff != "" {
				t.Errorf("transfers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateSplit_NoPlayers(t *testing.T) {
	session := Parse("")
	got := CalculateSplit(session)
	assert.Zero(t, got.IndividualBalance)
	assert.Empty(t, got.Transfers)
	assert.NotNil(t, got.Transfers)
}

func TestCalculateSplit_KeepsSession(t *testing.T) {
	session := Parse(partyHuntReport)
	got := CalculateSplit(session)
	if diff := cmp.Diff(session, got.Session); diff != "" {
		t.Errorf("session changed (-want +got):\n%s", diff)
	}
}

func TestCalculateSplit_ExactEqualization(t *testing.T) {
	// 3,000 over three players: everybody should end on 1,000.
	session := party(3000, 2500, 1000, -500)
	got := CalculateSplit(session)
	require.Equal(t, int64(1000), got.IndividualBalance)

	net := netPositions(session, got.Transfers)
	for _, p := range session.Players {
		assert.Equal(t, got.IndividualBalance, net[p.Name], p.Name)
	}
}

func TestCalculateSplit_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(8)
		balances := make([]int64, n)
		var total int64
		for i := range balances {
			balances[i] = rng.Int63n(2_000_001) - 1_000_000
			total += balances[i]
		}
		session := party(total, balances...)
		got := CalculateSplit(session)

		if n == 0 {
			require.Zero(t, got.IndividualBalance)
			require.Empty(t, got.Transfers)
			continue
		}
		require.Equal(t, total/int64(n), got.IndividualBalance)
		require.LessOrEqual(t, len(got.Transfers), n-1, "balances %v", balances)

		diffs := make(map[string]int64, n)
		var owedIn, owedOut int64
		for _, p := range session.Players {
			d := p.Balance - got.IndividualBalance
			diffs[p.Name] = d
			if d > 0 {
				owedIn += d
			} else {
				owedOut -= d
			}
		}

		sent := make(map[string]int64)
		received := make(map[string]int64)
		var moved int64
		for _, tr := range got.Transfers {
			require.Positive(t, tr.Amount)
			require.NotEqual(t, tr.From, tr.To)
			sent[tr.From] += tr.Amount
			received[tr.To] += tr.Amount
			moved += tr.Amount
		}
		for name, amt := range sent {
			require.LessOrEqual(t, amt, diffs[name], "%s sent too much", name)
		}
		for name, amt := range received {
			require.LessOrEqual(t, amt, -diffs[name], "%s received too much", name)
		}

		exact := min(owedIn, owedOut)
		require.LessOrEqual(t, moved, exact)
		require.GreaterOrEqual(t, moved, exact-int64(n-1), "balances %v", balances)
	}
}

func netPositions(session SessionData, transfers []Transfer) map[string]int64 {
	net := make(map[string]int64, len(session.Players))
	for _, p := range session.Players {
		net[p.Name] = p.Balance
	}
	for _, t := range transfers {
		net[t.From] -= t.Amount
		net[t.To] += t.Amount
	}
	return net
}
