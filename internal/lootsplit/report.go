package lootsplit

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders gold the way the game client does, e.g. 5,732,123.
func FormatAmount(v int64) string {
	return printer.Sprintf("%d", v)
}

// Summary rebuilds the party header of the report from parsed data.
func Summary(s SessionData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session data: From %s to %s\n", s.StartTime, s.EndTime)
	fmt.Fprintf(&b, "Session: %s\n", s.Duration)
	fmt.Fprintf(&b, "Loot Type: %s\n", s.LootType)
	fmt.Fprintf(&b, "Loot: %s\n", FormatAmount(s.TotalLoot))
	fmt.Fprintf(&b, "Supplies: %s\n", FormatAmount(s.TotalSupplies))
	fmt.Fprintf(&b, "Balance: %s", FormatAmount(s.TotalBalance))
	return b.String()
}

// PayerInstructions are the transfers one player has to make.
type PayerInstructions struct {
	Payer     string     `json:"payer" yaml:"payer"`
	Transfers []Transfer `json:"transfers" yaml:"transfers"`
}

// Instructions groups transfers by payer, keeping the order in which each
// payer first appears.
func Instructions(res SplitResult) []PayerInstructions {
	var out []PayerInstructions
	index := make(map[string]int)
	for _, t := range res.Transfers {
		idx, ok := index[t.From]
		if !ok {
			idx = len(out)
			index[t.From] = idx
			out = append(out, PayerInstructions{Payer: t.From})
		}
		out[idx].Transfers = append(out[idx].Transfers, t)
	}
	return out
}

// BankCommand is the NPC bank phrase that performs t.
func BankCommand(t Transfer) string {
	return fmt.Sprintf("transfer %d to %s", t.Amount, t.To)
}

// Share is one player's part of the party's damage or healing.
type Share struct {
	Name    string
	Value   int64
	Percent float64
}

// DamageShares returns each player's share of the party damage, highest first.
func DamageShares(players []PlayerSession) []Share {
	return shares(players, func(p PlayerSession) int64 { return p.Damage })
}

// HealingShares returns each player's share of the party healing, highest first.
func HealingShares(players []PlayerSession) []Share {
	return shares(players, func(p PlayerSession) int64 { return p.Healing })
}

func shares(players []PlayerSession, metric func(PlayerSession) int64) []Share {
	var total int64
	out := make([]Share, 0, len(players))
	for _, p := range players {
		v := metric(p)
		total += v
		out = append(out, Share{Name: p.Name, Value: v})
	}
	if total != 0 {
		for i := range out {
			out[i].Percent = float64(out[i].Value) / float64(total) * 100
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
