// Package lootsplit reads the "Party Hunt" analyser report that the Tibia
// client copies to the clipboard and works out how the party should move
// gold around so every member ends the hunt with the same profit.
package lootsplit

import (
	"strconv"
	"strings"
)

const leaderMarker = "(Leader)"

// Parse reads a Party Hunt report. It never fails: lines it does not
// understand are skipped and numbers it cannot read count as zero, so
// garbage in yields a SessionData without players.
//
// Loot, Supplies and Balance lines seen before the first player name are
// the party totals; after that they belong to the player opened last.
func Parse(text string) SessionData {
	data := SessionData{Players: []PlayerSession{}}

	var current *PlayerSession
	for _, line := range splitLines(text) {
		switch {
		case strings.HasPrefix(line, "Session data:"):
			parts := strings.Split(strings.Replace(line, "Session data: From ", "", 1), " to ")
			if len(parts) == 2 {
				data.StartTime = strings.TrimSpace(parts[0])
				data.EndTime = strings.TrimSpace(parts[1])
			}
		case strings.HasPrefix(line, "Session:"):
			data.Duration = fieldValue(line, "Session:")
		case strings.HasPrefix(line, "Loot Type:"):
			data.LootType = fieldValue(line, "Loot Type:")
		case strings.HasPrefix(line, "Loot:"):
			v := parseAmount(fieldValue(line, "Loot:"))
			if current == nil {
				data.TotalLoot = v
			} else {
				current.Loot = v
			}
		case strings.HasPrefix(line, "Supplies:"):
			v := parseAmount(fieldValue(line, "Supplies:"))
			if current == nil {
				data.TotalSupplies = v
			} else {
				current.Supplies = v
			}
		case strings.HasPrefix(line, "Balance:"):
			v := parseAmount(fieldValue(line, "Balance:"))
			if current == nil {
				data.TotalBalance = v
			} else {
				current.Balance = v
			}
		case strings.HasPrefix(line, "Damage:"):
			if current != nil {
				current.Damage = parseAmount(fieldValue(line, "Damage:"))
			}
		case strings.HasPrefix(line, "Healing:"):
			if current != nil {
				current.Healing = parseAmount(fieldValue(line, "Healing:"))
			}
		case !strings.Contains(line, ":"):
			if current != nil {
				data.Players = append(data.Players, *current)
			}
			current = newPlayer(line)
		}
	}
	if current != nil {
		data.Players = append(data.Players, *current)
	}

	return data
}

func newPlayer(line string) *PlayerSession {
	return &PlayerSession{
		Name:     strings.TrimSpace(strings.Replace(line, leaderMarker, "", 1)),
		IsLeader: strings.Contains(line, leaderMarker),
	}
}

// splitLines returns the trimmed, non-empty lines of text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func fieldValue(line, key string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, key))
}

// parseAmount reads a gold amount such as "5,732,123" or "-12,000". Only the
// leading sign and digits count, so trailing text is ignored; anything else
// is 0.
func parseAmount(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
