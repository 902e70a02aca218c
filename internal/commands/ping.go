package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i, fmt.Sprintf("¡Pong! 🏓\nLatencia de la API: `%dms`", s.HeartbeatLatency().Milliseconds()))
}

// RunPing measures the round trip of a reply as well as the gateway latency.
func RunPing(s *discordgo.Session, m *discordgo.MessageCreate, _ Invocation) {
	msg := replyText(s, m, "Calculando ping...")
	if msg == nil {
		return
	}
	latency := msg.Timestamp.Sub(m.Timestamp).Round(time.Millisecond)
	content := fmt.Sprintf("¡Pong! 🏓\nLatencia del Bot: `%dms`\nLatencia de la API: `%dms`",
		latency.Milliseconds(), s.HeartbeatLatency().Milliseconds())
	if _, err := s.ChannelMessageEdit(msg.ChannelID, msg.ID, content); err != nil {
		zap.S().Warnw("failed to edit ping reply", "error", err)
	}
}
