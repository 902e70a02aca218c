package commands

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// ShareRange is the level range a character of the given level can share
// experience with.
func ShareRange(level int) (lo, hi int) {
	return level * 2 / 3, level * 3 / 2
}

const shareUsage = "Por favor especifica un nivel. Ejemplo: `!share 100`"

func shareMessage(level int) string {
	lo, hi := ShareRange(level)
	return fmt.Sprintf("Un personaje de nivel **%d** puede compartir experiencia con:\n🔽 Mínimo: **%d**\n🔼 Máximo: **%d**", level, lo, hi)
}

func HandleShare(s *discordgo.Session, i *discordgo.InteractionCreate) {
	level := getIntOption(i.ApplicationCommandData().Options, "level")
	if level == nil || *level <= 0 {
		respondEphemeral(s, i, "Por favor ingresa un nivel válido (número mayor a 0).")
		return
	}
	respondText(s, i, shareMessage(int(*level)))
}

func RunShare(s *discordgo.Session, m *discordgo.MessageCreate, inv Invocation) {
	if len(inv.Args) == 0 {
		replyText(s, m, shareUsage)
		return
	}
	level, err := strconv.Atoi(inv.Args[0])
	if err != nil || level <= 0 {
		replyText(s, m, "Por favor ingresa un nivel válido (número mayor a 0).")
		return
	}
	replyText(s, m, shareMessage(level))
}
