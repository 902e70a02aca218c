package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// infoEmbed lists the prefix commands grouped by category.
func infoEmbed(r *Registry) *discordgo.MessageEmbed {
	cats := r.Categories()
	names := make([]string, 0, len(cats))
	for c := range cats {
		names = append(names, c)
	}
	sort.Strings(names)

	embed := &discordgo.MessageEmbed{
		Color:       0x0099ff,
		Title:       "Lista de Comandos",
		Description: fmt.Sprintf("Aquí tienes todos los comandos disponibles. Mi prefijo es `%s`.", r.Prefix()),
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	for _, c := range names {
		var lines []string
		for _, cmd := range cats[c] {
			lines = append(lines, fmt.Sprintf("`%s%s`: %s", r.Prefix(), cmd.Name, cmd.Description))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "**" + strings.ToUpper(c[:1]) + c[1:] + "**",
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}

func HandleInfo(s *discordgo.Session, i *discordgo.InteractionCreate, r *Registry) {
	respondData(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{infoEmbed(r)},
	})
}

func RunInfo(s *discordgo.Session, m *discordgo.MessageCreate, r *Registry) {
	replyComplex(s, m, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{infoEmbed(r)},
	})
}
