package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/huntbot/internal/lootsplit"
	"go.uber.org/zap"
)

const (
	OpenSplitModalID = "open_split_loot_modal"
	SplitModalID     = "split_loot_modal"
	lootInputID      = "loot_input"

	// Discord rejects embed field values longer than this.
	embedFieldLimit = 1024

	// An embed holds at most 25 fields and 6000 characters; the title,
	// description and footer take the rest.
	maxInstructionFields = 25
	instructionBudget    = 4000
)

var errNoPlayers = errors.New("no party members detected")

const noPlayersMessage = "❌ No se pudieron detectar jugadores en el texto proporcionado. Asegúrate de copiar todo el log de \"Party Hunt\"."

func splitLootComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: OpenSplitModalID,
					Label:    "⚔️ Split Loot",
					Style:    discordgo.SuccessButton,
				},
			},
		},
	}
}

const splitPrompt = "Pulsa el botón para introducir los datos de la sesión de Tibia:"

// HandleLoot answers /loot with the button that opens the report modal.
func HandleLoot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondData(s, i, &discordgo.InteractionResponseData{
		Content:    splitPrompt,
		Components: splitLootComponents(),
	})
}

// RunLoot handles !loot. A report pasted after the command is split right
// away; otherwise the user gets the modal button.
func RunLoot(s *discordgo.Session, m *discordgo.MessageCreate, inv Invocation) {
	if strings.TrimSpace(inv.Raw) == "" {
		replyComplex(s, m, &discordgo.MessageSend{
			Content:    splitPrompt,
			Components: splitLootComponents(),
		})
		return
	}

	data, err := buildSplitResponse(inv.Raw)
	if err != nil {
		replyText(s, m, noPlayersMessage)
		return
	}
	replyComplex(s, m, &discordgo.MessageSend{
		Content:    data.Content,
		Embeds:     data.Embeds,
		Components: data.Components,
	})
}

// HandleOpenSplitModal shows the modal where the report is pasted.
func HandleOpenSplitModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: SplitModalID,
			Title:    "Split Loot Parser",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    lootInputID,
							Label:       "Pega aquí el Session Data",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Session data: From 2025-12-10...\nSession: 02:11h\n...",
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		zap.S().Warnw("failed to open split modal", "error", err)
	}
}

func HandleSplitModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	text := modalValue(i.ModalSubmitData(), lootInputID)
	respondSplit(s, i, text)
}

// HandleSplitMessage splits the report contained in the message the
// "Split Loot" context menu was used on.
func HandleSplitMessage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	text, ok := targetMessageContent(i.ApplicationCommandData())
	if !ok {
		respondEphemeral(s, i, "No se encontró el mensaje.")
		return
	}
	respondSplit(s, i, text)
}

// targetMessageContent returns the content of the message a message command
// was invoked on.
func targetMessageContent(data discordgo.ApplicationCommandInteractionData) (string, bool) {
	if data.Resolved == nil {
		return "", false
	}
	msg, ok := data.Resolved.Messages[data.TargetID]
	if !ok || msg == nil {
		return "", false
	}
	return msg.Content, true
}

func respondSplit(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	data, err := buildSplitResponse(text)
	if err != nil {
		respondEphemeral(s, i, noPlayersMessage)
		return
	}
	respondData(s, i, data)
}

// buildSplitResponse runs the whole pipeline on a pasted report.
func buildSplitResponse(text string) (*discordgo.InteractionResponseData, error) {
	session := lootsplit.Parse(text)
	if len(session.Players) == 0 {
		return nil, errNoPlayers
	}
	res := lootsplit.CalculateSplit(session)

	return &discordgo.InteractionResponseData{
		Content:    "```yaml\n" + lootsplit.Summary(session) + "\n```",
		Embeds:     []*discordgo.MessageEmbed{splitEmbed(res)},
		Components: splitLootComponents(),
	}, nil
}

func splitEmbed(res lootsplit.SplitResult) *discordgo.MessageEmbed {
	session := res.Session

	var b strings.Builder
	fmt.Fprintf(&b, "**Balance:** %s 💰\n", lootsplit.FormatAmount(session.TotalBalance))
	fmt.Fprintf(&b, "**Individual balance:** %s 💰\n", lootsplit.FormatAmount(res.IndividualBalance))
	b.WriteString("\n**Damage**\n")
	writeShares(&b, lootsplit.DamageShares(session.Players))
	b.WriteString("\n\n**Healing**\n")
	writeShares(&b, lootsplit.HealingShares(session.Players))

	return &discordgo.MessageEmbed{
		Color:       0x2ecc71,
		Title:       fmt.Sprintf("Party Hunt Session – %d members", len(session.Players)),
		Description: b.String(),
		Fields:      instructionFields(res),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s hunt on %s", session.Duration, session.StartTime),
		},
	}
}

func writeShares(b *strings.Builder, shares []lootsplit.Share) {
	for idx, sh := range shares {
		if idx > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "• %s (%.2f%%)", sh.Name, sh.Percent)
	}
}

// instructionFields renders the transfers grouped by payer. Text spills into
// "(cont.)" fields so no field passes Discord's limit, and transfers that do
// not fit in the embed at all are summarised in a last field.
func instructionFields(res lootsplit.SplitResult) []*discordgo.MessageEmbedField {
	const name = "Splitting Instructions"

	groups := lootsplit.Instructions(res)
	if len(groups) == 0 {
		return []*discordgo.MessageEmbedField{{
			Name:  name,
			Value: "No transfers needed (Perfect balance or Empty).",
		}}
	}

	var fields []*discordgo.MessageEmbedField
	var b strings.Builder
	used := 0
	flush := func() {
		if b.Len() == 0 {
			return
		}
		fieldName := name
		if len(fields) > 0 {
			fieldName = name + " (cont.)"
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: fieldName, Value: b.String()})
		used += len(fieldName) + b.Len()
		b.Reset()
	}

	written := 0
	full := false
	for _, g := range groups {
		header := fmt.Sprintf("**%s**:\n", g.Payer)
		for idx, t := range g.Transfers {
			command := "```\n" + lootsplit.BankCommand(t) + "\n```"
			line := command
			if idx == 0 || b.Len() == 0 {
				line = header + command
			}
			if b.Len()+len(line) > embedFieldLimit {
				flush()
				line = header + command
			}
			if len(fields) >= maxInstructionFields-1 || used+b.Len()+len(line) > instructionBudget {
				full = true
				break
			}
			b.WriteString(line)
			written++
		}
		if full {
			break
		}
	}
	flush()

	if left := len(res.Transfers) - written; left > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name + " (cont.)",
			Value: fmt.Sprintf("… y %d transferencias más. Usa la API o `huntbot split` para verlas todas.", left),
		})
	}
	return fields
}
