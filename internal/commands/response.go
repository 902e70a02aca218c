package commands

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respondData(s, i, &discordgo.InteractionResponseData{Content: content})
}

// respondEphemeral answers only to the user who triggered the interaction.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respondData(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func respondData(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		zap.S().Warnw("interaction response failed", "interaction", i.ID, "error", err)
	}
}

func replyText(s *discordgo.Session, m *discordgo.MessageCreate, content string) *discordgo.Message {
	msg, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference())
	if err != nil {
		zap.S().Warnw("reply failed", "channel", m.ChannelID, "error", err)
		return nil
	}
	return msg
}

func replyComplex(s *discordgo.Session, m *discordgo.MessageCreate, send *discordgo.MessageSend) {
	send.Reference = m.Reference()
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, send); err != nil {
		zap.S().Warnw("reply failed", "channel", m.ChannelID, "error", err)
	}
}

// modalValue returns the value of the text input customID in a submitted modal.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, component := range data.Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range actionRow.Components {
			if input, ok := c.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// userID returns the ID of whoever triggered the interaction, in a guild or a DM.
func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
