package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/huntbot/internal/commands"
)

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.log.Infof("%s is connected!", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			b.log.Errorw("failed to register commands", "guild", guild.ID, "error", err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	b.log.Infow("guild available, ensuring commands", "guild", event.ID, "name", event.Name)
	if err := b.registerGuildCommands(event.ID); err != nil {
		b.log.Errorw("failed to register commands", "guild", event.ID, "error", err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	cmds := commands.GetCommands()
	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, cmds)
	if err != nil {
		return err
	}

	b.log.Infow("registered application commands", "guild", guildID)
	return nil
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author == nil || m.Author.Bot {
		return
	}

	cmd, inv, ok := b.registry.Parse(m.Content)
	if !ok {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.log.Errorw("prefix command panicked", "command", cmd.Name, "panic", r)
			s.ChannelMessageSendReply(m.ChannelID, "Hubo un error al intentar ejecutar ese comando.", m.Reference())
		}
	}()
	cmd.Run(s, m, inv)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleMessageComponent(s, i)
	case discordgo.InteractionModalSubmit:
		b.handleModalSubmit(s, i)
	}
}

func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case commands.CommandLoot:
		commands.HandleLoot(s, i)
	case commands.CommandShare:
		commands.HandleShare(s, i)
	case commands.CommandPing:
		commands.HandlePing(s, i)
	case commands.CommandTimer:
		commands.HandleTimer(s, i, b.db)
	case commands.CommandInfo:
		commands.HandleInfo(s, i, b.registry)
	case commands.CommandSplitMessage:
		commands.HandleSplitMessage(s, i)
	}
}

func (b *Bot) handleMessageComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.MessageComponentData().CustomID == commands.OpenSplitModalID {
		commands.HandleOpenSplitModal(s, i)
	}
}

func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ModalSubmitData().CustomID == commands.SplitModalID {
		commands.HandleSplitModalSubmit(s, i)
	}
}
