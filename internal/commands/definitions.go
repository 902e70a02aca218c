package commands

import "github.com/bwmarrin/discordgo"

// Application command names.
const (
	CommandLoot         = "loot"
	CommandShare        = "share"
	CommandPing         = "ping"
	CommandTimer        = "timer"
	CommandInfo         = "info"
	CommandSplitMessage = "Split Loot"
)

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandLoot,
			Description:  "Abre el asistente para repartir el loot de una party",
			DMPermission: boolPtr(true),
		},
		{
			Name:         CommandShare,
			Description:  "Muestra el rango de niveles con los que puedes compartir experiencia",
			DMPermission: boolPtr(true),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "level",
					Description: "Nivel del personaje",
					Required:    true,
					MinValue:    floatPtr(1),
				},
			},
		},
		{
			Name:         CommandPing,
			Description:  "Muestra la latencia del bot",
			DMPermission: boolPtr(true),
		},
		{
			Name:         CommandTimer,
			Description:  "Establece un temporizador en minutos",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "minutes",
					Description: "Minutos hasta el aviso",
					Required:    true,
					MinValue:    floatPtr(1),
					MaxValue:    maxTimerMinutes,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Qué quieres que te recuerde",
					Required:    false,
				},
			},
		},
		{
			Name:         CommandInfo,
			Description:  "Muestra la lista de comandos disponibles",
			DMPermission: boolPtr(true),
		},
		{
			Name: CommandSplitMessage,
			Type: discordgo.MessageApplicationCommand,
		},
	}
}

// DefaultRegistry builds the prefix commands available in chat.
func DefaultRegistry(prefix string, timers TimerStore) *Registry {
	r := NewRegistry(prefix)
	r.Register(&PrefixCommand{
		Name:        "loot",
		Description: "Abre el asistente para repartir el loot de una party.",
		Category:    "utility",
		Aliases:     []string{"split", "splitloot"},
		Run:         RunLoot,
	})
	r.Register(&PrefixCommand{
		Name:        "share",
		Description: "Muestra el rango de niveles con los que puedes compartir experiencia.",
		Category:    "utility",
		Aliases:     []string{"shared", "party"},
		Run:         RunShare,
	})
	r.Register(&PrefixCommand{
		Name:        "ping",
		Description: "Muestra la latencia del bot y la API.",
		Category:    "utility",
		Run:         RunPing,
	})
	r.Register(&PrefixCommand{
		Name:        "timer",
		Description: "Establece un temporizador en minutos. Uso: !timer [minutos] [descripción]",
		Category:    "utility",
		Run: func(s *discordgo.Session, m *discordgo.MessageCreate, inv Invocation) {
			RunTimer(s, m, inv, timers)
		},
	})
	r.Register(&PrefixCommand{
		Name:        "info",
		Description: "Muestra la lista de comandos disponibles.",
		Category:    "utility",
		Aliases:     []string{"ayuda"},
		Run: func(s *discordgo.Session, m *discordgo.MessageCreate, _ Invocation) {
			RunInfo(s, m, r)
		},
	})
	return r
}
