package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/huntbot/internal/db"
	"go.uber.org/zap"
)

// maxTimerMinutes caps timers at one week.
const maxTimerMinutes = 7 * 24 * 60

const defaultTimerDescription = "Sin descripción"

// TimerStore persists timers until the worker delivers them.
type TimerStore interface {
	AddTimer(ctx context.Context, userID, channelID, guildID, description string, dueAt time.Time) (*db.Timer, error)
}

var errTimerMinutes = errors.New("invalid timer minutes")

// parseTimerArgs reads "<minutes> [description...]".
func parseTimerArgs(args []string) (int, string, error) {
	if len(args) == 0 {
		return 0, "", errTimerMinutes
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, "", errTimerMinutes
	}
	if err := checkTimerMinutes(int64(minutes)); err != nil {
		return 0, "", err
	}
	return minutes, timerDescription(strings.Join(args[1:], " ")), nil
}

func checkTimerMinutes(minutes int64) error {
	if minutes <= 0 || minutes > maxTimerMinutes {
		return errTimerMinutes
	}
	return nil
}

func timerDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return defaultTimerDescription
	}
	return desc
}

func timerConfirmation(minutes int) string {
	return fmt.Sprintf("✅ Temporizador de **%d minuto(s)** establecido. Te avisaré por DM cuando termine.", minutes)
}

const timerUsage = "Por favor, proporciona un número válido de minutos (máximo una semana). Ejemplo: `!timer 10 Descansar`"

func HandleTimer(s *discordgo.Session, i *discordgo.InteractionCreate, store TimerStore) {
	opts := i.ApplicationCommandData().Options
	minutes := getIntOption(opts, "minutes")
	if minutes == nil || checkTimerMinutes(*minutes) != nil {
		respondEphemeral(s, i, timerUsage)
		return
	}
	desc := defaultTimerDescription
	if d := getStringOption(opts, "description"); d != nil {
		desc = timerDescription(*d)
	}

	due := time.Now().Add(time.Duration(*minutes) * time.Minute)
	if _, err := store.AddTimer(context.Background(), userID(i), i.ChannelID, i.GuildID, desc, due); err != nil {
		zap.S().Errorw("failed to save timer", "user", userID(i), "error", err)
		respondEphemeral(s, i, "No se pudo guardar el temporizador.")
		return
	}
	respondText(s, i, timerConfirmation(int(*minutes)))
}

func RunTimer(s *discordgo.Session, m *discordgo.MessageCreate, inv Invocation, store TimerStore) {
	minutes, desc, err := parseTimerArgs(inv.Args)
	if err != nil {
		reply := replyText(s, m, timerUsage)
		if reply != nil {
			time.AfterFunc(5*time.Second, func() {
				_ = s.ChannelMessageDelete(reply.ChannelID, reply.ID)
			})
		}
		return
	}

	due := time.Now().Add(time.Duration(minutes) * time.Minute)
	if _, err := store.AddTimer(context.Background(), m.Author.ID, m.ChannelID, m.GuildID, desc, due); err != nil {
		zap.S().Errorw("failed to save timer", "user", m.Author.ID, "error", err)
		replyText(s, m, "No se pudo guardar el temporizador.")
		return
	}
	replyText(s, m, timerConfirmation(minutes))
}
