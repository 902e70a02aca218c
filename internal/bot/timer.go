package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/huntbot/internal/db"
	"go.uber.org/zap"
)

// timerWorker periodically delivers the timers that are due.
type timerWorker struct {
	store    timerStore
	session  timerSession
	interval time.Duration
	now      func() time.Time
	log      *zap.SugaredLogger

	// delivered holds timers already sent whose row could not be deleted.
	// They are not sent again; deleting them is retried on each tick.
	delivered map[int64]struct{}

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type timerStore interface {
	DueTimers(ctx context.Context, now time.Time) ([]db.Timer, error)
	DeleteTimer(ctx context.Context, id int64) error
}

// Minimal session interface for direct and channel messages.
type timerSession interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func newTimerWorker(session timerSession, store timerStore, interval time.Duration) *timerWorker {
	return &timerWorker{
		store:    store,
		session:  session,
		interval: interval,
		now:      time.Now,
		log:      zap.S().Named("timers"),

		delivered: make(map[int64]struct{}),
	}
}

func (w *timerWorker) start() {
	if w == nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go w.loop(ctx)
}

func (w *timerWorker) stop() {
	if w == nil || w.cancel == nil {
		return
	}
	w.cancel()
	w.wg.Wait()
}

func (w *timerWorker) loop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *timerWorker) tick(ctx context.Context) {
	due, err := w.store.DueTimers(ctx, w.now())
	if err != nil {
		w.log.Errorw("failed to load due timers", "error", err)
		return
	}

	for _, t := range due {
		if _, ok := w.delivered[t.ID]; !ok {
			if err := w.deliver(ctx, t); err != nil {
				// Left in place, the next tick tries again.
				w.log.Warnw("failed to deliver timer", "timer", t.ID, "user", t.UserID, "error", err)
				continue
			}
		}
		if err := w.store.DeleteTimer(ctx, t.ID); err != nil {
			w.log.Errorw("failed to delete delivered timer", "timer", t.ID, "error", err)
			w.delivered[t.ID] = struct{}{}
			continue
		}
		delete(w.delivered, t.ID)
	}
}

// deliver sends the reminder by DM and falls back to the channel the timer
// was created in.
func (w *timerWorker) deliver(ctx context.Context, t db.Timer) error {
	dmErr := w.sendDM(ctx, t)
	if dmErr == nil {
		return nil
	}
	w.log.Infow("could not DM user, falling back to channel", "user", t.UserID, "error", dmErr)

	content := fmt.Sprintf("<@%s>, no pude enviarte un DM (quizás los tienes desactivados), pero tu temporizador para **%s** ha terminado.", t.UserID, t.Description)
	err := withRetry(ctx, func(opt discordgo.RequestOption) error {
		_, err := w.session.ChannelMessageSend(t.ChannelID, content, opt)
		return err
	})
	if err != nil {
		return errors.Join(dmErr, err)
	}
	return nil
}

func (w *timerWorker) sendDM(ctx context.Context, t db.Timer) error {
	ch, err := w.session.UserChannelCreate(t.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}
	return withRetry(ctx, func(opt discordgo.RequestOption) error {
		_, err := w.session.ChannelMessageSendEmbed(ch.ID, timerEmbed(t, w.now()), opt)
		return err
	})
}

func timerEmbed(t db.Timer, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       0xffa500,
		Title:       "⏰ ¡Tu temporizador ha terminado!",
		Description: fmt.Sprintf("Recordatorio: **%s**", t.Description),
		Timestamp:   now.Format(time.RFC3339),
	}
}

// withRetry runs send once more when the first attempt hit a timeout or a
// temporary network error.
func withRetry(ctx context.Context, send func(discordgo.RequestOption) error) error {
	const attemptTimeout = 12 * time.Second
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		err := send(discordgo.WithContext(sendCtx))
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTemporaryOrTimeout(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(300+rand.Intn(500)) * time.Millisecond):
		}
	}
	return lastErr
}

func isTemporaryOrTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}
