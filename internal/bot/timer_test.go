package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susu3304/huntbot/internal/db"
	"go.uber.org/goleak"
)

type fakeTimerStore struct {
	mu      sync.Mutex
	timers  []db.Timer
	deleted []int64
	loadErr error
	// deleteErrs fail the next DeleteTimer calls, one error per call.
	deleteErrs []error
}

func (f *fakeTimerStore) DueTimers(_ context.Context, now time.Time) ([]db.Timer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	var due []db.Timer
	for _, t := range f.timers {
		if !t.DueAt.After(now) {
			due = append(due, t)
		}
	}
	return due, nil
}

func (f *fakeTimerStore) DeleteTimer(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.deleteErrs) > 0 {
		err := f.deleteErrs[0]
		f.deleteErrs = f.deleteErrs[1:]
		return err
	}
	for idx, t := range f.timers {
		if t.ID == id {
			f.timers = append(f.timers[:idx], f.timers[idx+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return errors.New("timer not found")
}

func (f *fakeTimerStore) deletedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deleted...)
}

type sentMessage struct {
	channelID string
	content   string
	embed     *discordgo.MessageEmbed
}

type fakeTimerSession struct {
	mu       sync.Mutex
	dmErr    error
	sendErr  error
	messages []sentMessage
}

func (f *fakeTimerSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeTimerSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{channelID: channelID, embed: embed})
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeTimerSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.messages = append(f.messages, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{ChannelID: channelID}, nil
}

var testNow = time.Date(2025, 12, 10, 20, 0, 0, 0, time.UTC)

func newTestWorker(session *fakeTimerSession, store *fakeTimerStore) *timerWorker {
	w := newTimerWorker(session, store, 10*time.Millisecond)
	w.now = func() time.Time { return testNow }
	return w
}

func dueTimer(id int64) db.Timer {
	return db.Timer{ID: id, UserID: "42", ChannelID: "chan", Description: "Descansar", DueAt: testNow.Add(-time.Minute)}
}

func TestTimerWorker_DeliversByDM(t *testing.T) {
	store := &fakeTimerStore{timers: []db.Timer{
		dueTimer(1),
		{ID: 2, UserID: "42", ChannelID: "chan", Description: "later", DueAt: testNow.Add(time.Hour)},
	}}
	session := &fakeTimerSession{}

	newTestWorker(session, store).tick(context.Background())

	require.Len(t, session.messages, 1)
	msg := session.messages[0]
	assert.Equal(t, "dm-42", msg.channelID)
	require.NotNil(t, msg.embed)
	assert.Equal(t, "Recordatorio: **Descansar**", msg.embed.Description)
	assert.Equal(t, []int64{1}, store.deletedIDs())
}

func TestTimerWorker_FallsBackToChannel(t *testing.T) {
	store := &fakeTimerStore{timers: []db.Timer{dueTimer(1)}}
	session := &fakeTimerSession{dmErr: errors.New("cannot send messages to this user")}

	newTestWorker(session, store).tick(context.Background())

	require.Len(t, session.messages, 1)
	assert.Equal(t, "chan", session.messages[0].channelID)
	assert.Contains(t, session.messages[0].content, "<@42>")
	assert.Contains(t, session.messages[0].content, "**Descansar**")
	assert.Equal(t, []int64{1}, store.deletedIDs())
}

func TestTimerWorker_KeepsUndeliveredTimer(t *testing.T) {
	store := &fakeTimerStore{timers: []db.Timer{dueTimer(1)}}
	session := &fakeTimerSession{
		dmErr:   errors.New("dm closed"),
		sendErr: errors.New("missing access"),
	}

	newTestWorker(session, store).tick(context.Background())

	assert.Empty(t, store.deletedIDs())
	assert.Len(t, store.timers, 1)
}

func TestTimerWorker_DoesNotResendWhenDeleteFails(t *testing.T) {
	store := &fakeTimerStore{
		timers:     []db.Timer{dueTimer(1)},
		deleteErrs: []error{errors.New("conn reset"), errors.New("conn reset")},
	}
	session := &fakeTimerSession{}
	w := newTestWorker(session, store)

	for i := 0; i < 3; i++ {
		w.tick(context.Background())
	}

	assert.Len(t, session.messages, 1)
	assert.Equal(t, []int64{1}, store.deletedIDs())
	assert.Empty(t, store.timers)
	assert.Empty(t, w.delivered)
}

func TestTimerWorker_LoadError(t *testing.T) {
	store := &fakeTimerStore{loadErr: errors.New("db down")}
	session := &fakeTimerSession{}

	newTestWorker(session, store).tick(context.Background())

	assert.Empty(t, session.messages)
}

func TestTimerWorker_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &fakeTimerStore{timers: []db.Timer{dueTimer(7)}}
	session := &fakeTimerSession{}
	w := newTestWorker(session, store)

	w.start()
	require.Eventually(t, func() bool {
		return len(store.deletedIDs()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	w.stop()
	w.stop()
}

func TestIsTemporaryOrTimeout(t *testing.T) {
	assert.False(t, isTemporaryOrTimeout(errors.New("boom")))
	assert.True(t, isTemporaryOrTimeout(context.DeadlineExceeded))
}
