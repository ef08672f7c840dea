// Package chat sequences the assistant conversation: one outstanding turn
// per user, an artificial thinking delay, append-only history.
package chat

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/advice"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is already pending for this session")
)

// Controller runs the user/assistant turn loop. Each user session is either
// idle or awaiting a reply; a submit while awaiting is rejected rather than
// interleaved.
type Controller struct {
	store    store.Store
	match    func(string) string
	delayMin time.Duration
	delayMax time.Duration
	now      func() time.Time

	mu      sync.Mutex
	pending map[string]bool
}

// NewController wires the advice matcher behind a reply delay drawn
// uniformly from [delayMin, delayMax). Zero bounds give an immediate reply,
// which is what tests use.
func NewController(st store.Store, delayMin, delayMax time.Duration) *Controller {
	if delayMax < delayMin {
		delayMax = delayMin
	}
	return &Controller{
		store:    st,
		match:    advice.Match,
		delayMin: delayMin,
		delayMax: delayMax,
		now:      time.Now,
		pending:  make(map[string]bool),
	}
}

// Submit appends the user's message, waits out the thinking delay, then
// appends the matched reply and returns both. While a turn is in flight any
// further submit for the same user fails with ErrReplyPending. A cancelled
// context during the delay drops the reply; the user message stays.
func (c *Controller) Submit(ctx context.Context, userID string, text string) (userMsg, replyMsg health.ChatMessage, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return health.ChatMessage{}, health.ChatMessage{}, ErrEmptyMessage
	}

	if !c.acquire(userID) {
		return health.ChatMessage{}, health.ChatMessage{}, ErrReplyPending
	}
	defer c.release(userID)

	userMsg = health.ChatMessage{
		ID:        uuid.New(),
		Role:      health.RoleUser,
		Content:   text,
		Timestamp: c.now(),
	}
	if err := c.append(ctx, userID, userMsg); err != nil {
		return health.ChatMessage{}, health.ChatMessage{}, err
	}

	if err := c.think(ctx); err != nil {
		// Reply dropped, history left as-is with the user message appended.
		return userMsg, health.ChatMessage{}, err
	}

	replyMsg = health.ChatMessage{
		ID:        uuid.New(),
		Role:      health.RoleAssistant,
		Content:   c.match(text),
		Timestamp: c.now(),
	}
	if err := c.append(ctx, userID, replyMsg); err != nil {
		return userMsg, health.ChatMessage{}, err
	}

	return userMsg, replyMsg, nil
}

// History returns the full ordered message list, empty when none exist.
func (c *Controller) History(ctx context.Context, userID string) ([]health.ChatMessage, error) {
	msgs := []health.ChatMessage{}
	if err := c.store.Read(ctx, store.UserKey(store.KeyChatMessages, userID), &msgs); err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	return msgs, nil
}

// Clear wipes the conversation and returns the session to idle. No
// confirmation, no undo.
func (c *Controller) Clear(ctx context.Context, userID string) error {
	if err := c.store.Delete(ctx, store.UserKey(store.KeyChatMessages, userID)); err != nil {
		return fmt.Errorf("clear chat: %w", err)
	}
	c.release(userID)
	return nil
}

func (c *Controller) acquire(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[userID] {
		return false
	}
	c.pending[userID] = true
	return true
}

func (c *Controller) release(userID string) {
	c.mu.Lock()
	delete(c.pending, userID)
	c.mu.Unlock()
}

func (c *Controller) think(ctx context.Context) error {
	delay := c.delayMin
	if span := c.delayMax - c.delayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) append(ctx context.Context, userID string, msg health.ChatMessage) error {
	key := store.UserKey(store.KeyChatMessages, userID)

	msgs := []health.ChatMessage{}
	if err := c.store.Read(ctx, key, &msgs); err != nil {
		return fmt.Errorf("load chat history: %w", err)
	}
	msgs = append(msgs, msg)
	if err := c.store.Write(ctx, key, msgs); err != nil {
		return fmt.Errorf("save chat history: %w", err)
	}
	return nil
}
