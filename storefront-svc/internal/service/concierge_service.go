package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/metrics"
	"restrofi/storefront-svc/internal/session"
)

type ConciergeServiceInterface interface {
	Send(ctx context.Context, sess *session.Session, message string) ([]domain.ChatMessage, error)
}

// ConciergeService relays guest questions to the text generator together with
// the session's catalog.
type ConciergeService struct {
	generator ReplyGenerator
	timeout   time.Duration
	metrics   *metrics.Storefront
	log       *logger.Logger
}

var _ ConciergeServiceInterface = (*ConciergeService)(nil)

func NewConciergeService(generator ReplyGenerator, timeout time.Duration, m *metrics.Storefront, log *logger.Logger) *ConciergeService {
	return &ConciergeService{generator: generator, timeout: timeout, metrics: m, log: log}
}

// Send appends the guest message and, on success, the reply. On failure the
// guest message stays in the transcript and no reply is added.
func (c *ConciergeService) Send(ctx context.Context, sess *session.Session, message string) ([]domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	history, err := sess.BeginChat(message)
	switch {
	case errors.Is(err, session.ErrEmptyChatMessage):
		return nil, apperr.Wrap(apperr.CodeValidation, err, "message is empty")
	case errors.Is(err, session.ErrReplyPending):
		return nil, apperr.Wrap(apperr.CodeConflict, err, "a reply is already pending")
	case err != nil:
		return nil, err
	}

	ctx = c.log.WithSessionID(ctx, sess.ID)
	callCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	reply, err := c.generator.GenerateReply(callCtx, history, message, sess.Catalog().Summary())
	c.metrics.ObserveCall("concierge", time.Since(started))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty reply")
	}
	if err != nil {
		sess.FinishChat("")
		c.metrics.ConciergeReply("error")
		c.log.Warn(ctx, "concierge reply failed", err)
		return sess.Transcript(), externalError(err, "concierge reply")
	}
	sess.FinishChat(strings.TrimSpace(reply))
	c.metrics.ConciergeReply("success")
	return sess.Transcript(), nil
}
