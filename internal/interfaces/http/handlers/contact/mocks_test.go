package contact

import (
	"context"
	"io"
	"log/slog"

	domain "github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
)

func newNopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeMailer struct {
	SendFunc func(ctx context.Context, msg *domain.Message) error

	sent []*domain.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg *domain.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

type fakeAutoReplyStore struct {
	FetchAutoReplyFunc func(ctx context.Context) (*domain.AutoReplyDocument, error)
}

func (s *fakeAutoReplyStore) FetchAutoReply(ctx context.Context) (*domain.AutoReplyDocument, error) {
	if s.FetchAutoReplyFunc != nil {
		return s.FetchAutoReplyFunc(ctx)
	}
	return nil, nil
}
