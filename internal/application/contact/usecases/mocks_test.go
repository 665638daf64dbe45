package usecases

import (
	"context"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
)

type mockMailer struct {
	SendFunc func(ctx context.Context, msg *contact.Message) error

	sent []*contact.Message
}

func (m *mockMailer) Send(ctx context.Context, msg *contact.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

type mockAutoReplyStore struct {
	FetchAutoReplyFunc func(ctx context.Context) (*contact.AutoReplyDocument, error)
}

func (m *mockAutoReplyStore) FetchAutoReply(ctx context.Context) (*contact.AutoReplyDocument, error) {
	if m.FetchAutoReplyFunc != nil {
		return m.FetchAutoReplyFunc(ctx)
	}
	return nil, nil
}

type mockResolver struct {
	ResolveFunc func(ctx context.Context, lang valueobjects.Language) *contact.AutoReplyContent
}

func (m *mockResolver) Resolve(ctx context.Context, lang valueobjects.Language) *contact.AutoReplyContent {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, lang)
	}
	return &contact.AutoReplyContent{
		Language: lang,
		Subject:  defaultSubjectFor(lang),
	}
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	FatalFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
	FatalwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Fatal(msg string, args ...any) {
	if m.FatalFunc != nil {
		m.FatalFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.FatalwFunc != nil {
		m.FatalwFunc(msg, keysAndValues...)
	}
}
