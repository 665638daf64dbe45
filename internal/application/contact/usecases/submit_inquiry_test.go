package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
	"github.com/ta89365/twconnect2-sub000/internal/shared/config"
	apperrors "github.com/ta89365/twconnect2-sub000/internal/shared/errors"
	"github.com/ta89365/twconnect2-sub000/internal/shared/services/markdown"
)

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		FromAddress:     "noreply@twconnect.local",
		FromName:        "TWConnect",
		NotifyAddress:   "contact@twconnect.local",
		ReplyToFallback: "contact@twconnect.local",
	}
}

func newSubmitUseCase(mailer *mockMailer, contactCfg config.ContactConfig) *SubmitInquiryUseCase {
	log := &mockLogger{}
	composer := NewEmailComposer(markdown.NewMarkdownService(), log)
	return NewSubmitInquiryUseCase(
		&mockResolver{}, composer, mailer, testEmailConfig(), contactCfg, log)
}

func TestSubmitInquirySendsBothEmails(t *testing.T) {
	mailer := &mockMailer{}
	uc := newSubmitUseCase(mailer, config.ContactConfig{})

	sub := contact.NewSubmission(map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
		"lang":  "en",
	}, []contact.Attachment{
		{Filename: "cv.pdf", Content: []byte("pdf"), ContentType: "application/pdf"},
	})

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.NoError(t, err)
	assert.Equal(t, valueobjects.LanguageEN, result.Language)
	assert.True(t, result.AutoReplySent)
	require.Len(t, mailer.sent, 2)

	// Notification goes out first, to the internal address, with the
	// attachments and the visitor as reply-to.
	notification := mailer.sent[0]
	assert.Equal(t, "contact@twconnect.local", notification.To)
	assert.Equal(t, "jane@example.com", notification.ReplyTo)
	assert.Len(t, notification.Attachments, 1)

	// Auto-reply goes to the visitor, without attachments.
	autoReply := mailer.sent[1]
	assert.Equal(t, "jane@example.com", autoReply.To)
	assert.Empty(t, autoReply.Attachments)
	assert.Equal(t, "Thank you for your inquiry", autoReply.Subject)
}

func TestSubmitInquiryWithoutEmailSkipsAutoReply(t *testing.T) {
	mailer := &mockMailer{}
	uc := newSubmitUseCase(mailer, config.ContactConfig{})

	sub := contact.NewSubmission(map[string]string{"name": "Jane"}, nil)

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.NoError(t, err)
	assert.False(t, result.AutoReplySent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "contact@twconnect.local", mailer.sent[0].To)
	// With no visitor address the reply-to falls back to the internal one.
	assert.Equal(t, "contact@twconnect.local", mailer.sent[0].ReplyTo)
}

func TestSubmitInquiryImplausibleEmailSkipsAutoReply(t *testing.T) {
	mailer := &mockMailer{}
	uc := newSubmitUseCase(mailer, config.ContactConfig{})

	sub := contact.NewSubmission(map[string]string{
		"name":  "Jane",
		"email": "not-an-address",
	}, nil)

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.NoError(t, err)
	assert.False(t, result.AutoReplySent)
	require.Len(t, mailer.sent, 1)
}

func TestSubmitInquiryNotificationFailureAborts(t *testing.T) {
	mailer := &mockMailer{
		SendFunc: func(ctx context.Context, msg *contact.Message) error {
			return errors.New("smtp refused")
		},
	}
	uc := newSubmitUseCase(mailer, config.ContactConfig{})

	sub := contact.NewSubmission(map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	}, nil)

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "mail_delivery_error", apperrors.KindCode(err))
	// The auto-reply is never attempted after a notification failure.
	assert.Len(t, mailer.sent, 1)
}

func TestSubmitInquiryAutoReplyFailureIsBestEffort(t *testing.T) {
	calls := 0
	mailer := &mockMailer{}
	mailer.SendFunc = func(ctx context.Context, msg *contact.Message) error {
		calls++
		if calls == 2 {
			return errors.New("mailbox full")
		}
		return nil
	}
	uc := newSubmitUseCase(mailer, config.ContactConfig{})

	sub := contact.NewSubmission(map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	}, nil)

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.NoError(t, err)
	assert.False(t, result.AutoReplySent)
	assert.Len(t, mailer.sent, 2)
}

func TestSubmitInquiryRejectsOversizedAttachments(t *testing.T) {
	mailer := &mockMailer{}
	uc := newSubmitUseCase(mailer, config.ContactConfig{MaxAttachmentBytes: 100})

	sub := contact.NewSubmission(map[string]string{"name": "Jane"}, []contact.Attachment{
		{Filename: "a.bin", Content: make([]byte, 60), ContentType: "application/octet-stream"},
		{Filename: "b.bin", Content: make([]byte, 60), ContentType: "application/octet-stream"},
	})

	result, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "payload_too_large", apperrors.KindCode(err))
	assert.Empty(t, mailer.sent)
}

func TestSubmitInquiryAttachmentLimitDisabled(t *testing.T) {
	mailer := &mockMailer{}
	uc := newSubmitUseCase(mailer, config.ContactConfig{MaxAttachmentBytes: 0})

	sub := contact.NewSubmission(map[string]string{"name": "Jane"}, []contact.Attachment{
		{Filename: "huge.bin", Content: make([]byte, 1024), ContentType: "application/octet-stream"},
	})

	_, err := uc.Execute(context.Background(), SubmitInquiryCommand{Submission: sub})

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
}
