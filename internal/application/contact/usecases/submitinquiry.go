package usecases

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
	"github.com/ta89365/twconnect2-sub000/internal/shared/config"
	"github.com/ta89365/twconnect2-sub000/internal/shared/errors"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
	"github.com/ta89365/twconnect2-sub000/internal/shared/utils"
)

type SubmitInquiryCommand struct {
	Submission *contact.Submission
}

type SubmitInquiryResult struct {
	Language      valueobjects.Language
	AutoReplySent bool
}

// SubmitInquiryUseCase runs the whole submission pipeline: attachment cap,
// auto-reply resolution, composition, and the two sends. The notification
// and the auto-reply are independent failure domains: a notification
// failure aborts the request, an auto-reply failure is logged and the
// request still succeeds (the confirmation email is best-effort).
type SubmitInquiryUseCase struct {
	resolver   AutoReplyResolver
	composer   *EmailComposer
	mailer     contact.Mailer
	emailCfg   config.EmailConfig
	contactCfg config.ContactConfig
	validate   *validator.Validate
	logger     logger.Interface
}

func NewSubmitInquiryUseCase(
	resolver AutoReplyResolver,
	composer *EmailComposer,
	mailer contact.Mailer,
	emailCfg config.EmailConfig,
	contactCfg config.ContactConfig,
	logger logger.Interface,
) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		resolver:   resolver,
		composer:   composer,
		mailer:     mailer,
		emailCfg:   emailCfg,
		contactCfg: contactCfg,
		validate:   validator.New(),
		logger:     logger,
	}
}

var _ SubmitInquiryExecutor = (*SubmitInquiryUseCase)(nil)

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, cmd SubmitInquiryCommand) (*SubmitInquiryResult, error) {
	sub := cmd.Submission
	uc.logger.Infow("executing submit inquiry use case",
		"lang", sub.Language.String(),
		"attachments", len(sub.Attachments),
		"has_email", sub.HasEmail())

	if err := uc.checkAttachmentSize(sub); err != nil {
		uc.logger.Warnw("rejecting oversized submission",
			"total_bytes", contact.TotalAttachmentSize(sub.Attachments),
			"limit_bytes", uc.contactCfg.MaxAttachmentBytes)
		return nil, err
	}

	// Resolution never fails; store problems degrade to defaults inside.
	content := uc.resolver.Resolve(ctx, sub.Language)

	if err := uc.sendNotification(ctx, sub); err != nil {
		uc.logger.Errorw("failed to send internal notification", "error", err)
		return nil, errors.NewMailDeliveryError("failed to deliver notification email")
	}

	result := &SubmitInquiryResult{Language: sub.Language}

	// The auto-reply goes out only when the visitor left a plausible
	// address, and only after the notification has been delivered.
	if uc.shouldSendAutoReply(sub) {
		if err := uc.sendAutoReply(ctx, sub, content); err != nil {
			uc.logger.Warnw("failed to send auto-reply, continuing",
				"error", err, "lang", sub.Language.String())
		} else {
			result.AutoReplySent = true
		}
	}

	uc.logger.Infow("inquiry processed",
		"lang", sub.Language.String(),
		"auto_reply_sent", result.AutoReplySent)

	return result, nil
}

func (uc *SubmitInquiryUseCase) checkAttachmentSize(sub *contact.Submission) error {
	limit := uc.contactCfg.MaxAttachmentBytes
	if limit <= 0 {
		return nil
	}
	total := contact.TotalAttachmentSize(sub.Attachments)
	if total > limit {
		return errors.NewPayloadTooLargeError(
			fmt.Sprintf("attachments exceed the %d byte limit", limit))
	}
	return nil
}

func (uc *SubmitInquiryUseCase) shouldSendAutoReply(sub *contact.Submission) bool {
	if !sub.HasEmail() {
		return false
	}
	if err := uc.validate.Var(sub.Email, "email"); err != nil {
		uc.logger.Warnw("visitor email is not a plausible address, skipping auto-reply",
			"email", utils.MaskEmail(sub.Email))
		return false
	}
	return true
}

func (uc *SubmitInquiryUseCase) sendNotification(ctx context.Context, sub *contact.Submission) error {
	subject, body := uc.composer.ComposeNotification(sub)

	replyTo := sub.Email
	if replyTo == "" {
		replyTo = uc.emailCfg.ReplyToFallback
	}

	return uc.mailer.Send(ctx, &contact.Message{
		From:        uc.emailCfg.FromAddress,
		To:          uc.emailCfg.NotifyAddress,
		ReplyTo:     replyTo,
		Subject:     subject,
		HTML:        body,
		Attachments: sub.Attachments,
	})
}

func (uc *SubmitInquiryUseCase) sendAutoReply(ctx context.Context, sub *contact.Submission, content *contact.AutoReplyContent) error {
	subject, htmlBody, textBody := uc.composer.ComposeAutoReply(sub, content)

	return uc.mailer.Send(ctx, &contact.Message{
		From:    uc.emailCfg.FromAddress,
		To:      sub.Email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
}
