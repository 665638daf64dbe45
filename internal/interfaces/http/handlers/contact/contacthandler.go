package contact

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ta89365/twconnect2-sub000/internal/application/contact/usecases"
	domain "github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
	"github.com/ta89365/twconnect2-sub000/internal/shared/config"
	"github.com/ta89365/twconnect2-sub000/internal/shared/errors"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
)

// ContactHandler is the HTTP boundary of the submission pipeline. Whatever
// happens inside, the browser always lands back on the contact page; the
// redirect query string is the only user-visible outcome signal.
type ContactHandler struct {
	submitInquiryUC usecases.SubmitInquiryExecutor
	contactCfg      config.ContactConfig
	logger          logger.Interface
}

func NewContactHandler(
	submitInquiryUC usecases.SubmitInquiryExecutor,
	contactCfg config.ContactConfig,
	log logger.Interface,
) *ContactHandler {
	return &ContactHandler{
		submitInquiryUC: submitInquiryUC,
		contactCfg:      contactCfg,
		logger:          log,
	}
}

// SubmitInquiry handles POST /api/contact
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	fields, form := normalizeFields(c)
	attachments := collectAttachments(form, h.logger)

	submission := domain.NewSubmission(fields, attachments)

	cmd := usecases.SubmitInquiryCommand{Submission: submission}
	result, err := h.submitInquiryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("inquiry submission failed",
			"error", err, "lang", submission.Language.String())
		h.redirect(c, false, submission.Language, errors.KindCode(err))
		return
	}

	h.redirect(c, true, result.Language, "")
}

// redirect sends the outcome back to the browser: 303 to the contact page
// with submitted/lang and, on failure, a short stable error code. Raw error
// text never reaches the query string.
func (h *ContactHandler) redirect(c *gin.Context, ok bool, lang valueobjects.Language, errCode string) {
	query := url.Values{}
	if ok {
		query.Set("submitted", "1")
	} else {
		query.Set("submitted", "0")
		query.Set("error", errCode)
	}
	query.Set("lang", lang.String())

	c.Redirect(http.StatusSeeOther, h.contactCfg.RedirectPath+"?"+query.Encode())
}
