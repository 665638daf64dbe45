package usecases

import (
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
)

// Compiled-in auto-reply subjects, used when the content store has no
// subject for any language in the fallback order.
var defaultSubjects = map[valueobjects.Language]string{
	valueobjects.LanguageJP: "お問い合わせありがとうございます",
	valueobjects.LanguageEN: "Thank you for your inquiry",
	valueobjects.LanguageZH: "感謝您的來信",
}

// Compiled-in auto-reply bodies, used when the content store has no body
// for any language in the fallback order. Authored as Markdown and
// rendered through the shared markdown service at composition time.
// Placeholders: %[1]s visitor name, %[2]s inquiry subject, %[3]s
// submission timestamp.
var defaultBodies = map[valueobjects.Language]string{
	valueobjects.LanguageJP: `%[1]s 様

お問い合わせを受け付けました。

件名: %[2]s
受付日時: %[3]s

内容を確認のうえ、担当者より折り返しご連絡いたします。
本メールは自動送信です。このメールへの返信には対応できない場合があります。`,
	valueobjects.LanguageEN: `Dear %[1]s,

We have received your inquiry.

Subject: %[2]s
Received at: %[3]s

Our team will review your message and get back to you shortly.
This is an automated confirmation; replies to this address may not be read.`,
	valueobjects.LanguageZH: `%[1]s 您好：

我們已收到您的來信。

主旨：%[2]s
收件時間：%[3]s

我們將儘快確認內容並與您聯繫。
此為系統自動回覆，請勿直接回信。`,
}

func defaultSubjectFor(lang valueobjects.Language) string {
	if s, ok := defaultSubjects[lang]; ok {
		return s
	}
	return defaultSubjects[valueobjects.DefaultLanguage]
}

func defaultBodyFor(lang valueobjects.Language) string {
	if b, ok := defaultBodies[lang]; ok {
		return b
	}
	return defaultBodies[valueobjects.DefaultLanguage]
}
