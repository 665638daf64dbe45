package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// NotifyAddress receives the internal notification for every inquiry.
	NotifyAddress string `mapstructure:"notify_address"`
	// ReplyToFallback is used as the notification reply-to when the visitor
	// left no email address, so staff replies still go somewhere sensible.
	ReplyToFallback string `mapstructure:"reply_to_fallback"`
}

type CMSConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Dataset        string `mapstructure:"dataset"`
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c *CMSConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ContactConfig struct {
	// RedirectPath is the contact page the browser is sent back to with the
	// submitted/lang/error query parameters.
	RedirectPath string `mapstructure:"redirect_path"`
	// MaxAttachmentBytes caps the total buffered attachment size per
	// submission. Submissions over the cap are rejected, not truncated.
	MaxAttachmentBytes int64 `mapstructure:"max_attachment_bytes"`
}
