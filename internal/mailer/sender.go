package mailer

import (
	"context"

	"github.com/zenify-music/email-server/internal/domain"
)

// Sender 负责把已经构建好的邮件交给邮件服务器
type Sender interface {
	Send(ctx context.Context, msg *domain.MailMessage) error
}
