package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/zenify-music/email-server/internal/domain"
)

const (
	SenderName       = "Zenify Security"
	OTPSubject       = "Your Verification Code - Zenify"
	OTPValidMinutes  = 10
	otpTemplateName  = "otp_email.html"
	otpTemplatesGlob = "templates/*.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, otpTemplatesGlob))

type otpTemplateData struct {
	// 验证码按原样插入邮件，不做 HTML 转义
	Code         template.HTML
	ValidMinutes int
}

func RenderOTPEmail(code string) (string, error) {
	var buf bytes.Buffer
	data := otpTemplateData{
		Code:         template.HTML(code),
		ValidMinutes: OTPValidMinutes,
	}
	if err := templates.ExecuteTemplate(&buf, otpTemplateName, data); err != nil {
		return "", fmt.Errorf("render otp email: %w", err)
	}

	return buf.String(), nil
}

// NewOTPMessage 根据请求和发件账号构建验证码邮件
func NewOTPMessage(creds domain.MailCredentials, req domain.OtpEmailRequest) (*domain.MailMessage, error) {
	body, err := RenderOTPEmail(req.Code)
	if err != nil {
		return nil, err
	}

	return &domain.MailMessage{
		From:     fmt.Sprintf("%s <%s>", SenderName, creds.User),
		To:       req.Email,
		Subject:  OTPSubject,
		HTMLBody: body,
	}, nil
}
