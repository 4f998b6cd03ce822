package domain

// OtpEmailRequest 是 POST /send-otp 的请求体，只在单次请求内存在
type OtpEmailRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// MailCredentials 来自进程配置，启动后不再改变
type MailCredentials struct {
	User string
	Pass string
}

func (c MailCredentials) Configured() bool {
	return c.User != "" && c.Pass != ""
}

type MailMessage struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}
