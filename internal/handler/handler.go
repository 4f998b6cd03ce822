package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/zenify-music/email-server/internal/config"
	"github.com/zenify-music/email-server/internal/domain"
	"github.com/zenify-music/email-server/internal/mailer"
)

type Handler struct {
	validate       *validator.Validate
	translator     ut.Translator
	credentials    domain.MailCredentials
	allowedOrigins []string
	sender         mailer.Sender

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, sender mailer.Sender) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// 校验信息中使用 json 字段名
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:       validate,
		translator:     trans,
		credentials:    cfg.MailCredentials(),
		allowedOrigins: cfg.CORS.AllowedOrigins,
		sender:         sender,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))

	h.Mux.Get("/", h.Index)
	h.Mux.Post("/send-otp", h.SendOTP)
}
