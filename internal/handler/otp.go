package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/zenify-music/email-server/internal/domain"
	"github.com/zenify-music/email-server/internal/mailer"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Zenify Secure Email Server is Running.")
}

func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OtpEmailRequest

	// 空请求体按缺少字段处理
	if err := h.readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, r, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, "Missing email or code", err)
		return
	}

	if !h.credentials.Configured() {
		slog.Error("邮件服务凭据缺失", "requestID", requestIDFromContext(r.Context()))
		h.errorResponse(w, r, http.StatusInternalServerError, "Server configuration error")
		return
	}

	msg, err := mailer.NewOTPMessage(h.credentials, req)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		slog.Error("邮件发送失败", "to", req.Email, "requestID", requestIDFromContext(r.Context()), "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Message: "Failed to send email",
			Error:   err.Error(),
		})
		return
	}

	slog.Info("邮件已发送", "to", req.Email, "requestID", requestIDFromContext(r.Context()))
	h.successResponse(w, r, "Email sent successfully")
}
