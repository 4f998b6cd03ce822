package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "requestID", requestIDFromContext(r.Context()), "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// 此时状态码已经写出，只能记录日志
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, Response{
		Success: false,
		Message: msg,
	})
}

// badRequest 给客户端返回固定的提示信息，校验失败的具体原因只写入日志
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	reason := err.Error()
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		reason = validationErrors[0].Translate(h.translator)
	}
	slog.Warn("请求参数错误", "method", r.Method, "path", r.URL.Path, "requestID", requestIDFromContext(r.Context()), "reason", reason)

	h.errorResponse(w, r, http.StatusBadRequest, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, "Internal server error")
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
	})
}
