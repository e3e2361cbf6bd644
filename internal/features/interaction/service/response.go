package service

import (
	"encoding/json"
	"net/http"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/features/interaction/models"
)

const contentTypeJSON = "application/json"

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, X-Signature-Ed25519, X-Signature-Timestamp",
	"Access-Control-Max-Age":       "86400",
}

// Reply оборачивает текст в ответ CHANNEL_MESSAGE_WITH_SOURCE
func Reply(content string, ephemeral bool) *models.HTTPResponse {
	data := &models.ResponseData{Content: content}
	if ephemeral {
		data.Flags = models.MessageFlagEphemeral
	}
	return jsonResponse(http.StatusOK, models.InteractionResponse{
		Type: models.ResponseTypeChannelMessageWithSource,
		Data: data,
	})
}

func pongResponse() *models.HTTPResponse {
	return jsonResponse(http.StatusOK, models.InteractionResponse{Type: models.ResponseTypePong})
}

// transportError ответ для ошибок уровня HTTP. Наружу уходит только сообщение.
func transportError(err *apperrors.AppError) *models.HTTPResponse {
	return jsonResponse(transportStatus(err.Code), models.ErrorResponse{Error: err.Message})
}

func transportStatus(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func preflightResponse() *models.HTTPResponse {
	headers := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		headers[k] = v
	}
	return &models.HTTPResponse{Status: http.StatusOK, Headers: headers}
}

func jsonResponse(status int, v any) *models.HTTPResponse {
	// Все значения здесь сериализуемы, ошибка невозможна
	body, _ := json.Marshal(v)
	return &models.HTTPResponse{
		Status:  status,
		Headers: map[string]string{"Content-Type": contentTypeJSON},
		Body:    body,
	}
}
