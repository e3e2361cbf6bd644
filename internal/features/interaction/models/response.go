package models

// ResponseType тип ответа на interaction
type ResponseType int

const (
	ResponseTypePong                     ResponseType = 1
	ResponseTypeChannelMessageWithSource ResponseType = 4
)

// MessageFlagEphemeral ответ виден только вызвавшему
const MessageFlagEphemeral = 1 << 6

type InteractionResponse struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

type ResponseData struct {
	Content string `json:"content"`
	Flags   int    `json:"flags,omitempty"`
}

// ErrorResponse тело ответа для ошибок транспорта
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid JSON"`
}

// HTTPResponse итог обработки запроса, не зависящий от HTTP-фреймворка
type HTTPResponse struct {
	Status  int
	Headers map[string]string
	Body    []byte
}
