package response

import "github.com/gofiber/fiber/v3"

// Envelope is the JSON shape every endpoint returns, success and failure
// alike. Status mirrors the HTTP status code so clients behind buffering
// proxies can still branch on it.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                 = "ok"
	MessageBadRequest         = "bad request"
	MessageUnauthorized       = "unauthorized"
	MessageNotFound           = "not found"
	MessageServiceUnavailable = "service unavailable"
	MessageInternalError      = "internal server error"
	MessageError              = "error"
)

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	st := status
	if st < 100 || st > 599 {
		st = fiber.StatusInternalServerError
	}
	msg := message
	if msg == "" {
		msg = DefaultMessage(st)
	}
	return c.Status(st).JSON(Envelope{Status: st, Message: msg, Data: data})
}

// DefaultMessage maps a status code to the message used when the caller
// does not supply one.
func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalError
		}
		return MessageError
	}
}
