package model

// Identity - пользователь, которого вернул провайдер аутентификации.
// Локально не хранится, живёт в рамках одного запроса.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
