package models

// Subscriber описывает подписчика рассылки: адрес и момент регистрации.
//
// SubscribedAt хранится строкой в формате ISO-8601 (RFC 3339) — в том же виде,
// в каком значение лежит в Redis и выгружается в таблицу.
type Subscriber struct {
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
}
