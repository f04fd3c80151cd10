package domain

import "unicode/utf8"

const (
	ContactNameMaxLen    = 80
	ContactPhoneMaxLen   = 20
	ContactMessageMaxLen = 120
	ContactEmailMaxLen   = 120
)

// ContactMessage is a visitor submission from the contact form. Phone and
// email are unique across all messages. Messages are append-only.
type ContactMessage struct {
	ID      int64  `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Message string `json:"message" bson:"msg"`
	Date    string `json:"date" bson:"date"`
	Email   string `json:"email" bson:"email"`
}

// Validate checks presence and length bounds of every field.
func (m ContactMessage) Validate() error {
	if err := checkField("name", m.Name, ContactNameMaxLen); err != nil {
		return err
	}
	if err := checkField("phone", m.Phone, ContactPhoneMaxLen); err != nil {
		return err
	}
	if err := checkField("message", m.Message, ContactMessageMaxLen); err != nil {
		return err
	}
	if err := checkField("email", m.Email, ContactEmailMaxLen); err != nil {
		return err
	}
	return nil
}

// Summary is a short, single-line description used in notifications.
func (m ContactMessage) Summary() string {
	const max = 40
	msg := m.Message
	if utf8.RuneCountInString(msg) > max {
		msg = string([]rune(msg)[:max]) + "…"
	}
	return m.Name + " <" + m.Email + ">: " + msg
}
