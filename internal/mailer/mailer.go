package mailer

import "embed"

const (
	FromName                    = "8-Bit Bar"
	maxRetries                  = 3
	UserWelcomeTemplate         = "user_welcome.tmpl"
	ResetPasswordTemplate       = "reset_password.tmpl"
	BookingConfirmationTemplate = "booking_confirmation.tmpl"
	GiftCardTemplate            = "gift_card.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
