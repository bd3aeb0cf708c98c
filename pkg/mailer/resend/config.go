package resend

// Config holds the Resend provider settings. SenderName and SenderEmail
// form the default From address when a campaign does not set its own.
// Embed this in a CLI config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}
