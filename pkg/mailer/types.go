package mailer

import (
	"fmt"
	"strconv"
)

// Tags represents message tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values). Providers
// convert them to their own format; presence-only tags become name="true"
// where the provider requires a value.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Address formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// TagValue converts any tag value to a string for provider adapters.
// Presence-only tags (struct{}{}) become "true".
func TagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true" // presence-only tag
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Message is one fully-personalized email ready for delivery. A campaign
// produces one Message per recipient, so there is a single To address.
type Message struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags/categories
	To      string            // Recipient in RFC 5322 format
	Subject string            // Personalized subject
	HTML    string            // HTML body (empty in text mode)
	Text    string            // Plain text body or alternative
	From    string            // Override the provider's default sender
	ReplyTo string            // Reply-to address
}
