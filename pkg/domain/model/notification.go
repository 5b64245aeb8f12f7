package model

import "encoding/json"

// ContentTypeAdaptiveCard is the attachment content type for Adaptive Cards
const ContentTypeAdaptiveCard = "application/vnd.microsoft.card.adaptive"

// Notification is a renderable notification payload produced by the card
// factory. The matching cycle treats it as opaque and hands it to the
// conversation collaborator for delivery.
type Notification struct {
	// Summary is the plain-text fallback shown in toast previews
	Summary string

	// ContentType identifies the attachment format
	ContentType string

	// Content is the serialized card body
	Content json.RawMessage
}
