package teamsconn

import "encoding/json"

// Wire types for the Bot Connector REST API. Only the fields this service
// reads or writes are declared.

type teamDetails struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type channelAccount struct {
	ID                string `json:"id"`
	Name              string `json:"name,omitempty"`
	GivenName         string `json:"givenName,omitempty"`
	Email             string `json:"email,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
}

type conversationParameters struct {
	IsGroup  bool             `json:"isGroup"`
	Bot      channelAccount   `json:"bot"`
	Members  []channelAccount `json:"members"`
	TenantID string           `json:"tenantId,omitempty"`
}

type conversationResource struct {
	ID string `json:"id"`
}

type attachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
}

type activity struct {
	Type        string       `json:"type"`
	Summary     string       `json:"summary,omitempty"`
	Attachments []attachment `json:"attachments,omitempty"`
}
