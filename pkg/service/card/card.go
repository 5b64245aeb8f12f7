package card

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/model"
)

const (
	cardSchema  = "http://adaptivecards.io/schemas/adaptive-card.json"
	cardVersion = "1.2"

	actionOpenURL = "Action.OpenUrl"
	actionSubmit  = "Action.Submit"
)

// adaptiveCard is the serialized Adaptive Card shape
type adaptiveCard struct {
	Schema  string        `json:"$schema"`
	Type    string        `json:"type"`
	Version string        `json:"version"`
	Body    []cardElement `json:"body"`
	Actions []cardAction  `json:"actions,omitempty"`
}

type cardElement struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

type cardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func textBlock(text string) cardElement {
	return cardElement{Type: "TextBlock", Text: text, Wrap: true}
}

func titleBlock(text string) cardElement {
	return cardElement{Type: "TextBlock", Text: text, Size: "Large", Weight: "Bolder", Wrap: true}
}

// render serializes the card into a notification payload
func render(summary string, c *adaptiveCard) (*model.Notification, error) {
	content, err := json.Marshal(c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize card")
	}

	return &model.Notification{
		Summary:     summary,
		ContentType: model.ContentTypeAdaptiveCard,
		Content:     content,
	}, nil
}
