package card

import (
	"context"
	"fmt"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/service/resource"
)

// Factory builds notification payloads. All human-readable text is obtained
// through the resource resolver with the factory's locale, so operators can
// override any string per locale without a redeploy.
type Factory struct {
	resolver *resource.Resolver
	locale   types.Locale
}

// New creates a Factory rendering text for the given locale
func New(resolver *resource.Resolver, locale types.Locale) *Factory {
	return &Factory{
		resolver: resolver,
		locale:   locale,
	}
}

// BuildPairUpNotification builds the card announcing a match to both members
// of a pair. Validation happens before any string resolution so an invalid
// call never touches the resolver.
func (f *Factory) BuildPairUpNotification(ctx context.Context, teamName string, sender, recipient *model.MemberProfile, botDisplayName, question string) (*model.Notification, error) {
	if teamName == "" {
		return nil, goerr.Wrap(ErrEmptyTeamName, "invalid pair-up card arguments")
	}
	if sender == nil {
		return nil, goerr.Wrap(ErrNilSender, "invalid pair-up card arguments")
	}
	if recipient == nil {
		return nil, goerr.Wrap(ErrNilRecipient, "invalid pair-up card arguments")
	}
	if recipient.UserPrincipalName == "" {
		return nil, goerr.Wrap(ErrEmptyRecipientUPN, "invalid pair-up card arguments",
			goerr.V("recipientID", recipient.ID))
	}
	if botDisplayName == "" {
		return nil, goerr.Wrap(ErrEmptyBotName, "invalid pair-up card arguments")
	}
	if question == "" {
		return nil, goerr.Wrap(ErrEmptyQuestion, "invalid pair-up card arguments")
	}

	senderGivenName := sender.DisplayGivenName()
	recipientGivenName := recipient.DisplayGivenName()

	// Guests are addressed by their external email, not the UPN
	recipientAddress := recipient.ContactAddress()

	title := f.resolve(ctx, resource.KeyMatchUpCardTitleContent)
	matchedText := fmt.Sprintf(f.resolve(ctx, resource.KeyMatchUpCardMatchedText), recipient.Name)
	contentPart1 := fmt.Sprintf(f.resolve(ctx, resource.KeyMatchUpCardContentPart1), botDisplayName, teamName, recipient.Name)
	contentPart2 := f.resolve(ctx, resource.KeyMatchUpCardContentPart2)
	questionText := fmt.Sprintf(f.resolve(ctx, resource.KeyMatchUpCardQuestion), question)
	greeting := fmt.Sprintf(f.resolve(ctx, resource.KeyChatWithMessageGreeting), question)

	meetingTitle := fmt.Sprintf(f.resolve(ctx, resource.KeyMeetupTitle), senderGivenName, recipientGivenName)
	meetingContent := fmt.Sprintf(f.resolve(ctx, resource.KeyMeetupContent), botDisplayName)
	meetingLink := "https://teams.microsoft.com/l/meeting/new?subject=" + url.QueryEscape(meetingTitle) +
		"&attendees=" + recipientAddress + "&content=" + url.QueryEscape(meetingContent)
	chatLink := "https://teams.microsoft.com/l/chat/0/0?users=" + url.QueryEscape(recipientAddress) +
		"&message=" + url.QueryEscape(greeting)

	c := &adaptiveCard{
		Schema:  cardSchema,
		Type:    "AdaptiveCard",
		Version: cardVersion,
		Body: []cardElement{
			titleBlock(title),
			textBlock(matchedText),
			textBlock(contentPart1),
			textBlock(contentPart2),
			textBlock(questionText),
		},
		Actions: []cardAction{
			{
				Type:  actionOpenURL,
				Title: fmt.Sprintf(f.resolve(ctx, resource.KeyChatWithMatchButtonText), recipientGivenName),
				URL:   chatLink,
			},
			{
				Type:  actionOpenURL,
				Title: f.resolve(ctx, resource.KeyProposeMeetupButtonText),
				URL:   meetingLink,
			},
			{
				Type:  actionSubmit,
				Title: f.resolve(ctx, resource.KeyPausePairingsButtonText),
				Data:  map[string]string{"action": "optout"},
			},
		},
	}

	return render(title, c)
}

// BuildWelcomeTeam builds the card posted to a team channel right after the
// bot has been installed.
func (f *Factory) BuildWelcomeTeam(ctx context.Context, teamName, installerName string) (*model.Notification, error) {
	if teamName == "" {
		return nil, goerr.Wrap(ErrEmptyTeamName, "invalid welcome card arguments")
	}

	var intro string
	if installerName == "" {
		intro = fmt.Sprintf(f.resolve(ctx, resource.KeyInstallMessagePart1), teamName)
	} else {
		intro = fmt.Sprintf(f.resolve(ctx, resource.KeyInstallMessageKnownPart1), installerName, teamName)
	}

	salutation := f.resolve(ctx, resource.KeySalutationTitleText)

	c := &adaptiveCard{
		Schema:  cardSchema,
		Type:    "AdaptiveCard",
		Version: cardVersion,
		Body: []cardElement{
			titleBlock(salutation),
			textBlock(intro),
			textBlock(f.resolve(ctx, resource.KeyInstallMessagePart2)),
		},
	}

	return render(salutation, c)
}

// BuildWelcomeNewMember builds the personal card inviting a team member to
// opt in to pairing.
func (f *Factory) BuildWelcomeNewMember(ctx context.Context, teamName, memberGivenName, botDisplayName string) (*model.Notification, error) {
	if teamName == "" {
		return nil, goerr.Wrap(ErrEmptyTeamName, "invalid welcome card arguments")
	}
	if botDisplayName == "" {
		return nil, goerr.Wrap(ErrEmptyBotName, "invalid welcome card arguments")
	}

	salutation := f.resolve(ctx, resource.KeySalutationTitleText)

	c := &adaptiveCard{
		Schema:  cardSchema,
		Type:    "AdaptiveCard",
		Version: cardVersion,
		Body: []cardElement{
			titleBlock(salutation),
			textBlock(fmt.Sprintf(f.resolve(ctx, resource.KeyInstallMessagePart1), teamName)),
			textBlock(f.resolve(ctx, resource.KeyOptInText)),
		},
		Actions: []cardAction{
			{
				Type:  actionSubmit,
				Title: f.resolve(ctx, resource.KeyOptInButtonText),
				Data:  map[string]string{"action": "optin"},
			},
		},
	}

	return render(salutation, c)
}

func (f *Factory) resolve(ctx context.Context, key types.ResourceKey) string {
	return f.resolver.Resolve(ctx, f.locale, key)
}
