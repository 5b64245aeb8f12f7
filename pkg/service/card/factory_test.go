package card_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/repository/memory"
	"github.com/secmon-lab/pairup/pkg/service/card"
	"github.com/secmon-lab/pairup/pkg/service/resource"
)

func newFactory() *card.Factory {
	return card.New(resource.New(memory.New().Resource()), "en")
}

func testSender() *model.MemberProfile {
	return &model.MemberProfile{
		ID:                "u-alice",
		Name:              "Alice Smith",
		GivenName:         "Alice",
		UserPrincipalName: "alice@example.com",
		Email:             "alice@example.com",
	}
}

func testRecipient() *model.MemberProfile {
	return &model.MemberProfile{
		ID:                "u-bob",
		Name:              "Bob Jones",
		GivenName:         "Bob",
		UserPrincipalName: "bob@example.com",
		Email:             "bob@example.com",
	}
}

func TestFactory_BuildPairUpNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("builds an adaptive card carrying the question", func(t *testing.T) {
		f := newFactory()
		n, err := f.BuildPairUpNotification(ctx, "Design Team", testSender(), testRecipient(), "Pairup", "Mountains or sea?")
		gt.NoError(t, err).Required()

		gt.Value(t, n.ContentType).Equal(model.ContentTypeAdaptiveCard)
		content := string(n.Content)
		gt.Bool(t, strings.Contains(content, "Mountains or sea?")).True()
		gt.Bool(t, strings.Contains(content, "Bob Jones")).True()
		gt.Bool(t, strings.Contains(content, "Design Team")).True()
		gt.Bool(t, strings.Contains(content, "Chat with Bob")).True()
	})

	t.Run("chat link addresses a regular member by principal name", func(t *testing.T) {
		f := newFactory()
		recipient := testRecipient()
		recipient.Email = "personal@elsewhere.example"

		n, err := f.BuildPairUpNotification(ctx, "Design Team", testSender(), recipient, "Pairup", "Q")
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(n.Content), "bob%40example.com")).True()
	})

	t.Run("chat link addresses a guest by external email", func(t *testing.T) {
		f := newFactory()
		recipient := testRecipient()
		recipient.UserPrincipalName = "bob_contoso.com#EXT#@fabrikam.onmicrosoft.com"
		recipient.Email = "bob@contoso.com"

		n, err := f.BuildPairUpNotification(ctx, "Design Team", testSender(), recipient, "Pairup", "Q")
		gt.NoError(t, err).Required()

		content := string(n.Content)
		gt.Bool(t, strings.Contains(content, "bob%40contoso.com")).True()
		gt.Bool(t, strings.Contains(content, "EXT")).False()
	})

	t.Run("full name substitutes for a missing given name", func(t *testing.T) {
		f := newFactory()
		recipient := testRecipient()
		recipient.GivenName = ""

		n, err := f.BuildPairUpNotification(ctx, "Design Team", testSender(), recipient, "Pairup", "Q")
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(n.Content), "Chat with Bob Jones")).True()
	})

	t.Run("each missing argument yields its own sentinel", func(t *testing.T) {
		f := newFactory()

		_, err := f.BuildPairUpNotification(ctx, "", testSender(), testRecipient(), "Pairup", "Q")
		gt.Error(t, err).Is(card.ErrEmptyTeamName)

		_, err = f.BuildPairUpNotification(ctx, "Design Team", nil, testRecipient(), "Pairup", "Q")
		gt.Error(t, err).Is(card.ErrNilSender)

		_, err = f.BuildPairUpNotification(ctx, "Design Team", testSender(), nil, "Pairup", "Q")
		gt.Error(t, err).Is(card.ErrNilRecipient)

		recipient := testRecipient()
		recipient.UserPrincipalName = ""
		_, err = f.BuildPairUpNotification(ctx, "Design Team", testSender(), recipient, "Pairup", "Q")
		gt.Error(t, err).Is(card.ErrEmptyRecipientUPN)

		_, err = f.BuildPairUpNotification(ctx, "Design Team", testSender(), testRecipient(), "", "Q")
		gt.Error(t, err).Is(card.ErrEmptyBotName)

		_, err = f.BuildPairUpNotification(ctx, "Design Team", testSender(), testRecipient(), "Pairup", "")
		gt.Error(t, err).Is(card.ErrEmptyQuestion)
	})

	t.Run("localized text follows the factory locale", func(t *testing.T) {
		f := card.New(resource.New(memory.New().Resource()), "de")
		n, err := f.BuildPairUpNotification(ctx, "Design Team", testSender(), testRecipient(), "Pairup", "Q")
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(n.Content), "Zeit für ein Treffen!")).True()
	})
}

func TestFactory_BuildWelcomeTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("names the installer when known", func(t *testing.T) {
		f := newFactory()
		n, err := f.BuildWelcomeTeam(ctx, "Design Team", "Alex")
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(n.Content), "Alex added me to Design Team.")).True()
	})

	t.Run("falls back to a plain intro without installer", func(t *testing.T) {
		f := newFactory()
		n, err := f.BuildWelcomeTeam(ctx, "Design Team", "")
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(n.Content), "I am now active in Design Team.")).True()
	})

	t.Run("empty team name fails", func(t *testing.T) {
		f := newFactory()
		_, err := f.BuildWelcomeTeam(ctx, "", "Alex")
		gt.Error(t, err).Is(card.ErrEmptyTeamName)
	})
}

func TestFactory_BuildWelcomeNewMember(t *testing.T) {
	ctx := context.Background()

	t.Run("invites the member to opt in", func(t *testing.T) {
		f := newFactory()
		n, err := f.BuildWelcomeNewMember(ctx, "Design Team", "Bob", "Pairup")
		gt.NoError(t, err).Required()

		content := string(n.Content)
		gt.Bool(t, strings.Contains(content, "Opt in to get matched")).True()
		gt.Bool(t, strings.Contains(content, "optin")).True()
	})

	t.Run("empty bot name fails", func(t *testing.T) {
		f := newFactory()
		_, err := f.BuildWelcomeNewMember(ctx, "Design Team", "Bob", "")
		gt.Error(t, err).Is(card.ErrEmptyBotName)
	})
}
