package teamsconn

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/utils/safe"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultTokenURL = "https://login.microsoftonline.com/botframework.com/oauth2/v2.0/token"
	defaultScope    = "https://api.botframework.com/.default"
)

// client implements the Conversation boundary against the Bot Connector
// REST API. Authentication uses the app's client credentials; the oauth2
// transport refreshes tokens as needed.
type client struct {
	httpClient *http.Client
	botID      string
}

var _ interfaces.Conversation = &client{}

// Option is a functional option for client configuration
type Option func(*config)

type config struct {
	tokenURL   string
	httpClient *http.Client
}

// WithTokenURL overrides the token endpoint
func WithTokenURL(u string) Option {
	return func(c *config) {
		c.tokenURL = u
	}
}

// WithHTTPClient replaces the HTTP client, bypassing the credential
// transport. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// New creates a Conversation client for the given bot credentials
func New(appID, appPassword string, opts ...Option) (interfaces.Conversation, error) {
	if appID == "" {
		return nil, goerr.New("bot app ID is required")
	}

	cfg := &config{tokenURL: defaultTokenURL}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		if appPassword == "" {
			return nil, goerr.New("bot app password is required")
		}
		creds := &clientcredentials.Config{
			ClientID:     appID,
			ClientSecret: appPassword,
			TokenURL:     cfg.tokenURL,
			Scopes:       []string{defaultScope},
		}
		httpClient = creds.Client(context.Background())
		httpClient.Timeout = 30 * time.Second
	}

	return &client{
		httpClient: httpClient,
		botID:      appID,
	}, nil
}

// ResolveTeamName retrieves the team's display name
func (c *client) ResolveTeamName(ctx context.Context, team *model.TeamInstallation) (string, error) {
	if err := team.Validate(); err != nil {
		return "", goerr.Wrap(err, "cannot resolve team name")
	}

	endpoint := joinURL(team.ServiceURL, "v3/teams", string(team.TeamID))

	var details teamDetails
	if err := c.getJSON(ctx, endpoint, &details); err != nil {
		return "", goerr.Wrap(err, "failed to get team details", goerr.V("teamID", team.TeamID))
	}

	return details.Name, nil
}

// ResolveMember resolves a user's profile within a team. A user that is not
// a member yields (nil, nil).
func (c *client) ResolveMember(ctx context.Context, userID types.UserID, teamID types.TeamID, serviceURL string) (*model.MemberProfile, error) {
	endpoint := joinURL(serviceURL, "v3/conversations", string(teamID), "members", string(userID))

	var account channelAccount
	status, err := c.getJSONStatus(ctx, endpoint, &account)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get team member",
			goerr.V("userID", userID), goerr.V("teamID", teamID))
	}
	if status == http.StatusNotFound || status == http.StatusForbidden {
		// Not a member of this team
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, goerr.New("unexpected status from member lookup",
			goerr.V("status", status), goerr.V("userID", userID), goerr.V("teamID", teamID))
	}

	return &model.MemberProfile{
		ID:                types.UserID(account.ID),
		Name:              account.Name,
		GivenName:         account.GivenName,
		UserPrincipalName: account.UserPrincipalName,
		Email:             account.Email,
	}, nil
}

// SendToMember creates a personal conversation with the member and posts the
// notification into it.
func (c *client) SendToMember(ctx context.Context, member *model.MemberProfile, tenantID types.TenantID, serviceURL string, notification *model.Notification) error {
	if member == nil {
		return goerr.New("member is required")
	}
	if notification == nil {
		return goerr.New("notification is required")
	}

	params := &conversationParameters{
		IsGroup:  false,
		Bot:      channelAccount{ID: "28:" + c.botID},
		Members:  []channelAccount{{ID: string(member.ID)}},
		TenantID: string(tenantID),
	}

	var conv conversationResource
	if err := c.postJSON(ctx, joinURL(serviceURL, "v3/conversations"), params, &conv); err != nil {
		return goerr.Wrap(err, "failed to create personal conversation", goerr.V("userID", member.ID))
	}

	act := &activity{
		Type:    "message",
		Summary: notification.Summary,
		Attachments: []attachment{{
			ContentType: notification.ContentType,
			Content:     notification.Content,
		}},
	}

	endpoint := joinURL(serviceURL, "v3/conversations", url.PathEscape(conv.ID), "activities")
	if err := c.postJSON(ctx, endpoint, act, nil); err != nil {
		return goerr.Wrap(err, "failed to send activity",
			goerr.V("userID", member.ID), goerr.V("conversationID", conv.ID))
	}

	return nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, out any) error {
	status, err := c.getJSONStatus(ctx, endpoint, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return goerr.New("unexpected status", goerr.V("status", status), goerr.V("url", endpoint))
	}
	return nil
}

func (c *client) getJSONStatus(ctx context.Context, endpoint string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "request failed", goerr.V("url", endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, goerr.Wrap(err, "failed to decode response", goerr.V("url", endpoint))
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp.StatusCode, nil
}

func (c *client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("url", endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return goerr.New("unexpected status", goerr.V("status", resp.StatusCode), goerr.V("url", endpoint))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("url", endpoint))
		}
	}

	return nil
}

func joinURL(base string, parts ...string) string {
	b := strings.TrimRight(base, "/")
	return b + "/" + strings.Join(parts, "/")
}
