package card

import "github.com/m-mizutani/goerr/v2"

// Validation errors for card construction. Each names the offending
// parameter so callers can tell which argument was invalid.
var (
	ErrEmptyTeamName     = goerr.New("teamName cannot be empty")
	ErrNilSender         = goerr.New("sender is required")
	ErrNilRecipient      = goerr.New("recipient is required")
	ErrEmptyRecipientUPN = goerr.New("recipient userPrincipalName cannot be empty")
	ErrEmptyBotName      = goerr.New("botDisplayName cannot be empty")
	ErrEmptyQuestion     = goerr.New("question cannot be empty")
)
