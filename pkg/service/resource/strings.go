package resource

import "github.com/secmon-lab/pairup/pkg/domain/types"

// Resource keys for all bot-facing text. Operators may override any of these
// per locale through the resource store; the compiled table below is the
// last-resort fallback.
const (
	KeyMatchUpCardTitleContent  types.ResourceKey = "MatchUpCardTitleContent"
	KeyMatchUpCardMatchedText   types.ResourceKey = "MatchUpCardMatchedText"
	KeyMatchUpCardContentPart1  types.ResourceKey = "MatchUpCardContentPart1"
	KeyMatchUpCardContentPart2  types.ResourceKey = "MatchUpCardContentPart2"
	KeyMatchUpCardQuestion      types.ResourceKey = "MatchUpCardQuestion"
	KeyChatWithMatchButtonText  types.ResourceKey = "ChatWithMatchButtonText"
	KeyChatWithMessageGreeting  types.ResourceKey = "ChatWithMessageGreeting"
	KeyPausePairingsButtonText  types.ResourceKey = "PausePairingsButtonText"
	KeyProposeMeetupButtonText  types.ResourceKey = "ProposeMeetupButtonText"
	KeyMeetupTitle              types.ResourceKey = "MeetupTitle"
	KeyMeetupContent            types.ResourceKey = "MeetupContent"
	KeyDefaultQuestion          types.ResourceKey = "DefaultQuestion"
	KeySalutationTitleText      types.ResourceKey = "SalutationTitleText"
	KeyOptInText                types.ResourceKey = "OptInText"
	KeyOptInButtonText          types.ResourceKey = "OptInButtonText"
	KeyInstallMessagePart1      types.ResourceKey = "InstallMessagePart1"
	KeyInstallMessagePart2      types.ResourceKey = "InstallMessagePart2"
	KeyInstallMessageKnownPart1 types.ResourceKey = "InstallMessageKnownInstallerPart1"
)

// NeutralLocale is the culture used when no locale-specific text exists
const NeutralLocale types.Locale = "en"

// compiledStrings is the built-in string table. Format arguments use fmt
// verbs; the card factory knows the argument order for each key.
var compiledStrings = map[types.Locale]map[types.ResourceKey]string{
	"en": {
		KeyMatchUpCardTitleContent:  "Time for a meetup!",
		KeyMatchUpCardMatchedText:   "You have been matched with %s.",
		KeyMatchUpCardContentPart1:  "%s here! I've matched you in %s with %s. Why not take a few minutes to get to know each other?",
		KeyMatchUpCardContentPart2:  "Grab a coffee, go for a walk, or hop on a quick call.",
		KeyMatchUpCardQuestion:      "Here is an icebreaker to get you started: %s",
		KeyChatWithMatchButtonText:  "Chat with %s",
		KeyChatWithMessageGreeting:  "Hi there! We got matched up. Here is a question to get us going: %s",
		KeyPausePairingsButtonText:  "Pause matches",
		KeyProposeMeetupButtonText:  "Propose a meetup",
		KeyMeetupTitle:              "Meetup of %s and %s",
		KeyMeetupContent:            "This meetup was suggested by %s",
		KeyDefaultQuestion:          "What is the best movie you have seen this year?",
		KeySalutationTitleText:      "Hi there!",
		KeyOptInText:                "Opt in to get matched with a teammate for a casual chat.",
		KeyOptInButtonText:          "Count me in",
		KeyInstallMessagePart1:      "I am now active in %s.",
		KeyInstallMessagePart2:      "Every week I will pair up members of this team for a friendly chat.",
		KeyInstallMessageKnownPart1: "%s added me to %s.",
	},
	"de": {
		KeyMatchUpCardTitleContent:  "Zeit für ein Treffen!",
		KeyMatchUpCardMatchedText:   "Du wurdest mit %s zusammengebracht.",
		KeyMatchUpCardContentPart1:  "%s hier! Ich habe dich in %s mit %s zusammengebracht. Nehmt euch doch ein paar Minuten, um euch kennenzulernen.",
		KeyMatchUpCardContentPart2:  "Trefft euch auf einen Kaffee, macht einen Spaziergang oder telefoniert kurz.",
		KeyMatchUpCardQuestion:      "Hier eine Frage zum Einstieg: %s",
		KeyChatWithMatchButtonText:  "Mit %s chatten",
		KeyChatWithMessageGreeting:  "Hallo! Wir wurden einander zugeteilt. Hier eine Frage für den Anfang: %s",
		KeyPausePairingsButtonText:  "Zuteilungen pausieren",
		KeyProposeMeetupButtonText:  "Treffen vorschlagen",
		KeyMeetupTitle:              "Treffen von %s und %s",
		KeyMeetupContent:            "Dieses Treffen wurde von %s vorgeschlagen",
		KeyDefaultQuestion:          "Was ist der beste Film, den du dieses Jahr gesehen hast?",
		KeySalutationTitleText:      "Hallo!",
		KeyOptInText:                "Mach mit und werde für ein lockeres Gespräch zugeteilt.",
		KeyOptInButtonText:          "Ich bin dabei",
		KeyInstallMessagePart1:      "Ich bin jetzt in %s aktiv.",
		KeyInstallMessagePart2:      "Jede Woche bringe ich Mitglieder dieses Teams für ein Gespräch zusammen.",
		KeyInstallMessageKnownPart1: "%s hat mich zu %s hinzugefügt.",
	},
}
