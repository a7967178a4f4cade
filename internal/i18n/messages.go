package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a UI string.
type Key string

// UI string keys.
const (
	KeyWelcomeTitle    Key = "welcome_title"
	KeyWelcomeSubtitle Key = "welcome_subtitle"
	KeyRulesTitle      Key = "rules_title"
	KeyRules           Key = "rules"
	KeyNameHint        Key = "name_hint"
	KeyStartGame       Key = "start_game"
	KeyNameRequired    Key = "name_required"
	KeySettings        Key = "settings"
	KeyLanguage        Key = "language"
	KeyAudioSettings   Key = "audio_settings"
	KeyMusic           Key = "background_music"
	KeySound           Key = "sound_effects"
	KeyOn              Key = "on"
	KeyOff             Key = "off"
	KeyTime            Key = "time"
	KeyScore           Key = "score"
	KeyPaused          Key = "paused"
	KeyExitTitle       Key = "exit_title"
	KeyExitMessage     Key = "exit_message"
	KeyYes             Key = "yes"
	KeyNo              Key = "no"
	KeyGameOver        Key = "game_over"
	KeyResults         Key = "results"
	KeyPlayer          Key = "player"
	KeyFinalScore      Key = "final_score"
	KeyTimePlayed      Key = "time_played"
	KeySeconds         Key = "seconds"
	KeyNewRecord       Key = "new_record"
	KeyPlayAgain       Key = "play_again"
	KeyShareScore      Key = "share_score"
	KeyShareOpened     Key = "share_opened"
	KeyShareCopied     Key = "share_copied"
	KeyShareScan       Key = "share_scan"
	KeyBestScores      Key = "best_scores"
	KeyNoScores        Key = "no_scores"
	KeyToastScore      Key = "toast_score"
	KeyToastTime       Key = "toast_time"
	KeyToastSlow       Key = "toast_slow"
)

// Keys lists every key; each language table must define all of them.
var Keys = []Key{
	KeyWelcomeTitle, KeyWelcomeSubtitle, KeyRulesTitle, KeyRules, KeyNameHint,
	KeyStartGame, KeyNameRequired, KeySettings, KeyLanguage, KeyAudioSettings,
	KeyMusic, KeySound, KeyOn, KeyOff, KeyTime, KeyScore, KeyPaused,
	KeyExitTitle, KeyExitMessage, KeyYes, KeyNo, KeyGameOver, KeyResults,
	KeyPlayer, KeyFinalScore, KeyTimePlayed, KeySeconds, KeyNewRecord,
	KeyPlayAgain, KeyShareScore, KeyShareOpened, KeyShareCopied, KeyShareScan,
	KeyBestScores, KeyNoScores, KeyToastScore, KeyToastTime, KeyToastSlow,
}

var builder = newBuilder()

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, table := range translations {
		tag := language.Make(code)
		for key, msg := range table {
			// SetString only fails for malformed tags, which the table never has.
			_ = b.SetString(tag, string(key), msg)
		}
	}
	return b
}

// Printer renders UI strings for one language.
type Printer struct {
	lang Language
	p    *message.Printer
}

// NewPrinter returns a printer for code, falling back to English for
// codes outside the catalog.
func NewPrinter(code string) *Printer {
	lang, err := Lookup(code)
	if err != nil {
		lang = English
	}
	return &Printer{
		lang: lang,
		p:    message.NewPrinter(lang.Tag(), message.Catalog(builder)),
	}
}

// Language returns the language the printer renders.
func (p *Printer) Language() Language {
	return p.lang
}

// T renders key with optional format arguments.
func (p *Printer) T(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}

// Has reports whether code defines key. Used by tests and the CLI.
func Has(code string, key Key) bool {
	table, ok := translations[code]
	if !ok {
		return false
	}
	_, ok = table[key]
	return ok
}
