// Package share publishes a finished round's score. The preferred target is
// the X web intent opened in a browser; when that is unavailable the message
// is copied to the terminal clipboard with OSC 52 and the intent URL is
// rendered as a QR code for a phone to scan.
package share

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
	"github.com/skip2/go-qrcode"
)

const intentBase = "https://x.com/intent/post"

// Message builds the fixed share text.
func Message(player string, score int) string {
	return fmt.Sprintf("🎮 I scored %d points in Wizard Chase! 🧙\nPlayer: %s\n#WizardChase #Anoma #Gaming", score, player)
}

// IntentURL returns the X web intent that pre-fills message.
func IntentURL(message string) string {
	return intentBase + "?text=" + url.QueryEscape(message)
}

// Outcome says which target handled the share.
type Outcome int

const (
	OutcomeOpened Outcome = iota // Browser opened the intent
	OutcomeCopied                // Fallback panel: clipboard + QR
)

// Result describes what the UI should show after a share.
type Result struct {
	Outcome Outcome
	Message string
	URL     string
	QR      string // Terminal QR code of URL; set for OutcomeCopied
}

// Options configures a Sharer.
type Options struct {
	// Clipboard receives the OSC 52 sequence, usually the terminal output.
	Clipboard io.Writer
	// UseBrowser allows opening a local browser. SSH sessions disable it.
	UseBrowser bool
	Logger     *log.Logger
}

// Sharer performs shares.
type Sharer struct {
	clipboard  io.Writer
	useBrowser bool
	open       func(string) error
	logger     *log.Logger
}

// New creates a Sharer.
func New(opts Options) *Sharer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = io.Discard
	}
	return &Sharer{
		clipboard:  clip,
		useBrowser: opts.UseBrowser,
		open:       openBrowser,
		logger:     logger,
	}
}

func openBrowser(u string) error {
	// The browser launcher prints to stdout, which belongs to the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(u)
}

// Share publishes player's score. It never fails: when the browser cannot
// be used the fallback panel is returned.
func (s *Sharer) Share(player string, score int) Result {
	msg := Message(player, score)
	res := Result{Message: msg, URL: IntentURL(msg)}

	if s.useBrowser {
		err := s.open(res.URL)
		if err == nil {
			res.Outcome = OutcomeOpened
			return res
		}
		s.logger.Warn("could not open browser, falling back", "error", err)
	}

	res.Outcome = OutcomeCopied
	if _, err := osc52.New(msg).WriteTo(s.clipboard); err != nil {
		s.logger.Warn("could not copy to clipboard", "error", err)
	}
	qr, err := QR(res.URL)
	if err != nil {
		s.logger.Warn("could not render QR code", "error", err)
	}
	res.QR = qr
	return res
}

// QR renders content as a compact terminal QR code.
func QR(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("share: cannot encode QR: %w", err)
	}
	return strings.TrimRight(q.ToSmallString(false), "\n"), nil
}
