package share

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestMessage(t *testing.T) {
	msg := Message("Ava", 30)
	for _, want := range []string{"30 points", "Player: Ava", "#WizardChase #Anoma #Gaming"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Message missing %q: %q", want, msg)
		}
	}
}

func TestIntentURLRoundTrips(t *testing.T) {
	msg := Message("Ava & Bo", 120)
	u, err := url.Parse(IntentURL(msg))
	if err != nil {
		t.Fatalf("url.Parse() failed: %v", err)
	}
	if u.Host != "x.com" {
		t.Errorf("Expected x.com host, got %q", u.Host)
	}
	if got := u.Query().Get("text"); got != msg {
		t.Errorf("Query text = %q, want %q", got, msg)
	}
}

func newTestSharer(clip io.Writer, useBrowser bool, open func(string) error) *Sharer {
	s := New(Options{Clipboard: clip, UseBrowser: useBrowser, Logger: log.New(io.Discard)})
	s.open = open
	return s
}

func TestShareOpensBrowser(t *testing.T) {
	var opened string
	var clip bytes.Buffer
	s := newTestSharer(&clip, true, func(u string) error {
		opened = u
		return nil
	})

	res := s.Share("Ava", 30)
	if res.Outcome != OutcomeOpened {
		t.Fatalf("Expected OutcomeOpened, got %v", res.Outcome)
	}
	if opened != res.URL {
		t.Errorf("Opened %q, want %q", opened, res.URL)
	}
	if clip.Len() != 0 {
		t.Error("Clipboard should not be used when the browser opens")
	}
}

func TestShareFallsBackWhenBrowserFails(t *testing.T) {
	var clip bytes.Buffer
	s := newTestSharer(&clip, true, func(string) error { return errors.New("no browser") })

	res := s.Share("Ava", 30)
	if res.Outcome != OutcomeCopied {
		t.Fatalf("Expected OutcomeCopied, got %v", res.Outcome)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(res.Message))
	if !strings.Contains(clip.String(), encoded) {
		t.Errorf("Clipboard sequence does not carry the message: %q", clip.String())
	}
	if res.QR == "" {
		t.Error("Expected QR code in fallback")
	}
}

func TestShareWithoutBrowserSkipsOpen(t *testing.T) {
	called := false
	s := newTestSharer(io.Discard, false, func(string) error {
		called = true
		return nil
	})

	res := s.Share("Ava", 10)
	if called {
		t.Error("Browser should not be used when disabled")
	}
	if res.Outcome != OutcomeCopied {
		t.Errorf("Expected OutcomeCopied, got %v", res.Outcome)
	}
}

func TestQR(t *testing.T) {
	qr, err := QR("https://x.com")
	if err != nil {
		t.Fatalf("QR() failed: %v", err)
	}
	lines := strings.Split(qr, "\n")
	if len(lines) < 10 {
		t.Errorf("QR code too small: %d lines", len(lines))
	}
}
