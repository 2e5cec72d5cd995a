package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram posts messages to a bot chat through the Bot API.
type Telegram struct {
	token   string
	chatID  string
	apiBase string
	timeout time.Duration
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		apiBase: defaultAPIBase,
		timeout: 10 * time.Second,
	}
}

// NewTelegramWithBase points the client at a different API host (tests).
func NewTelegramWithBase(token, chatID, apiBase string) *Telegram {
	t := NewTelegram(token, chatID)
	t.apiBase = apiBase
	return t
}

// Send delivers one Markdown message to the configured chat.
func (t *Telegram) Send(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	code := 0
	err := gout.POST(fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)).
		WithContext(ctx).
		SetJSON(gout.H{
			"chat_id":                  t.chatID,
			"text":                     text,
			"parse_mode":               "Markdown",
			"disable_web_page_preview": true,
		}).
		Code(&code).
		Do()
	if err != nil {
		return errors.Wrap(err, "telegram request")
	}
	if code != http.StatusOK {
		return errors.Errorf("telegram: unexpected status %d", code)
	}
	return nil
}
