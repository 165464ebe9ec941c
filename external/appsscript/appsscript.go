package appsscript

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Mailer posts rendered emails to the Google Apps Script web app that
// relays them through the farm's Gmail account. The script answers 200
// with a small JSON body whose "result" field says success or error.
type Mailer struct {
	endpoint string
	client   *http.Client
}

func NewMailer() (*Mailer, error) {
	endpoint := os.Getenv("APPS_SCRIPT_URL")
	if endpoint == "" {
		return nil, errors.New("APPS_SCRIPT_URL not set")
	}

	return &Mailer{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	form := url.Values{}
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("html", htmlBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)

	if resp.StatusCode >= 300 {
		return errors.New("email relay rejected message: " + buf.String())
	}
	// Apps Script reports script-level failures with a 200 and an error body
	if strings.Contains(buf.String(), `"result":"error"`) {
		return errors.New("email relay reported error: " + buf.String())
	}

	return nil
}
