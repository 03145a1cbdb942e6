// Package uploader posts canonical books to the external ingestion API.
package uploader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

// passwordHeader carries the shared upload secret.
const passwordHeader = "x-upload-password"

// Metadata labels attached to every uploaded book.
type Metadata struct {
	Tradition string
	Source    string
	Work      string
}

type payloadBook struct {
	Title    string            `json:"title"`
	Chapters []*corpus.Chapter `json:"chapters"`
}

type payload struct {
	Tradition string      `json:"tradition"`
	Source    string      `json:"source"`
	Work      string      `json:"work"`
	Book      payloadBook `json:"book"`
}

// Client uploads books one at a time to a fixed endpoint.
type Client struct {
	url      string
	password string
	http     *http.Client
	log      *logrus.Entry
}

// NewClient builds a client for the endpoint with the shared password.
func NewClient(opts *config.Options, url, password string) *Client {
	return &Client{
		url:      url,
		password: password,
		http:     &http.Client{},
		log:      opts.Logger().WithField("component", "uploader"),
	}
}

// Upload posts one book. Any response status of 300 or above is an error;
// callers treat it as a per-book failure and keep going.
func (c *Client) Upload(book *corpus.Book, meta Metadata) error {
	body, err := json.Marshal(payload{
		Tradition: meta.Tradition,
		Source:    meta.Source,
		Work:      meta.Work,
		Book:      payloadBook{Title: book.Name, Chapters: book.Chapters},
	})
	if err != nil {
		return fmt.Errorf("failed to encode upload payload for %s: %w", book.Name, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upload request for %s: %w", book.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(passwordHeader, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed for %s: %w", book.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload failed for %s: status %d: %s", book.Name, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	c.log.WithFields(logrus.Fields{"book": book.Name, "status": resp.StatusCode}).Info("uploaded book")
	return nil
}
