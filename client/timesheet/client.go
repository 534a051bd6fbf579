// Package timesheet pushes saved schedule entries to a remote
// timesheet service over its JSON API, authenticating with OAuth2.
package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/sporadisk/punchout/client"
)

type Client struct {
	// Configuration
	Endpoint      string
	ApplicationID string
	ClientSecret  string
	TokenPath     string

	// State
	HttpClient  *client.HttpClient
	oauthConfig *oauth2.Config
	token       *oauth2.Token
}

func (c *Client) Init() error {
	if c.Endpoint == "" {
		return fmt.Errorf("timesheet endpoint is not configured")
	}
	if !strings.HasSuffix(c.Endpoint, "/") {
		c.Endpoint += "/"
	}

	c.HttpClient = client.NewHttpClient(10 * time.Second)
	c.oauthConfig = &oauth2.Config{
		ClientID:     c.ApplicationID,
		ClientSecret: c.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.apiURL("oauth/authorize"),
			TokenURL: c.apiURL("oauth/token"),
		},
	}
	return nil
}

func (c *Client) apiURL(path string) string {
	return c.Endpoint + path
}

// prep runs prior to API calls to make sure a usable token is loaded.
func (c *Client) prep(ctx context.Context) error {
	if c.token == nil {
		err := c.loadTokenFromFile()
		if err != nil {
			return fmt.Errorf("loadTokenFromFile: %w", err)
		}
	}

	if c.needTokenRefresh(time.Now()) {
		err := c.refreshToken(ctx)
		if err != nil {
			return fmt.Errorf("refreshToken: %w", err)
		}
	}

	return nil
}

func (c *Client) needTokenRefresh(now time.Time) bool {
	if c.token == nil {
		return true
	}
	return c.token.Expiry.Before(now.Add(time.Hour))
}

func (c *Client) refreshToken(ctx context.Context) error {
	fresh, err := c.oauthConfig.TokenSource(ctx, c.token).Token()
	if err != nil {
		return fmt.Errorf("token source: %w", err)
	}

	if fresh.AccessToken != c.token.AccessToken {
		c.token = fresh
		err = c.saveTokenToFile()
		if err != nil {
			return fmt.Errorf("saveTokenToFile: %w", err)
		}
	}

	return nil
}

func (c *Client) loadTokenFromFile() error {
	if c.TokenPath == "" {
		return fmt.Errorf("token path is not configured")
	}

	data, err := os.ReadFile(c.TokenPath)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	token := oauth2.Token{}
	err = json.Unmarshal(data, &token)
	if err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	c.token = &token
	return nil
}

func (c *Client) saveTokenToFile() error {
	data, err := json.Marshal(c.token)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	err = os.WriteFile(c.TokenPath, data, 0600)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
