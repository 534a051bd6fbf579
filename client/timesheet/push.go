package timesheet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sporadisk/punchout/history"
)

type pushPayload struct {
	Date         string  `json:"date"`
	ActiveHours  float64 `json:"active_hours"`
	BreakMinutes int     `json:"break_minutes"`
	Logout       string  `json:"logout"`
}

// Push uploads history entries one at a time. It stops at the first
// failure so a retry does not skip entries.
func (c *Client) Push(ctx context.Context, entries []history.Entry) error {
	err := c.prep(ctx)
	if err != nil {
		return fmt.Errorf("c.prep: %w", err)
	}

	for _, e := range entries {
		err = c.pushEntry(ctx, e)
		if err != nil {
			return fmt.Errorf("pushing entry %s: %w", e.ID, err)
		}
	}

	return nil
}

func (c *Client) pushEntry(ctx context.Context, e history.Entry) error {
	payload, err := json.Marshal(pushPayload{
		Date:         e.DateLabel,
		ActiveHours:  e.ActiveHours,
		BreakMinutes: e.BreakMinutes,
		Logout:       e.LogoutLabel,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	resp, err := c.HttpClient.PostJSON(ctx, c.apiURL("entries"), c.token.AccessToken, payload)
	if err != nil {
		return fmt.Errorf("PostJSON: %w", err)
	}

	if resp.Code < 200 || resp.Code > 299 {
		return fmt.Errorf("unexpected status %d: %s", resp.Code, string(resp.Body))
	}

	return nil
}
