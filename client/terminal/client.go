package terminal

import (
	"fmt"

	"github.com/sporadisk/punchout/format"
)

type Client struct {
	TimeFormat string
	// ShowPeriods lists every work and break period above the totals.
	ShowPeriods bool
}

func (c *Client) Init() error {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeHM
	}

	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return fmt.Errorf("ValidateTimeFormat: %w", err)
	}
	return nil
}
