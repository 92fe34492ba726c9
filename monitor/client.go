// Package monitor ships bench status samples to a capture service so runs
// can be reviewed after the fact.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/calvinmclean/babyapi"
)

// Status is one parsed status line from the device
type Status struct {
	Direction   string    `json:"direction"`
	Revolutions int       `json:"revolutions"`
	Count       uint      `json:"count"`
	At          time.Time `json:"at"`
}

// ParseStatus parses a device status line like
// "Direction:F, Full Revs: 12, 847 counts". It reports false for any line
// that is not a status line; the device also emits help and debug output
// on the same stream.
func ParseStatus(line string) (Status, bool) {
	var s Status
	n, err := fmt.Sscanf(line, "Direction:%1s, Full Revs: %d, %d counts",
		&s.Direction, &s.Revolutions, &s.Count)
	if err != nil || n != 3 {
		return Status{}, false
	}
	if s.Direction != "F" && s.Direction != "R" {
		return Status{}, false
	}
	s.At = time.Now()
	return s, true
}

type sample struct {
	// include NilResource so we don't implement Render/Bind which are not needed
	*babyapi.NilResource

	ID string `json:"id,omitempty"`
	Status
}

func (s sample) GetID() string {
	return s.ID
}

// Client posts samples to a capture service
type Client struct {
	client *babyapi.Client[*sample]
}

func NewClient(addr string) *Client {
	return &Client{client: babyapi.NewClient[*sample](addr, "/samples")}
}

// Record posts one status sample
func (c *Client) Record(ctx context.Context, s Status) error {
	_, err := c.client.Post(ctx, &sample{Status: s})
	if err != nil {
		return fmt.Errorf("error posting sample: %w", err)
	}
	return nil
}
