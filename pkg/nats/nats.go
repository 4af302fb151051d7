package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client is a thin wrapper over the NATS connection so the rest of the app
// doesn't import the driver directly.
type Client struct {
	conn *nats.Conn
}

func New(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Publish(subject string, data []byte) error {
	return c.conn.Publish(subject, data)
}

func (c *Client) Subscribe(subject string, handler func(data []byte)) error {
	_, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	return err
}

func (c *Client) Close() error {
	if err := c.conn.Drain(); err != nil {
		return err
	}
	c.conn.Close()
	return nil
}
