package gallery

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"coplot/internal/figure"
)

// Client talks to a gallery server.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for the gallery at base.
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Figures lists the figures the gallery serves.
func (c *Client) Figures() ([]figure.Info, error) {
	var out []figure.Info
	if err := c.getJSON("/figures", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Figure fetches one rendered figure in the given format.
func (c *Client) Figure(name, format string) ([]byte, error) {
	return c.get("/figure/" + url.PathEscape(name+"."+format))
}

// Thumb fetches the small preview for a figure.
func (c *Client) Thumb(name string) ([]byte, error) {
	return c.get("/figure/" + url.PathEscape(name) + "/thumb.png")
}

func (c *Client) get(path string) ([]byte, error) {
	resp, err := c.HTTP.Get(c.Base + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("gallery get %s: %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.HTTP.Get(c.Base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("gallery get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
