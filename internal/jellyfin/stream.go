package jellyfin

import (
	"fmt"
	"net/url"
)

// GetStreamURL returns a direct-play streaming URL for an item.
func (c *Client) GetStreamURL(itemID string) string {
	params := url.Values{}
	params.Set("Static", "true")
	params.Set("api_key", c.token)
	return fmt.Sprintf("%s/Videos/%s/stream?%s",
		c.serverURL, url.PathEscape(itemID), params.Encode())
}
