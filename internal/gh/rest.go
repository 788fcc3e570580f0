package gh

import (
	"context"
	"net/url"
)

// FetchProfile fetches the user's REST profile. This is a required fetch:
// its failure is fatal for the run.
func (c *Client) FetchProfile(ctx context.Context, username string) (Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username), nil,
		"fetch user profile", &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
