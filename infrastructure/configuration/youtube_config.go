package configuration

import (
	"encoding/json"
	"os"
	"strings"
)

// tokenFile is where an OAuth consent flow leaves its tokens.
var tokenFile = "token.json"

// resolveYouTube drops placeholder values copied from sample configs and,
// when OAuth tokens are missing, tries token.json.
func resolveYouTube(yt *YouTube) {
	yt.APIKey = dropPlaceholder(yt.APIKey)
	yt.ClientID = dropPlaceholder(yt.ClientID)
	yt.ClientSecret = dropPlaceholder(yt.ClientSecret)
	yt.AccessToken = dropPlaceholder(yt.AccessToken)
	yt.RefreshToken = dropPlaceholder(yt.RefreshToken)

	if yt.AccessToken != "" && yt.RefreshToken != "" {
		return
	}
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return
	}
	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return
	}
	if yt.AccessToken == "" {
		yt.AccessToken = tokens.AccessToken
	}
	if yt.RefreshToken == "" {
		yt.RefreshToken = tokens.RefreshToken
	}
}

// HasOAuth reports whether the OAuth refresh flow can be used instead of an API key.
func (yt YouTube) HasOAuth() bool {
	return yt.RefreshToken != "" && yt.ClientID != "" && yt.ClientSecret != ""
}

func dropPlaceholder(v string) string {
	upper := strings.ToUpper(v)
	if strings.HasPrefix(upper, "YOUR_") || strings.HasSuffix(upper, "_HERE") {
		return ""
	}
	return v
}
