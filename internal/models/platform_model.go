package models

const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformBluesky   = "bluesky"
)

// Platforms lists every platform a post can target.
var Platforms = []string{PlatformTwitter, PlatformInstagram, PlatformFacebook, PlatformBluesky}

func IsValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

type ConnectedPlatform struct {
	ID               int64   `db:"id" json:"id"`
	UserID           int64   `db:"user_id" json:"userId"`
	Platform         string  `db:"platform" json:"platform"`
	Connected        bool    `db:"connected" json:"connected"`
	AccessToken      *string `db:"access_token" json:"accessToken"`
	RefreshToken     *string `db:"refresh_token" json:"refreshToken"`
	PlatformUsername *string `db:"platform_username" json:"platformUsername"`
}
