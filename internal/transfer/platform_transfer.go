package transfer

type PlatformConnection struct {
	Platform         string  `json:"platform" validate:"required,oneof=twitter instagram facebook bluesky"`
	Connected        *bool   `json:"connected"`
	AccessToken      *string `json:"accessToken"`
	RefreshToken     *string `json:"refreshToken"`
	PlatformUsername *string `json:"platformUsername"`
}

type PlatformDisconnection struct {
	Platform string `json:"platform" validate:"required,oneof=twitter instagram facebook bluesky"`
}
