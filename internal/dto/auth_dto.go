package dto

type LoginRequest struct {
	PIN string `json:"pin" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// SetPinRequest changes the admin PIN. CurrentPIN is required once a PIN has
// been set.
type SetPinRequest struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin" validate:"required,min=4"`
}

type AuthStatusResponse struct {
	PinSet bool `json:"pin_set"`
}

// ─── Settings ────────────────────────────────────────────────────────────────

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// ─── Backups ─────────────────────────────────────────────────────────────────

type BackupResponse struct {
	Name string `json:"name"`
}
