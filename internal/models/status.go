package models

// ProviderStatus reports whether the geo provider accepts the configured API key.
type ProviderStatus struct {
	Working bool   `json:"working"`
	Message string `json:"message"`
}
