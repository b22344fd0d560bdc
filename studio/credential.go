package studio

import "github.com/rtaylor52242/logo-animator-studio/common/config"

// CheckCredential answers the gate's startup question: is a usable
// API key configured for this process?
func CheckCredential() CredentialState {
	if config.GeminiAPIKey != "" {
		return CredentialPresent
	}
	return CredentialAbsent
}
