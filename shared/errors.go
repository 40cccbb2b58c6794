package shared

import (
	"errors"
	"fmt"
)

// Media resolution outcomes that mean "no media for this post". None of them stop the bot.
var (
	ErrUnresolvableIdentifier = errors.New("could not extract a content ID from the URL")
	ErrPlaceholderAsset       = errors.New("host served a placeholder instead of the requested asset")
	ErrNoMediaAvailable       = errors.New("no media available for post")
	ErrNotMedia               = errors.New("URL does not point to a supported media type")
)

// ConfigError means the bot cannot start with the given configuration.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Msg, e.Err)
	}
	return "configuration error: " + e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AuthError is a rejected login to a publishing platform or the content source at startup. Fatal.
type AuthError struct {
	Service string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication with %s failed: %v", e.Service, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ServiceAuthError is a failed login or lookup against a media hosting service's API.
// It only costs the current post its media.
type ServiceAuthError struct {
	Service string
	Err     error
}

func (e *ServiceAuthError) Error() string {
	return fmt.Sprintf("%s API request failed: %v", e.Service, e.Err)
}

func (e *ServiceAuthError) Unwrap() error { return e.Err }

// DownloadFailed is a non-OK HTTP status while fetching a media file.
type DownloadFailed struct {
	Url    string
	Status int
}

func (e *DownloadFailed) Error() string {
	return fmt.Sprintf("download of %s failed with status %d", e.Url, e.Status)
}

// IsNonFatalMediaError tells if err is one of the media resolution errors that leave the post without media.
func IsNonFatalMediaError(err error) bool {
	if err == nil {
		return false
	}
	var sae *ServiceAuthError
	var df *DownloadFailed
	return errors.Is(err, ErrUnresolvableIdentifier) ||
		errors.Is(err, ErrPlaceholderAsset) ||
		errors.Is(err, ErrNoMediaAvailable) ||
		errors.Is(err, ErrNotMedia) ||
		errors.As(err, &sae) ||
		errors.As(err, &df)
}
