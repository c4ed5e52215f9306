// Package config loads tutordesk's TOML configuration.
//
// Load reads ~/.config/tutordesk/config.toml unless a path is given. A
// missing file is not an error; every field falls back to Default. Present
// but blank fields also fall back to their defaults.
//
// Example config.toml:
//
//	api_url = "http://127.0.0.1:8080"
//	request_timeout = "5s"
//	search_debounce = "300ms"
//	toast_duration = "3.5s"
//	refresh_interval = "0s"
//	log_file = "~/.local/state/tutordesk/tutordesk.log"
//
// Durations use time.ParseDuration syntax. A malformed or negative duration
// fails Load with an error naming the offending key. A refresh_interval of
// zero disables background reloads. Paths beginning with ~ are expanded
// against the user's home directory.
package config
