// Package google provides OAuth2 authentication and token management for
// the Gmail and Drive APIs.
//
// Tokens are stored on disk in the user cache directory, one file per
// account, so the consent flow only has to run once per account. OAuth
// client credentials are read from the environment
// (GOOGLE_OAUTH_CLIENT_ID / GOOGLE_OAUTH_CLIENT_SECRET).
package google
