package models

// Token is an issued session token kept in the allow-list table.
// Rows carry no expiry: the JWT itself embeds the expiry claim, the row
// only records that the token has not been revoked yet.
type Token struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}
