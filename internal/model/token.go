package model

import "time"

// Token is the persisted CareCloud bearer token. Expires is a unix
// timestamp; the zero value counts as expired so a missing record
// forces a login.
type Token struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
}

func (t *Token) IsExpired(now time.Time) bool {
	return t.Expires <= now.Unix()
}
