package models

// User is a registered account. Handle is the unique login key.
// PasswordHash holds the bcrypt digest; responses expose the digest,
// never the plaintext.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Handle       string `json:"usuario"`
	PasswordHash string `json:"senha"`
	Photo        string `json:"foto,omitempty"`
}
