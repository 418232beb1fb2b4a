package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// avatarURL derives a Gravatar-style URL from an email address. Purely local
// and deterministic: 200px, PG rating, "mm" (mystery man) fallback image.
func avatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
