// Package gravatar resolves avatar image URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// ImageURL returns the Gravatar URL for an email address, sized for
// the mobile client profile views.
func ImageURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?r=g&s=300", hash)
}
