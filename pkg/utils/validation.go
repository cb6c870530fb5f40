package utils

import (
	"regexp"
	"strings"

	"github.com/hridaya423/bookify/pkg/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

// ValidateUsername checks if username meets account requirements
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return models.ErrInvalidInput
	}
	return nil
}

// ValidatePassword checks if password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 128 {
		return models.ErrInvalidInput
	}
	return nil
}

// ValidateBookTitle validates a book title
func ValidateBookTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || len(title) > 500 {
		return models.ErrInvalidInput
	}
	return nil
}

// ValidateAuthor validates an author name
func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" || len(author) > 255 {
		return models.ErrInvalidInput
	}
	return nil
}
