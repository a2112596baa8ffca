package models

import (
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// MinContentLength is the minimum note content length after trimming.
const MinContentLength = 3

// ValidateCredentials checks signup input. Both fields are required;
// no other shape constraints are imposed on them.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return common.NewValidationError("Username and password are required.")
	}
	return nil
}

// ValidateNote trims title and content and checks the write rules:
// title non-empty, content non-empty and at least MinContentLength runes
// after trimming. On success the returned values are the trimmed forms
// that must be persisted.
func ValidateNote(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	var messages []string
	if title == "" {
		messages = append(messages, "Title is required.")
	}
	if content == "" {
		messages = append(messages, "Content is required.")
	} else if len([]rune(content)) < MinContentLength {
		messages = append(messages, "Content must be at least 3 characters.")
	}

	if len(messages) > 0 {
		return "", "", common.NewValidationError(messages...)
	}
	return title, content, nil
}
