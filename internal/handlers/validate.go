package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for catalog and contact fields.
const (
	maxNameLen        = 300
	maxDescriptionLen = 10_000
	maxMetaTitleLen   = 300
	maxMetaDescLen    = 500
	maxKeywords       = 50
	maxFeatureLen     = 1_000
	maxFAQLen         = 5_000
	maxContactName    = 200
	maxContactSubject = 300
	maxContactBodyLen = 10_000
)

// validateName checks the mandatory display name every catalog entity has.
func validateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 300 characters)."
	}
	return ""
}

// validateDescription checks the optional long description.
func validateDescription(desc string) string {
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	return ""
}

// validateMeta checks optional SEO metadata fields.
func validateMeta(metaTitle, metaDesc string) string {
	if utf8.RuneCountInString(metaTitle) > maxMetaTitleLen {
		return "Meta title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(metaDesc) > maxMetaDescLen {
		return "Meta description is too long (max 500 characters)."
	}
	return ""
}

// validateKeywords bounds the keyword list.
func validateKeywords(keywords []string) string {
	if len(keywords) > maxKeywords {
		return "Too many keywords (max 50)."
	}
	return ""
}

// validateContact checks public contact-form submissions.
func validateContact(name, email, subject, body string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxContactName {
		return "Name is too long (max 200 characters)."
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if !strings.Contains(email, "@") {
		return "Email is not valid."
	}
	if utf8.RuneCountInString(subject) > maxContactSubject {
		return "Subject is too long (max 300 characters)."
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(body) > maxContactBodyLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}
