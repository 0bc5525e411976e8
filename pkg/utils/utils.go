package utils

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt cost used for stored password hashes.
const DefaultPasswordCost = 14

// HashPassword hashes a plain password using bcrypt with DefaultPasswordCost.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultPasswordCost)
}

// HashPasswordWithCost hashes a plain password using the given bcrypt cost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail returns true if the string is a bare email address.
// Display-name forms like "Bob <bob@example.com>" are rejected.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain part.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
