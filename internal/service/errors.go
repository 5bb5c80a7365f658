// Package service implements the business operations on users, recipes
// and favorites on top of the GORM store.
package service

import "errors"

// Sentinel errors returned by the services. Handlers translate these to
// HTTP status codes with errors.Is; everything else is treated as an
// internal store failure.
var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecipeNotFound is returned when the referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrEmailTaken is returned when another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPasswordTooShort is returned when a password is under the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrNameRequired is returned when a user is created without a name.
	ErrNameRequired = errors.New("name is required")

	// ErrNoIngredients is returned when a recipe would end up with an
	// empty ingredient set.
	ErrNoIngredients = errors.New("recipe must have at least one ingredient")

	// ErrAlreadyFavorited is returned when the (user, recipe) pair is
	// already favorited.
	ErrAlreadyFavorited = errors.New("recipe already in favorites")

	// ErrInvalidCredentials is returned on any login failure. The message
	// never reveals whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6
