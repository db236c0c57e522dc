package validators

import (
	"fmt"
	"regexp"
)

// Operation names.
const (
	ProfileRegister = "register"
	ProfileLogin    = "login"
)

// Payload field names shared by the account operations.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmailID   = "emailId"
	FieldPassword  = "password"
)

const (
	minFirstNameLength = 2
	maxNameLength      = 25
	minPasswordLength  = 8
)

var (
	lettersOnly        = regexp.MustCompile(`^[A-Za-z]+$`)
	lettersOnlyOrEmpty = regexp.MustCompile(`^[A-Za-z]*$`)
	hasUppercase       = regexp.MustCompile(`[A-Z]`)
	hasLowercase       = regexp.MustCompile(`[a-z]`)
	hasDigit           = regexp.MustCompile(`[0-9]`)
	hasSymbol          = regexp.MustCompile(`[^\w\s]`)
)

func emailChain() FieldChain {
	return Field(FieldEmailID,
		Escape(),
		Trim(),
		NotEmpty("Email should not be empty"),
		Email("Invalid email address"),
	)
}

// Password composition checks are independent: a weak password reports
// every missing criterion at once.
var registerProfile = MustProfile(ProfileRegister,
	[]string{FieldFirstName, FieldLastName, FieldEmailID, FieldPassword},

	Field(FieldFirstName,
		Escape(),
		Trim(),
		NotEmpty("First name should not be empty"),
		Length(minFirstNameLength, maxNameLength, "First name should be between 2 and 25 characters"),
		Alpha("First name should contain only alphabets"),
		Matches(lettersOnly, "First name should not contain spaces"),
	),

	Field(FieldLastName,
		Escape(),
		Trim(),
		Optional(),
		MaxLength(maxNameLength, "Last name should be less than 25 characters"),
		Alpha("Last name should contain only alphabets"),
		Matches(lettersOnlyOrEmpty, "Last name should not contain spaces"),
	),

	emailChain(),

	Field(FieldPassword,
		Escape(),
		NotEmpty("Password should not be empty"),
		AllOf(
			Length(minPasswordLength, 0, "Password should be at least 8 characters long"),
			Matches(hasUppercase, "Password must contain at least one uppercase letter"),
			Matches(hasLowercase, "Password must contain at least one lowercase letter"),
			Matches(hasDigit, "Password must contain at least one number"),
			Matches(hasSymbol, "Password must contain at least one symbol"),
		),
	),
)

var loginProfile = MustProfile(ProfileLogin,
	[]string{FieldEmailID, FieldPassword},

	emailChain(),

	Field(FieldPassword,
		Escape(),
		Trim(),
		NotEmpty("Password should not be empty"),
	),
)

// Register returns the registration profile.
func Register() *Profile {
	return registerProfile
}

// Login returns the login profile.
func Login() *Profile {
	return loginProfile
}

// Lookup returns the compiled-in profile called name.
func Lookup(name string) (*Profile, error) {
	switch name {
	case ProfileRegister:
		return registerProfile, nil
	case ProfileLogin:
		return loginProfile, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}
