package validation

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/smartgym/backend-go/internal/database/models"
)

// Gym field codes
const (
	CodeInvalidName    Code = "INVALID_NAME"
	CodeInvalidAddress Code = "INVALID_ADDRESS"
	CodeInvalidEmail   Code = "INVALID_EMAIL"
	CodeInvalidPhone   Code = "INVALID_PHONE"
	CodeInvalidWebsite Code = "INVALID_WEBSITE"
	CodeInvalidUserID  Code = "INVALID_USER_ID"
)

var (
	gymNamePattern    = regexp.MustCompile(`(?i)^[a-z0-9]+[-_a-z0-9]*$`)
	gymAddressPattern = regexp.MustCompile(`(?i)^[a-z0-9\s.,\-_]*$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	gymPhonePattern   = regexp.MustCompile(`^[2-8][0-9]{7}$|^09[0-9]{7}$`)
	websitePattern    = regexp.MustCompile(`(?i)^(http|https)://[a-z0-9.-]+\.[a-z]{2,4}`)
)

// GymPayload is the JSON body accepted when creating or updating a gym.
// Pointers distinguish an absent field from an empty one.
type GymPayload struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Website *string `json:"website"`
	UserID  *string `json:"userId"`
}

var (
	gymName = Field{
		Name:        "name",
		MissingCode: CodeInvalidName,
		Rules: []Rule{
			{Normalize: trim, Check: tag("max=150"), Code: CodeInvalidName},
			{Check: matches(gymNamePattern), Code: CodeInvalidName},
		},
	}
	gymAddress = Field{
		Name:        "address",
		MissingCode: CodeInvalidAddress,
		Rules: []Rule{
			{Normalize: trim, Check: notBlank, Code: CodeInvalidAddress},
			{Check: tag("max=255"), Code: CodeInvalidAddress},
			{Check: matches(gymAddressPattern), Code: CodeInvalidAddress},
		},
	}
	gymEmail = Field{
		Name:        "email",
		MissingCode: CodeInvalidEmail,
		Rules: []Rule{
			{Normalize: trimLower, Check: tag("max=255"), Code: CodeInvalidEmail},
			{Check: matches(emailPattern), Code: CodeInvalidEmail},
		},
	}
	gymPhone = Field{
		Name:     "phone",
		Optional: true,
		Rules: []Rule{
			{Normalize: trim, Check: tag("numeric"), Code: CodeInvalidPhone},
			{Check: tag("min=8,max=9"), Code: CodeInvalidPhone},
			{Check: matches(gymPhonePattern), Code: CodeInvalidPhone},
		},
	}
	gymWebsite = Field{
		Name:     "website",
		Optional: true,
		Rules: []Rule{
			{Normalize: trimLower, Check: tag("max=255"), Code: CodeInvalidWebsite},
			{Check: matches(websitePattern), Code: CodeInvalidWebsite},
		},
	}
	gymUserID = Field{
		Name:        "userId",
		MissingCode: CodeInvalidUserID,
		Rules: []Rule{
			{Normalize: trim, Check: tag("uuid_rfc4122"), Code: CodeInvalidUserID},
		},
	}
)

// CreateGym validates a creation payload and returns its normalized form.
func CreateGym(p GymPayload) (models.NewGym, error) {
	var c collector

	input := models.NewGym{
		Name:    c.required(gymName, p.Name),
		Address: c.required(gymAddress, p.Address),
		Email:   c.required(gymEmail, p.Email),
		Phone:   c.required(gymPhone, p.Phone),
		Website: c.required(gymWebsite, p.Website),
	}
	if userID, err := uuid.Parse(c.required(gymUserID, p.UserID)); err == nil {
		input.UserID = userID
	}

	if err := c.err(); err != nil {
		return models.NewGym{}, err
	}
	return input, nil
}

// UpdateGym validates the fields present in an update payload. Absent fields
// stay nil. The owner cannot be changed, so userId is ignored.
func UpdateGym(p GymPayload) (models.GymChanges, error) {
	var c collector

	changes := models.GymChanges{
		Name:    c.partial(gymName, p.Name),
		Address: c.partial(gymAddress, p.Address),
		Email:   c.partial(gymEmail, p.Email),
		Phone:   c.partial(gymPhone, p.Phone),
		Website: c.partial(gymWebsite, p.Website),
	}

	if err := c.err(); err != nil {
		return models.GymChanges{}, err
	}
	return changes, nil
}
