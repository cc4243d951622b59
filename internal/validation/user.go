package validation

import (
	"regexp"

	"github.com/smartgym/backend-go/internal/database/models"
)

// User field codes. Email and phone reuse the gym codes.
const (
	CodeInvalidCognitoUserID Code = "INVALID_COGNITO_USER_ID"
	CodeInvalidFirstName     Code = "INVALID_FIRST_NAME"
	CodeInvalidLastName      Code = "INVALID_LAST_NAME"
	CodeInvalidDocument      Code = "INVALID_DOCUMENT"
)

var (
	personNamePattern = regexp.MustCompile(`^[\p{L}]+([ '\-][\p{L}]+)*$`)
	documentPattern   = regexp.MustCompile(`^[0-9]{7,8}$`)
	mobilePattern     = regexp.MustCompile(`^09[0-9]{7}$`)
)

// UserPayload is the JSON body accepted when registering or updating a user.
type UserPayload struct {
	CognitoUserID *string `json:"cognitoUserId"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Document      *string `json:"document"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
}

func personName(field string, code Code) Field {
	return Field{
		Name:        field,
		MissingCode: code,
		Rules: []Rule{
			{Normalize: trim, Check: tag("min=1,max=20"), Code: code},
			{Check: matches(personNamePattern), Code: code},
		},
	}
}

var (
	userCognitoID = Field{
		Name:        "cognitoUserId",
		MissingCode: CodeInvalidCognitoUserID,
		Rules: []Rule{
			{Normalize: trim, Check: tag("min=1,max=255"), Code: CodeInvalidCognitoUserID},
		},
	}
	userFirstName = personName("firstName", CodeInvalidFirstName)
	userLastName  = personName("lastName", CodeInvalidLastName)
	userDocument  = Field{
		Name:        "document",
		MissingCode: CodeInvalidDocument,
		Rules: []Rule{
			{Normalize: trim, Check: matches(documentPattern), Code: CodeInvalidDocument},
		},
	}
	userEmail = Field{
		Name:        "email",
		MissingCode: CodeInvalidEmail,
		Rules: []Rule{
			{Normalize: trimLower, Check: tag("max=150"), Code: CodeInvalidEmail},
			{Check: matches(emailPattern), Code: CodeInvalidEmail},
		},
	}
	userPhone = Field{
		Name:        "phone",
		MissingCode: CodeInvalidPhone,
		Rules: []Rule{
			{Normalize: trim, Check: matches(mobilePattern), Code: CodeInvalidPhone},
		},
	}
)

// CreateUser validates a registration payload and returns its normalized form.
func CreateUser(p UserPayload) (models.NewUser, error) {
	var c collector

	input := models.NewUser{
		CognitoUserID: c.required(userCognitoID, p.CognitoUserID),
		FirstName:     c.required(userFirstName, p.FirstName),
		LastName:      c.required(userLastName, p.LastName),
		Document:      c.required(userDocument, p.Document),
		Email:         c.required(userEmail, p.Email),
		Phone:         c.required(userPhone, p.Phone),
	}

	if err := c.err(); err != nil {
		return models.NewUser{}, err
	}
	return input, nil
}

// UpdateUser validates the fields present in an update payload. The external
// identity reference is immutable and ignored here.
func UpdateUser(p UserPayload) (models.UserChanges, error) {
	var c collector

	changes := models.UserChanges{
		FirstName: c.partial(userFirstName, p.FirstName),
		LastName:  c.partial(userLastName, p.LastName),
		Document:  c.partial(userDocument, p.Document),
		Email:     c.partial(userEmail, p.Email),
		Phone:     c.partial(userPhone, p.Phone),
	}

	if err := c.err(); err != nil {
		return models.UserChanges{}, err
	}
	return changes, nil
}
