// Package profile defines the user profile record shared by the server,
// the HTTP preview gateway and the CLI client.
//
// A Profile comes in two shapes. The full shape carries an account
// identifier and an email; the display shape carries only what is needed
// to render a user (username, names, picture key). Both are the same type:
// a display profile simply has an empty UserID and Email.
package profile

// Values of the built-in sample profile.
const (
	SampleUserID             = "1"
	SampleUsername           = "papy123"
	SampleEmail              = "jeandupont@gmail.com"
	SampleFirstName          = "Jean"
	SampleLastName           = "Dupont"
	SampleProfilePictureName = "pfp_jean.png"
)

// DefaultPictureName is the picture key used when a profile has none.
const DefaultPictureName = "default_profile_picture.png"

// Profile holds the descriptive attributes of one user.
//
// Fields are stored verbatim: nothing is validated, trimmed or normalized,
// and every setter accepts any string including the empty one.
//
// A Profile is a plain mutable record with no internal locking. It belongs to
// whoever holds the pointer; share it across goroutines only with external
// synchronization, or hand out a Clone.
type Profile struct {
	userID             string
	username           string
	email              string
	firstName          string
	lastName           string
	profilePictureName string // key into the external image store, not a path or URL
	bio                string
}

// New builds a full profile from all six attributes.
func New(userID, username, email, firstName, lastName, profilePictureName string) *Profile {
	return &Profile{
		userID:             userID,
		username:           username,
		email:              email,
		firstName:          firstName,
		lastName:           lastName,
		profilePictureName: profilePictureName,
	}
}

// NewDisplay builds a display profile. UserID and Email are left empty.
func NewDisplay(username, firstName, lastName, profilePictureName string) *Profile {
	return &Profile{
		username:           username,
		firstName:          firstName,
		lastName:           lastName,
		profilePictureName: profilePictureName,
	}
}

// Sample returns a new full profile populated with fixed sample values.
// Each call returns a distinct instance.
func Sample() *Profile {
	return New(SampleUserID, SampleUsername, SampleEmail, SampleFirstName, SampleLastName, SampleProfilePictureName)
}

// SampleDisplay returns a new display profile populated with fixed sample values.
func SampleDisplay() *Profile {
	return NewDisplay(SampleUsername, SampleFirstName, SampleLastName, SampleProfilePictureName)
}

func (p *Profile) UserID() string { return p.userID }

func (p *Profile) SetUserID(userID string) { p.userID = userID }

func (p *Profile) Username() string { return p.username }

func (p *Profile) SetUsername(username string) { p.username = username }

func (p *Profile) Email() string { return p.email }

func (p *Profile) SetEmail(email string) { p.email = email }

func (p *Profile) FirstName() string { return p.firstName }

func (p *Profile) SetFirstName(firstName string) { p.firstName = firstName }

func (p *Profile) LastName() string { return p.lastName }

func (p *Profile) SetLastName(lastName string) { p.lastName = lastName }

func (p *Profile) ProfilePictureName() string { return p.profilePictureName }

func (p *Profile) SetProfilePictureName(name string) { p.profilePictureName = name }

func (p *Profile) Bio() string { return p.bio }

func (p *Profile) SetBio(bio string) { p.bio = bio }

// PictureOrDefault returns the picture key, falling back to DefaultPictureName
// when none is set.
func (p *Profile) PictureOrDefault() string {
	if p.profilePictureName == "" {
		return DefaultPictureName
	}
	return p.profilePictureName
}

// IsDisplay reports whether p has the display shape (no UserID, no Email).
func (p *Profile) IsDisplay() bool {
	return p.userID == "" && p.email == ""
}

// Display returns a new display profile carrying p's username, names and
// picture key. Bio is carried over as well.
func (p *Profile) Display() *Profile {
	d := NewDisplay(p.username, p.firstName, p.lastName, p.profilePictureName)
	d.bio = p.bio
	return d
}

// Clone returns an independent copy of p.
func (p *Profile) Clone() *Profile {
	c := *p
	return &c
}

// Equal reports whether p and other hold the same attribute values.
// Two nil profiles are equal; a nil and a non-nil profile are not.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}
