package profile

// Patch describes a partial update. A nil field leaves the attribute as is;
// a non-nil field replaces it, the empty string included.
type Patch struct {
	UserID             *string
	Username           *string
	Email              *string
	FirstName          *string
	LastName           *string
	ProfilePictureName *string
	Bio                *string
}

// IsEmpty reports whether the patch changes nothing.
func (pt Patch) IsEmpty() bool {
	return pt.UserID == nil && pt.Username == nil && pt.Email == nil &&
		pt.FirstName == nil && pt.LastName == nil &&
		pt.ProfilePictureName == nil && pt.Bio == nil
}

// Apply returns a new profile with the patch applied. p is not modified.
func (p *Profile) Apply(pt Patch) *Profile {
	n := p.Clone()

	if pt.UserID != nil {
		n.userID = *pt.UserID
	}
	if pt.Username != nil {
		n.username = *pt.Username
	}
	if pt.Email != nil {
		n.email = *pt.Email
	}
	if pt.FirstName != nil {
		n.firstName = *pt.FirstName
	}
	if pt.LastName != nil {
		n.lastName = *pt.LastName
	}
	if pt.ProfilePictureName != nil {
		n.profilePictureName = *pt.ProfilePictureName
	}
	if pt.Bio != nil {
		n.bio = *pt.Bio
	}

	return n
}

// String returns a pointer to s. Handy when building a Patch.
func String(s string) *string {
	return &s
}
