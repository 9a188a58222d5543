package proto

import "github.com/dmitrijs2005/profilekeeper/internal/profile"

// FromProfile converts a domain profile to its wire form. nil maps to nil.
func FromProfile(p *profile.Profile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		UserId:             p.UserID(),
		Username:           p.Username(),
		Email:              p.Email(),
		FirstName:          p.FirstName(),
		LastName:           p.LastName(),
		ProfilePictureName: p.ProfilePictureName(),
		Bio:                p.Bio(),
	}
}

// FromProfiles converts a slice of domain profiles. The result is never nil.
func FromProfiles(ps []*profile.Profile) []*Profile {
	out := make([]*Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProfile(p))
	}
	return out
}

// ToProfile converts the wire form back to a domain profile. nil maps to nil.
func (x *Profile) ToProfile() *profile.Profile {
	if x == nil {
		return nil
	}
	p := profile.New(x.UserId, x.Username, x.Email, x.FirstName, x.LastName, x.ProfilePictureName)
	p.SetBio(x.Bio)
	return p
}

// Patch returns the domain patch described by the request.
func (x *UpdateProfileRequest) Patch() profile.Patch {
	return profile.Patch{
		Username:           x.Username,
		Email:              x.Email,
		FirstName:          x.FirstName,
		LastName:           x.LastName,
		ProfilePictureName: x.ProfilePictureName,
		Bio:                x.Bio,
	}
}

// NewUpdateProfileRequest builds a request that applies pt to the profile id.
// pt.UserID is ignored; ids cannot be changed through the API.
func NewUpdateProfileRequest(id string, pt profile.Patch) *UpdateProfileRequest {
	return &UpdateProfileRequest{
		UserId:             id,
		Username:           pt.Username,
		Email:              pt.Email,
		FirstName:          pt.FirstName,
		LastName:           pt.LastName,
		ProfilePictureName: pt.ProfilePictureName,
		Bio:                pt.Bio,
	}
}
