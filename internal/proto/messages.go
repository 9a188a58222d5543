// Package proto holds the wire messages and the gRPC service definition of
// the ProfileKeeper API. Messages travel as JSON (see internal/codec).
package proto

// Profile is the wire form of a user profile. Display projections leave
// UserId and Email empty.
type Profile struct {
	UserId             string `json:"user_id,omitempty"`
	Username           string `json:"username"`
	Email              string `json:"email,omitempty"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	ProfilePictureName string `json:"profile_picture_name"`
	Bio                string `json:"bio,omitempty"`
}

func (x *Profile) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Profile) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

// GetProfileRequest selects a profile by UserId or, when that is empty, by Username.
type GetProfileRequest struct {
	UserId   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

type SearchProfilesRequest struct {
	Prefix string `json:"prefix"`
	Limit  int32  `json:"limit,omitempty"`
}

type SearchProfilesResponse struct {
	Profiles []*Profile `json:"profiles"`
}

func (x *SearchProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

// UpdateProfileRequest carries a partial update. Absent fields are left as is.
type UpdateProfileRequest struct {
	UserId             string  `json:"user_id"`
	Username           *string `json:"username,omitempty"`
	Email              *string `json:"email,omitempty"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	ProfilePictureName *string `json:"profile_picture_name,omitempty"`
	Bio                *string `json:"bio,omitempty"`
}

type PingResponse struct {
	Status string `json:"status"`
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}
