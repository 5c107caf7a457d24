package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the application-side record for an identity issued by the
// external auth provider. Its primary key is the provider's user id.
type Profile struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Linkedin  string    `gorm:"size:255" json:"linkedin"`
	Github    string    `gorm:"size:255" json:"github"`
	Website   string    `gorm:"size:255" json:"website"`
	AvatarURL string    `gorm:"size:255" json:"avatar_url"`
	Role      string    `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile is the restricted field set served on the public profile
// endpoint. Email and role stay private.
type PublicProfile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Bio       string    `json:"bio"`
	Linkedin  string    `json:"linkedin"`
	Github    string    `json:"github"`
	Website   string    `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the profile stripped down to publicly visible fields.
func (p *Profile) Public() PublicProfile {
	return PublicProfile{
		ID:        p.ID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Linkedin:  p.Linkedin,
		Github:    p.Github,
		Website:   p.Website,
		CreatedAt: p.CreatedAt,
	}
}
