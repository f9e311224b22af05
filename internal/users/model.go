package users

import "time"

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authenticated recruiter account.
type User struct {
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PictureURL   string    `json:"pictureUrl"`
	Role         string    `json:"role"`
	TotalResumes int       `json:"totalResumes"`
	LoginCount   int       `json:"loginCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
