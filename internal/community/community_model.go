package community

import "github.com/DhavalSuthar-24/crickethub/internal/models"

const (
	MinCommentLength = 10
	MaxCommentLength = 500
)

// User is a self-reported viewer identity. Nothing about it is verified.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	SignedInAt int64  `json:"signedInAt"`
}

type Comment struct {
	ID        models.FlexString `json:"id"`
	Author    string            `json:"author"`
	Email     string            `json:"email"`
	Text      string            `json:"text"`
	Timestamp int64             `json:"timestamp"`
}

// CollectedUser is the admin's view of one viewer, merged from sign-ins and comments.
type CollectedUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CommentCount int    `json:"commentCount"`
	FirstSeen    int64  `json:"firstSeen"`
	LastActive   int64  `json:"lastActive"`
	Blocked      bool   `json:"isBlocked"`
}

type SignInRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Email string `json:"email" binding:"required,email"`
}

type CommentRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Email string `json:"email" binding:"required,email"`
	Text  string `json:"text" binding:"required,max=500"`
}

type BlockRequest struct {
	Email string `json:"email" binding:"required,email"`
}
