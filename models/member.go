package models

// Member is a person on a user's family roster.
type Member struct {
	ID                  int64  `json:"id"`
	UserID              int64  `json:"user_id"`
	Name                string `json:"name"`
	Relation            string `json:"relation"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// NewMember is the body of POST /members/.
type NewMember struct {
	Name                string `json:"name"`
	Relation            string `json:"relation"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
}

// MemberUpdate is the partial body of PATCH /members/{id}/.
type MemberUpdate struct {
	Name                *string `json:"name,omitempty"`
	Relation            *string `json:"relation,omitempty"`
	DietaryRestrictions *string `json:"dietary_restrictions,omitempty"`
}
