package models

import "strings"

// Umkm is a registered micro/small business (usaha mikro, kecil, menengah)
// as persisted in the umkm collection. Social stays a pointer so a missing
// value is stored and returned as null rather than "".
type Umkm struct {
	Name        string  `bson:"name" json:"name"`
	Contact     string  `bson:"contact" json:"contact"`
	Description string  `bson:"description" json:"description"`
	Social      *string `bson:"social" json:"social"`
}

// UmkmIn is the register-UMKM request payload.
type UmkmIn struct {
	Name        string  `json:"name"`
	Contact     string  `json:"contact"`
	Description string  `json:"description"`
	Social      *string `json:"social"`
}

// Validate trims all fields (social only when present) and requires name,
// contact and description to be non-blank.
func (p UmkmIn) Validate() (Umkm, *ValidationError) {
	u := Umkm{
		Name:        strings.TrimSpace(p.Name),
		Contact:     strings.TrimSpace(p.Contact),
		Description: strings.TrimSpace(p.Description),
	}
	if u.Name == "" || u.Contact == "" || u.Description == "" {
		return Umkm{}, &ValidationError{Detail: "Name, contact, and description are required"}
	}
	if p.Social != nil {
		s := strings.TrimSpace(*p.Social)
		u.Social = &s
	}
	return u, nil
}
