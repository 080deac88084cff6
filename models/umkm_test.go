package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// UmkmInSuite tests register-UMKM payload validation.
type UmkmInSuite struct {
	suite.Suite
}

func TestUmkmInSuite(t *testing.T) {
	suite.Run(t, new(UmkmInSuite))
}

func (s *UmkmInSuite) validPayload() UmkmIn {
	return UmkmIn{
		Name:        "Warung Makan Bu Siti",
		Contact:     "0812-3456-7890",
		Description: "Rumah makan masakan Padang",
	}
}

// TestRequiredFields verifies that name, contact and description must be
// non-blank after trimming.
func (s *UmkmInSuite) TestRequiredFields() {
	s.Run("valid payload passes", func() {
		u, verr := s.validPayload().Validate()
		s.Require().Nil(verr)
		s.Equal("Warung Makan Bu Siti", u.Name)
		s.Equal("0812-3456-7890", u.Contact)
		s.Equal("Rumah makan masakan Padang", u.Description)
	})

	s.Run("blank name rejected", func() {
		p := s.validPayload()
		p.Name = "   "
		_, verr := p.Validate()
		s.Require().NotNil(verr)
		s.Equal("Name, contact, and description are required", verr.Detail)
	})

	s.Run("blank contact rejected", func() {
		p := s.validPayload()
		p.Contact = ""
		_, verr := p.Validate()
		s.Require().NotNil(verr)
		s.Equal("Name, contact, and description are required", verr.Detail)
	})

	s.Run("blank description rejected", func() {
		p := s.validPayload()
		p.Description = " \t "
		_, verr := p.Validate()
		s.Require().NotNil(verr)
		s.Equal("Name, contact, and description are required", verr.Detail)
	})
}

// TestNormalize verifies trimming of all fields, including optional social.
func (s *UmkmInSuite) TestNormalize() {
	s.Run("required fields are trimmed", func() {
		p := UmkmIn{
			Name:        "  Kopi Kenangan Senja  ",
			Contact:     " 0821-9876-5432 ",
			Description: "  Kedai kopi dan camilan  ",
		}
		u, verr := p.Validate()
		s.Require().Nil(verr)
		s.Equal("Kopi Kenangan Senja", u.Name)
		s.Equal("0821-9876-5432", u.Contact)
		s.Equal("Kedai kopi dan camilan", u.Description)
	})

	s.Run("absent social stays nil", func() {
		u, verr := s.validPayload().Validate()
		s.Require().Nil(verr)
		s.Nil(u.Social)
	})

	s.Run("present social is trimmed", func() {
		p := s.validPayload()
		social := "  @warungbusiti  "
		p.Social = &social
		u, verr := p.Validate()
		s.Require().Nil(verr)
		s.Require().NotNil(u.Social)
		s.Equal("@warungbusiti", *u.Social)
	})

	s.Run("whitespace-only social stays present but empty", func() {
		p := s.validPayload()
		social := "   "
		p.Social = &social
		u, verr := p.Validate()
		s.Require().Nil(verr)
		s.Require().NotNil(u.Social)
		s.Equal("", *u.Social)
	})
}
