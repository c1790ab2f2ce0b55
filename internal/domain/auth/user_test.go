package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":               RoleAdmin,
		"  Membre ":           RoleMembre,
		"member":              RoleMembre,
		"user":                RoleMembre,
		"instructor":          RoleInstructeur,
		"technical_director":  RoleDirecteurTechnique,
		"national_director":   RoleDirecteurNational,
		"founder":             RoleFondateur,
		"directeur_technique": RoleDirecteurTechnique,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "root", "moderator"} {
		_, err := ParseRole(bad)
		assert.ErrorIs(t, err, ErrInvalidRole, bad)
	}
}

func TestValidBeltGrade(t *testing.T) {
	assert.True(t, ValidBeltGrade("Ceinture Blanche"))
	assert.True(t, ValidBeltGrade("Ceinture Noire 3ème Dan"))
	assert.False(t, ValidBeltGrade("ceinture blanche"))
}
