package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"SILVER":  RoleSilver,
		"gold":    RoleGold,
		" Admin ": RoleAdmin,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("PLATINUM")
	assert.Error(t, err)
}

func TestRoleTiers(t *testing.T) {
	assert.False(t, RoleSilver.CanAuthorRestricted())
	assert.True(t, RoleGold.CanAuthorRestricted())
	assert.True(t, RoleAdmin.CanAuthorRestricted())

	assert.False(t, RoleGold.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleAdmin.AtLeast(RoleGold))
	assert.False(t, RoleSilver.AtLeast(RoleGold))
}

func TestAuthorName(t *testing.T) {
	assert.Equal(t, "닉네임", Profile{Nickname: "닉네임", Email: "a@b.com"}.AuthorName())
	assert.Equal(t, "a", Profile{Email: "a@b.com"}.AuthorName())
	assert.Equal(t, "모험가", Profile{}.AuthorName())
}

func TestCategorySets(t *testing.T) {
	assert.True(t, IsKnownCategory("자유수다"))
	assert.True(t, IsKnownCategory("실전수익인증"))
	assert.False(t, IsKnownCategory("없는카테고리"))

	assert.True(t, IsRestrictedCategory("실전수익인증"))
	assert.True(t, IsRestrictedCategory("비공개노하우"))
	assert.False(t, IsRestrictedCategory("자유수다"))
	assert.False(t, IsRestrictedCategory(CategoryScamReport))
}
