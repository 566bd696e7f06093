package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKebabCase(t *testing.T) {
	valid := []string{"team", "team-member", "error-response", "v2-teams", "a-b-c"}
	for _, s := range valid {
		assert.True(t, IsKebabCase(s), "expected %q to be kebab-case", s)
	}

	invalid := []string{"", "Team", "team_member", "team--member", "-team", "team-", "team member", "teamMember"}
	for _, s := range invalid {
		assert.False(t, IsKebabCase(s), "expected %q to not be kebab-case", s)
	}
}

func TestIsPascalCase(t *testing.T) {
	valid := []string{"Team", "CreateTeamRequest", "ErrorResponse", "TeamIdParam", "OAuth2Token"}
	for _, s := range valid {
		assert.True(t, IsPascalCase(s), "expected %q to be PascalCase", s)
	}

	invalid := []string{"", "team", "createTeam", "Create_Team", "Create-Team", "Create Team", "2Teams"}
	for _, s := range invalid {
		assert.False(t, IsPascalCase(s), "expected %q to not be PascalCase", s)
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TeamMember", "team-member"},
		{"team_member", "team-member"},
		{"errorResponse", "error-response"},
		{"team-member", "team-member"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ToKebabCase(tc.in), "ToKebabCase(%q)", tc.in)
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"team_member", "TeamMember"},
		{"create-team", "CreateTeam"},
		{"createTeam", "CreateTeam"},
		{"Team", "Team"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ToPascalCase(tc.in), "ToPascalCase(%q)", tc.in)
	}
}

func TestSuggestComponentName(t *testing.T) {
	assert.Equal(t, "CreateTeamRequest", SuggestComponentName("create_team", "Request"))
	assert.Equal(t, "CreateTeamRequest", SuggestComponentName("createTeamRequest", "Request"))
	assert.Equal(t, "NotFoundResponse", SuggestComponentName("not-found", "Response"))
	assert.Equal(t, "TeamIdParam", SuggestComponentName("teamId", "Param"))
	assert.Equal(t, "Team", SuggestComponentName("team", ""))
}
