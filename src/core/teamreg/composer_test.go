package teamreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var session = Session{
	UserID: "7e0b6c2e-3a9f-4a42-9a1d-0d5a3f2b7f13",
	Name:   "Asha Mehta",
	Email:  "asha@college.edu",
	Role:   "student",
}

func TestNewComposerSeedsMinimum(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 2, Max: 5})

	reg := c.Registration()
	assert.Equal(t, 2, reg.TeamSize)
	require.Len(t, reg.Members, 2)
	assert.Equal(t, "Asha Mehta", reg.Members[0].Name)
	assert.Equal(t, RoleLeader, reg.Members[0].Role)
	assert.Equal(t, RoleMember, reg.Members[1].Role)
	assert.Empty(t, reg.Members[1].Name)
}

func TestSetTeamSizeClamps(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 2, Max: 5})

	c.SetTeamSize(9)
	assert.Equal(t, 5, c.Registration().TeamSize)
	assert.Len(t, c.Registration().Members, 5)

	c.SetTeamSize(0)
	assert.Equal(t, 2, c.Registration().TeamSize)
	assert.Len(t, c.Registration().Members, 2)
}

func TestSetTeamSizeGrowPreservesEntries(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 2, Max: 5})
	require.NoError(t, c.SetMember(1, Member{Name: "Ravi", Email: "ravi@college.edu"}))

	c.SetTeamSize(4)

	reg := c.Registration()
	require.Len(t, reg.Members, 4)
	assert.Equal(t, "Asha Mehta", reg.Members[0].Name)
	assert.Equal(t, "Ravi", reg.Members[1].Name)
	assert.Empty(t, reg.Members[2].Name)
	assert.Empty(t, reg.Members[3].Name)
}

func TestSetTeamSizeShrinkTruncates(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 1, Max: 5})
	c.SetTeamSize(4)
	require.NoError(t, c.SetMember(1, Member{Name: "Ravi", Email: "ravi@college.edu"}))
	require.NoError(t, c.SetMember(2, Member{Name: "Meera", Email: "meera@college.edu"}))
	require.NoError(t, c.SetMember(3, Member{Name: "Jay", Email: "jay@college.edu"}))

	c.SetTeamSize(2)

	reg := c.Registration()
	require.Len(t, reg.Members, 2)
	assert.Equal(t, "Asha Mehta", reg.Members[0].Name)
	assert.Equal(t, "Ravi", reg.Members[1].Name)
}

func TestSetTeamSizeIdempotent(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 2, Max: 5})
	require.NoError(t, c.SetMember(1, Member{Name: "Ravi", Email: "ravi@college.edu"}))

	c.SetTeamSize(3)
	first := append([]Member{}, c.Registration().Members...)
	c.SetTeamSize(3)

	assert.Equal(t, first, c.Registration().Members)
}

func TestLeaderMirrorsSessionAndPhone(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 1, Max: 5})
	c.Registration().Phone = "+91 98765 43210"
	c.Registration().Institution = "IIT Bombay"

	c.SetTeamSize(3)

	leader := c.Registration().Members[0]
	assert.Equal(t, session.Name, leader.Name)
	assert.Equal(t, session.Email, leader.Email)
	assert.Equal(t, "+91 98765 43210", leader.Phone)
	assert.Equal(t, "IIT Bombay", leader.Institution)

	assert.Error(t, c.SetMember(0, Member{Name: "Impostor"}), "leader slot is not editable")
}

func TestValidateRequiredFields(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 3, Max: 5})
	require.NoError(t, c.SetMember(2, Member{Name: "Meera", Email: "meera@college.edu"}))

	errs := c.Validate()
	assert.Equal(t, []string{
		"Phone number is required",
		"Team name is required for team registrations",
		"Team member 2 name is required",
		"Team member 2 email is required",
	}, errs)
}

func TestValidateIndividual(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 1, Max: 1})

	errs := c.Validate()
	assert.Equal(t, []string{"Phone number is required"}, errs, "no team rules for individual registrations")

	c.Registration().Phone = "9876543210"
	assert.Empty(t, c.Validate())
}

func TestToPayloadIndividual(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 1, Max: 4})
	c.Registration().Phone = "9876543210"

	payload := c.ToPayload()
	assert.Equal(t, 1, payload.TeamSize)
	assert.Empty(t, payload.Members, "individual registrations carry no member list")
}

func TestToPayloadTeam(t *testing.T) {
	c := NewComposer(session, Bounds{Min: 2, Max: 5})
	reg := c.Registration()
	reg.Phone = "9876543210"
	reg.Institution = "IIT Bombay"
	reg.TeamName = "Null Pointers"
	require.NoError(t, c.SetMember(1, Member{Name: "Ravi", Email: "ravi@college.edu"}))

	payload := c.ToPayload()
	require.Len(t, payload.Members, 2)
	assert.Equal(t, Member{
		Name:        session.Name,
		Email:       session.Email,
		Phone:       "9876543210",
		Role:        RoleLeader,
		Institution: "IIT Bombay",
	}, payload.Members[0], "leader is materialized fresh from the session")
	assert.Equal(t, "Ravi", payload.Members[1].Name)
}
