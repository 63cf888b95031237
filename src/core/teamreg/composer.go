package teamreg

import (
	"fmt"
	"strings"
)

// Member roles as they appear in the participant list.
const (
	RoleLeader = "Team Leader"
	RoleMember = "Member"
)

// Session identifies the authenticated user on whose behalf a registration is
// composed. It is passed in explicitly so the composer never reads ambient
// state and can be exercised directly in tests.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// Bounds is the team size range declared by the event.
type Bounds struct {
	Min int
	Max int
}

type Member struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
}

// Registration is the draft being filled in by the registration form.
type Registration struct {
	Phone               string   `json:"phone"`
	AlternateEmail      string   `json:"alternate_email"`
	TeamName            string   `json:"team_name"`
	TeamSize            int      `json:"team_size"`
	Members             []Member `json:"team_members"`
	Institution         string   `json:"institution"`
	ExperienceLevel     string   `json:"experience_level"`
	Motivation          string   `json:"motivation"`
	SpecialRequirements string   `json:"special_requirements"`
}

// Composer maintains a Registration against an event's team size bounds and
// materializes the final submission payload. Index 0 of the member list is
// always the session user acting as team leader and cannot be hand-edited.
type Composer struct {
	session Session
	bounds  Bounds
	reg     Registration
}

// NewComposer seeds a draft registration at the event's minimum team size
// with the session user as leader.
func NewComposer(session Session, bounds Bounds) *Composer {
	if bounds.Min < 1 {
		bounds.Min = 1
	}
	if bounds.Max < bounds.Min {
		bounds.Max = bounds.Min
	}
	c := &Composer{session: session, bounds: bounds}
	c.SetTeamSize(bounds.Min)
	return c
}

// Registration exposes the draft for form-field mutation. The member list
// length and the leader entry are owned by SetTeamSize.
func (c *Composer) Registration() *Registration {
	return &c.reg
}

func (c *Composer) leader() Member {
	return Member{
		Name:        c.session.Name,
		Email:       c.session.Email,
		Phone:       c.reg.Phone,
		Role:        RoleLeader,
		Institution: c.reg.Institution,
	}
}

// SetTeamSize clamps the requested size into the event's bounds and rebuilds
// the member list to that length. Previously entered members keep their slot
// where one existed; new slots default to empty member records. The leader
// slot is regenerated from the session every time.
func (c *Composer) SetTeamSize(size int) {
	if size < c.bounds.Min {
		size = c.bounds.Min
	}
	if size > c.bounds.Max {
		size = c.bounds.Max
	}

	members := make([]Member, size)
	members[0] = c.leader()
	for i := 1; i < size; i++ {
		if i < len(c.reg.Members) {
			members[i] = c.reg.Members[i]
		} else {
			members[i] = Member{Role: RoleMember}
		}
	}

	c.reg.TeamSize = size
	c.reg.Members = members
}

// SetMember records entered details for the member at index i. The leader
// slot (index 0) is rejected since its identity mirrors the session user.
func (c *Composer) SetMember(i int, m Member) error {
	if i == 0 {
		return fmt.Errorf("member 1 is the team leader and cannot be edited")
	}
	if i < 1 || i >= len(c.reg.Members) {
		return fmt.Errorf("member index %d out of range", i)
	}
	if m.Role == "" {
		m.Role = RoleMember
	}
	c.reg.Members[i] = m
	return nil
}

// Validate collects every violated rule's message in declaration order. An
// empty result means the registration is ready to submit.
func (c *Composer) Validate() []string {
	errs := []string{}

	if strings.TrimSpace(c.reg.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}
	if c.reg.TeamSize > 1 && strings.TrimSpace(c.reg.TeamName) == "" {
		errs = append(errs, "Team name is required for team registrations")
	}
	for i := 1; i < len(c.reg.Members); i++ {
		if strings.TrimSpace(c.reg.Members[i].Name) == "" {
			errs = append(errs, fmt.Sprintf("Team member %d name is required", i+1))
		}
		if strings.TrimSpace(c.reg.Members[i].Email) == "" {
			errs = append(errs, fmt.Sprintf("Team member %d email is required", i+1))
		}
	}

	return errs
}

// ToPayload materializes the submission. An individual registration carries
// no member list at all; a team registration carries a leader-first list with
// the leader rebuilt from the session and the current phone and institution.
func (c *Composer) ToPayload() Registration {
	payload := c.reg
	if c.reg.TeamSize <= 1 {
		payload.Members = []Member{}
		return payload
	}

	members := make([]Member, 0, len(c.reg.Members))
	members = append(members, c.leader())
	members = append(members, c.reg.Members[1:]...)
	payload.Members = members
	return payload
}
