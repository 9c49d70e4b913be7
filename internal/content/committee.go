package content

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"vmac/internal/store"
)

// unpositioned sorts members without a usable position after everyone
// else.
const unpositioned = 99

// Committee is the roster collection.
type Committee struct {
	store   store.Store
	now     func() time.Time
	members []CommitteeMember
}

// LoadCommittee hydrates the collection from the store, seeding
// defaults when the slot is empty or unparsable.
func LoadCommittee(s store.Store) *Committee {
	c := &Committee{store: s, now: time.Now}
	members, ok := store.LoadJSON[[]CommitteeMember](s, store.KeyCommittee)
	if !ok {
		members = DefaultCommittee()
	}
	c.members = members
	return c
}

// All returns the members in array order.
func (c *Committee) All() []CommitteeMember {
	out := make([]CommitteeMember, len(c.members))
	copy(out, c.members)
	return out
}

// Sorted returns the members by ascending position. Ties keep array
// order.
func (c *Committee) Sorted() []CommitteeMember {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// ParsePosition converts the raw form value to a roster position,
// defaulting to 99 when absent or unparsable.
func ParsePosition(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return unpositioned
	}
	return n
}

// AddMember appends a member and flushes. Name and image are required;
// designation and position are optional.
func (c *Committee) AddMember(name, image, designation, position string) (CommitteeMember, error) {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return CommitteeMember{}, &ValidationError{Message: MsgCommitteeFields, Missing: missing}
	}

	member := CommitteeMember{
		ID:          newID(c.now()),
		Name:        name,
		Image:       image,
		Designation: designation,
		Position:    ParsePosition(position),
	}
	c.members = append(c.members, member)
	c.flush()
	return member, nil
}

// Remove deletes the member with the given id. Unknown ids are a
// no-op.
func (c *Committee) Remove(id string) {
	for i, m := range c.members {
		if m.ID == id {
			c.members = append(c.members[:i], c.members[i+1:]...)
			c.flush()
			return
		}
	}
}

func (c *Committee) flush() {
	_ = store.SaveJSON(c.store, store.KeyCommittee, c.members)
}
