package session

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

const RoleEmployer = "employer"
const RoleEmployee = "employee"

type Context struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`

	SigningTime time.Time `json:"-"`
}

type Identity struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
	Role     string   `json:"role"`
}

func (c *Context) IsEmployer() bool {
	return c.Identity.Role == RoleEmployer
}
