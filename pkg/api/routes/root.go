package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/uptrace/bun"

	"github.com/ryotarofr/dx-ax-container/pkg/auth"
	"github.com/ryotarofr/dx-ax-container/pkg/users"
)

type Tag string

const (
	TagHealth Tag = "health"
	TagUsers  Tag = "users"
	TagAuth   Tag = "auth"
)

func (t Tag) String() string { return string(t) }

// Services bundles the dependencies the routes need. A nil *Services is
// allowed for OpenAPI generation; the handlers are never invoked then.
type Services struct {
	Auth      *auth.Service
	DB        *bun.DB
	Directory *users.Directory
}

func RegisterAPI(api huma.API, svcs *Services) {
	RegisterHealth(api)
	if svcs == nil {
		RegisterLookup(api, nil)
		RegisterRefresh(api, nil)
		RegisterUsers(api, nil)
		return
	}
	RegisterLookup(api, svcs.DB)
	RegisterRefresh(api, svcs.Auth)
	RegisterUsers(api, svcs.Directory)
}
