package mockdata

import (
	"fmt"
	"net/url"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
)

const robohashBase = "https://robohash.org/"

// CatAvatarURL returns a RoboHash cat avatar for id.
func CatAvatarURL(id string) string {
	return fmt.Sprintf("%s%s?set=set4&size=200x200", robohashBase, url.PathEscape(id))
}

// RandomAvatarURL returns a RoboHash robot avatar for id.
func RandomAvatarURL(id string) string {
	return fmt.Sprintf("%s%s?size=200x200", robohashBase, url.PathEscape(id))
}

// MonsterAvatarURL returns a RoboHash monster avatar for id.
func MonsterAvatarURL(id string) string {
	return fmt.Sprintf("%s%s?set=set2&size=200x200", robohashBase, url.PathEscape(id))
}

// AvatarURLFor picks the avatar set by role: robots for admins, monsters for
// moderators and cats for everyone else.
func AvatarURLFor(role entities.UserRole, id string) string {
	switch role {
	case entities.RoleAdmin:
		return RandomAvatarURL(id)
	case entities.RoleModerator:
		return MonsterAvatarURL(id)
	default:
		return CatAvatarURL(id)
	}
}
