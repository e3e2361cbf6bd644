package models

// Role роль пользователя в полицейской базе
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// User связывает аккаунт Discord с ролью в системе.
// Строки создаются веб-интерфейсом при первом входе.
type User struct {
	ID            int64  `json:"id"`
	DiscordUserID string `json:"discord_user_id"`
	Role          Role   `json:"role" enums:"user,moderator,admin"`
}

// Known сообщает, входит ли роль в список выбора команды
func (r Role) Known() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}
