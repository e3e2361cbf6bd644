package models

import "fmt"

// Citizen представляет гражданского персонажа в полицейской базе
type Citizen struct {
	ID              int64  `json:"id"`
	CitizenID       string `json:"citizen_id" example:"ID-00042" description:"Номер ID-карты"`
	FirstName       string `json:"first_name" example:"Ivan"`
	LastName        string `json:"last_name" example:"Petrov"`
	DateOfBirth     string `json:"date_of_birth" example:"1990-01-01"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Notes           string `json:"notes,omitempty"`
	DiscordUserID   string `json:"discord_user_id"`
	DiscordUsername string `json:"discord_username"`
}

// FullName возвращает имя и фамилию через пробел
func (c *Citizen) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CitizenProfile персонаж вместе со счетчиками связанных записей
type CitizenProfile struct {
	Citizen
	CrimesCount int `json:"crimes_count"`
	FinesCount  int `json:"fines_count"`
	WantedCount int `json:"wanted_count"`
}

// IsWanted сообщает, есть ли у персонажа записи о розыске
func (p *CitizenProfile) IsWanted() bool {
	return p.WantedCount > 0
}

// CreateCitizenInput данные для создания персонажа через Discord
type CreateCitizenInput struct {
	FirstName       string
	LastName        string
	DateOfBirth     string
	DiscordUserID   string
	DiscordUsername string
}

// CreateCitizenResult результат создания. Existing == true означает,
// что у пользователя уже был персонаж и ничего не вставлялось.
type CreateCitizenResult struct {
	Citizen  *Citizen
	Existing bool
}

// FormatDisplayID форматирует номер ID-карты: ID-00042
func FormatDisplayID(n int64) string {
	return fmt.Sprintf("ID-%05d", n)
}

// CreationNote заметка, которую получает персонаж, созданный из Discord
func CreationNote(username string) string {
	return "Created via Discord: @" + username
}
