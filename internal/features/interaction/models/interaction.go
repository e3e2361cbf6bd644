package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// InteractionType тип входящего interaction от Discord
type InteractionType int

const (
	InteractionTypePing               InteractionType = 1
	InteractionTypeApplicationCommand InteractionType = 2
)

// PermissionAdministrator бит ADMINISTRATOR в битовой маске прав участника
const PermissionAdministrator int64 = 0x8

// Envelope верхний уровень payload. Для ответа на PING больше ничего
// не разбирается.
type Envelope struct {
	Type json.RawMessage `json:"type"`
}

// Interaction входящий webhook Discord. Поля, которые не нужны
// маршрутизации, не разбираются. Поле неожиданной формы считается
// отсутствующим, ошибка возможна только если payload не объект.
type Interaction struct {
	Envelope
	Data   *CommandData `json:"data,omitempty"`
	Member *Member      `json:"member,omitempty"`
	User   *DiscordUser `json:"user,omitempty"`
}

func (i *Interaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   json.RawMessage `json:"type"`
		Data   json.RawMessage `json:"data"`
		Member json.RawMessage `json:"member"`
		User   json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Interaction{
		Envelope: Envelope{Type: raw.Type},
		Data:     decodeOptional[CommandData](raw.Data),
		Member:   decodeOptional[Member](raw.Member),
		User:     decodeOptional[DiscordUser](raw.User),
	}
	return nil
}

type CommandData struct {
	Name    string          `json:"name"`
	Options []CommandOption `json:"options,omitempty"`
}

func (c *CommandData) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    json.RawMessage `json:"name"`
		Options json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = CommandData{}
	c.Name, _ = scalarString(raw.Name)

	// Опции не массивом пропускаются целиком, кривые элементы по одному
	var items []json.RawMessage
	if len(raw.Options) > 0 && json.Unmarshal(raw.Options, &items) == nil {
		for _, item := range items {
			if opt := decodeOptional[CommandOption](item); opt != nil {
				c.Options = append(c.Options, *opt)
			}
		}
	}
	return nil
}

type CommandOption struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value,omitempty"`
}

type Member struct {
	User        *DiscordUser `json:"user,omitempty"`
	Permissions Permissions  `json:"permissions"`
}

func (m *Member) UnmarshalJSON(data []byte) error {
	var raw struct {
		User        json.RawMessage `json:"user"`
		Permissions Permissions     `json:"permissions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Member{
		User:        decodeOptional[DiscordUser](raw.User),
		Permissions: raw.Permissions,
	}
	return nil
}

// DiscordUser id и username принимаются строкой или числом
type DiscordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u *DiscordUser) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Username json.RawMessage `json:"username"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = DiscordUser{}
	u.ID, _ = scalarString(raw.ID)
	u.Username, _ = scalarString(raw.Username)
	return nil
}

// decodeOptional разбирает необязательное поле. null и значение
// неожиданной формы дают nil.
func decodeOptional[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// Permissions битовая маска прав. Discord присылает ее строкой,
// но число тоже принимается. Неразборчивое значение считается нулем.
type Permissions int64

func (p *Permissions) UnmarshalJSON(data []byte) error {
	*p = 0

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = strings.TrimSpace(s)
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*p = Permissions(v)
	}
	return nil
}

// Has проверяет, установлен ли бит
func (p Permissions) Has(bit int64) bool {
	return int64(p)&bit == bit
}

// InteractionType возвращает тип interaction. ok == false, если поле
// отсутствует или не является целым числом.
func (e *Envelope) InteractionType() (InteractionType, bool) {
	if len(e.Type) == 0 {
		return 0, false
	}
	var t int
	if err := json.Unmarshal(e.Type, &t); err != nil {
		return 0, false
	}
	return InteractionType(t), true
}

// Invoker возвращает пользователя, вызвавшего команду: member.user
// на сервере, user в личных сообщениях.
func (i *Interaction) Invoker() DiscordUser {
	if i.Member != nil && i.Member.User != nil {
		return *i.Member.User
	}
	if i.User != nil {
		return *i.User
	}
	return DiscordUser{}
}

// MemberPermissions права участника или 0 вне сервера
func (i *Interaction) MemberPermissions() Permissions {
	if i.Member == nil {
		return 0
	}
	return i.Member.Permissions
}

// CommandName имя slash-команды
func (i *Interaction) CommandName() string {
	if i.Data == nil {
		return ""
	}
	return i.Data.Name
}

// OptionValues собирает опции команды в map. Строки берутся как есть,
// числа в десятичной записи, остальные типы пропускаются.
func (i *Interaction) OptionValues() map[string]string {
	values := make(map[string]string)
	if i.Data == nil {
		return values
	}
	for _, opt := range i.Data.Options {
		if v, ok := scalarString(opt.Value); ok {
			values[opt.Name] = v
		}
	}
	return values
}

// scalarString строка как есть или число в десятичной записи
func scalarString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}

	return "", false
}
