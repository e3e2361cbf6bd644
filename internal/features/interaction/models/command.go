package models

import "errors"

// Имена команд и опций в том виде, в каком они зарегистрированы в Discord
const (
	CommandCreateCharacter = "создать_персонажа"
	CommandViewCharacter   = "мой_персонаж"
	CommandSyncRole        = "синхронизация"

	OptionFirstName   = "имя"
	OptionLastName    = "фамилия"
	OptionDateOfBirth = "дата_рождения"
	OptionTargetUser  = "пользователь"
	OptionRole        = "роль"
)

// DefaultSyncRole роль, если опция роль не передана
const DefaultSyncRole = "user"

var (
	ErrMissingFields           = errors.New("required options are missing")
	ErrUnknownInvoker          = errors.New("invoking user is unknown")
	ErrInsufficientPermissions = errors.New("administrator permission required")
	ErrMissingTarget           = errors.New("target user is missing")
)

// Command разобранная slash-команда. Реализации: CreateCharacterCommand,
// ViewCharacterCommand, SyncRoleCommand и UnknownCommand.
type Command interface {
	CommandName() string
	// Validate проверяет команду до обращения к базе
	Validate() error
}

type CreateCharacterCommand struct {
	Invoker     DiscordUser
	FirstName   string
	LastName    string
	DateOfBirth string
}

func (c CreateCharacterCommand) CommandName() string { return CommandCreateCharacter }

func (c CreateCharacterCommand) Validate() error {
	if c.FirstName == "" || c.LastName == "" || c.DateOfBirth == "" {
		return ErrMissingFields
	}
	if c.Invoker.ID == "" {
		return ErrUnknownInvoker
	}
	return nil
}

type ViewCharacterCommand struct {
	Invoker DiscordUser
}

func (c ViewCharacterCommand) CommandName() string { return CommandViewCharacter }

func (c ViewCharacterCommand) Validate() error {
	if c.Invoker.ID == "" {
		return ErrUnknownInvoker
	}
	return nil
}

// SyncRoleCommand права берутся из маски в самом запросе, повторно не проверяются
type SyncRoleCommand struct {
	Invoker      DiscordUser
	Permissions  Permissions
	TargetUserID string
	Role         string
}

func (c SyncRoleCommand) CommandName() string { return CommandSyncRole }

func (c SyncRoleCommand) Validate() error {
	if !c.Permissions.Has(PermissionAdministrator) {
		return ErrInsufficientPermissions
	}
	if c.TargetUserID == "" {
		return ErrMissingTarget
	}
	return nil
}

type UnknownCommand struct {
	Name string
}

func (c UnknownCommand) CommandName() string { return c.Name }

func (c UnknownCommand) Validate() error { return nil }

// ParseCommand превращает interaction в типизированную команду
func ParseCommand(in *Interaction) Command {
	options := in.OptionValues()

	switch name := in.CommandName(); name {
	case CommandCreateCharacter:
		return CreateCharacterCommand{
			Invoker:     in.Invoker(),
			FirstName:   options[OptionFirstName],
			LastName:    options[OptionLastName],
			DateOfBirth: options[OptionDateOfBirth],
		}
	case CommandViewCharacter:
		return ViewCharacterCommand{Invoker: in.Invoker()}
	case CommandSyncRole:
		role, ok := options[OptionRole]
		if !ok {
			role = DefaultSyncRole
		}
		return SyncRoleCommand{
			Invoker:      in.Invoker(),
			Permissions:  in.MemberPermissions(),
			TargetUserID: options[OptionTargetUser],
			Role:         role,
		}
	default:
		return UnknownCommand{Name: name}
	}
}
