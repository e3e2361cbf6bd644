package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/common/logger"
	citizenModels "police-bot-backend/internal/features/citizen/models"
	citizenService "police-bot-backend/internal/features/citizen/service"
	"police-bot-backend/internal/features/interaction/models"
	userModels "police-bot-backend/internal/features/user/models"
	userService "police-bot-backend/internal/features/user/service"
)

// Dispatcher разбирает interaction и отдает готовый HTTP-ответ.
// Ошибки предметной области всегда превращаются в ответ 200 с текстом,
// иначе Discord покажет пользователю общую ошибку.
type Dispatcher struct {
	citizens  citizenService.CitizenService
	users     userService.UserService
	ephemeral bool
}

func NewDispatcher(citizens citizenService.CitizenService, users userService.UserService, ephemeral bool) *Dispatcher {
	return &Dispatcher{
		citizens:  citizens,
		users:     users,
		ephemeral: ephemeral,
	}
}

// Handle обрабатывает запрос по методу и сырому телу
func (d *Dispatcher) Handle(ctx context.Context, method string, body []byte) *models.HTTPResponse {
	if method == http.MethodOptions {
		return preflightResponse()
	}
	if method != http.MethodPost {
		return transportError(apperrors.New(apperrors.ErrCodeMethodNotAllowed, "Method not allowed"))
	}

	// Сначала только тип: PING отвечается при любых остальных полях
	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Debug().Err(err).Msg("Failed to decode interaction")
		return transportError(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid JSON"))
	}

	typ, _ := envelope.InteractionType()
	switch typ {
	case models.InteractionTypePing:
		return pongResponse()
	case models.InteractionTypeApplicationCommand:
		var in models.Interaction
		if err := json.Unmarshal(body, &in); err != nil {
			return transportError(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid JSON"))
		}
		return d.reply(d.dispatchCommand(ctx, models.ParseCommand(&in)))
	default:
		return transportError(apperrors.New(apperrors.ErrCodeBadRequest, "Unknown interaction type"))
	}
}

func (d *Dispatcher) reply(content string) *models.HTTPResponse {
	return Reply(content, d.ephemeral)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd models.Command) string {
	if err := cmd.Validate(); err != nil {
		rejected := rejectionError(err)
		logEvent := logger.Warn
		if rejected.IsValidation() {
			logEvent = logger.Debug
		}
		logEvent().Err(err).Str("command", cmd.CommandName()).Str("code", string(rejected.Code)).Msg("Command rejected")
		return validationReply(rejected)
	}

	logger.Debug().Str("command", cmd.CommandName()).Msg("Dispatching command")

	switch c := cmd.(type) {
	case models.CreateCharacterCommand:
		return d.createCharacter(ctx, c)
	case models.ViewCharacterCommand:
		return d.viewCharacter(ctx, c)
	case models.SyncRoleCommand:
		return d.syncRole(ctx, c)
	default:
		logger.Warn().Str("command", cmd.CommandName()).Msg("Unknown command")
		return msgUnknownCommand
	}
}

// rejectionError переводит ошибку проверки команды в AppError
func rejectionError(err error) *apperrors.AppError {
	if errors.Is(err, models.ErrInsufficientPermissions) {
		appErr := apperrors.NewForbiddenError("administrator permission required")
		appErr.Cause = err
		return appErr
	}
	return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
}

func validationReply(rejected *apperrors.AppError) string {
	if rejected.Code == apperrors.ErrCodeForbidden {
		return msgInsufficientPermissions
	}

	switch {
	case errors.Is(rejected, models.ErrMissingFields):
		return msgFillRequiredFields
	case errors.Is(rejected, models.ErrUnknownInvoker):
		return msgUnknownUser
	case errors.Is(rejected, models.ErrMissingTarget):
		return msgSpecifyUser
	default:
		return msgUnknownCommand
	}
}

func (d *Dispatcher) createCharacter(ctx context.Context, cmd models.CreateCharacterCommand) string {
	res, err := d.citizens.CreateCharacter(ctx, citizenModels.CreateCitizenInput{
		FirstName:       cmd.FirstName,
		LastName:        cmd.LastName,
		DateOfBirth:     cmd.DateOfBirth,
		DiscordUserID:   cmd.Invoker.ID,
		DiscordUsername: cmd.Invoker.Username,
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeConflict) {
			return msgCreationInProgress
		}
		return storeErrorReply(cmd, prefixCreateError, err)
	}

	if res.Existing {
		return existingCharacterReply(res.Citizen)
	}
	return characterCreatedReply(res.Citizen)
}

func (d *Dispatcher) viewCharacter(ctx context.Context, cmd models.ViewCharacterCommand) string {
	profile, err := d.citizens.GetOwnCharacter(ctx, cmd.Invoker.ID)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.IsNotFound() {
			return noCharacterReply()
		}
		return storeErrorReply(cmd, prefixViewError, err)
	}

	return characterProfileReply(profile)
}

func (d *Dispatcher) syncRole(ctx context.Context, cmd models.SyncRoleCommand) string {
	user, err := d.users.SyncRole(ctx, cmd.TargetUserID, userModels.Role(cmd.Role))
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.IsNotFound() {
			return userNotFoundReply(cmd.TargetUserID)
		}
		return storeErrorReply(cmd, prefixSyncError, err)
	}

	return roleUpdatedReply(string(user.Role))
}

// storeErrorReply превращает ошибку хранилища в текст ответа
func storeErrorReply(cmd models.Command, prefix string, err error) string {
	if apperrors.HasCode(err, apperrors.ErrCodeDatabaseUnavailable) {
		logger.Warn().Str("command", cmd.CommandName()).Msg("Database is not configured")
		return msgDatabaseUnavailable
	}

	message := err.Error()
	logEvent := logger.Warn
	if appErr, ok := apperrors.AsAppError(err); ok {
		message = appErr.CauseMessage()
		if appErr.IsInternal() {
			logEvent = logger.Error
		}
	}
	logEvent().Err(err).Str("command", cmd.CommandName()).Msg("Command failed")

	return errorReply(prefix, message)
}
