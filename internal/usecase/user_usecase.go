package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"path"
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/jwt"
	"crowdfund/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Role         string
	ProfileImage string
}

// UserPatch lists the user fields that may be changed after registration.
// Nil fields are left alone.
type UserPatch struct {
	Username     *string
	Email        *string
	Role         *string
	ProfileImage *string
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	SearchUsers(ctx context.Context, keyword string) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id uint, patch UserPatch) (*entity.User, error)
	ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error
	UploadProfileImage(ctx context.Context, id uint, file io.Reader, filename, contentType string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userUseCase struct {
	store      persistent.Store
	jwtService *jwt.Service
	images     ImageStore
	logger     *logger.Logger
}

func NewUserUseCase(
	store persistent.Store,
	jwtService *jwt.Service,
	images ImageStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		store:      store,
		jwtService: jwtService,
		images:     images,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" {
		return nil, "", validationError("username is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", validationError("password must be at least %d characters", minPasswordLength)
	}

	role := entity.RoleDonor
	if strings.TrimSpace(input.Role) != "" {
		parsed, err := entity.ParseUserRole(input.Role)
		if err != nil {
			return nil, "", err
		}
		if parsed == entity.RoleAdmin {
			return nil, "", fmt.Errorf("%w: admin accounts cannot be self-registered", entity.ErrForbidden)
		}
		role = parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		ProfileImage: input.ProfileImage,
	}

	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		taken, err := tx.Users().ExistsByUsernameOrEmail(username, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: user with username or email already exists", entity.ErrConflict)
		}
		return tx.Users().Create(user)
	})
	if err != nil {
		return nil, "", fail(uc.logger, "create user", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("Registered user %d (%s) as %s", user.ID, user.Username, user.Role)
	return user, token, nil
}

// Login accepts a username or an email. Unknown identifiers and wrong
// passwords both yield entity.ErrInvalidCredentials.
func (uc *userUseCase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	user, err := uc.store.WithContext(ctx).Users().GetByIdentifier(strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", fail(uc.logger, "load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := uc.store.WithContext(ctx).Users().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get user", named(err, "user"))
	}
	return user, nil
}

func (uc *userUseCase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := uc.store.WithContext(ctx).Users().GetByUsername(username)
	if err != nil {
		return nil, fail(uc.logger, "get user", named(err, "user"))
	}
	return user, nil
}

func (uc *userUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.store.WithContext(ctx).Users().GetByEmail(email)
	if err != nil {
		return nil, fail(uc.logger, "get user", named(err, "user"))
	}
	return user, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.store.WithContext(ctx).Users().List()
	if err != nil {
		return nil, fail(uc.logger, "list users", err)
	}
	return users, nil
}

func (uc *userUseCase) SearchUsers(ctx context.Context, keyword string) ([]*entity.User, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, validationError("search keyword is required")
	}
	users, err := uc.store.WithContext(ctx).Users().Search(keyword)
	if err != nil {
		return nil, fail(uc.logger, "search users", err)
	}
	return users, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*entity.User, error) {
	var user *entity.User
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		user, err = tx.Users().GetByID(id)
		if err != nil {
			return named(err, "user")
		}

		if patch.Username != nil {
			username := strings.TrimSpace(*patch.Username)
			if username == "" {
				return validationError("username cannot be empty")
			}
			user.Username = username
		}
		if patch.Email != nil {
			email := strings.TrimSpace(*patch.Email)
			if err := validateEmail(email); err != nil {
				return err
			}
			user.Email = email
		}
		if patch.Role != nil {
			role, err := entity.ParseUserRole(*patch.Role)
			if err != nil {
				return err
			}
			user.Role = role
		}
		if patch.ProfileImage != nil {
			user.ProfileImage = *patch.ProfileImage
		}

		taken, err := tx.Users().ExistsByUsernameOrEmail(user.Username, user.Email, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: user with email or username already exists", entity.ErrConflict)
		}
		return tx.Users().Update(user)
	})
	if err != nil {
		return nil, fail(uc.logger, "update user", err)
	}
	return user, nil
}

func (uc *userUseCase) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return validationError("password must be at least %d characters", minPasswordLength)
	}

	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		user, err := tx.Users().GetByID(id)
		if err != nil {
			return named(err, "user")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
			return entity.ErrInvalidCredentials
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
		return tx.Users().Update(user)
	})
	if err != nil {
		return fail(uc.logger, "change password", err)
	}
	return nil
}

func (uc *userUseCase) UploadProfileImage(ctx context.Context, id uint, file io.Reader, filename, contentType string) (*entity.User, error) {
	if uc.images == nil {
		return nil, errors.New("image storage is not configured")
	}
	if _, err := uc.GetUser(ctx, id); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("profiles/%d/%s%s", id, uuid.New().String(), path.Ext(filename))
	imageURL, err := uc.images.UploadFile(ctx, key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload profile image: %v", err)
		return nil, fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uc.UpdateUser(ctx, id, UserPatch{ProfileImage: &imageURL})
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		return named(tx.Users().Delete(id), "user")
	})
	if err != nil {
		return fail(uc.logger, "delete user", err)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return validationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationError("invalid email address %q", email)
	}
	return nil
}
