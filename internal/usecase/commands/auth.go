package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/customer"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/jwt"
	"storefront-checkout/internal/pkg/password"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
)

var (
	ErrCustomerNotFound     = errs.New("customer not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrCustomerInactive     = errs.New("customer inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	CustomerID uuid.UUID
	TokenPair  *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.CustomerReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.CustomerReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateCustomer(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := customer.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Customers().UpdateLastLogin(ctx, tx.DB(), view.ID)
		if updateErr != nil {
			slog.Warn("failed to update last login", "customer_id", view.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "customer_id", view.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{
		CustomerID: view.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := customer.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate customer still exists and is active
	view, err := a.readStore.FindByID(ctx, claims.CustomerID)
	if err != nil || view == nil {
		return nil, ErrCustomerNotFound
	}

	if !view.IsActive {
		return nil, ErrCustomerInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.CustomerID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.CustomerID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateCustomer(ctx context.Context, credentials customer.Credentials) (*queries.AuthorizedCustomerView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrCustomerNotFound
	}

	if !view.IsActive {
		return nil, ErrCustomerInactive
	}

	err = password.Verify(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
