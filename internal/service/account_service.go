package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"account-service/internal/auth"
	"account-service/internal/domain"
	"account-service/internal/repository"
)

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWeakPassword is returned when a registration password fails the strength policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// login responses carry no account-enumeration signal.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUnauthenticated covers every token failure: bad signature, expired, malformed.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrAccountNotFound is returned when a resolved or targeted account no longer exists.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInactive is returned when the resolved account has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")
)

// AccountService describes account lifecycle and session operations.
type AccountService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (string, *domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Resolve(ctx context.Context, tokenString string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id int64, update repository.AccountUpdate) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

type accountService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenCodec
}

func NewAccountService(accounts repository.AccountRepository, tokens *auth.TokenCodec) AccountService {
	return &accountService{accounts: accounts, tokens: tokens}
}

func (s *accountService) Register(ctx context.Context, email, password, firstName, lastName string) (string, *domain.Account, error) {
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if email == "" {
		return "", nil, errors.New("email is required")
	}
	if firstName == "" || lastName == "" {
		return "", nil, errors.New("first and last name are required")
	}
	if len(password) < 8 {
		return "", nil, ErrWeakPassword
	}

	// friendly pre-check; the unique constraint below is the real guard
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
	}

	if _, err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// concurrent racer won the insert
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}
	return token, sanitizeAccount(account), nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}
	return token, sanitizeAccount(account), nil
}

// Resolve decodes a bearer token and re-reads the live account record. The
// token's email/last_name claims are never consulted; only the fresh row
// backs any decision made by callers.
func (s *accountService) Resolve(ctx context.Context, tokenString string) (*domain.Account, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	id, err := claims.AccountID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}
	return sanitizeAccount(account), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, id int64, update repository.AccountUpdate) (*domain.Account, error) {
	account, err := s.accounts.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return sanitizeAccount(account), nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func sanitizeAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	clean := *account
	clean.PasswordHash = ""
	return &clean
}
