package service

import (
	"context"
	"fmt"
	"time"

	"bigcommerce-carecloud-sync/internal/client"
	"bigcommerce-carecloud-sync/internal/model"
	"bigcommerce-carecloud-sync/internal/repository"
)

// tokenLease is the fixed validity window applied to a fresh token. The
// CRM does not report an expiry, so the lease is ours.
const tokenLease = 6 * time.Hour

type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

type tokenProviderImpl struct {
	store     repository.TokenStore
	carecloud client.CareCloudClient
	now       func() time.Time
}

func NewTokenProvider(store repository.TokenStore, carecloud client.CareCloudClient) TokenProvider {
	return &tokenProviderImpl{
		store:     store,
		carecloud: carecloud,
		now:       time.Now,
	}
}

// GetToken returns the persisted token when still inside its lease,
// otherwise logs in, persists the replacement and returns it. A login
// failure propagates; a stale token is never silently reused.
func (p *tokenProviderImpl) GetToken(ctx context.Context) (string, error) {
	token, err := p.store.Load()
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if !token.IsExpired(p.now()) {
		return token.Token, nil
	}

	bearer, err := p.carecloud.Login(ctx)
	if err != nil {
		return "", fmt.Errorf("carecloud login: %w", err)
	}

	fresh := &model.Token{
		Token:   bearer,
		Expires: p.now().Add(tokenLease).Unix(),
	}
	if err := p.store.Save(fresh); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}
	return fresh.Token, nil
}
