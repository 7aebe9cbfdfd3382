package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/rates"
)

// UplineMember is a referrer of the investor at the given generation (1 is the direct referrer).
type UplineMember struct {
	User  domain.User
	Level int
}

// ResolveUpline follows ReferredBy links from investor up to rates.MaxGenerations levels. The walk stops at a
// missing link, at an unknown code, and at a user already visited, so a referral cycle never pays the investor
// or anyone twice.
func ResolveUpline(ctx context.Context, repo UserRepository, investor *domain.User) ([]UplineMember, error) {
	visited := map[int64]struct{}{investor.ID: {}}
	upline := make([]UplineMember, 0, rates.MaxGenerations)

	code := investor.ReferredBy
	for level := 1; level <= rates.MaxGenerations && code != nil && *code != ""; level++ {
		referrer, err := repo.FindByInvitationCode(ctx, *code)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				break
			}
			return nil, fmt.Errorf("resolving upline level %d: %w", level, err)
		}
		if _, seen := visited[referrer.ID]; seen {
			break
		}
		visited[referrer.ID] = struct{}{}

		upline = append(upline, UplineMember{User: *referrer, Level: level})
		code = referrer.ReferredBy
	}
	return upline, nil
}
