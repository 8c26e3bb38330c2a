package store

import (
	"context"
	"fmt"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/mdtable"
	"github.com/pmlaogao/portal/internal/storage"
)

// memberHeader defines the 4-field Member row schema.
var memberHeader = []string{"Username", "Password", "StartDate", "EndDate"}

const memberFieldCount = 4

// MemberRepo stores member accounts as one table blob. Add/edit/delete is
// done by the caller reconstructing the full set and calling ReplaceAll.
type MemberRepo struct {
	kv  storage.KV
	log logger.Logger
}

// LoadAll parses the stored blob into members. Absent state yields the
// empty seed table.
func (r *MemberRepo) LoadAll(ctx context.Context) ([]domain.Member, error) {
	raw, err := loadRaw(ctx, r.kv, KeyMembers, seedMembers)
	if err != nil {
		return nil, err
	}

	rows := mdtable.Parse(raw, memberFieldCount)
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, domain.Member{
			Username:  row[0],
			Password:  row[1],
			StartDate: row[2],
			EndDate:   row[3],
		})
	}
	return members, nil
}

// Find returns the member with the given username, or nil when absent.
func (r *MemberRepo) Find(ctx context.Context, username string) (*domain.Member, error) {
	members, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Username == username {
			return &members[i], nil
		}
	}
	return nil, nil
}

// ReplaceAll rewrites the whole table, last write wins.
func (r *MemberRepo) ReplaceAll(ctx context.Context, members []domain.Member) error {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Username, m.Password, m.StartDate, m.EndDate})
	}
	if err := r.kv.Set(ctx, KeyMembers, mdtable.Generate(memberHeader, rows)); err != nil {
		return fmt.Errorf("failed to replace members: %w", err)
	}
	return nil
}

// ResetToDefault restores the empty seed table.
func (r *MemberRepo) ResetToDefault(ctx context.Context) error {
	if err := r.kv.Set(ctx, KeyMembers, seedMembers); err != nil {
		return fmt.Errorf("failed to reset members: %w", err)
	}
	return nil
}
