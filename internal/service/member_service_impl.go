package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	teamRepo   repository.TeamRepository
	cache      MemberCache
}

func NewMemberService(memberRepo repository.MemberRepository, teamRepo repository.TeamRepository, cache MemberCache) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		cache:      cache,
	}
}

func (s *memberService) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if member.Age < 0 {
		return nil, domain.NewInvalidArgumentError("age must not be negative: %d", member.Age)
	}

	if member.TeamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *member.TeamID); err != nil {
			return nil, err
		}
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.cache.Put(member)
	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	if member, ok := s.cache.Get(id); ok {
		return member, nil
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Put(member)
	return member, nil
}

func (s *memberService) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (*domain.Member, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if teamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *teamID); err != nil {
			return nil, err
		}
	}

	if err := s.memberRepo.ChangeTeam(ctx, memberID, teamID); err != nil {
		s.cache.Remove(memberID)
		return nil, err
	}

	member.ChangeTeam(teamID)
	s.cache.Put(member)
	return member, nil
}

func (s *memberService) FindAll(ctx context.Context) ([]*domain.Member, error) {
	return s.memberRepo.FindAll(ctx)
}

func (s *memberService) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	return s.memberRepo.FindByUsername(ctx, username)
}

func (s *memberService) ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error) {
	return s.memberRepo.ListByTeamName(ctx, teamName)
}

func (s *memberService) Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error) {
	rows, err := s.memberRepo.Search(ctx, criteria, orders, page)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("filters", len(query.Criteria(criteria).Exprs())).
		Int("offset", page.Offset).
		Int("limit", page.Limit).
		Int("rows", len(rows)).
		Msg("member search")

	return rows, nil
}

func (s *memberService) FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error) {
	return s.memberRepo.FindOne(ctx, criteria)
}

func (s *memberService) Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error) {
	return s.memberRepo.Usernames(ctx, criteria)
}

func (s *memberService) BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error) {
	count, err := s.memberRepo.BulkUpdateUsername(ctx, belowAge, username)
	return s.afterBulk("bulk update username", count, err)
}

func (s *memberService) BulkIncrementAge(ctx context.Context, delta int) (int64, error) {
	count, err := s.memberRepo.BulkIncrementAge(ctx, delta)
	return s.afterBulk("bulk increment age", count, err)
}

func (s *memberService) BulkDelete(ctx context.Context, aboveAge int) (int64, error) {
	count, err := s.memberRepo.BulkDelete(ctx, aboveAge)
	return s.afterBulk("bulk delete", count, err)
}

// afterBulk очищает кэш при любом исходе массовой операции.
func (s *memberService) afterBulk(op string, count int64, err error) (int64, error) {
	evicted := s.cache.Len()
	s.cache.Purge()

	if err != nil {
		log.Error().Err(err).Str("op", op).Int("evicted", evicted).Msg("bulk operation failed")
		return 0, err
	}

	log.Info().Str("op", op).Int64("affected", count).Int("evicted", evicted).Msg("bulk operation done")
	return count, nil
}
