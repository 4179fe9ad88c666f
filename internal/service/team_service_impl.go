package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

// TxRepositories создает репозитории, привязанные к транзакции
type TxRepositories func(tx *sql.Tx) (repository.TeamRepository, repository.MemberRepository)

type teamService struct {
	db         *sql.DB
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository
	txRepos    TxRepositories
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(database *sql.DB, teamRepo repository.TeamRepository, memberRepo repository.MemberRepository, txRepos TxRepositories) TeamService {
	return &teamService{
		db:         database,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		txRepos:    txRepos,
	}
}

// CreateTeam создает команду и ее участников в одной транзакции
func (s *teamService) CreateTeam(ctx context.Context, name string, members []*domain.Member) (*domain.TeamMembers, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewInvalidArgumentError("team name is required")
	}
	for _, m := range members {
		if m.Age < 0 {
			return nil, domain.NewInvalidArgumentError("age must not be negative: %d", m.Age)
		}
	}

	// Участники вызывающего не меняются: при откате у них не должно
	// остаться id и команды, которых нет в БД.
	team := &domain.Team{Name: name}
	created := make([]*domain.Member, 0, len(members))
	err := db.RunInTx(ctx, s.db, func(tx *sql.Tx) error {
		teamRepo, memberRepo := s.txRepos(tx)

		if err := teamRepo.Create(ctx, team); err != nil {
			return err
		}

		for _, m := range members {
			member := *m
			member.ChangeTeam(&team.ID)
			if err := memberRepo.Create(ctx, &member); err != nil {
				return err
			}
			created = append(created, &member)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.TeamMembers{Team: team, Members: created}, nil
}

// GetTeam получает команду и ее участников по имени команды
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.TeamMembers, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &domain.TeamMembers{Team: team, Members: members}, nil
}
