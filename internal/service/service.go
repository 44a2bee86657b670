package service

import (
	"go.uber.org/zap"
)

type RepositoryI interface {
	WordRI
	StatsRI
	SessionRI
}

type Service struct {
	*WordS
	*QuizS
	*StatsS
	*SessionS
}

func InitServices(repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		WordS:    NewWordService(repo, log),
		QuizS:    NewQuizService(repo, log),
		StatsS:   NewStatsService(repo, log),
		SessionS: NewSessionService(repo, log),
	}
}
