package service

import (
	"errors"

	"github.com/sinodiaspora/story-map-api/internal/alert"
	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sinodiaspora/story-map-api/internal/geocode"
	"github.com/sirupsen/logrus"
)

// ErrNotFound - запись не нашлась; хэндлеры превращают его во встроенное
// сообщение, а не в исключение
var ErrNotFound = errors.New("record not found")

// Service - бизнес-логика поверх репозиториев. Один инстанс обслуживает
// истории, пространства, комментарии и черновики.
type Service struct {
	submissions SubmissionRepository
	spaces      SpaceRepository
	comments    CommentRepository
	handoff     HandoffStore
	drafts      DraftStore
	geocoder    geocode.Resolver
	alerts      alert.Publisher
	logger      *logrus.Logger
	cfg         *config.Config
}

func New(
	submissions SubmissionRepository,
	spaces SpaceRepository,
	comments CommentRepository,
	handoff HandoffStore,
	drafts DraftStore,
	geocoder geocode.Resolver,
	alerts alert.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) *Service {
	return &Service{
		submissions: submissions,
		spaces:      spaces,
		comments:    comments,
		handoff:     handoff,
		drafts:      drafts,
		geocoder:    geocoder,
		alerts:      alerts,
		logger:      logger,
		cfg:         cfg,
	}
}
