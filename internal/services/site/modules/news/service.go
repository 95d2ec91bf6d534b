package news

import (
	"strings"

	"github.com/volt-agency/site/internal/content"
	module "github.com/volt-agency/site/internal/services/site/module"
	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
)

const postNotFoundKey = "news.not_found"

type service struct {
	catalog *content.Catalog
}

func newService(deps module.Dependencies) service {
	return service{catalog: deps.Catalog()}
}

func (s service) posts() []content.Post {
	return s.catalog.Posts()
}

func (s service) post(id string) (content.Post, error) {
	id = strings.TrimSpace(id)
	post, ok := s.catalog.Post(id)
	if !ok {
		return content.Post{}, apperrors.EK(apperrors.KindNotFound, postNotFoundKey, "news post "+id+" not found")
	}
	return post, nil
}
