package service

import (
	"context"
	"strings"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
)

type IFaqService interface {
	GetAll(ctx context.Context) ([]*dto.FaqResponse, error)
	Search(ctx context.Context, query string) ([]*dto.FaqResponse, error)
}

type faqService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFaqService(uowFactory unitofwork.RepositoryFactory) IFaqService {
	return &faqService{uowFactory: uowFactory}
}

func (s *faqService) GetAll(ctx context.Context) ([]*dto.FaqResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.FaqRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order", Desc: false})
	if err != nil {
		return nil, err
	}
	return toFaqResponses(faqs), nil
}

func (s *faqService) Search(ctx context.Context, query string) ([]*dto.FaqResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAll(ctx)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.FaqRepository().Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toFaqResponses(faqs), nil
}

func toFaqResponses(faqs []*entity.Faq) []*dto.FaqResponse {
	resp := make([]*dto.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		resp = append(resp, &dto.FaqResponse{
			Id:       f.Id,
			Category: f.Category,
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	return resp
}
