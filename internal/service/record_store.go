package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mightyops-be/internal/dto"
	"mightyops-be/internal/mapper"
	"mightyops-be/internal/metrics"
	"mightyops-be/internal/repository/specification"
	"mightyops-be/internal/repository/unitofwork"
	"mightyops-be/pkg/reporting"
)

// recordStore adapts the repositories to the reporting engine's Store
// contract. Fetches always come back newest first so an unsorted view
// still reads sensibly.
type recordStore struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService

	notes    *mapper.ViolationNoteMapper
	evals    *mapper.EvaluationMapper
	capitals *mapper.CapitalRequestMapper
	research *mapper.MarketResearchMapper
	staffing *mapper.StaffingCultureMapper
}

func NewRecordStore(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) reporting.Store {
	return &recordStore{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		notes:            mapper.NewViolationNoteMapper(),
		evals:            mapper.NewEvaluationMapper(),
		capitals:         mapper.NewCapitalRequestMapper(),
		research:         mapper.NewMarketResearchMapper(),
		staffing:         mapper.NewStaffingCultureMapper(),
	}
}

func (s *recordStore) FetchRecords(ctx context.Context, form reporting.FormType) ([]reporting.Record, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	newest := specification.NewestFirst{}

	switch form {
	case reporting.FormViolationNotes:
		rows, err := uow.ViolationNoteRepository().FindAll(ctx, newest)
		if err != nil {
			return nil, err
		}
		out := make([]reporting.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, s.notes.ToRecord(row))
		}
		return out, nil

	case reporting.FormEvaluations:
		rows, err := uow.EvaluationRepository().FindAll(ctx, newest)
		if err != nil {
			return nil, err
		}
		out := make([]reporting.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, s.evals.ToRecord(row))
		}
		return out, nil

	case reporting.FormCapitalRequests:
		rows, err := uow.CapitalRequestRepository().FindAll(ctx, newest)
		if err != nil {
			return nil, err
		}
		out := make([]reporting.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, s.capitals.ToRecord(row))
		}
		return out, nil

	case reporting.FormMarketResearch:
		rows, err := uow.MarketResearchRepository().FindAll(ctx, newest)
		if err != nil {
			return nil, err
		}
		out := make([]reporting.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, s.research.ToRecord(row))
		}
		return out, nil

	case reporting.FormStaffingCulture:
		rows, err := uow.StaffingCultureRepository().FindAll(ctx, newest)
		if err != nil {
			return nil, err
		}
		out := make([]reporting.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, s.staffing.ToRecord(row))
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown form type %q", form)
}

func (s *recordStore) DeleteRecords(ctx context.Context, form reporting.FormType, ids []int) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		deleted int64
		err     error
	)
	switch form {
	case reporting.FormViolationNotes:
		deleted, err = uow.ViolationNoteRepository().DeleteByIDs(ctx, ids)
	case reporting.FormEvaluations:
		deleted, err = uow.EvaluationRepository().DeleteByIDs(ctx, ids)
	case reporting.FormCapitalRequests:
		deleted, err = uow.CapitalRequestRepository().DeleteByIDs(ctx, ids)
	case reporting.FormMarketResearch:
		deleted, err = uow.MarketResearchRepository().DeleteByIDs(ctx, ids)
	case reporting.FormStaffingCulture:
		deleted, err = uow.StaffingCultureRepository().DeleteByIDs(ctx, ids)
	default:
		return 0, fmt.Errorf("unknown form type %q", form)
	}
	if err != nil {
		return 0, err
	}

	metrics.RecordsDeleted.WithLabelValues(string(form)).Add(float64(deleted))
	s.publishEvent(ctx, dto.RecordEventMessage{
		Action: dto.RecordActionDeleted,
		Form:   string(form),
		Ids:    ids,
	})

	return deleted, nil
}

func (s *recordStore) publishEvent(ctx context.Context, msg dto.RecordEventMessage) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish record event: %v\n", err)
	}
}
