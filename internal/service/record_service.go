package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mightyops-be/internal/dto"
	"mightyops-be/internal/entity"
	"mightyops-be/internal/metrics"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/repository/unitofwork"
	"mightyops-be/pkg/reporting"

	gocache "github.com/patrickmn/go-cache"
)

type IRecordService interface {
	CreateViolationNote(ctx context.Context, req *dto.CreateViolationNoteRequest) (*dto.CreateRecordResponse, error)
	CreateEvaluation(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.CreateRecordResponse, error)
	CreateCapitalRequest(ctx context.Context, req *dto.CreateCapitalRequestRequest) (*dto.CreateRecordResponse, error)
	CreateMarketResearch(ctx context.Context, req *dto.CreateMarketResearchRequest) (*dto.CreateRecordResponse, error)
	CreateStaffingCulture(ctx context.Context, req *dto.CreateStaffingCultureRequest) (*dto.CreateRecordResponse, error)

	List(ctx context.Context, form reporting.FormType) ([]dto.RecordResponse, error)
	Image(ctx context.Context, form reporting.FormType, id int) ([]byte, error)
	Delete(ctx context.Context, form reporting.FormType, req *dto.DeleteRecordsRequest) (*dto.DeleteRecordsResponse, error)
	Stats(ctx context.Context, form reporting.FormType) (*dto.StatsResponse, error)
}

type recordService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            reporting.Store
	publisherService IPublisherService
	statsCache       *gocache.Cache
}

func NewRecordService(
	uowFactory unitofwork.RepositoryFactory,
	store reporting.Store,
	publisherService IPublisherService,
	statsCache *gocache.Cache,
) IRecordService {
	return &recordService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
		statsCache:       statsCache,
	}
}

func (s *recordService) created(ctx context.Context, form reporting.FormType, id int) *dto.CreateRecordResponse {
	metrics.RecordsCreated.WithLabelValues(string(form)).Inc()
	s.publishCreated(ctx, form, id)
	return &dto.CreateRecordResponse{Id: id}
}

func (s *recordService) publishCreated(ctx context.Context, form reporting.FormType, id int) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RecordEventMessage{
		Action: dto.RecordActionCreated,
		Form:   string(form),
		Ids:    []int{id},
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish record event: %v\n", err)
	}
}

func (s *recordService) CreateViolationNote(ctx context.Context, req *dto.CreateViolationNoteRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := &entity.ViolationNote{
		Location:         req.Location,
		SubmittedBy:      req.SubmittedBy,
		Department:       req.Department,
		NoteType:         req.NoteType,
		OtherDescription: req.OtherDescription,
		AdditionalNotes:  req.AdditionalNotes,
		ImagePDF:         req.ImagePDF,
		CreatedAt:        time.Now(),
	}
	if err := uow.ViolationNoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}
	return s.created(ctx, reporting.FormViolationNotes, note.Id), nil
}

func (s *recordService) CreateEvaluation(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	eval := &entity.Evaluation{
		Location:             req.Location,
		SubmittedBy:          req.SubmittedBy,
		Answers:              req.Answers,
		AdditionalNotes:      req.AdditionalNotes,
		FollowUpInstructions: req.FollowUpInstructions,
		ImagePDF:             req.ImagePDF,
		CreatedAt:            time.Now(),
	}
	if err := uow.EvaluationRepository().Create(ctx, eval); err != nil {
		return nil, err
	}
	return s.created(ctx, reporting.FormEvaluations, eval.Id), nil
}

func (s *recordService) CreateCapitalRequest(ctx context.Context, req *dto.CreateCapitalRequestRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request := &entity.CapitalRequest{
		Location:               req.Location,
		SubmittedBy:            req.SubmittedBy,
		RequestTypes:           req.RequestTypes,
		EquipmentArea:          req.EquipmentArea,
		Description:            req.Description,
		OperationalImpact:      req.OperationalImpact,
		CustomerImpact:         req.CustomerImpact,
		SafetyImpact:           req.SafetyImpact,
		RevenueImpact:          req.RevenueImpact,
		ImportanceRanking:      req.ImportanceRanking,
		CostRange:              req.CostRange,
		VendorSupplier:         req.VendorSupplier,
		OperationalRequirement: req.OperationalRequirement,
		Recommendation:         req.Recommendation,
		FollowUpActions:        req.FollowUpActions,
		Justification:          req.Justification,
		FollowUpDeadline:       req.FollowUpDeadline,
		ImagePDF:               req.ImagePDF,
		CreatedAt:              time.Now(),
	}
	if err := uow.CapitalRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	return s.created(ctx, reporting.FormCapitalRequests, request.Id), nil
}

func (s *recordService) CreateMarketResearch(ctx context.Context, req *dto.CreateMarketResearchRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	research := &entity.MarketResearch{
		SubmittedBy:            req.SubmittedBy,
		CompetitorBrand:        req.CompetitorBrand,
		CompetitorAddress:      req.CompetitorAddress,
		OperationType:          req.OperationType,
		TunnelLength:           req.TunnelLength,
		VisitDateTime:          req.VisitDateTime,
		StaffingLevels:         req.StaffingLevels,
		StaffProfessionalism:   req.StaffProfessionalism,
		SpeedOfService:         req.SpeedOfService,
		QueueLength:            req.QueueLength,
		EquipmentCondition:     req.EquipmentCondition,
		TechnologyUsed:         req.TechnologyUsed,
		OperationalStrengths:   req.OperationalStrengths,
		OperationalWeaknesses:  req.OperationalWeaknesses,
		CustomerServiceQuality: req.CustomerServiceQuality,
		SiteCleanliness:        req.SiteCleanliness,
		VacuumAreaCondition:    req.VacuumAreaCondition,
		AmenitiesOffered:       req.AmenitiesOffered,
		UpkeepIssues:           req.UpkeepIssues,
		CustomerVolume:         req.CustomerVolume,
		WashPackages:           req.WashPackages,
		Pricing:                req.Pricing,
		MembershipPricing:      req.MembershipPricing,
		MembershipPerks:        req.MembershipPerks,
		PromotionalOffers:      req.PromotionalOffers,
		UpgradesAddons:         req.UpgradesAddons,
		CompetitorStandout:     req.CompetitorStandout,
		CompetitorStrengths:    req.CompetitorStrengths,
		CompetitorWeaknesses:   req.CompetitorWeaknesses,
		Opportunities:          req.Opportunities,
		ImagePDF:               req.ImagePDF,
		CreatedAt:              time.Now(),
	}
	if err := uow.MarketResearchRepository().Create(ctx, research); err != nil {
		return nil, err
	}
	return s.created(ctx, reporting.FormMarketResearch, research.Id), nil
}

func (s *recordService) CreateStaffingCulture(ctx context.Context, req *dto.CreateStaffingCultureRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := &entity.StaffingCultureNote{
		Location:                  req.Location,
		SubmittedBy:               req.SubmittedBy,
		StaffingLevels:            req.StaffingLevels,
		SkillLevel:                req.SkillLevel,
		StaffingConcerns:          req.StaffingConcerns,
		HighPotentialEmployees:    req.HighPotentialEmployees,
		EmployeesNeedingCoaching:  req.EmployeesNeedingCoaching,
		StaffingSummary:           req.StaffingSummary,
		LeadershipPresence:        req.LeadershipPresence,
		LeadershipBehaviors:       req.LeadershipBehaviors,
		GmPerformance:             req.GmPerformance,
		GmNotes:                   req.GmNotes,
		LeadershipFollowUp:        req.LeadershipFollowUp,
		PotentialLeaders:          req.PotentialLeaders,
		TeamMorale:                req.TeamMorale,
		CultureObserved:           req.CultureObserved,
		CustomerInteractions:      req.CustomerInteractions,
		CustomerInteractionsNotes: req.CustomerInteractionsNotes,
		RecognitionMoments:        req.RecognitionMoments,
		CultureIssues:             req.CultureIssues,
		OverallCulture:            req.OverallCulture,
		KeyTakeaways:              req.KeyTakeaways,
		FollowUpActions:           req.FollowUpActions,
		FollowUpInstructions:      req.FollowUpInstructions,
		ImagePDF:                  req.ImagePDF,
		CreatedAt:                 time.Now(),
	}
	if err := uow.StaffingCultureRepository().Create(ctx, note); err != nil {
		return nil, err
	}
	return s.created(ctx, reporting.FormStaffingCulture, note.Id), nil
}

func (s *recordService) List(ctx context.Context, form reporting.FormType) ([]dto.RecordResponse, error) {
	if _, ok := reporting.SchemaFor(form); !ok {
		return nil, serverutils.NotFound("unknown form")
	}
	records, err := s.store.FetchRecords(ctx, form)
	if err != nil {
		return nil, err
	}
	return toRecordResponses(records), nil
}

func (s *recordService) Image(ctx context.Context, form reporting.FormType, id int) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		data []byte
		err  error
	)
	switch form {
	case reporting.FormViolationNotes:
		data, err = uow.ViolationNoteRepository().FindImageByID(ctx, id)
	case reporting.FormEvaluations:
		data, err = uow.EvaluationRepository().FindImageByID(ctx, id)
	case reporting.FormCapitalRequests:
		data, err = uow.CapitalRequestRepository().FindImageByID(ctx, id)
	case reporting.FormMarketResearch:
		data, err = uow.MarketResearchRepository().FindImageByID(ctx, id)
	case reporting.FormStaffingCulture:
		data, err = uow.StaffingCultureRepository().FindImageByID(ctx, id)
	default:
		return nil, serverutils.NotFound("unknown form")
	}
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, serverutils.NotFound("record has no attachment")
	}
	return data, nil
}

// Delete removes records by id. Ids that do not exist contribute
// nothing to the count.
func (s *recordService) Delete(ctx context.Context, form reporting.FormType, req *dto.DeleteRecordsRequest) (*dto.DeleteRecordsResponse, error) {
	if _, ok := reporting.SchemaFor(form); !ok {
		return nil, serverutils.NotFound("unknown form")
	}
	deleted, err := s.store.DeleteRecords(ctx, form, req.Ids)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteRecordsResponse{Deleted: deleted}, nil
}

// Stats serves dashboard counts from a short-lived cache; the consumer
// drops the cached entry whenever a record event arrives.
func (s *recordService) Stats(ctx context.Context, form reporting.FormType) (*dto.StatsResponse, error) {
	schema, ok := reporting.SchemaFor(form)
	if !ok {
		return nil, serverutils.NotFound("unknown form")
	}

	cacheKey := statsCacheKey(string(form))
	if cached, found := s.statsCache.Get(cacheKey); found {
		if stats, ok := cached.(*dto.StatsResponse); ok {
			return stats, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		total      int64
		byCategory map[string]int64
		bySite     map[string]int64
		err        error
	)
	switch form {
	case reporting.FormViolationNotes:
		repo := uow.ViolationNoteRepository()
		if total, err = repo.Count(ctx); err != nil {
			return nil, err
		}
		if byCategory, err = repo.CountGrouped(ctx, schema.CategoryField); err != nil {
			return nil, err
		}
		bySite, err = repo.CountGrouped(ctx, "location")
	case reporting.FormEvaluations:
		repo := uow.EvaluationRepository()
		if total, err = repo.Count(ctx); err != nil {
			return nil, err
		}
		if byCategory, err = repo.CountGrouped(ctx, schema.CategoryField); err != nil {
			return nil, err
		}
		bySite, err = repo.CountGrouped(ctx, "location")
	case reporting.FormCapitalRequests:
		repo := uow.CapitalRequestRepository()
		if total, err = repo.Count(ctx); err != nil {
			return nil, err
		}
		if byCategory, err = repo.CountGrouped(ctx, schema.CategoryField); err != nil {
			return nil, err
		}
		bySite, err = repo.CountGrouped(ctx, "location")
	case reporting.FormMarketResearch:
		repo := uow.MarketResearchRepository()
		if total, err = repo.Count(ctx); err != nil {
			return nil, err
		}
		byCategory, err = repo.CountGrouped(ctx, schema.CategoryField)
	case reporting.FormStaffingCulture:
		repo := uow.StaffingCultureRepository()
		if total, err = repo.Count(ctx); err != nil {
			return nil, err
		}
		if byCategory, err = repo.CountGrouped(ctx, schema.CategoryField); err != nil {
			return nil, err
		}
		bySite, err = repo.CountGrouped(ctx, "location")
	}
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		Total:      total,
		ByCategory: byCategory,
		BySite:     bySite,
	}
	s.statsCache.Set(cacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}

func statsCacheKey(form string) string {
	return "stats:" + form
}

func toRecordResponses(records []reporting.Record) []dto.RecordResponse {
	out := make([]dto.RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.RecordResponse{
			Id:          r.ID,
			Location:    r.Location,
			SubmittedBy: r.SubmittedBy,
			SubmittedAt: r.SubmittedAt,
			HasImage:    r.HasImage,
			Values:      r.Values,
		})
	}
	return out
}
