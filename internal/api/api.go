package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type BackendService struct {
	db *gorm.DB
}

func NewBackendService(db *gorm.DB) *BackendService {
	return &BackendService{db: db}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/branches", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListBranches))
		r.Post("/", RestHandler(s.CreateBranch))
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListProducts))
		r.Post("/", RestHandler(s.CreateProduct))
	})
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListReports))
		r.Post("/", RestHandler(s.CreateReport))
		r.Get("/{report_id}", RestHandler(s.GetReport))
		r.Patch("/{report_id}/status", RestHandler(s.UpdateReportStatus))
		r.Post("/{report_id}/viewed", RestHandler(s.MarkReportViewed))
	})
}

func (s *BackendService) ListBranches(r *http.Request) (any, error) {
	var branches []database.Branch
	if err := s.db.WithContext(r.Context()).Find(&branches).Error; err != nil {
		slog.Error("error listing branches", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving branches")
	}

	return convertBranches(branches), nil
}

func (s *BackendService) CreateBranch(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateBranchRequest](r)
	if err != nil {
		return nil, err
	}

	if req.BranchName == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required field: branch_name")
	}

	branch := database.Branch{
		BranchName: req.BranchName,
		Location:   req.Location,
		IsActive:   true,
	}

	if err := s.db.WithContext(r.Context()).Create(&branch).Error; err != nil {
		slog.Error("error creating branch", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create branch entry")
	}

	return api.CreateBranchResponse{BranchId: branch.Id}, nil
}

func (s *BackendService) ListProducts(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.ListProductsQuery](r)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(r.Context()).Model(&database.Product{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	var products []database.Product
	if err := query.Order("name").Find(&products).Error; err != nil {
		slog.Error("error listing products", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving products")
	}

	return convertProducts(products), nil
}

func (s *BackendService) CreateProduct(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateProductRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required field: name")
	}

	product := database.Product{
		Name:     req.Name,
		Category: req.Category,
		Cost:     req.Cost,
		Srp:      req.Srp,
	}

	if err := s.db.WithContext(r.Context()).Create(&product).Error; err != nil {
		slog.Error("error creating product", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create product entry")
	}

	return api.CreateProductResponse{ProductId: product.Id}, nil
}

func (s *BackendService) ListReports(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.ListReportsQuery](r)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(r.Context()).Model(&database.InvReport{})
	if params.BranchId > 0 {
		query = query.Where("branch_id = ?", params.BranchId)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	var reports []database.InvReport
	if err := query.Order("date_created DESC").Find(&reports).Error; err != nil {
		slog.Error("error listing reports", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving reports")
	}

	return convertReports(reports), nil
}

func (s *BackendService) CreateReport(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateReportRequest](r)
	if err != nil {
		return nil, err
	}

	if req.BranchId <= 0 {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required field: branch_id")
	}

	ctx := r.Context()

	var branch database.Branch
	if err := s.db.WithContext(ctx).First(&branch, "id = ?", req.BranchId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "branch not found")
		}
		slog.Error("error getting branch", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving branch record")
	}

	report := database.InvReport{
		BranchId:    req.BranchId,
		DateCreated: time.Now().UTC(),
		Status:      nullInt32(database.ReportDraft),
		Items:       convertItemsToRecords(req.Items),
	}

	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		slog.Error("error creating report", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create report entry")
	}

	slog.Info("created inventory report", "report_id", report.Id, "branch_id", report.BranchId, "items", len(report.Items))
	return api.CreateReportResponse{ReportId: report.Id}, nil
}

func (s *BackendService) GetReport(r *http.Request) (any, error) {
	reportId, err := URLParamInt(r, "report_id")
	if err != nil {
		return nil, err
	}

	var report database.InvReport
	if err := s.db.WithContext(r.Context()).Preload("Items").First(&report, "id = ?", reportId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "report not found")
		}
		slog.Error("error getting report", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving report record")
	}

	return convertReport(report), nil
}

func (s *BackendService) UpdateReportStatus(r *http.Request) (any, error) {
	reportId, err := URLParamInt(r, "report_id")
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.UpdateReportStatusRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Status < database.ReportDraft || req.Status > database.ReportReviewed {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "invalid status value: %d", req.Status)
	}

	ctx := r.Context()

	if err := s.requireReport(r, reportId); err != nil {
		return nil, err
	}

	if err := database.UpdateReportStatus(ctx, s.db, reportId, req.Status); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to update report status")
	}

	return nil, nil
}

func (s *BackendService) MarkReportViewed(r *http.Request) (any, error) {
	reportId, err := URLParamInt(r, "report_id")
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.MarkReportViewedRequest](r)
	if err != nil {
		return nil, err
	}

	if req.UserId <= 0 {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required field: user_id")
	}

	if err := s.requireReport(r, reportId); err != nil {
		return nil, err
	}

	if err := database.MarkReportViewed(r.Context(), s.db, reportId, req.UserId); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to mark report viewed")
	}

	return nil, nil
}

func (s *BackendService) requireReport(r *http.Request, reportId int) error {
	var report database.InvReport
	if err := s.db.WithContext(r.Context()).Select("id").First(&report, "id = ?", reportId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CodedErrorf(http.StatusNotFound, "report not found")
		}
		slog.Error("error getting report", "error", err)
		return CodedErrorf(http.StatusInternalServerError, "error retrieving report record")
	}
	return nil
}
