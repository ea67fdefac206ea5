package api

import "time"

type Branch struct {
	Id         int
	BranchName string
	Location   string
	IsActive   bool
}

type CreateBranchRequest struct {
	BranchName string
	Location   string
}

type CreateBranchResponse struct {
	BranchId int
}

type Product struct {
	Id       int
	Name     string
	Category string
	Cost     float64
	Srp      float64
}

type CreateProductRequest struct {
	Name     string
	Category string
	Cost     float64
	Srp      float64
}

type CreateProductResponse struct {
	ProductId int
}

type ListProductsQuery struct {
	Category string `schema:"category"`
	Search   string `schema:"search"`
	Limit    int    `schema:"limit"`
	Offset   int    `schema:"offset"`
}

type ReportItem struct {
	ProductId   int
	Beginning   int
	Deliver     int
	Transfer    int
	SellingArea int
	PullOut     int
	Offtake     float64
	CurrentCost float64
	CurrentSrp  *float64
}

type Report struct {
	Id          int
	BranchId    int
	DateCreated time.Time
	LastEdit    *time.Time
	Status      *int32
	ViewedBy    *int

	Items []ReportItem `json:"Items,omitempty"`
}

type CreateReportRequest struct {
	BranchId int
	Items    []ReportItem
}

type CreateReportResponse struct {
	ReportId int
}

type ListReportsQuery struct {
	BranchId int    `schema:"branch_id"`
	Status   *int32 `schema:"status"`
	Limit    int    `schema:"limit"`
	Offset   int    `schema:"offset"`
}

type UpdateReportStatusRequest struct {
	Status int32
}

type MarkReportViewedRequest struct {
	UserId int
}
