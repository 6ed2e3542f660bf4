package handlers

import (
	"strconv"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/services"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	enquiryService services.EnquiryService
}

func NewEnquiryHandler(enquiryService services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

type productRequest struct {
	ProductType string `json:"product_type"`
	Quantity    int    `json:"quantity"`
}

type createEnquiryRequest struct {
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	InquiryType  string           `json:"inquiry_type"`
	Products     []productRequest `json:"products"`
	Date         *time.Time       `json:"date"`
}

func (r *createEnquiryRequest) toModel() *models.Enquiry {
	enquiry := &models.Enquiry{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		InquiryType:  r.InquiryType,
	}
	if r.Date != nil {
		enquiry.Date = *r.Date
	}
	for _, p := range r.Products {
		enquiry.Products = append(enquiry.Products, models.EnquiryProduct{
			ProductType: p.ProductType,
			Quantity:    p.Quantity,
		})
	}
	return enquiry
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry := req.toModel()
	if err := h.enquiryService.CreateEnquiry(enquiry); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, enquiry)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	if stage := c.Query("stage"); stage != "" {
		enquiries, err := h.enquiryService.GetEnquiriesByStage(stage)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, enquiries)
		return
	}

	enquiries, err := h.enquiryService.GetAllEnquiries()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiries)
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	enquiry, err := h.enquiryService.GetEnquiryByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry := req.toModel()
	enquiry.ID = id
	updated, err := h.enquiryService.UpdateEnquiry(enquiry)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.enquiryService.DeleteEnquiry(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id, "status": "deleted"})
}

// Transition endpoints. Each one maps to a single workflow operation;
// validation failures come back with the full field list.

func (h *EnquiryHandler) Convert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		QuotedAmount float64   `json:"quoted_amount"`
		PickupDate   time.Time `json:"pickup_date"`
		DeliveryDate time.Time `json:"delivery_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.ConvertEnquiry(id, req.QuotedAmount, req.PickupDate, req.DeliveryDate)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) SchedulePickup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	enquiry, err := h.enquiryService.SchedulePickup(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) AssignPickup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		AssignedTo string `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.AssignPickup(id, req.AssignedTo)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) MarkCollected(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ProofPhoto string `json:"proof_photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.MarkCollected(id, req.ProofPhoto)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) MarkReceived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ItemPhotos    []string `json:"item_photos"`
		Notes         string   `json:"notes"`
		EstimatedCost float64  `json:"estimated_cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.MarkReceived(id, req.ItemPhotos, req.Notes, req.EstimatedCost)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) CompleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.CompleteService(id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) ScheduleDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Method        string    `json:"method"`
		ScheduledTime time.Time `json:"scheduled_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.ScheduleDelivery(id, req.Method, req.ScheduledTime)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) MarkOutForDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		AssignedTo string `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.MarkOutForDelivery(id, req.AssignedTo)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}

func (h *EnquiryHandler) CompleteDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ProofPhoto string `json:"proof_photo"`
		Signature  string `json:"signature"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	enquiry, err := h.enquiryService.CompleteDelivery(id, req.ProofPhoto, req.Signature, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, enquiry)
}
