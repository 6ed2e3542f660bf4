package workflow

import (
	"time"

	"cobbler_crm/internal/models"
)

// MinPickupToDeliveryDays is the minimum gap between pickup and delivery
// dates accepted at conversion time.
const MinPickupToDeliveryDays = 15

// overridable in tests
var timeNow = time.Now

// stageOrder fixes the forward-only progression of an enquiry.
var stageOrder = map[models.Stage]int{
	models.StageEnquiry:   0,
	models.StagePickup:    1,
	models.StageService:   2,
	models.StageDelivery:  3,
	models.StageCompleted: 4,
}

// Allowed pickup sub-status transitions.
var pickupTransitions = map[models.PickupStatus]map[models.PickupStatus]bool{
	models.PickupScheduled: {models.PickupAssigned: true},
	models.PickupAssigned:  {models.PickupCollected: true, models.PickupReceived: true},
	models.PickupCollected: {models.PickupReceived: true},
	models.PickupReceived:  {},
}

// Allowed delivery sub-status transitions.
var deliveryTransitions = map[models.DeliveryStatus]map[models.DeliveryStatus]bool{
	models.DeliveryReady:          {models.DeliveryScheduled: true},
	models.DeliveryScheduled:      {models.DeliveryOutForDelivery: true},
	models.DeliveryOutForDelivery: {models.DeliveryDelivered: true},
	models.DeliveryDelivered:      {},
}

// CanAdvance reports whether moving from one stage to another follows the
// forward progression. Same-stage is not an advance.
func CanAdvance(from, to models.Stage) bool {
	fromOrd, ok := stageOrder[from]
	if !ok {
		return false
	}
	toOrd, ok := stageOrder[to]
	if !ok {
		return false
	}
	return toOrd == fromOrd+1
}

func canPickupTransition(from, to models.PickupStatus) bool {
	nexts, ok := pickupTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

func canDeliveryTransition(from, to models.DeliveryStatus) bool {
	nexts, ok := deliveryTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ConvertEnquiry turns a new enquiry into a committed, quoted, scheduled
// job. Amount, pickup date and delivery date are all checked and every
// violation is reported together.
func ConvertEnquiry(e *models.Enquiry, quotedAmount float64, pickupDate, deliveryDate time.Time) error {
	verr := &ValidationError{}

	if e.CurrentStage != string(models.StageEnquiry) {
		verr.Add("current_stage", "enquiry can only be converted from the enquiry stage")
	}
	if e.Status != string(models.StatusNew) {
		verr.Add("status", "only a new enquiry can be converted")
	}
	if quotedAmount < 1 {
		verr.Add("quoted_amount", "quoted amount must be at least 1")
	}
	if pickupDate.Before(startOfDay(timeNow())) {
		verr.Add("pickup_date", "pickup date cannot be in the past")
	}
	if deliveryDate.Before(pickupDate.AddDate(0, 0, MinPickupToDeliveryDays)) {
		verr.Add("delivery_date", "delivery date must be at least 15 days after pickup date")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := timeNow()
	e.Status = string(models.StatusConverted)
	e.QuotedAmount = quotedAmount
	e.PickupDate = &pickupDate
	e.DeliveryDate = &deliveryDate
	e.ContactedAt = &now
	return nil
}

// SchedulePickup advances a converted enquiry into the pickup stage and
// opens its pickup record.
func SchedulePickup(e *models.Enquiry) error {
	verr := &ValidationError{}

	if e.Status != string(models.StatusConverted) {
		verr.Add("status", "enquiry must be converted before pickup can be scheduled")
	}
	if !CanAdvance(models.Stage(e.CurrentStage), models.StagePickup) {
		verr.Add("current_stage", "pickup can only be scheduled from the enquiry stage")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	e.CurrentStage = string(models.StagePickup)
	e.PickupDetails = &models.PickupDetails{
		EnquiryID: e.ID,
		Status:    string(models.PickupScheduled),
	}
	return nil
}

func AssignPickup(e *models.Enquiry, assignee string) error {
	verr := &ValidationError{}

	if e.CurrentStage != string(models.StagePickup) {
		verr.Add("current_stage", "enquiry is not in the pickup stage")
	}
	if assignee == "" {
		verr.Add("assigned_to", "assignee is required")
	}
	if e.PickupDetails != nil && !canPickupTransition(models.PickupStatus(e.PickupDetails.Status), models.PickupAssigned) {
		verr.Add("pickup_status", "pickup has already been assigned")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if e.PickupDetails == nil {
		e.PickupDetails = &models.PickupDetails{
			EnquiryID: e.ID,
			Status:    string(models.PickupScheduled),
		}
	}
	e.PickupDetails.Status = string(models.PickupAssigned)
	e.PickupDetails.AssignedTo = assignee
	return nil
}

// MarkCollected records that the assigned runner picked the items up from
// the customer. A proof photo is mandatory.
func MarkCollected(e *models.Enquiry, proofPhoto string) error {
	verr := &ValidationError{}

	if e.PickupDetails == nil || !canPickupTransition(models.PickupStatus(e.PickupDetails.Status), models.PickupCollected) {
		verr.Add("pickup_status", "pickup must be assigned before it can be collected")
	}
	if proofPhoto == "" {
		verr.Add("proof_photo", "proof photo is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := timeNow()
	e.PickupDetails.Status = string(models.PickupCollected)
	e.PickupDetails.ProofPhoto = proofPhoto
	e.PickupDetails.CollectedAt = &now
	return nil
}

// MarkReceived closes the pickup stage and opens the service record. At
// least one per-item photo must accompany the handover to the workshop.
func MarkReceived(e *models.Enquiry, itemPhotos []string, notes string, estimatedCost float64) error {
	verr := &ValidationError{}

	if e.PickupDetails == nil || !canPickupTransition(models.PickupStatus(e.PickupDetails.Status), models.PickupReceived) {
		verr.Add("pickup_status", "pickup must be assigned or collected before items can be received")
	}
	if len(itemPhotos) == 0 {
		verr.Add("item_photos", "at least one item photo is required")
	}
	if !CanAdvance(models.Stage(e.CurrentStage), models.StageService) {
		verr.Add("current_stage", "enquiry is not in the pickup stage")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := timeNow()
	e.PickupDetails.Status = string(models.PickupReceived)
	e.PickupDetails.ReceivedAt = &now
	e.CurrentStage = string(models.StageService)

	photos := make([]models.StagePhoto, 0, len(itemPhotos))
	for _, url := range itemPhotos {
		photos = append(photos, models.StagePhoto{URL: url})
	}
	e.ServiceDetails = &models.ServiceDetails{
		EnquiryID:     e.ID,
		Status:        "in-progress",
		EstimatedCost: estimatedCost,
		Notes:         notes,
		StartedAt:     now,
		Photos:        photos,
	}
	return nil
}

// CompleteService closes the workshop stage and readies the enquiry for
// delivery scheduling.
func CompleteService(e *models.Enquiry, notes string) error {
	verr := &ValidationError{}

	if e.CurrentStage != string(models.StageService) {
		verr.Add("current_stage", "enquiry is not in the service stage")
	}
	if e.ServiceDetails == nil || e.ServiceDetails.Status != "in-progress" {
		verr.Add("service_status", "service is not in progress")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := timeNow()
	e.ServiceDetails.Status = "completed"
	e.ServiceDetails.CompletedAt = &now
	if notes != "" {
		e.ServiceDetails.Notes = notes
	}
	e.CurrentStage = string(models.StageDelivery)
	e.DeliveryDetails = &models.DeliveryDetails{
		EnquiryID: e.ID,
		Status:    string(models.DeliveryReady),
	}
	return nil
}

func ScheduleDelivery(e *models.Enquiry, method models.DeliveryMethod, scheduledTime time.Time) error {
	verr := &ValidationError{}

	if e.CurrentStage != string(models.StageDelivery) {
		verr.Add("current_stage", "enquiry is not in the delivery stage")
	}
	if e.DeliveryDetails == nil || !canDeliveryTransition(models.DeliveryStatus(e.DeliveryDetails.Status), models.DeliveryScheduled) {
		verr.Add("delivery_status", "delivery is not ready to be scheduled")
	}
	if method != models.MethodCustomerPickup && method != models.MethodHomeDelivery {
		verr.Add("method", "method must be customer-pickup or home-delivery")
	}
	if scheduledTime.IsZero() {
		verr.Add("scheduled_time", "scheduled time is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	e.DeliveryDetails.Status = string(models.DeliveryScheduled)
	e.DeliveryDetails.Method = string(method)
	e.DeliveryDetails.ScheduledTime = &scheduledTime
	return nil
}

func MarkOutForDelivery(e *models.Enquiry, assignedTo string) error {
	verr := &ValidationError{}

	if e.DeliveryDetails == nil || !canDeliveryTransition(models.DeliveryStatus(e.DeliveryDetails.Status), models.DeliveryOutForDelivery) {
		verr.Add("delivery_status", "delivery must be scheduled before going out")
	}
	if assignedTo == "" {
		verr.Add("assigned_to", "assignee is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	e.DeliveryDetails.Status = string(models.DeliveryOutForDelivery)
	e.DeliveryDetails.AssignedTo = assignedTo
	return nil
}

// CompleteDelivery closes the whole workflow. A proof photo is mandatory;
// the signature and notes are optional.
func CompleteDelivery(e *models.Enquiry, proofPhoto, signature, notes string) error {
	verr := &ValidationError{}

	if e.DeliveryDetails == nil || !canDeliveryTransition(models.DeliveryStatus(e.DeliveryDetails.Status), models.DeliveryDelivered) {
		verr.Add("delivery_status", "delivery is not out for delivery")
	}
	if proofPhoto == "" {
		verr.Add("proof_photo", "proof photo is required")
	}
	if !CanAdvance(models.Stage(e.CurrentStage), models.StageCompleted) {
		verr.Add("current_stage", "enquiry is not in the delivery stage")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := timeNow()
	e.DeliveryDetails.Status = string(models.DeliveryDelivered)
	e.DeliveryDetails.ProofPhoto = proofPhoto
	e.DeliveryDetails.Signature = signature
	if notes != "" {
		e.DeliveryDetails.Notes = notes
	}
	e.DeliveryDetails.DeliveredAt = &now
	e.CurrentStage = string(models.StageCompleted)
	return nil
}
